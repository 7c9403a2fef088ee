package chainrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/ratelimit"
	"github.com/abstrakts/storefront-core/internal/registry"
)

const PROVIDER_NAME = "chainrpc"

// Table coordinates read by the typed helpers
const (
	STOREFRONT_TABLE = "storefront"
	USERSINFO_CODE   = "eosio.proton"
	USERSINFO_TABLE  = "usersinfo"
	PROTONLINK_CODE  = "protonlink"
	PROTONLINK_TABLE = "kvs"
	MARKET_BALANCES  = "balances"
	KEY_TYPE_I64     = "i64"
	PRIMARY_INDEX    = 1
	SINGLE_ROW       = 1
)

// TableRowsRequest is the body of /v1/chain/get_table_rows
type TableRowsRequest struct {
	Code          string `json:"code"`
	Table         string `json:"table"`
	Scope         string `json:"scope"`
	LowerBound    string `json:"lower_bound"`
	UpperBound    string `json:"upper_bound"`
	IndexPosition int    `json:"index_position"`
	KeyType       string `json:"key_type"`
	Limit         int    `json:"limit"`
	Reverse       bool   `json:"reverse"`
	ShowPayer     bool   `json:"show_payer"`
	JSON          bool   `json:"json"`
}

// TableRowsResponse is the answer of /v1/chain/get_table_rows
type TableRowsResponse struct {
	Rows    []json.RawMessage `json:"rows"`
	More    bool              `json:"more"`
	NextKey string            `json:"next_key"`
}

// KeyValue is one entry of a key/value table row
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StorefrontRow is a row of storefront/storefront
type StorefrontRow struct {
	Actor  string     `json:"actor"`
	Values []KeyValue `json:"values"`
}

// Value returns the value stored under key, or an empty string
func (r StorefrontRow) Value(key string) string {
	for _, kv := range r.Values {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// ProtonLinkRow is a row of protonlink/kvs
type ProtonLinkRow struct {
	Account string     `json:"account"`
	Values  []KeyValue `json:"values"`
}

// UserInfo is a row of eosio.proton/usersinfo
type UserInfo struct {
	Acc      string          `json:"acc"`
	Name     string          `json:"name"`
	Avatar   string          `json:"avatar"`
	Verified int             `json:"verified"`
	KYC      json.RawMessage `json:"kyc,omitempty"`
}

// MarketBalanceRow is a row of atomicmarket/balances
type MarketBalanceRow struct {
	Owner      string   `json:"owner"`
	Quantities []string `json:"quantities"`
}

// Account is the subset of /v1/chain/get_account the storefront reads
type Account struct {
	AccountName       string `json:"account_name"`
	Created           string `json:"created"`
	HeadBlockTime     string `json:"head_block_time"`
	RAMQuota          int64  `json:"ram_quota"`
	RAMUsage          int64  `json:"ram_usage"`
	CoreLiquidBalance string `json:"core_liquid_balance,omitempty"`
}

// Client defines the interface for the chain RPC node to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/chainrpc_client.go -package=mocks -mock_names=Client=MockChainRPCClient
type Client interface {
	// GetTableRows reads rows of a contract table
	GetTableRows(ctx context.Context, chainKey domain.ChainKey, req TableRowsRequest) (*TableRowsResponse, error)

	// GetAccount reads an account
	GetAccount(ctx context.Context, chainKey domain.ChainKey, accountName string) (*Account, error)

	// GetStorefront reads the storefront settings of an account. Returns nil when unset.
	GetStorefront(ctx context.Context, chainKey domain.ChainKey, accountName string) (*StorefrontRow, error)

	// GetUsersInfo reads the profile of an account. Returns nil when unset.
	GetUsersInfo(ctx context.Context, chainKey domain.ChainKey, accountName string) (*UserInfo, error)

	// GetProtonLink reads the link settings of an account. Returns nil when unset.
	GetProtonLink(ctx context.Context, chainKey domain.ChainKey, accountName string) (*ProtonLinkRow, error)

	// GetMarketBalances reads the withdrawable market balances of an account
	GetMarketBalances(ctx context.Context, chainKey domain.ChainKey, accountName string) ([]domain.Balance, error)
}

// RPCClient implements the chain RPC client
type RPCClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	endpoints      map[domain.ChainKey]string
	json           adapter.JSON
	cache          adapter.Cache
	accountTTL     time.Duration
	atomicMarket   string
}

// NewClient creates a new chain RPC client. endpoints maps each chain to its RPC base URL.
// cache may be nil to disable caching of account and profile reads.
func NewClient(
	httpClient adapter.HTTPClient,
	rateLimitProxy ratelimit.Proxy,
	endpoints map[domain.ChainKey]string,
	json adapter.JSON,
	cache adapter.Cache,
	accountTTL time.Duration,
	atomicMarketContract string,
) Client {
	if atomicMarketContract == "" {
		atomicMarketContract = domain.ATOMIC_MARKET_CONTRACT
	}
	return &RPCClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		endpoints:      endpoints,
		json:           json,
		cache:          cache,
		accountTTL:     accountTTL,
		atomicMarket:   atomicMarketContract,
	}
}

// DecodeRows decodes every row of a table response into T
func DecodeRows[T any](j adapter.JSON, resp *TableRowsResponse) ([]T, error) {
	if resp == nil {
		return nil, nil
	}
	rows := make([]T, 0, len(resp.Rows))
	for i, raw := range resp.Rows {
		var row T
		if err := j.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("failed to decode table row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *RPCClient) post(ctx context.Context, chainKey domain.ChainKey, path string, payload interface{}) ([]byte, error) {
	base, ok := c.endpoints[chainKey]
	if !ok || base == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownChain, chainKey)
	}
	requestURL := strings.TrimRight(base, "/") + path

	body, err := c.json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.PostBytes(ctx, requestURL, headers, body)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call chain RPC %s: %w", path, err)
	}

	return respBody, nil
}

// cached serves key from the cache or calls load and stores the result
func (c *RPCClient) cached(ctx context.Context, key string, load func() ([]byte, error)) ([]byte, error) {
	if c.cache != nil {
		if data, err := c.cache.Get(key); err == nil {
			return data, nil
		}
	}

	data, err := load()
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(key, data, c.accountTTL); err != nil {
			logger.WarnCtx(ctx, "Failed to cache chain RPC response", zap.Error(err), zap.String("key", key))
		}
	}
	return data, nil
}

// GetTableRows reads rows of a contract table
func (c *RPCClient) GetTableRows(ctx context.Context, chainKey domain.ChainKey, req TableRowsRequest) (*TableRowsResponse, error) {
	respBody, err := c.post(ctx, chainKey, "/v1/chain/get_table_rows", req)
	if err != nil {
		return nil, err
	}

	var resp TableRowsResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table rows: %w", err)
	}

	return &resp, nil
}

// GetAccount reads an account
func (c *RPCClient) GetAccount(ctx context.Context, chainKey domain.ChainKey, accountName string) (*Account, error) {
	key := fmt.Sprintf("account:%s:%s", chainKey, accountName)
	respBody, err := c.cached(ctx, key, func() ([]byte, error) {
		return c.post(ctx, chainKey, "/v1/chain/get_account", map[string]string{"account_name": accountName})
	})
	if err != nil {
		return nil, err
	}

	var account Account
	if err := c.json.Unmarshal(respBody, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

// singleRow reads the row of an account-keyed table where lower and upper bound are the account
func singleRow[T any](ctx context.Context, c *RPCClient, chainKey domain.ChainKey, code, table, accountName string) (*T, error) {
	resp, err := c.GetTableRows(ctx, chainKey, TableRowsRequest{
		Code:          code,
		Table:         table,
		Scope:         code,
		LowerBound:    accountName,
		UpperBound:    accountName,
		IndexPosition: PRIMARY_INDEX,
		Limit:         SINGLE_ROW,
		JSON:          true,
	})
	if err != nil {
		return nil, err
	}

	rows, err := DecodeRows[T](c.json, resp)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// GetStorefront reads the storefront settings of an account
func (c *RPCClient) GetStorefront(ctx context.Context, chainKey domain.ChainKey, accountName string) (*StorefrontRow, error) {
	return singleRow[StorefrontRow](ctx, c, chainKey, domain.STOREFRONT_CONTRACT, STOREFRONT_TABLE, accountName)
}

// GetProtonLink reads the link settings of an account
func (c *RPCClient) GetProtonLink(ctx context.Context, chainKey domain.ChainKey, accountName string) (*ProtonLinkRow, error) {
	return singleRow[ProtonLinkRow](ctx, c, chainKey, PROTONLINK_CODE, PROTONLINK_TABLE, accountName)
}

// GetUsersInfo reads the profile of an account.
// The table is keyed by i64 so only the lower bound is set and the returned row is checked.
func (c *RPCClient) GetUsersInfo(ctx context.Context, chainKey domain.ChainKey, accountName string) (*UserInfo, error) {
	key := fmt.Sprintf("usersinfo:%s:%s", chainKey, accountName)
	respBody, err := c.cached(ctx, key, func() ([]byte, error) {
		return c.post(ctx, chainKey, "/v1/chain/get_table_rows", TableRowsRequest{
			Code:          USERSINFO_CODE,
			Table:         USERSINFO_TABLE,
			Scope:         USERSINFO_CODE,
			LowerBound:    accountName,
			IndexPosition: PRIMARY_INDEX,
			KeyType:       KEY_TYPE_I64,
			Limit:         SINGLE_ROW,
			JSON:          true,
		})
	})
	if err != nil {
		return nil, err
	}

	var resp TableRowsResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table rows: %w", err)
	}

	rows, err := DecodeRows[UserInfo](c.json, &resp)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || rows[0].Acc != accountName {
		return nil, nil
	}
	return &rows[0], nil
}

// GetMarketBalances reads the withdrawable market balances of an account.
// Quantities that cannot be parsed are skipped.
func (c *RPCClient) GetMarketBalances(ctx context.Context, chainKey domain.ChainKey, accountName string) ([]domain.Balance, error) {
	resp, err := c.GetTableRows(ctx, chainKey, TableRowsRequest{
		Code:          c.atomicMarket,
		Table:         MARKET_BALANCES,
		Scope:         c.atomicMarket,
		LowerBound:    accountName,
		IndexPosition: PRIMARY_INDEX,
		Limit:         SINGLE_ROW,
		JSON:          true,
	})
	if err != nil {
		return nil, err
	}

	rows, err := DecodeRows[MarketBalanceRow](c.json, resp)
	if err != nil {
		return nil, err
	}

	balances := []domain.Balance{}
	if len(rows) == 0 || rows[0].Owner != accountName {
		return balances, nil
	}

	for _, quantity := range rows[0].Quantities {
		balance, err := registry.ParseQuantity(quantity)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping unparsable market balance",
				zap.String("account", accountName),
				zap.String("quantity", quantity),
				zap.Error(err))
			continue
		}
		balances = append(balances, balance)
	}

	return balances, nil
}
