package atomic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/ratelimit"
)

const PROVIDER_NAME = "atomic"

// SalesQuery holds the filters of /atomicmarket/v2/sales
type SalesQuery struct {
	State          string
	CollectionName string
	Seller         string
	AssetID        string
	Page           int
	Limit          int
	Order          string
	Sort           string
}

// AuctionsQuery holds the filters of /atomicmarket/v1/auctions
type AuctionsQuery struct {
	State          string
	Seller         string
	CollectionName string
	Page           int
	Limit          int
	Order          string
	Sort           string
}

// AssetsQuery holds the filters of /atomicassets/v1/assets
type AssetsQuery struct {
	Owner          string
	CollectionName string
	TemplateID     string
	Page           int
	Limit          int
	Order          string
	Sort           string
}

// SalesPage is one page of sales. Skipped counts records that could not be decoded;
// a page is only empty when both Sales and Skipped are zero.
type SalesPage struct {
	Sales   []domain.SaleRecord
	Skipped int
}

// Len returns the number of records the indexer returned for this page
func (p *SalesPage) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Sales) + p.Skipped
}

// envelope is the common response wrapper of the indexer API
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// Client defines the interface for the AtomicAssets/AtomicMarket indexer to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/atomic_client.go -package=mocks -mock_names=Client=MockAtomicClient
type Client interface {
	// ListSales fetches one page of sales
	ListSales(ctx context.Context, chainKey domain.ChainKey, query SalesQuery) (*SalesPage, error)

	// ListAuctions fetches one page of auctions
	ListAuctions(ctx context.Context, chainKey domain.ChainKey, query AuctionsQuery) ([]domain.AuctionRecord, error)

	// ListAssets fetches one page of assets
	ListAssets(ctx context.Context, chainKey domain.ChainKey, query AssetsQuery) ([]domain.AssetRecord, error)

	// GetCollection fetches a collection by name. Returns nil when it does not exist.
	GetCollection(ctx context.Context, chainKey domain.ChainKey, collectionName string) (*domain.CollectionRecord, error)
}

// AtomicClient implements the indexer client
type AtomicClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	endpoints      map[domain.ChainKey]string
	json           adapter.JSON
	cache          adapter.Cache
	collectionTTL  time.Duration
}

// NewClient creates a new indexer client. endpoints maps each chain to its aaEndpoint.
// cache may be nil to disable collection caching.
func NewClient(
	httpClient adapter.HTTPClient,
	rateLimitProxy ratelimit.Proxy,
	endpoints map[domain.ChainKey]string,
	json adapter.JSON,
	cache adapter.Cache,
	collectionTTL time.Duration,
) Client {
	return &AtomicClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		endpoints:      endpoints,
		json:           json,
		cache:          cache,
		collectionTTL:  collectionTTL,
	}
}

func (c *AtomicClient) endpoint(chainKey domain.ChainKey) (string, error) {
	base, ok := c.endpoints[chainKey]
	if !ok || base == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownChain, chainKey)
	}
	return strings.TrimRight(base, "/"), nil
}

// get calls the indexer and returns the data member of the envelope
func (c *AtomicClient) get(ctx context.Context, chainKey domain.ChainKey, path string, params url.Values) (json.RawMessage, error) {
	base, err := c.endpoint(chainKey)
	if err != nil {
		return nil, err
	}

	requestURL := base + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, requestURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call AtomicAssets API: %w", err)
	}

	var resp envelope
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal AtomicAssets response: %w", err)
	}

	if !resp.Success {
		return nil, fmt.Errorf("AtomicAssets API error: %s", resp.Message)
	}

	return resp.Data, nil
}

// ListSales fetches one page of sales. Records that fail to decode are skipped and counted.
func (c *AtomicClient) ListSales(ctx context.Context, chainKey domain.ChainKey, query SalesQuery) (*SalesPage, error) {
	params := url.Values{}
	setParam(params, "state", query.State)
	setParam(params, "collection_name", query.CollectionName)
	setParam(params, "seller", query.Seller)
	setParam(params, "asset_id", query.AssetID)
	setIntParam(params, "page", query.Page)
	setIntParam(params, "limit", query.Limit)
	setParam(params, "order", query.Order)
	setParam(params, "sort", query.Sort)

	data, err := c.get(ctx, chainKey, "/atomicmarket/v2/sales", params)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := c.json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sales: %w", err)
	}

	page := &SalesPage{Sales: make([]domain.SaleRecord, 0, len(items))}
	for _, item := range items {
		var sale domain.SaleRecord
		if err := c.json.Unmarshal(item, &sale); err != nil {
			logger.WarnCtx(ctx, "Skipping undecodable sale record", zap.Error(err))
			page.Skipped++
			continue
		}
		page.Sales = append(page.Sales, sale)
	}

	return page, nil
}

// ListAuctions fetches one page of auctions
func (c *AtomicClient) ListAuctions(ctx context.Context, chainKey domain.ChainKey, query AuctionsQuery) ([]domain.AuctionRecord, error) {
	params := url.Values{}
	setParam(params, "state", query.State)
	setParam(params, "seller", query.Seller)
	setParam(params, "collection_name", query.CollectionName)
	setIntParam(params, "page", query.Page)
	setIntParam(params, "limit", query.Limit)
	setParam(params, "order", query.Order)
	setParam(params, "sort", query.Sort)

	data, err := c.get(ctx, chainKey, "/atomicmarket/v1/auctions", params)
	if err != nil {
		return nil, err
	}

	var auctions []domain.AuctionRecord
	if err := c.json.Unmarshal(data, &auctions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auctions: %w", err)
	}

	return auctions, nil
}

// ListAssets fetches one page of assets
func (c *AtomicClient) ListAssets(ctx context.Context, chainKey domain.ChainKey, query AssetsQuery) ([]domain.AssetRecord, error) {
	params := url.Values{}
	setParam(params, "owner", query.Owner)
	setParam(params, "collection_name", query.CollectionName)
	setParam(params, "template_id", query.TemplateID)
	setIntParam(params, "page", query.Page)
	setIntParam(params, "limit", query.Limit)
	setParam(params, "order", query.Order)
	setParam(params, "sort", query.Sort)

	data, err := c.get(ctx, chainKey, "/atomicassets/v1/assets", params)
	if err != nil {
		return nil, err
	}

	var assets []domain.AssetRecord
	if err := c.json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assets: %w", err)
	}

	return assets, nil
}

// GetCollection fetches a collection by name, consulting the cache first
func (c *AtomicClient) GetCollection(ctx context.Context, chainKey domain.ChainKey, collectionName string) (*domain.CollectionRecord, error) {
	if collectionName == "" {
		return nil, errors.New("collection name is required")
	}

	cacheKey := fmt.Sprintf("collection:%s:%s", chainKey, collectionName)
	if c.cache != nil {
		if cached, err := c.cache.Get(cacheKey); err == nil {
			var collection domain.CollectionRecord
			if err := c.json.Unmarshal(cached, &collection); err == nil {
				return &collection, nil
			}
		}
	}

	data, err := c.get(ctx, chainKey, "/atomicassets/v1/collections/"+url.PathEscape(collectionName), nil)
	if err != nil {
		if se, ok := adapter.AsStatusError(err); ok && se.StatusCode == 404 {
			return nil, nil
		}
		return nil, err
	}

	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var collection domain.CollectionRecord
	if err := c.json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(cacheKey, data, c.collectionTTL); err != nil {
			logger.WarnCtx(ctx, "Failed to cache collection", zap.Error(err), zap.String("collection", collectionName))
		}
	}

	return &collection, nil
}

func setParam(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setIntParam(params url.Values, key string, value int) {
	if value > 0 {
		params.Set(key, strconv.Itoa(value))
	}
}
