package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
)

// Receipt is what the wallet returns once the transaction is broadcast
type Receipt struct {
	TransactionID string          `json:"transaction_id"`
	Processed     json.RawMessage `json:"processed,omitempty"`
}

// Signer signs and broadcasts a transaction on behalf of a session
//
//go:generate mockgen -source=signer.go -destination=../../mocks/wallet_signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	// SignTransaction signs every action of tx as one atomic transaction and broadcasts it
	SignTransaction(ctx context.Context, session domain.Session, tx domain.Transaction, opts domain.SignOptions) (*Receipt, error)
}

// transactRequest is the payload posted to the wallet bridge
type transactRequest struct {
	Chain         domain.ChainKey    `json:"chain"`
	Actor         string             `json:"actor"`
	Permission    string             `json:"permission"`
	Transaction   domain.Transaction `json:"transaction"`
	BlocksBehind  int                `json:"blocksBehind"`
	ExpireSeconds int                `json:"expireSeconds"`
}

// BridgeSigner posts transactions to a remote wallet bridge
type BridgeSigner struct {
	httpClient adapter.HTTPClient
	bridgeURL  string
	apiKey     string
	json       adapter.JSON
}

// NewBridgeSigner creates a signer backed by the wallet bridge at bridgeURL.
// httpClient must not retry: a retried broadcast may execute twice.
func NewBridgeSigner(httpClient adapter.HTTPClient, bridgeURL string, apiKey string, json adapter.JSON) Signer {
	return &BridgeSigner{
		httpClient: httpClient,
		bridgeURL:  strings.TrimRight(bridgeURL, "/"),
		apiKey:     apiKey,
		json:       json,
	}
}

// SignTransaction posts the transaction to the bridge.
// A non-2xx answer is returned as a *ChainError decoded from the body.
func (s *BridgeSigner) SignTransaction(ctx context.Context, session domain.Session, tx domain.Transaction, opts domain.SignOptions) (*Receipt, error) {
	auth := session.Authorization()
	body, err := s.json.Marshal(transactRequest{
		Chain:         session.ChainKey,
		Actor:         auth.Actor,
		Permission:    auth.Permission,
		Transaction:   tx,
		BlocksBehind:  opts.BlocksBehind,
		ExpireSeconds: opts.ExpireSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if s.apiKey != "" {
		headers["Authorization"] = "Bearer " + s.apiKey
	}

	respBody, err := s.httpClient.PostBytes(ctx, s.bridgeURL+"/v1/transact", headers, body)
	if err != nil {
		if se, ok := adapter.AsStatusError(err); ok {
			return nil, s.decodeChainError(ctx, se)
		}
		return nil, fmt.Errorf("failed to call wallet bridge: %w", err)
	}

	var receipt Receipt
	if err := s.json.Unmarshal(respBody, &receipt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet receipt: %w", err)
	}

	return &receipt, nil
}

func (s *BridgeSigner) decodeChainError(ctx context.Context, se *adapter.StatusError) error {
	chainErr := &ChainError{StatusCode: se.StatusCode}
	if err := s.json.Unmarshal(se.Body, chainErr); err != nil {
		logger.WarnCtx(ctx, "Wallet bridge returned a non JSON error body",
			zap.Int("status_code", se.StatusCode),
			zap.Error(err))
		chainErr.Message = strings.TrimSpace(string(se.Body))
	}
	if chainErr.Message == "" {
		chainErr.Message = fmt.Sprintf("wallet bridge returned status %d", se.StatusCode)
	}
	return chainErr
}
