package dto

import (
	"encoding/json"
	"fmt"

	apierrors "github.com/abstrakts/storefront-core/internal/api/shared/errors"
	"github.com/abstrakts/storefront-core/internal/api/shared/validator"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/market"
)

// TransactionRequest represents the request body for building or submitting a transaction
type TransactionRequest struct {
	Kind market.Kind `json:"kind"`
	// Actor is only read by the dry run; submissions act as the token subject
	Actor      string `json:"actor,omitempty"`
	Permission string `json:"permission,omitempty"`
	// SessionChainKey is the network the wallet session is connected to, the path chain when empty
	SessionChainKey domain.ChainKey `json:"session_chain_key,omitempty"`
	Intent          json.RawMessage `json:"intent"`
}

// Validate validates the request body
func (r *TransactionRequest) Validate() error {
	if r.Kind == "" {
		return apierrors.NewValidationError("kind is required")
	}
	if _, err := market.NewIntent(r.Kind); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	if len(r.Intent) == 0 {
		return apierrors.NewValidationError("intent is required")
	}
	if r.Actor != "" {
		if err := validator.Var(r.Actor, "eosname"); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("invalid actor: %s", r.Actor))
		}
	}
	if r.Permission != "" {
		if err := validator.Var(r.Permission, "eosname"); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("invalid permission: %s", r.Permission))
		}
	}
	return nil
}

// Session returns the wallet session of actor for the request
func (r *TransactionRequest) Session(chainKey domain.ChainKey, actor string) domain.Session {
	sessionChain := r.SessionChainKey
	if sessionChain == "" {
		sessionChain = chainKey
	}
	return domain.Session{
		Actor:      actor,
		Permission: r.Permission,
		ChainKey:   sessionChain,
	}
}
