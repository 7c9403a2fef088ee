package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/config"
	"github.com/abstrakts/storefront-core/internal/domain"
)

// Token describes a fungible token accepted by the market
type Token struct {
	Symbol   string `json:"symbol"`
	Contract string `json:"contract"`
	Decimals int    `json:"decimals"`
}

// TokenRegistry defines the interface for token lookups and quantity formatting
//
//go:generate mockgen -source=token.go -destination=../mocks/token_registry.go -package=mocks -mock_names=TokenRegistry=MockTokenRegistry
type TokenRegistry interface {
	// Lookup returns the token registered under symbol
	Lookup(symbol string) (Token, error)

	// Purchasable reports whether symbol can be used to pay for a sale
	Purchasable(symbol string) bool

	// FormatQuantity renders amount with the token's fixed decimals, e.g. "12.5000 XPR"
	FormatQuantity(amount decimal.Decimal, symbol string) (string, error)

	// SettlementSymbol renders the "<decimals>,<SYMBOL>" form used by market listings
	SettlementSymbol(symbol string) (string, error)

	// Tokens returns every registered token sorted by symbol
	Tokens() []Token
}

// DefaultTokens is the built-in token table
var DefaultTokens = map[string]Token{
	"XPR":   {Symbol: "XPR", Contract: "eosio.token", Decimals: 4},
	"XUSDC": {Symbol: "XUSDC", Contract: "xtokens", Decimals: 6},
	"METAL": {Symbol: "METAL", Contract: "xtokens", Decimals: 8},
	"LOAN":  {Symbol: "LOAN", Contract: "loan.token", Decimals: 4},
}

// TokenRegistryData represents the structure of the tokens.json file
// Key format: "SYMBOL" -> {contract, decimals}
type TokenRegistryData map[string]struct {
	Contract string `json:"contract"`
	Decimals int    `json:"decimals"`
}

type tokenRegistry struct {
	tokens map[string]Token
}

// NewTokenRegistry builds a registry from the defaults overlaid with configured tokens.
// Symbols are case-insensitive; viper hands map keys over lowercased.
func NewTokenRegistry(overrides map[string]config.TokenConfig) TokenRegistry {
	r := &tokenRegistry{tokens: make(map[string]Token, len(DefaultTokens)+len(overrides))}
	for symbol, token := range DefaultTokens {
		r.tokens[symbol] = token
	}
	for symbol, cfg := range overrides {
		r.set(symbol, cfg.Contract, cfg.Decimals)
	}
	return r
}

func (r *tokenRegistry) set(symbol, contract string, decimals int) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" || contract == "" || decimals < 0 {
		return
	}
	r.tokens[symbol] = Token{Symbol: symbol, Contract: contract, Decimals: decimals}
}

func (r *tokenRegistry) Lookup(symbol string) (Token, error) {
	token, ok := r.tokens[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return Token{}, fmt.Errorf("%w: %s", domain.ErrUnknownToken, symbol)
	}
	return token, nil
}

func (r *tokenRegistry) Purchasable(symbol string) bool {
	_, err := r.Lookup(symbol)
	return err == nil
}

func (r *tokenRegistry) FormatQuantity(amount decimal.Decimal, symbol string) (string, error) {
	token, err := r.Lookup(symbol)
	if err != nil {
		return "", err
	}
	return amount.StringFixed(int32(token.Decimals)) + " " + token.Symbol, nil
}

func (r *tokenRegistry) SettlementSymbol(symbol string) (string, error) {
	token, err := r.Lookup(symbol)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d,%s", token.Decimals, token.Symbol), nil
}

func (r *tokenRegistry) Tokens() []Token {
	tokens := make([]Token, 0, len(r.tokens))
	for _, token := range r.tokens {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Symbol < tokens[j].Symbol })
	return tokens
}

// TokenRegistryLoader loads extra tokens from a JSON file on top of a base registry
type TokenRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewTokenRegistryLoader creates a new loader
func NewTokenRegistryLoader(fs adapter.FileSystem, json adapter.JSON) *TokenRegistryLoader {
	return &TokenRegistryLoader{fs: fs, json: json}
}

// Load reads filePath and returns a registry combining the defaults, overrides and the file entries
func (l *TokenRegistryLoader) Load(filePath string, overrides map[string]config.TokenConfig) (TokenRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read token registry file: %w", err)
	}

	var registryData TokenRegistryData
	if err := l.json.Unmarshal(data, &registryData); err != nil {
		return nil, fmt.Errorf("failed to parse token registry JSON: %w", err)
	}

	reg := NewTokenRegistry(overrides).(*tokenRegistry)
	for symbol, entry := range registryData {
		reg.set(symbol, entry.Contract, entry.Decimals)
	}

	return reg, nil
}

// ParseQuantity splits a chain asset string such as "12.5000 XPR" into value and token
func ParseQuantity(quantity string) (domain.Balance, error) {
	parts := strings.Fields(quantity)
	if len(parts) != 2 {
		return domain.Balance{}, fmt.Errorf("invalid quantity %q", quantity)
	}
	if _, err := decimal.NewFromString(parts[0]); err != nil {
		return domain.Balance{}, fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}
	return domain.Balance{Value: parts[0], Token: parts[1]}, nil
}
