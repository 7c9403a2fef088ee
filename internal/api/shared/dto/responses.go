package dto

import (
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/inventory"
	"github.com/abstrakts/storefront-core/internal/media"
	"github.com/abstrakts/storefront-core/internal/ownership"
)

// SalesResponse represents the flattened listings of a sales query
type SalesResponse struct {
	Items []domain.ListedAsset `json:"items"`
	Total int                  `json:"total"`
	// Fast is set when only the first page was read
	Fast bool `json:"fast"`
}

// ShowcasesResponse represents the previews of storefront collections
type ShowcasesResponse struct {
	Showcases []inventory.Showcase `json:"showcases"`
}

// CollectionResponse represents a collection with its resolved image
type CollectionResponse struct {
	*domain.CollectionRecord
	ImageURL string `json:"image_url,omitempty"`
}

// BalancesResponse represents the withdrawable market balances of an account
type BalancesResponse struct {
	Account  string           `json:"account"`
	Balances []domain.Balance `json:"balances"`
}

// StorefrontResponse represents the storefront settings of an account and its showcases
type StorefrontResponse struct {
	Account   string               `json:"account"`
	Values    map[string]string    `json:"values"`
	Showcases []inventory.Showcase `json:"showcases"`
}

// ProfileResponse represents the public profile of an account
type ProfileResponse struct {
	Account  string            `json:"account"`
	Name     string            `json:"name,omitempty"`
	Avatar   string            `json:"avatar,omitempty"`
	Verified bool              `json:"verified"`
	Created  string            `json:"created,omitempty"`
	Links    map[string]string `json:"links"`
}

// ClaimableAuctionsResponse represents the ended auctions a seller can take back
type ClaimableAuctionsResponse struct {
	Account  string                 `json:"account"`
	Auctions []domain.AuctionRecord `json:"auctions"`
}

// KeysResponse represents the access keys held by an account
type KeysResponse struct {
	Account    string `json:"account"`
	Collection string `json:"collection,omitempty"`
	ownership.KeyStatus
}

// MediaResponse represents a resolved media reference
type MediaResponse = media.Media
