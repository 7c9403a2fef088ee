package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ChainKey identifies a configured network (e.g. "xprnetwork")
type ChainKey string

// Price is an on-chain amount scaled by 10^TokenPrecision
type Price struct {
	TokenContract  string `json:"token_contract"`
	TokenSymbol    string `json:"token_symbol"`
	TokenPrecision int    `json:"token_precision"`
	Amount         string `json:"amount"`
}

// Display returns amount / 10^precision as an exact decimal
func (p Price) Display() (decimal.Decimal, error) {
	if p.TokenPrecision < 0 {
		return decimal.Zero, fmt.Errorf("negative token precision %d", p.TokenPrecision)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(p.Amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price amount %q: %w", p.Amount, err)
	}
	return amount.Shift(int32(-p.TokenPrecision)), nil
}

// CollectionRef is the collection summary embedded in indexer records
type CollectionRef struct {
	CollectionName string `json:"collection_name"`
	Name           string `json:"name"`
	Img            string `json:"img"`
	Author         string `json:"author"`
}

// TemplateRef is the template summary embedded in indexer assets
type TemplateRef struct {
	TemplateID    string                 `json:"template_id"`
	ImmutableData map[string]interface{} `json:"immutable_data"`
}

// AssetRecord is the read-only asset projection returned by the indexer
type AssetRecord struct {
	AssetID       string                 `json:"asset_id"`
	Owner         string                 `json:"owner"`
	Name          string                 `json:"name"`
	Collection    CollectionRef          `json:"collection"`
	Template      *TemplateRef           `json:"template,omitempty"`
	MutableData   map[string]interface{} `json:"mutable_data,omitempty"`
	ImmutableData map[string]interface{} `json:"immutable_data,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
}

// StringData returns a string attribute from the merged data map
func (a AssetRecord) StringData(key string) string {
	if v, ok := a.Data[key].(string); ok {
		return v
	}
	return ""
}

// SaleRecord is an AtomicMarket sale as returned by the indexer
type SaleRecord struct {
	SaleID        string        `json:"sale_id"`
	Seller        string        `json:"seller"`
	Buyer         *string       `json:"buyer"`
	State         int           `json:"state"`
	Price         Price         `json:"price"`
	ListingPrice  string        `json:"listing_price"`
	ListingSymbol string        `json:"listing_symbol"`
	Assets        []AssetRecord `json:"assets"`
	Collection    CollectionRef `json:"collection"`
}

// AuctionRecord is an AtomicMarket auction as returned by the indexer
type AuctionRecord struct {
	AuctionID       string        `json:"auction_id"`
	Seller          string        `json:"seller"`
	Buyer           *string       `json:"buyer"`
	State           int           `json:"state"`
	ClaimedBySeller bool          `json:"claimed_by_seller"`
	ClaimedByBuyer  bool          `json:"claimed_by_buyer"`
	EndTime         string        `json:"end_time"`
	Price           Price         `json:"price"`
	Assets          []AssetRecord `json:"assets"`
	Collection      CollectionRef `json:"collection"`
}

// CollectionRecord is the collection detail returned by the indexer
type CollectionRecord struct {
	CollectionName     string                 `json:"collection_name"`
	Name               string                 `json:"name"`
	Img                string                 `json:"img"`
	Author             string                 `json:"author"`
	AllowNotify        bool                   `json:"allow_notify"`
	AuthorizedAccounts []string               `json:"authorized_accounts"`
	MarketFee          float64                `json:"market_fee"`
	Data               map[string]interface{} `json:"data"`
}

// ListedAsset is one asset of an active sale, flattened for display
type ListedAsset struct {
	AssetID       string                 `json:"asset_id"`
	SaleID        string                 `json:"sale_id"`
	ListingPrice  decimal.Decimal        `json:"listing_price"`
	ListingSymbol string                 `json:"listing_symbol"`
	Name          string                 `json:"name"`
	Data          map[string]interface{} `json:"data"`
	Owner         string                 `json:"owner"`
	Collection    CollectionRef          `json:"collection"`
}

// Balance is an amount owed to an account by the market contract
type Balance struct {
	Value string `json:"value"`
	Token string `json:"token"`
}

// Quantity renders the balance in chain asset notation ("1.0000 XPR")
func (b Balance) Quantity() string {
	return b.Value + " " + b.Token
}

// StringData returns a string attribute of the asset data
func (a ListedAsset) StringData(key string) string {
	if v, ok := a.Data[key].(string); ok {
		return v
	}
	return ""
}
