package market

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abstrakts/storefront-core/internal/domain"
)

// Kind names a user intent
type Kind string

const (
	KindBuy              Kind = "buy"
	KindSell             Kind = "sell"
	KindAuction          Kind = "auction"
	KindCancelSale       Kind = "cancel_sale"
	KindClaimBalance     Kind = "claim_balance"
	KindClaimAuction     Kind = "claim_auction"
	KindTransfer         Kind = "transfer"
	KindUpdateStorefront Kind = "update_storefront"
	KindSpecialMint      Kind = "special_mint"
)

// Intent is a user action the builder turns into contract calls
type Intent interface {
	Kind() Kind
}

// SelectedAsset is an asset picked for listing.
// SaleID is set when the asset is already on sale.
type SelectedAsset struct {
	AssetID string `json:"asset_id" binding:"required"`
	SaleID  string `json:"sale_id,omitempty"`
}

// Buy purchases one sale
type Buy struct {
	Price      decimal.Decimal `json:"price"`
	Token      string          `json:"token" binding:"required"`
	SaleID     string          `json:"sale_id" binding:"required"`
	Collection string          `json:"collection,omitempty"`
	AssetID    string          `json:"asset_id,omitempty"`
}

func (Buy) Kind() Kind { return KindBuy }

// Sell lists every selected asset as its own sale at the same price
type Sell struct {
	Assets []SelectedAsset `json:"assets" binding:"dive"`
	Price  decimal.Decimal `json:"price"`
	Token  string          `json:"token" binding:"required"`
}

func (Sell) Kind() Kind { return KindSell }

// Auction puts every selected asset on its own auction.
// Duration travels as whole minutes on the wire.
type Auction struct {
	Assets   []SelectedAsset `json:"assets" binding:"dive"`
	Price    decimal.Decimal `json:"price"`
	Token    string          `json:"token" binding:"required"`
	Duration time.Duration   `json:"-"`
}

func (Auction) Kind() Kind { return KindAuction }

type auctionWire struct {
	Assets          []SelectedAsset `json:"assets"`
	Price           decimal.Decimal `json:"price"`
	Token           string          `json:"token"`
	DurationMinutes int64           `json:"duration_minutes"`
}

func (a Auction) MarshalJSON() ([]byte, error) {
	return json.Marshal(auctionWire{
		Assets:          a.Assets,
		Price:           a.Price,
		Token:           a.Token,
		DurationMinutes: int64(a.Duration / time.Minute),
	})
}

func (a *Auction) UnmarshalJSON(data []byte) error {
	var wire auctionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	a.Assets = wire.Assets
	a.Price = wire.Price
	a.Token = wire.Token
	a.Duration = time.Duration(wire.DurationMinutes) * time.Minute
	return nil
}

// CancelSale withdraws sales from the market
type CancelSale struct {
	SaleIDs []string `json:"sale_ids"`
}

func (CancelSale) Kind() Kind { return KindCancelSale }

// ClaimBalance withdraws market balances back to the owner
type ClaimBalance struct {
	Balances []domain.Balance `json:"balances"`
}

func (ClaimBalance) Kind() Kind { return KindClaimBalance }

// ClaimAuction takes back the assets of auctions that ended without bids
type ClaimAuction struct {
	AuctionIDs []string `json:"auction_ids"`
}

func (ClaimAuction) Kind() Kind { return KindClaimAuction }

// Transfer sends a fungible token to another account
type Transfer struct {
	To       string          `json:"to" binding:"required,eosname"`
	Quantity decimal.Decimal `json:"quantity"`
	Token    string          `json:"token" binding:"required"`
	Memo     string          `json:"memo"`
}

func (Transfer) Kind() Kind { return KindTransfer }

// UpdateStorefront replaces the storefront settings of the actor.
// Known keys missing from Values or left empty are removed.
type UpdateStorefront struct {
	Values map[string]string `json:"values"`
}

func (UpdateStorefront) Kind() Kind { return KindUpdateStorefront }

// AttributeEntry is one typed template attribute, Value is [type, value]
type AttributeEntry struct {
	Key   string        `json:"key"`
	Value []interface{} `json:"value"`
}

// SpecialMint creates a template and mints its first asset through the special mint contract
type SpecialMint struct {
	Collection        string           `json:"collection" binding:"required"`
	Schema            string           `json:"schema" binding:"required"`
	AuthorizedCreator string           `json:"authorized_creator"`
	Transferable      bool             `json:"transferable"`
	Burnable          bool             `json:"burnable"`
	MaxSupply         int64            `json:"max_supply"`
	ImmutableData     []AttributeEntry `json:"immutable_data"`
}

func (SpecialMint) Kind() Kind { return KindSpecialMint }

// NewIntent returns an empty intent of kind, ready to be decoded into
func NewIntent(kind Kind) (Intent, error) {
	switch kind {
	case KindBuy:
		return &Buy{}, nil
	case KindSell:
		return &Sell{}, nil
	case KindAuction:
		return &Auction{}, nil
	case KindCancelSale:
		return &CancelSale{}, nil
	case KindClaimBalance:
		return &ClaimBalance{}, nil
	case KindClaimAuction:
		return &ClaimAuction{}, nil
	case KindTransfer:
		return &Transfer{}, nil
	case KindUpdateStorefront:
		return &UpdateStorefront{}, nil
	case KindSpecialMint:
		return &SpecialMint{}, nil
	default:
		return nil, fmt.Errorf("unsupported intent kind %q", kind)
	}
}
