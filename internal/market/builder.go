package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/abstrakts/storefront-core/internal/config"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/registry"
)

const (
	MEMO_DEPOSIT = "deposit"
	MEMO_SALE    = "sale"
	MEMO_AUCTION = "auction"
	MEMO_ACCOUNT = "account"

	SPECIAL_MINT_FEE_TOKEN = "XUSDC"
)

// SPECIAL_MINT_FEE is the storage fee paid to the special mint contract
var SPECIAL_MINT_FEE = decimal.RequireFromString("0.01")

// StorefrontKeys are the settings a storefront can hold, in display order
var StorefrontKeys = []string{"collection1", "collection2", "collection3", "title", "description", "website"}

// TokenTransferData is the data of a fungible token transfer
type TokenTransferData struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo"`
}

// PurchaseSaleData is the data of atomicmarket::purchasesale
type PurchaseSaleData struct {
	Buyer                string `json:"buyer"`
	SaleID               string `json:"sale_id"`
	IntendedDelphiMedian string `json:"intended_delphi_median"`
	TakerMarketplace     string `json:"taker_marketplace"`
}

// CancelSaleData is the data of atomicmarket::cancelsale
type CancelSaleData struct {
	SaleID string `json:"sale_id"`
}

// AnnounceSaleData is the data of atomicmarket::announcesale
type AnnounceSaleData struct {
	Seller           string   `json:"seller"`
	AssetIDs         []string `json:"asset_ids"`
	ListingPrice     string   `json:"listing_price"`
	SettlementSymbol string   `json:"settlement_symbol"`
	MakerMarketplace string   `json:"maker_marketplace"`
}

// CreateOfferData is the data of atomicassets::createoffer
type CreateOfferData struct {
	Sender            string   `json:"sender"`
	Recipient         string   `json:"recipient"`
	SenderAssetIDs    []string `json:"sender_asset_ids"`
	RecipientAssetIDs []string `json:"recipient_asset_ids"`
	Memo              string   `json:"memo"`
}

// AnnounceAuctionData is the data of atomicmarket::announceauct
type AnnounceAuctionData struct {
	Seller           string   `json:"seller"`
	AssetIDs         []string `json:"asset_ids"`
	StartingBid      string   `json:"starting_bid"`
	Duration         int64    `json:"duration"`
	MakerMarketplace string   `json:"maker_marketplace"`
}

// AssetTransferData is the data of atomicassets::transfer
type AssetTransferData struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	AssetIDs []string `json:"asset_ids"`
	Memo     string   `json:"memo"`
}

// WithdrawData is the data of atomicmarket::withdraw
type WithdrawData struct {
	Owner           string `json:"owner"`
	TokenToWithdraw string `json:"token_to_withdraw"`
}

// CancelAuctionData is the data of atomicmarket::cancelauct
type CancelAuctionData struct {
	AuctionID string `json:"auction_id"`
}

// KeyValue is one storefront setting
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpdateValuesData is the data of storefront::updatevalues
type UpdateValuesData struct {
	Actor  string     `json:"actor"`
	Values []KeyValue `json:"values"`
}

// RemoveKeysData is the data of storefront::removekeys
type RemoveKeysData struct {
	Actor string   `json:"actor"`
	Keys  []string `json:"keys"`
}

// AddCollectionAuthData is the data of atomicassets::addcolauth
type AddCollectionAuthData struct {
	CollectionName string `json:"collection_name"`
	AccountToAdd   string `json:"account_to_add"`
}

// RemoveCollectionAuthData is the data of atomicassets::remcolauth
type RemoveCollectionAuthData struct {
	CollectionName  string `json:"collection_name"`
	AccountToRemove string `json:"account_to_remove"`
}

// InitStorageData is the data of specialmint::initstorage
type InitStorageData struct {
	Account string `json:"account"`
}

// CreateTemplateData is the data of atomicassets::createtempl
type CreateTemplateData struct {
	AuthorizedCreator string           `json:"authorized_creator"`
	CollectionName    string           `json:"collection_name"`
	SchemaName        string           `json:"schema_name"`
	Transferable      bool             `json:"transferable"`
	Burnable          bool             `json:"burnable"`
	MaxSupply         int64            `json:"max_supply"`
	ImmutableData     []AttributeEntry `json:"immutable_data"`
}

// MintLastTemplateData is the data of specialmint::mintlasttemp
type MintLastTemplateData struct {
	Creator        string           `json:"creator"`
	CollectionName string           `json:"collection_name"`
	SchemaName     string           `json:"schema_name"`
	NewAssetOwner  string           `json:"new_asset_owner"`
	ImmutableData  []AttributeEntry `json:"immutable_data"`
	MutableData    []AttributeEntry `json:"mutable_data"`
	Count          string           `json:"count"`
}

// Builder turns intents into ordered contract calls
type Builder interface {
	// Build returns the actions of intent authorized by auth, in execution order
	Build(auth domain.Authorization, intent Intent) ([]domain.Action, error)
}

type builder struct {
	tokens       registry.TokenRegistry
	atomicMarket string
	atomicAssets string
	marketplace  string
}

// NewBuilder creates a builder for the configured market contracts
func NewBuilder(tokens registry.TokenRegistry, cfg config.MarketConfig) Builder {
	b := &builder{
		tokens:       tokens,
		atomicMarket: cfg.AtomicMarketContract,
		atomicAssets: cfg.AtomicAssetsContract,
		marketplace:  cfg.Marketplace,
	}
	if b.atomicMarket == "" {
		b.atomicMarket = domain.ATOMIC_MARKET_CONTRACT
	}
	if b.atomicAssets == "" {
		b.atomicAssets = domain.ATOMIC_ASSETS_CONTRACT
	}
	if b.marketplace == "" {
		b.marketplace = domain.DEFAULT_MARKETPLACE
	}
	return b
}

func (b *builder) Build(auth domain.Authorization, intent Intent) ([]domain.Action, error) {
	if auth.Actor == "" {
		return nil, domain.ErrNotLoggedIn
	}
	if auth.Permission == "" {
		auth.Permission = domain.ACTIVE_PERMISSION
	}

	var actions []domain.Action
	var err error
	switch in := Unwrap(intent).(type) {
	case Buy:
		actions, err = b.buy(auth, in)
	case Sell:
		actions, err = b.sell(auth, in)
	case Auction:
		actions, err = b.auction(auth, in)
	case CancelSale:
		actions = b.cancelSales(auth, in.SaleIDs)
	case ClaimBalance:
		actions = b.claimBalances(auth, in)
	case ClaimAuction:
		actions = b.claimAuctions(auth, in)
	case Transfer:
		actions, err = b.transfer(auth, in)
	case UpdateStorefront:
		actions = b.updateStorefront(auth, in)
	case SpecialMint:
		actions, err = b.specialMint(auth, in)
	default:
		return nil, fmt.Errorf("unsupported intent %T", intent)
	}
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, domain.ErrNoActions
	}
	return actions, nil
}

// Unwrap returns the value form of an intent decoded through a pointer
func Unwrap(intent Intent) Intent {
	switch in := intent.(type) {
	case *Buy:
		return *in
	case *Sell:
		return *in
	case *Auction:
		return *in
	case *CancelSale:
		return *in
	case *ClaimBalance:
		return *in
	case *ClaimAuction:
		return *in
	case *Transfer:
		return *in
	case *UpdateStorefront:
		return *in
	case *SpecialMint:
		return *in
	default:
		return intent
	}
}

func (b *builder) action(account, name string, auth domain.Authorization, data interface{}) domain.Action {
	return domain.Action{
		Account:       account,
		Name:          name,
		Authorization: []domain.Authorization{auth},
		Data:          data,
	}
}

// quantity formats a positive amount of a registered token
// quantity checks amount at the token's precision, sub-unit amounts would be sent as zero
func (b *builder) quantity(amount decimal.Decimal, symbol string) (registry.Token, string, error) {
	token, err := b.tokens.Lookup(symbol)
	if err != nil {
		return registry.Token{}, "", err
	}
	rounded := amount.Round(int32(token.Decimals))
	if !rounded.IsPositive() {
		return registry.Token{}, "", fmt.Errorf("%w: %s %s must be greater than zero", domain.ErrInvalidPrice, amount.String(), token.Symbol)
	}
	quantity, err := b.tokens.FormatQuantity(rounded, token.Symbol)
	if err != nil {
		return registry.Token{}, "", err
	}
	return token, quantity, nil
}

func (b *builder) buy(auth domain.Authorization, in Buy) ([]domain.Action, error) {
	if in.SaleID == "" {
		return nil, fmt.Errorf("%w: sale_id is required", domain.ErrNoActions)
	}
	token, quantity, err := b.quantity(in.Price, in.Token)
	if err != nil {
		return nil, err
	}

	return []domain.Action{
		b.action(token.Contract, "transfer", auth, TokenTransferData{
			From:     auth.Actor,
			To:       b.atomicMarket,
			Quantity: quantity,
			Memo:     MEMO_DEPOSIT,
		}),
		b.action(b.atomicMarket, "purchasesale", auth, PurchaseSaleData{
			Buyer:                auth.Actor,
			SaleID:               in.SaleID,
			IntendedDelphiMedian: "0",
			TakerMarketplace:     b.marketplace,
		}),
	}, nil
}

// relistCancels cancels the current sale of every selected asset that has one
// uniqueAssets drops repeated asset ids, keeping the first selection of each
func uniqueAssets(assets []SelectedAsset) []SelectedAsset {
	out := make([]SelectedAsset, 0, len(assets))
	seen := make(map[string]bool, len(assets))
	for _, asset := range assets {
		if asset.AssetID == "" || seen[asset.AssetID] {
			continue
		}
		seen[asset.AssetID] = true
		out = append(out, asset)
	}
	return out
}

func (b *builder) relistCancels(auth domain.Authorization, assets []SelectedAsset) []domain.Action {
	saleIDs := make([]string, 0, len(assets))
	for _, asset := range assets {
		if asset.SaleID != "" {
			saleIDs = append(saleIDs, asset.SaleID)
		}
	}
	return b.cancelSales(auth, saleIDs)
}

func (b *builder) sell(auth domain.Authorization, in Sell) ([]domain.Action, error) {
	in.Assets = uniqueAssets(in.Assets)
	if len(in.Assets) == 0 {
		return nil, domain.ErrNoActions
	}
	_, listingPrice, err := b.quantity(in.Price, in.Token)
	if err != nil {
		return nil, err
	}
	settlementSymbol, err := b.tokens.SettlementSymbol(in.Token)
	if err != nil {
		return nil, err
	}

	actions := b.relistCancels(auth, in.Assets)
	for _, asset := range in.Assets {
		actions = append(actions,
			b.action(b.atomicMarket, "announcesale", auth, AnnounceSaleData{
				Seller:           auth.Actor,
				AssetIDs:         []string{asset.AssetID},
				ListingPrice:     listingPrice,
				SettlementSymbol: settlementSymbol,
				MakerMarketplace: b.marketplace,
			}),
			b.action(b.atomicAssets, "createoffer", auth, CreateOfferData{
				Sender:            auth.Actor,
				Recipient:         b.atomicMarket,
				SenderAssetIDs:    []string{asset.AssetID},
				RecipientAssetIDs: []string{},
				Memo:              MEMO_SALE,
			}),
		)
	}
	return actions, nil
}

func (b *builder) auction(auth domain.Authorization, in Auction) ([]domain.Action, error) {
	in.Assets = uniqueAssets(in.Assets)
	if len(in.Assets) == 0 {
		return nil, domain.ErrNoActions
	}
	if in.Duration < domain.MIN_AUCTION_DURATION {
		return nil, fmt.Errorf("%w: %s is shorter than %s", domain.ErrInvalidDuration, in.Duration, domain.MIN_AUCTION_DURATION)
	}
	_, startingBid, err := b.quantity(in.Price, in.Token)
	if err != nil {
		return nil, err
	}

	actions := b.relistCancels(auth, in.Assets)
	for _, asset := range in.Assets {
		actions = append(actions,
			b.action(b.atomicMarket, "announceauct", auth, AnnounceAuctionData{
				Seller:           auth.Actor,
				AssetIDs:         []string{asset.AssetID},
				StartingBid:      startingBid,
				Duration:         int64(in.Duration.Seconds()),
				MakerMarketplace: b.marketplace,
			}),
			b.action(b.atomicAssets, "transfer", auth, AssetTransferData{
				From:     auth.Actor,
				To:       b.atomicMarket,
				AssetIDs: []string{asset.AssetID},
				Memo:     MEMO_AUCTION,
			}),
		)
	}
	return actions, nil
}

func (b *builder) cancelSales(auth domain.Authorization, saleIDs []string) []domain.Action {
	actions := make([]domain.Action, 0, len(saleIDs))
	seen := make(map[string]bool, len(saleIDs))
	for _, saleID := range saleIDs {
		if saleID == "" || seen[saleID] {
			continue
		}
		seen[saleID] = true
		actions = append(actions, b.action(b.atomicMarket, "cancelsale", auth, CancelSaleData{SaleID: saleID}))
	}
	return actions
}

func (b *builder) claimBalances(auth domain.Authorization, in ClaimBalance) []domain.Action {
	actions := make([]domain.Action, 0, len(in.Balances))
	for _, balance := range in.Balances {
		if balance.Value == "" || balance.Token == "" {
			continue
		}
		actions = append(actions, b.action(b.atomicMarket, "withdraw", auth, WithdrawData{
			Owner:           auth.Actor,
			TokenToWithdraw: balance.Quantity(),
		}))
	}
	return actions
}

func (b *builder) claimAuctions(auth domain.Authorization, in ClaimAuction) []domain.Action {
	actions := make([]domain.Action, 0, len(in.AuctionIDs))
	for _, auctionID := range in.AuctionIDs {
		if auctionID == "" {
			continue
		}
		actions = append(actions, b.action(b.atomicMarket, "cancelauct", auth, CancelAuctionData{AuctionID: auctionID}))
	}
	return actions
}

func (b *builder) transfer(auth domain.Authorization, in Transfer) ([]domain.Action, error) {
	if in.To == "" {
		return nil, fmt.Errorf("%w: recipient is required", domain.ErrNoActions)
	}
	token, quantity, err := b.quantity(in.Quantity, in.Token)
	if err != nil {
		return nil, err
	}
	return []domain.Action{
		b.action(token.Contract, "transfer", auth, TokenTransferData{
			From:     auth.Actor,
			To:       in.To,
			Quantity: quantity,
			Memo:     in.Memo,
		}),
	}, nil
}

func (b *builder) updateStorefront(auth domain.Authorization, in UpdateStorefront) []domain.Action {
	values := []KeyValue{}
	for key, value := range in.Values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		values = append(values, KeyValue{Key: key, Value: value})
	}
	sort.Slice(values, func(i, j int) bool { return values[i].Key < values[j].Key })

	removed := []string{}
	for _, key := range StorefrontKeys {
		if strings.TrimSpace(in.Values[key]) == "" {
			removed = append(removed, key)
		}
	}

	var actions []domain.Action
	if len(values) > 0 {
		actions = append(actions, b.action(domain.STOREFRONT_CONTRACT, "updatevalues", auth, UpdateValuesData{
			Actor:  auth.Actor,
			Values: values,
		}))
	}
	if len(removed) > 0 {
		actions = append(actions, b.action(domain.STOREFRONT_CONTRACT, "removekeys", auth, RemoveKeysData{
			Actor: auth.Actor,
			Keys:  removed,
		}))
	}
	return actions
}

func (b *builder) specialMint(auth domain.Authorization, in SpecialMint) ([]domain.Action, error) {
	if in.Collection == "" || in.Schema == "" {
		return nil, fmt.Errorf("%w: collection and schema are required", domain.ErrNoActions)
	}
	token, fee, err := b.quantity(SPECIAL_MINT_FEE, SPECIAL_MINT_FEE_TOKEN)
	if err != nil {
		return nil, err
	}

	creator := in.AuthorizedCreator
	if creator == "" {
		creator = auth.Actor
	}
	immutableData := in.ImmutableData
	if immutableData == nil {
		immutableData = []AttributeEntry{}
	}

	return []domain.Action{
		b.action(b.atomicAssets, "addcolauth", auth, AddCollectionAuthData{
			CollectionName: in.Collection,
			AccountToAdd:   domain.SPECIAL_MINT_CONTRACT,
		}),
		b.action(token.Contract, "transfer", auth, TokenTransferData{
			From:     auth.Actor,
			To:       domain.SPECIAL_MINT_CONTRACT,
			Quantity: fee,
			Memo:     MEMO_ACCOUNT,
		}),
		b.action(domain.SPECIAL_MINT_CONTRACT, "initstorage", auth, InitStorageData{Account: auth.Actor}),
		b.action(b.atomicAssets, "createtempl", auth, CreateTemplateData{
			AuthorizedCreator: creator,
			CollectionName:    in.Collection,
			SchemaName:        in.Schema,
			Transferable:      in.Transferable,
			Burnable:          in.Burnable,
			MaxSupply:         in.MaxSupply,
			ImmutableData:     immutableData,
		}),
		b.action(domain.SPECIAL_MINT_CONTRACT, "mintlasttemp", auth, MintLastTemplateData{
			Creator:        auth.Actor,
			CollectionName: in.Collection,
			SchemaName:     in.Schema,
			NewAssetOwner:  auth.Actor,
			ImmutableData:  []AttributeEntry{},
			MutableData:    []AttributeEntry{},
			Count:          "1",
		}),
		b.action(b.atomicAssets, "remcolauth", auth, RemoveCollectionAuthData{
			CollectionName:  in.Collection,
			AccountToRemove: domain.SPECIAL_MINT_CONTRACT,
		}),
	}, nil
}
