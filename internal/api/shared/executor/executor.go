package executor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/api/shared/dto"
	apierrors "github.com/abstrakts/storefront-core/internal/api/shared/errors"
	"github.com/abstrakts/storefront-core/internal/api/shared/validator"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/inventory"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/market"
	"github.com/abstrakts/storefront-core/internal/media"
	"github.com/abstrakts/storefront-core/internal/messaging"
	"github.com/abstrakts/storefront-core/internal/ownership"
	"github.com/abstrakts/storefront-core/internal/providers/atomic"
	"github.com/abstrakts/storefront-core/internal/providers/chainrpc"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListSales returns the flattened active listings matching the filters
	ListSales(ctx context.Context, chainKey domain.ChainKey, collection string, seller string, limit int, fast bool) (*dto.SalesResponse, error)

	// ListShowcases returns a preview of each collection
	ListShowcases(ctx context.Context, chainKey domain.ChainKey, collections []string, seller string, fallback bool) (*dto.ShowcasesResponse, error)

	// GetSalePrice returns the buy prefill of an asset
	GetSalePrice(ctx context.Context, chainKey domain.ChainKey, assetID string) (*inventory.SalePrice, error)

	// GetCollection returns a collection by name
	GetCollection(ctx context.Context, chainKey domain.ChainKey, collectionName string) (*dto.CollectionResponse, error)

	// GetProfile returns the public profile of an account
	GetProfile(ctx context.Context, chainKey domain.ChainKey, account string) (*dto.ProfileResponse, error)

	// GetBalances returns the withdrawable market balances of an account
	GetBalances(ctx context.Context, chainKey domain.ChainKey, account string) (*dto.BalancesResponse, error)

	// GetStorefront returns the storefront settings of an account with its showcases
	GetStorefront(ctx context.Context, chainKey domain.ChainKey, account string) (*dto.StorefrontResponse, error)

	// GetClaimableAuctions returns the auctions a seller can take back
	GetClaimableAuctions(ctx context.Context, chainKey domain.ChainKey, account string) (*dto.ClaimableAuctionsResponse, error)

	// GetKeys returns the access keys held by an account
	GetKeys(ctx context.Context, chainKey domain.ChainKey, account string, collection string) (*dto.KeysResponse, error)

	// GetMedia resolves a media reference to a working gateway URL and its MIME type
	GetMedia(ctx context.Context, ref string) (*dto.MediaResponse, error)

	// BuildTransaction returns the actions of an intent without signing them
	BuildTransaction(ctx context.Context, chainKey domain.ChainKey, req *dto.TransactionRequest) (*market.Outcome, error)

	// SubmitTransaction builds an intent and submits it on behalf of actor
	SubmitTransaction(ctx context.Context, chainKey domain.ChainKey, actor string, req *dto.TransactionRequest) (*market.Outcome, error)
}

type executor struct {
	aggregator     inventory.Aggregator
	atomicClient   atomic.Client
	chainRPCClient chainrpc.Client
	mediaResolver  media.Resolver
	checker        ownership.Checker
	composer       market.Composer
	publisher      messaging.Publisher
	clock          adapter.Clock
	json           adapter.JSON
}

func NewExecutor(
	aggregator inventory.Aggregator,
	atomicClient atomic.Client,
	chainRPCClient chainrpc.Client,
	mediaResolver media.Resolver,
	checker ownership.Checker,
	composer market.Composer,
	publisher messaging.Publisher,
	clock adapter.Clock,
	json adapter.JSON,
) Executor {
	return &executor{
		aggregator:     aggregator,
		atomicClient:   atomicClient,
		chainRPCClient: chainRPCClient,
		mediaResolver:  mediaResolver,
		checker:        checker,
		composer:       composer,
		publisher:      publisher,
		clock:          clock,
		json:           json,
	}
}

func (e *executor) ListSales(ctx context.Context, chainKey domain.ChainKey, collection string, seller string, limit int, fast bool) (*dto.SalesResponse, error) {
	items := e.aggregator.FetchSalesInventory(ctx, inventory.Filter{
		ChainKey:       chainKey,
		CollectionName: collection,
		Seller:         seller,
		MaxLimit:       limit,
		Fast:           fast,
	})

	return &dto.SalesResponse{
		Items: items,
		Total: len(items),
		Fast:  fast,
	}, nil
}

func (e *executor) ListShowcases(ctx context.Context, chainKey domain.ChainKey, collections []string, seller string, fallback bool) (*dto.ShowcasesResponse, error) {
	showcases := e.aggregator.Showcases(ctx, inventory.ShowcaseRequest{
		ChainKey:              chainKey,
		Collections:           collections,
		Seller:                seller,
		FallbackWithoutSeller: fallback,
	})
	return &dto.ShowcasesResponse{Showcases: showcases}, nil
}

func (e *executor) GetSalePrice(ctx context.Context, chainKey domain.ChainKey, assetID string) (*inventory.SalePrice, error) {
	price, err := e.aggregator.SalePrice(ctx, chainKey, assetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apierrors.NewNotFoundError("Asset is not on sale", assetID)
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get sale price: %v", err))
	}
	return price, nil
}

func (e *executor) GetCollection(ctx context.Context, chainKey domain.ChainKey, collectionName string) (*dto.CollectionResponse, error) {
	collection, err := e.atomicClient.GetCollection(ctx, chainKey, collectionName)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get collection: %v", err))
	}
	if collection == nil {
		return nil, apierrors.NewNotFoundError("Collection not found", collectionName)
	}

	return &dto.CollectionResponse{
		CollectionRecord: collection,
		ImageURL:         e.mediaResolver.URL(collection.Img),
	}, nil
}

func (e *executor) GetProfile(ctx context.Context, chainKey domain.ChainKey, account string) (*dto.ProfileResponse, error) {
	info, err := e.chainRPCClient.GetAccount(ctx, chainKey, account)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get account: %v", err))
	}
	if info == nil {
		return nil, apierrors.NewNotFoundError("Account not found", account)
	}

	profile := &dto.ProfileResponse{
		Account: info.AccountName,
		Created: info.Created,
		Links:   map[string]string{},
	}

	userInfo, err := e.chainRPCClient.GetUsersInfo(ctx, chainKey, account)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get user info: %v", err))
	}
	if userInfo != nil {
		profile.Name = userInfo.Name
		profile.Avatar = userInfo.Avatar
		profile.Verified = userInfo.Verified == 1
	}

	links, err := e.chainRPCClient.GetProtonLink(ctx, chainKey, account)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get links: %v", err))
	}
	if links != nil {
		for _, kv := range links.Values {
			profile.Links[kv.Key] = kv.Value
		}
	}

	return profile, nil
}

func (e *executor) GetBalances(ctx context.Context, chainKey domain.ChainKey, account string) (*dto.BalancesResponse, error) {
	balances, err := e.chainRPCClient.GetMarketBalances(ctx, chainKey, account)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get balances: %v", err))
	}
	return &dto.BalancesResponse{Account: account, Balances: balances}, nil
}

func (e *executor) GetStorefront(ctx context.Context, chainKey domain.ChainKey, account string) (*dto.StorefrontResponse, error) {
	row, err := e.chainRPCClient.GetStorefront(ctx, chainKey, account)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get storefront: %v", err))
	}

	response := &dto.StorefrontResponse{
		Account:   account,
		Values:    map[string]string{},
		Showcases: []inventory.Showcase{},
	}
	if row == nil {
		return response, nil
	}

	for _, kv := range row.Values {
		response.Values[kv.Key] = kv.Value
	}

	collections := []string{row.Value("collection1"), row.Value("collection2"), row.Value("collection3")}
	response.Showcases = e.aggregator.Showcases(ctx, inventory.ShowcaseRequest{
		ChainKey:              chainKey,
		Collections:           collections,
		Seller:                account,
		FallbackWithoutSeller: true,
	})
	return response, nil
}

func (e *executor) GetClaimableAuctions(ctx context.Context, chainKey domain.ChainKey, account string) (*dto.ClaimableAuctionsResponse, error) {
	auctions, err := e.aggregator.ClaimableAuctions(ctx, chainKey, account)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to get auctions: %v", err))
	}
	return &dto.ClaimableAuctionsResponse{Account: account, Auctions: auctions}, nil
}

func (e *executor) GetKeys(ctx context.Context, chainKey domain.ChainKey, account string, collection string) (*dto.KeysResponse, error) {
	return &dto.KeysResponse{
		Account:    account,
		Collection: collection,
		KeyStatus:  e.checker.Keys(ctx, chainKey, account, collection),
	}, nil
}

func (e *executor) GetMedia(ctx context.Context, ref string) (*dto.MediaResponse, error) {
	if _, ok := media.CID(ref); !ok {
		return nil, apierrors.NewBadRequestError("Invalid IPFS reference", ref)
	}

	resolved, err := e.mediaResolver.Detect(ctx, ref)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to resolve media: %v", err))
	}
	return resolved, nil
}

func (e *executor) BuildTransaction(ctx context.Context, chainKey domain.ChainKey, req *dto.TransactionRequest) (*market.Outcome, error) {
	intent, err := e.decodeIntent(req)
	if err != nil {
		return nil, err
	}

	outcome, err := e.composer.Build(ctx, req.Session(chainKey, req.Actor), chainKey, intent)
	if err != nil {
		return nil, transactionError(err)
	}
	return outcome, nil
}

func (e *executor) SubmitTransaction(ctx context.Context, chainKey domain.ChainKey, actor string, req *dto.TransactionRequest) (*market.Outcome, error) {
	if req.Actor != "" && req.Actor != actor {
		return nil, apierrors.NewForbiddenError("Actor does not match the authenticated account", req.Actor)
	}

	intent, err := e.decodeIntent(req)
	if err != nil {
		return nil, err
	}

	outcome, err := e.composer.Execute(ctx, req.Session(chainKey, actor), chainKey, intent)
	if err != nil {
		return nil, transactionError(err)
	}

	// The chain already accepted the transaction, a broker failure is only logged
	event := e.marketEvent(chainKey, actor, intent, outcome)
	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish market event",
			zap.Error(err),
			zap.String("submission_id", outcome.SubmissionID))
	}

	return outcome, nil
}

// marketEvent describes a submitted outcome for downstream consumers
func (e *executor) marketEvent(chainKey domain.ChainKey, actor string, intent market.Intent, outcome *market.Outcome) *domain.MarketEvent {
	event := &domain.MarketEvent{
		ID:          outcome.SubmissionID,
		ChainKey:    chainKey,
		Kind:        string(outcome.Kind),
		Actor:       actor,
		Fingerprint: outcome.Fingerprint,
		Timestamp:   e.clock.Now(),
	}
	if outcome.Receipt != nil {
		event.TransactionID = outcome.Receipt.TransactionID
	}

	switch in := market.Unwrap(intent).(type) {
	case market.Buy:
		event.Collection = in.Collection
		event.AssetIDs = []string{in.AssetID}
	case market.Sell:
		event.AssetIDs = selectedAssetIDs(in.Assets)
	case market.Auction:
		event.AssetIDs = selectedAssetIDs(in.Assets)
	case market.SpecialMint:
		event.Collection = in.Collection
	}
	return event
}

func selectedAssetIDs(assets []market.SelectedAsset) []string {
	ids := make([]string, 0, len(assets))
	for _, asset := range assets {
		ids = append(ids, asset.AssetID)
	}
	return ids
}

// decodeIntent decodes and validates the intent payload of req
func (e *executor) decodeIntent(req *dto.TransactionRequest) (market.Intent, error) {
	intent, err := market.NewIntent(req.Kind)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if err := e.json.Unmarshal(req.Intent, intent); err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid intent: %v", err))
	}
	if err := validator.Struct(intent); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	return intent, nil
}

// transactionError maps composer errors to API errors
func transactionError(err error) error {
	if subErr, ok := market.AsSubmissionError(err); ok {
		return apierrors.NewTransactionError(subErr.Failure.Message, subErr.Failure.Details)
	}

	switch {
	case errors.Is(err, domain.ErrNotLoggedIn):
		return apierrors.NewUnauthorizedError("Not logged in")
	case errors.Is(err, domain.ErrWrongChain):
		return apierrors.NewBadRequestError("Wallet is connected to another chain", err.Error())
	case errors.Is(err, domain.ErrUnknownChain):
		return apierrors.NewNotFoundError("Unknown chain", err.Error())
	case errors.Is(err, domain.ErrUnknownToken),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrNoActions):
		return apierrors.NewValidationError(err.Error())
	default:
		return apierrors.NewInternalError("Failed to build transaction", err.Error())
	}
}
