package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/media"
	"github.com/abstrakts/storefront-core/internal/providers/atomic"
)

const (
	// DEFAULT_SHOWCASE_LIMIT is the number of listings fetched per showcase
	DEFAULT_SHOWCASE_LIMIT = 3
	// MAX_SHOWCASES is the number of storefront collection slots
	MAX_SHOWCASES = 3
)

// Filter selects the sales to aggregate
type Filter struct {
	ChainKey       domain.ChainKey
	CollectionName string
	Seller         string
	// MaxLimit is the page size, DEFAULT_PAGE_LIMIT when not positive
	MaxLimit int
	// Fast fetches a single page. The result is a preview, not the full inventory.
	Fast bool
}

// SalePrice is the buy prefill of an asset taken from its newest active sale
type SalePrice struct {
	Price      string `json:"price"`
	Token      string `json:"token"`
	SaleID     string `json:"saleid"`
	Collection string `json:"collection"`
	AssetID    string `json:"asset_id"`
}

// Aggregator stitches paged indexer listings into flat views
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/inventory_aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// FetchSalesInventory walks the listed sales page by page and flattens them.
	// Failures end the walk; whatever was accumulated is returned.
	FetchSalesInventory(ctx context.Context, filter Filter) []domain.ListedAsset

	// Showcases fetches a preview of each storefront collection concurrently
	Showcases(ctx context.Context, req ShowcaseRequest) []Showcase

	// SalePrice returns the newest active sale of an asset, ErrNotFound when none
	SalePrice(ctx context.Context, chainKey domain.ChainKey, assetID string) (*SalePrice, error)

	// ClaimableAuctions returns the seller's auctions that ended without a sale
	ClaimableAuctions(ctx context.Context, chainKey domain.ChainKey, seller string) ([]domain.AuctionRecord, error)
}

type aggregator struct {
	atomicClient atomic.Client
	media        media.Resolver
	pool         pond.Pool
	pageLimit    int
}

// NewAggregator creates an aggregator. pool runs the showcase fan-out.
func NewAggregator(atomicClient atomic.Client, mediaResolver media.Resolver, pool pond.Pool, pageLimit int) Aggregator {
	if pageLimit <= 0 {
		pageLimit = domain.DEFAULT_PAGE_LIMIT
	}
	if pool == nil {
		pool = pond.NewPool(MAX_SHOWCASES)
	}
	return &aggregator{
		atomicClient: atomicClient,
		media:        mediaResolver,
		pool:         pool,
		pageLimit:    pageLimit,
	}
}

func (a *aggregator) FetchSalesInventory(ctx context.Context, filter Filter) []domain.ListedAsset {
	limit := filter.MaxLimit
	if limit <= 0 {
		limit = a.pageLimit
	}

	all := []domain.ListedAsset{}
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			logger.WarnCtx(ctx, "Sales inventory walk canceled", zap.Int("page", page), zap.Error(err))
			return all
		}

		result, err := a.atomicClient.ListSales(ctx, filter.ChainKey, atomic.SalesQuery{
			State:          strconv.Itoa(domain.SALE_STATE_LISTED),
			CollectionName: filter.CollectionName,
			Seller:         filter.Seller,
			Page:           page,
			Limit:          limit,
		})
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to fetch sales page: %w", err),
				zap.Int("page", page),
				zap.String("collection", filter.CollectionName),
				zap.String("seller", filter.Seller),
				zap.Int("accumulated", len(all)))
			return all
		}
		if result == nil {
			return all
		}

		for _, sale := range result.Sales {
			listed, err := Flatten(sale)
			if err != nil {
				logger.WarnCtx(ctx, "Skipping malformed sale", zap.String("sale_id", sale.SaleID), zap.Error(err))
				continue
			}
			all = append(all, listed...)
		}

		if filter.Fast || result.Len() == 0 {
			return all
		}
	}
}

func (a *aggregator) SalePrice(ctx context.Context, chainKey domain.ChainKey, assetID string) (*SalePrice, error) {
	result, err := a.atomicClient.ListSales(ctx, chainKey, atomic.SalesQuery{
		State:   strconv.Itoa(domain.SALE_STATE_LISTED),
		AssetID: assetID,
		Page:    1,
		Limit:   domain.DEFAULT_PAGE_LIMIT,
		Order:   "desc",
		Sort:    "created",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales of asset %s: %w", assetID, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: no active sale for asset %s", domain.ErrNotFound, assetID)
	}

	for _, sale := range result.Sales {
		listed, err := Flatten(sale)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping malformed sale", zap.String("sale_id", sale.SaleID), zap.Error(err))
			continue
		}
		if len(listed) == 0 {
			continue
		}
		return &SalePrice{
			Price:      listed[0].ListingPrice.String(),
			Token:      listed[0].ListingSymbol,
			SaleID:     sale.SaleID,
			Collection: listed[0].Collection.CollectionName,
			AssetID:    assetID,
		}, nil
	}

	return nil, fmt.Errorf("%w: no active sale for asset %s", domain.ErrNotFound, assetID)
}

func (a *aggregator) ClaimableAuctions(ctx context.Context, chainKey domain.ChainKey, seller string) ([]domain.AuctionRecord, error) {
	if seller == "" {
		return nil, errors.New("seller is required")
	}

	auctions, err := a.atomicClient.ListAuctions(ctx, chainKey, atomic.AuctionsQuery{
		State:  fmt.Sprintf("%d,%d", domain.AUCTION_STATE_SOLD, domain.AUCTION_STATE_INVALID),
		Seller: seller,
		Page:   1,
		Limit:  domain.DEFAULT_PAGE_LIMIT,
		Order:  "desc",
		Sort:   "created",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch auctions of %s: %w", seller, err)
	}

	claimable := []domain.AuctionRecord{}
	for _, auction := range auctions {
		if auction.State == domain.AUCTION_STATE_INVALID {
			claimable = append(claimable, auction)
		}
	}
	return claimable, nil
}
