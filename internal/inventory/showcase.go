package inventory

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
)

// ShowcaseRequest selects the storefront collections to preview
type ShowcaseRequest struct {
	ChainKey domain.ChainKey
	// Collections are the storefront slots; empty names are dropped
	Collections []string
	Seller      string
	// FallbackWithoutSeller re-fetches a collection without the seller filter when it is empty
	FallbackWithoutSeller bool
	// Limit is the number of listings per showcase, DEFAULT_SHOWCASE_LIMIT when not positive
	Limit int
}

// ShowcaseItem is one listed asset with media of a showcase
type ShowcaseItem struct {
	Href       string `json:"href"`
	TokenID    string `json:"token_id"`
	TokenImage string `json:"token_image,omitempty"`
	TokenVideo string `json:"token_video,omitempty"`
}

// Showcase is the preview of one collection
type Showcase struct {
	Href          string         `json:"href"`
	Collection    string         `json:"collection"`
	Name          string         `json:"name"`
	Author        string         `json:"author"`
	AuthorImg     string         `json:"author_img,omitempty"`
	AuthorHref    string         `json:"author_href"`
	FeaturedImage string         `json:"featured_image,omitempty"`
	TotalItems    int            `json:"total_items"`
	PopularItems  []ShowcaseItem `json:"popular_items"`
}

func (a *aggregator) Showcases(ctx context.Context, req ShowcaseRequest) []Showcase {
	limit := req.Limit
	if limit <= 0 {
		limit = DEFAULT_SHOWCASE_LIMIT
	}

	collections := make([]string, 0, MAX_SHOWCASES)
	for _, name := range req.Collections {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if len(collections) == MAX_SHOWCASES {
			logger.WarnCtx(ctx, "Ignoring showcase beyond the storefront slots", zap.String("collection", name))
			continue
		}
		collections = append(collections, name)
	}

	// Each task writes its own slot so the join keeps the input order
	results := make([][]domain.ListedAsset, len(collections))
	group := a.pool.NewGroup()
	for i, name := range collections {
		group.Submit(func() {
			results[i] = a.fetchShowcase(ctx, req, name, limit)
		})
	}
	if err := group.Wait(); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("showcase fan-out failed: %w", err))
	}

	showcases := []Showcase{}
	for _, listed := range results {
		if len(listed) == 0 {
			continue
		}
		showcases = append(showcases, a.buildShowcase(req.ChainKey, listed))
	}
	return showcases
}

func (a *aggregator) fetchShowcase(ctx context.Context, req ShowcaseRequest, collection string, limit int) []domain.ListedAsset {
	listed := a.FetchSalesInventory(ctx, Filter{
		ChainKey:       req.ChainKey,
		CollectionName: collection,
		Seller:         req.Seller,
		MaxLimit:       limit,
		Fast:           true,
	})
	if len(listed) > 0 || !req.FallbackWithoutSeller || req.Seller == "" {
		return listed
	}

	return a.FetchSalesInventory(ctx, Filter{
		ChainKey:       req.ChainKey,
		CollectionName: collection,
		MaxLimit:       limit,
		Fast:           true,
	})
}

func (a *aggregator) buildShowcase(chainKey domain.ChainKey, listed []domain.ListedAsset) Showcase {
	collection := listed[0].Collection
	showcase := Showcase{
		Href:          fmt.Sprintf("/%s/collection/%s", chainKey, collection.CollectionName),
		Collection:    collection.CollectionName,
		Name:          collection.Name,
		Author:        collection.Author,
		AuthorImg:     a.media.URL(collection.Img),
		AuthorHref:    fmt.Sprintf("/%s/author/%s", chainKey, collection.Author),
		FeaturedImage: a.media.URL(collection.Img),
		TotalItems:    len(listed),
		PopularItems:  []ShowcaseItem{},
	}

	for _, asset := range listed {
		image := asset.StringData("image")
		video := asset.StringData("video")
		if image == "" && video == "" {
			continue
		}
		showcase.PopularItems = append(showcase.PopularItems, ShowcaseItem{
			Href:       fmt.Sprintf("/%s/collection/%s/asset/%s", chainKey, collection.CollectionName, asset.AssetID),
			TokenID:    asset.AssetID,
			TokenImage: a.media.URL(image),
			TokenVideo: a.media.URL(video),
		})
	}

	return showcase
}
