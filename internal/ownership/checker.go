package ownership

import (
	"context"

	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/config"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/providers/atomic"
)

// UNLOCK_KEY_SCAN_LIMIT is the number of unlock keys inspected per owner
const UNLOCK_KEY_SCAN_LIMIT = 100

// UnlockCollectionFields are the mutable data fields an unlock key names its collections in
var UnlockCollectionFields = []string{
	"Collection",
	"Collection2",
	"Collection3",
	"CollectionText",
	"CollectionText2",
	"CollectionText3",
}

// KeyStatus reports which access keys an account holds
type KeyStatus struct {
	Key       bool `json:"key"`
	BotKey    bool `json:"bot_key"`
	UnlockKey bool `json:"unlock_key"`
}

// Checker answers whether an account holds the NFTs that unlock features.
// Lookup failures are logged and read as not owned.
//
//go:generate mockgen -source=checker.go -destination=../mocks/ownership_checker.go -package=mocks -mock_names=Checker=MockOwnershipChecker
type Checker interface {
	// OwnsKey reports whether owner holds an asset of the key template
	OwnsKey(ctx context.Context, chainKey domain.ChainKey, owner string) bool

	// OwnsBotKey reports whether owner holds an asset of the bot key template
	OwnsBotKey(ctx context.Context, chainKey domain.ChainKey, owner string) bool

	// OwnsUnlockKey reports whether owner holds an unlock key naming collection
	OwnsUnlockKey(ctx context.Context, chainKey domain.ChainKey, owner, collection string) bool

	// Keys runs every check for owner. UnlockKey is false when collection is empty.
	Keys(ctx context.Context, chainKey domain.ChainKey, owner, collection string) KeyStatus
}

type checker struct {
	atomicClient atomic.Client
	cfg          config.OwnershipConfig
}

// NewChecker creates a checker for the configured key templates
func NewChecker(atomicClient atomic.Client, cfg config.OwnershipConfig) Checker {
	return &checker{atomicClient: atomicClient, cfg: cfg}
}

func (c *checker) OwnsKey(ctx context.Context, chainKey domain.ChainKey, owner string) bool {
	return c.holdsTemplate(ctx, chainKey, owner, c.cfg.KeyTemplateID)
}

func (c *checker) OwnsBotKey(ctx context.Context, chainKey domain.ChainKey, owner string) bool {
	return c.holdsTemplate(ctx, chainKey, owner, c.cfg.BotKeyTemplateID)
}

// holdsTemplate checks the newest asset of the template held by owner
func (c *checker) holdsTemplate(ctx context.Context, chainKey domain.ChainKey, owner, templateID string) bool {
	if owner == "" || templateID == "" {
		return false
	}

	assets, err := c.atomicClient.ListAssets(ctx, chainKey, atomic.AssetsQuery{
		Owner:      owner,
		TemplateID: templateID,
		Page:       1,
		Limit:      1,
		Order:      "desc",
		Sort:       "asset_id",
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to check key ownership",
			zap.String("owner", owner),
			zap.String("template_id", templateID),
			zap.Error(err))
		return false
	}

	return len(assets) > 0 && assets[0].Owner == owner
}

func (c *checker) OwnsUnlockKey(ctx context.Context, chainKey domain.ChainKey, owner, collection string) bool {
	if owner == "" || collection == "" || c.cfg.UnlockKeyTemplateID == "" {
		return false
	}

	assets, err := c.atomicClient.ListAssets(ctx, chainKey, atomic.AssetsQuery{
		Owner:      owner,
		TemplateID: c.cfg.UnlockKeyTemplateID,
		Page:       1,
		Limit:      UNLOCK_KEY_SCAN_LIMIT,
		Order:      "desc",
		Sort:       "asset_id",
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to check unlock key ownership",
			zap.String("owner", owner),
			zap.String("collection", collection),
			zap.Error(err))
		return false
	}

	for _, asset := range assets {
		if unlocks(asset, collection) {
			return true
		}
	}
	return false
}

// unlocks reports whether an unlock key names collection in its mutable data
func unlocks(asset domain.AssetRecord, collection string) bool {
	for _, field := range UnlockCollectionFields {
		if v, ok := asset.MutableData[field].(string); ok && v == collection {
			return true
		}
	}
	return false
}

func (c *checker) Keys(ctx context.Context, chainKey domain.ChainKey, owner, collection string) KeyStatus {
	return KeyStatus{
		Key:       c.OwnsKey(ctx, chainKey, owner),
		BotKey:    c.OwnsBotKey(ctx, chainKey, owner),
		UnlockKey: c.OwnsUnlockKey(ctx, chainKey, owner, collection),
	}
}
