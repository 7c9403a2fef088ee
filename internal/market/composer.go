package market

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/config"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/inventory"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/providers/wallet"
)

// RELOAD_MESSAGE is shown while the page waits for the indexer to catch up
const RELOAD_MESSAGE = "Please wait while we refresh the page."

var successTitles = map[Kind]string{
	KindBuy:              "NFT was successfully bought",
	KindSell:             "NFTs was successfully put on sale",
	KindAuction:          "NFTs was successfully put on auction",
	KindCancelSale:       "Sales of the NFTs was successfully canceled",
	KindClaimBalance:     "Successfully claimed",
	KindClaimAuction:     "Successfully claimed",
	KindTransfer:         "Tokens were successfully transferred",
	KindUpdateStorefront: "Storefront edited",
	KindSpecialMint:      "NFT was successfully minted",
}

// Outcome describes a built or submitted transaction
type Outcome struct {
	SubmissionID  string          `json:"submission_id,omitempty"`
	Kind          Kind            `json:"kind"`
	Actions       []domain.Action `json:"actions"`
	Fingerprint   string          `json:"fingerprint,omitempty"`
	Receipt       *wallet.Receipt `json:"receipt,omitempty"`
	Title         string          `json:"title,omitempty"`
	Message       string          `json:"message,omitempty"`
	Redirect      string          `json:"redirect,omitempty"`
	ReloadAfterMS int64           `json:"reload_after_ms,omitempty"`

	ReloadDelay time.Duration `json:"-"`
	Submission  *Submission   `json:"-"`
}

// Composer turns intents into signed transactions
//
//go:generate mockgen -source=composer.go -destination=../mocks/market_composer.go -package=mocks -mock_names=Composer=MockComposer
type Composer interface {
	// Build returns the actions Execute would sign, without signing them
	Build(ctx context.Context, session domain.Session, chainKey domain.ChainKey, intent Intent) (*Outcome, error)

	// Execute builds the intent and hands it to the signer as one transaction.
	// Building and signing failures are returned as *SubmissionError.
	Execute(ctx context.Context, session domain.Session, chainKey domain.ChainKey, intent Intent) (*Outcome, error)
}

type composer struct {
	builder          Builder
	signer           wallet.Signer
	aggregator       inventory.Aggregator
	clock            adapter.Clock
	jcs              adapter.JCS
	json             adapter.JSON
	chains           map[domain.ChainKey]bool
	reloadDelay      time.Duration
	shortReloadDelay time.Duration
}

// NewComposer creates a composer for the given networks.
// aggregator looks up the current sales of assets being relisted and may be nil.
func NewComposer(
	builder Builder,
	signer wallet.Signer,
	aggregator inventory.Aggregator,
	clock adapter.Clock,
	jcs adapter.JCS,
	json adapter.JSON,
	chains []domain.ChainKey,
	cfg config.MarketConfig,
) Composer {
	known := make(map[domain.ChainKey]bool, len(chains))
	for _, chain := range chains {
		known[chain] = true
	}

	c := &composer{
		builder:          builder,
		signer:           signer,
		aggregator:       aggregator,
		clock:            clock,
		jcs:              jcs,
		json:             json,
		chains:           known,
		reloadDelay:      cfg.ReloadDelay,
		shortReloadDelay: cfg.ShortReloadDelay,
	}
	if c.reloadDelay <= 0 {
		c.reloadDelay = domain.DEFAULT_RELOAD_DELAY
	}
	if c.shortReloadDelay <= 0 {
		c.shortReloadDelay = domain.DEFAULT_SHORT_RELOAD_DELAY
	}
	return c
}

// gate rejects sessions that cannot sign for chainKey
func (c *composer) gate(session domain.Session, chainKey domain.ChainKey) error {
	if session.Actor == "" {
		return domain.ErrNotLoggedIn
	}
	if session.ChainKey != chainKey {
		return fmt.Errorf("%w: session is on %s, transaction targets %s", domain.ErrWrongChain, session.ChainKey, chainKey)
	}
	if !c.chains[chainKey] {
		return fmt.Errorf("%w: %s", domain.ErrUnknownChain, chainKey)
	}
	return nil
}

func (c *composer) Build(ctx context.Context, session domain.Session, chainKey domain.ChainKey, intent Intent) (*Outcome, error) {
	if err := c.gate(session, chainKey); err != nil {
		return nil, err
	}

	intent = c.attachSaleIDs(ctx, chainKey, session.Actor, Unwrap(intent))
	actions, err := c.builder.Build(session.Authorization(), intent)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Kind:        intent.Kind(),
		Actions:     actions,
		Fingerprint: c.fingerprint(ctx, domain.Transaction{Actions: actions}),
	}, nil
}

func (c *composer) Execute(ctx context.Context, session domain.Session, chainKey domain.ChainKey, intent Intent) (*Outcome, error) {
	if err := c.gate(session, chainKey); err != nil {
		return nil, err
	}

	intent = Unwrap(intent)
	kind := intent.Kind()
	submission := NewSubmission(ulid.MustNewDefault(c.clock.Now()).String(), kind, c.clock)
	ctx = logger.WithSubmissionID(ctx, submission.ID())
	ctx = logger.WithChainKey(ctx, string(chainKey))

	if err := submission.Build(); err != nil {
		return nil, err
	}

	intent = c.attachSaleIDs(ctx, chainKey, session.Actor, intent)
	actions, err := c.builder.Build(session.Authorization(), intent)
	if err != nil {
		return nil, c.fail(ctx, submission, fmt.Errorf("failed to build %s transaction: %w", kind, err))
	}

	tx := domain.Transaction{Actions: actions}
	fingerprint := c.fingerprint(ctx, tx)

	if err := submission.Submit(); err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Submitting transaction",
		zap.String("kind", string(kind)),
		zap.String("actor", session.Actor),
		zap.Int("actions", len(actions)),
		zap.String("fingerprint", fingerprint))

	receipt, err := c.signer.SignTransaction(ctx, session, tx, domain.DefaultSignOptions())
	if err != nil {
		return nil, c.fail(ctx, submission, err)
	}

	delay := c.reloadDelayOf(kind)
	if err := submission.Succeed(delay); err != nil {
		return nil, err
	}

	outcome := &Outcome{
		SubmissionID:  submission.ID(),
		Kind:          kind,
		Actions:       actions,
		Fingerprint:   fingerprint,
		Receipt:       receipt,
		Title:         successTitles[kind],
		Message:       RELOAD_MESSAGE,
		Redirect:      redirectOf(chainKey, intent),
		ReloadAfterMS: delay.Milliseconds(),
		ReloadDelay:   delay,
		Submission:    submission,
	}
	if receipt != nil {
		logger.InfoCtx(ctx, "Transaction broadcast", zap.String("transaction_id", receipt.TransactionID))
	}
	return outcome, nil
}

func (c *composer) fail(ctx context.Context, submission *Submission, err error) error {
	failure := NewFailure(c.json, submission.Kind(), err)
	if failErr := submission.Fail(failure); failErr != nil {
		logger.ErrorCtx(ctx, failErr)
	}
	logger.ErrorCtx(ctx, fmt.Errorf("transaction submission failed: %w", err),
		zap.String("kind", string(submission.Kind())),
		zap.String("message", failure.Message))

	return &SubmissionError{
		SubmissionID: submission.ID(),
		Kind:         submission.Kind(),
		Failure:      failure,
		Err:          err,
	}
}

// attachSaleIDs fills the current sale of assets being relisted from the seller's listings
func (c *composer) attachSaleIDs(ctx context.Context, chainKey domain.ChainKey, seller string, intent Intent) Intent {
	var assets []SelectedAsset
	switch in := intent.(type) {
	case Sell:
		assets = in.Assets
	case Auction:
		assets = in.Assets
	default:
		return intent
	}
	if c.aggregator == nil || len(assets) == 0 {
		return intent
	}

	listed := c.aggregator.FetchSalesInventory(ctx, inventory.Filter{ChainKey: chainKey, Seller: seller})
	saleOf := make(map[string]string, len(listed))
	for _, asset := range listed {
		saleOf[asset.AssetID] = asset.SaleID
	}

	attached := make([]SelectedAsset, len(assets))
	for i, asset := range assets {
		if asset.SaleID == "" {
			asset.SaleID = saleOf[asset.AssetID]
		}
		attached[i] = asset
	}

	switch in := intent.(type) {
	case Sell:
		in.Assets = attached
		return in
	case Auction:
		in.Assets = attached
		return in
	}
	return intent
}

// fingerprint is the SHA-256 of the canonical transaction, used to correlate logs
func (c *composer) fingerprint(ctx context.Context, tx domain.Transaction) string {
	data, err := c.json.Marshal(tx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to marshal transaction", zap.Error(err))
		return ""
	}
	fingerprint, err := adapter.Fingerprint(c.jcs, data)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fingerprint transaction", zap.Error(err))
		return ""
	}
	return fingerprint
}

func (c *composer) reloadDelayOf(kind Kind) time.Duration {
	switch kind {
	case KindAuction, KindCancelSale:
		return c.shortReloadDelay
	default:
		return c.reloadDelay
	}
}

// redirectOf returns the asset page a buyer lands on, empty to reload in place
func redirectOf(chainKey domain.ChainKey, intent Intent) string {
	buy, ok := intent.(Buy)
	if !ok || buy.Collection == "" || buy.AssetID == "" {
		return ""
	}
	return fmt.Sprintf("/%s/collection/%s/asset/%s", chainKey, buy.Collection, buy.AssetID)
}
