package executor_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/api/shared/dto"
	apierrors "github.com/abstrakts/storefront-core/internal/api/shared/errors"
	"github.com/abstrakts/storefront-core/internal/api/shared/executor"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/inventory"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/market"
	"github.com/abstrakts/storefront-core/internal/mocks"
	"github.com/abstrakts/storefront-core/internal/ownership"
	"github.com/abstrakts/storefront-core/internal/providers/chainrpc"
	"github.com/abstrakts/storefront-core/internal/providers/wallet"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type executorFixture struct {
	exec       executor.Executor
	aggregator *mocks.MockAggregator
	atomic     *mocks.MockAtomicClient
	chainRPC   *mocks.MockChainRPCClient
	media      *mocks.MockMediaResolver
	checker    *mocks.MockOwnershipChecker
	composer   *mocks.MockComposer
	publisher  *mocks.MockPublisher
	clock      *mocks.MockClock
}

func newExecutorFixture(ctrl *gomock.Controller) executorFixture {
	f := executorFixture{
		aggregator: mocks.NewMockAggregator(ctrl),
		atomic:     mocks.NewMockAtomicClient(ctrl),
		chainRPC:   mocks.NewMockChainRPCClient(ctrl),
		media:      mocks.NewMockMediaResolver(ctrl),
		checker:    mocks.NewMockOwnershipChecker(ctrl),
		composer:   mocks.NewMockComposer(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	f.exec = executor.NewExecutor(f.aggregator, f.atomic, f.chainRPC, f.media, f.checker, f.composer, f.publisher, f.clock, adapter.NewJSON())
	return f
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected an APIError, got %v", err)
	return apiErr.StatusCode()
}

func TestExecutor_ListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	items := []domain.ListedAsset{{AssetID: "1", SaleID: "10"}, {AssetID: "2", SaleID: "10"}}
	f.aggregator.EXPECT().
		FetchSalesInventory(gomock.Any(), inventory.Filter{
			ChainKey:       domain.ChainXPRNetwork,
			CollectionName: "abstrakts",
			Seller:         "alice",
			MaxLimit:       50,
			Fast:           true,
		}).
		Return(items)

	resp, err := f.exec.ListSales(context.Background(), domain.ChainXPRNetwork, "abstrakts", "alice", 50, true)
	require.NoError(t, err)
	assert.Equal(t, items, resp.Items)
	assert.Equal(t, 2, resp.Total)
	assert.True(t, resp.Fast)
}

func TestExecutor_GetSalePrice(t *testing.T) {
	tests := []struct {
		name       string
		price      *inventory.SalePrice
		err        error
		wantStatus int
	}{
		{
			name:  "on sale",
			price: &inventory.SalePrice{Price: "10", Token: "XPR", SaleID: "5", AssetID: "100"},
		},
		{
			name:       "not on sale",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "indexer failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newExecutorFixture(ctrl)

			f.aggregator.EXPECT().SalePrice(gomock.Any(), domain.ChainXPRNetwork, "100").Return(tt.price, tt.err)

			price, err := f.exec.GetSalePrice(context.Background(), domain.ChainXPRNetwork, "100")
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.price, price)
		})
	}
}

func TestExecutor_GetCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	record := &domain.CollectionRecord{CollectionName: "abstrakts", Img: "QmImage"}
	f.atomic.EXPECT().GetCollection(gomock.Any(), domain.ChainXPRNetwork, "abstrakts").Return(record, nil)
	f.media.EXPECT().URL("QmImage").Return("https://ipfs.io/ipfs/QmImage")

	resp, err := f.exec.GetCollection(context.Background(), domain.ChainXPRNetwork, "abstrakts")
	require.NoError(t, err)
	assert.Equal(t, "abstrakts", resp.CollectionName)
	assert.Equal(t, "https://ipfs.io/ipfs/QmImage", resp.ImageURL)
}

func TestExecutor_GetCollection_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	f.atomic.EXPECT().GetCollection(gomock.Any(), domain.ChainXPRNetwork, "missing").Return(nil, nil)

	_, err := f.exec.GetCollection(context.Background(), domain.ChainXPRNetwork, "missing")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestExecutor_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	f.chainRPC.EXPECT().GetAccount(gomock.Any(), domain.ChainXPRNetwork, "alice").
		Return(&chainrpc.Account{AccountName: "alice", Created: "2021-01-01T00:00:00.000"}, nil)
	f.chainRPC.EXPECT().GetUsersInfo(gomock.Any(), domain.ChainXPRNetwork, "alice").
		Return(&chainrpc.UserInfo{Acc: "alice", Name: "Alice", Avatar: "avatar", Verified: 1}, nil)
	f.chainRPC.EXPECT().GetProtonLink(gomock.Any(), domain.ChainXPRNetwork, "alice").
		Return(&chainrpc.ProtonLinkRow{Account: "alice", Values: []chainrpc.KeyValue{{Key: "twitter", Value: "@alice"}}}, nil)

	profile, err := f.exec.GetProfile(context.Background(), domain.ChainXPRNetwork, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Account)
	assert.Equal(t, "Alice", profile.Name)
	assert.True(t, profile.Verified)
	assert.Equal(t, map[string]string{"twitter": "@alice"}, profile.Links)
}

func TestExecutor_GetProfile_WithoutUserInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	f.chainRPC.EXPECT().GetAccount(gomock.Any(), domain.ChainXPRNetwork, "bob").
		Return(&chainrpc.Account{AccountName: "bob"}, nil)
	f.chainRPC.EXPECT().GetUsersInfo(gomock.Any(), domain.ChainXPRNetwork, "bob").Return(nil, nil)
	f.chainRPC.EXPECT().GetProtonLink(gomock.Any(), domain.ChainXPRNetwork, "bob").Return(nil, nil)

	profile, err := f.exec.GetProfile(context.Background(), domain.ChainXPRNetwork, "bob")
	require.NoError(t, err)
	assert.Empty(t, profile.Name)
	assert.False(t, profile.Verified)
	assert.Empty(t, profile.Links)
}

func TestExecutor_GetStorefront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	row := &chainrpc.StorefrontRow{
		Actor: "alice",
		Values: []chainrpc.KeyValue{
			{Key: "title", Value: "Alice's shop"},
			{Key: "collection1", Value: "abstrakts"},
			{Key: "collection3", Value: "pixels"},
		},
	}
	showcases := []inventory.Showcase{{Collection: "abstrakts"}, {Collection: "pixels"}}

	f.chainRPC.EXPECT().GetStorefront(gomock.Any(), domain.ChainXPRNetwork, "alice").Return(row, nil)
	f.aggregator.EXPECT().
		Showcases(gomock.Any(), inventory.ShowcaseRequest{
			ChainKey:              domain.ChainXPRNetwork,
			Collections:           []string{"abstrakts", "", "pixels"},
			Seller:                "alice",
			FallbackWithoutSeller: true,
		}).
		Return(showcases)

	resp, err := f.exec.GetStorefront(context.Background(), domain.ChainXPRNetwork, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice's shop", resp.Values["title"])
	assert.Equal(t, showcases, resp.Showcases)
}

func TestExecutor_GetStorefront_Unset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	f.chainRPC.EXPECT().GetStorefront(gomock.Any(), domain.ChainXPRNetwork, "bob").Return(nil, nil)

	resp, err := f.exec.GetStorefront(context.Background(), domain.ChainXPRNetwork, "bob")
	require.NoError(t, err)
	assert.Empty(t, resp.Values)
	assert.Empty(t, resp.Showcases)
}

func TestExecutor_GetKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	status := ownership.KeyStatus{Key: true, UnlockKey: true}
	f.checker.EXPECT().Keys(gomock.Any(), domain.ChainXPRNetwork, "alice", "abstrakts").Return(status)

	resp, err := f.exec.GetKeys(context.Background(), domain.ChainXPRNetwork, "alice", "abstrakts")
	require.NoError(t, err)
	assert.True(t, resp.Key)
	assert.False(t, resp.BotKey)
	assert.True(t, resp.UnlockKey)
}

func TestExecutor_GetMedia_RejectsNonIPFS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	_, err := f.exec.GetMedia(context.Background(), "https://example.com/image.png")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestExecutor_BuildTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	req := &dto.TransactionRequest{
		Kind:   market.KindBuy,
		Actor:  "alice",
		Intent: json.RawMessage(`{"price":"10","token":"XPR","sale_id":"5","collection":"abstrakts","asset_id":"100"}`),
	}

	f.composer.EXPECT().
		Build(gomock.Any(), domain.Session{Actor: "alice", ChainKey: domain.ChainXPRNetwork}, domain.ChainXPRNetwork, gomock.Any()).
		DoAndReturn(func(ctx context.Context, session domain.Session, chainKey domain.ChainKey, intent market.Intent) (*market.Outcome, error) {
			buy, ok := intent.(*market.Buy)
			require.True(t, ok)
			assert.True(t, decimal.NewFromInt(10).Equal(buy.Price))
			assert.Equal(t, "5", buy.SaleID)
			return &market.Outcome{Kind: market.KindBuy}, nil
		})

	outcome, err := f.exec.BuildTransaction(context.Background(), domain.ChainXPRNetwork, req)
	require.NoError(t, err)
	assert.Equal(t, market.KindBuy, outcome.Kind)
}

func TestExecutor_BuildTransaction_InvalidIntent(t *testing.T) {
	tests := []struct {
		name   string
		kind   market.Kind
		intent string
	}{
		{name: "malformed json", kind: market.KindBuy, intent: `{"price":`},
		{name: "missing sale", kind: market.KindBuy, intent: `{"price":"10","token":"XPR"}`},
		{name: "invalid recipient", kind: market.KindTransfer, intent: `{"to":"Not.Valid!","quantity":"1","token":"XPR"}`},
		{name: "asset without id", kind: market.KindSell, intent: `{"assets":[{"sale_id":"1"}],"price":"1","token":"XPR"}`},
		{name: "unknown kind", kind: market.Kind("burn"), intent: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newExecutorFixture(ctrl)

			req := &dto.TransactionRequest{Kind: tt.kind, Actor: "alice", Intent: json.RawMessage(tt.intent)}
			_, err := f.exec.BuildTransaction(context.Background(), domain.ChainXPRNetwork, req)
			assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		})
	}
}

func TestExecutor_BuildTransaction_ComposerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not logged in", err: domain.ErrNotLoggedIn, wantStatus: http.StatusUnauthorized},
		{name: "wrong chain", err: domain.ErrWrongChain, wantStatus: http.StatusBadRequest},
		{name: "unknown chain", err: domain.ErrUnknownChain, wantStatus: http.StatusNotFound},
		{
			name: "submission failure",
			err: &market.SubmissionError{
				Kind:    market.KindTransfer,
				Failure: market.Failure{Message: "Unable to transfer"},
				Err:     domain.ErrUnknownToken,
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newExecutorFixture(ctrl)

			f.composer.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			req := &dto.TransactionRequest{
				Kind:   market.KindTransfer,
				Actor:  "alice",
				Intent: json.RawMessage(`{"to":"bob","quantity":"1","token":"XPR"}`),
			}
			_, err := f.exec.BuildTransaction(context.Background(), domain.ChainXPRNetwork, req)
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
		})
	}
}

func TestExecutor_SubmitTransaction_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	req := &dto.TransactionRequest{
		Kind:   market.KindSell,
		Intent: json.RawMessage(`{"assets":[{"asset_id":"1"},{"asset_id":"2"}],"price":"5","token":"XPR"}`),
	}

	f.composer.EXPECT().
		Execute(gomock.Any(), domain.Session{Actor: "alice", ChainKey: domain.ChainXPRNetwork}, domain.ChainXPRNetwork, gomock.Any()).
		Return(&market.Outcome{
			SubmissionID: "01HZY",
			Kind:         market.KindSell,
			Fingerprint:  "abcd",
			Receipt:      &wallet.Receipt{TransactionID: "tx1"},
		}, nil)
	f.clock.EXPECT().Now().Return(now)
	f.publisher.EXPECT().PublishEvent(gomock.Any(), &domain.MarketEvent{
		ID:            "01HZY",
		ChainKey:      domain.ChainXPRNetwork,
		Kind:          "sell",
		Actor:         "alice",
		TransactionID: "tx1",
		Fingerprint:   "abcd",
		AssetIDs:      []string{"1", "2"},
		Timestamp:     now,
	}).Return(nil)

	outcome, err := f.exec.SubmitTransaction(context.Background(), domain.ChainXPRNetwork, "alice", req)
	require.NoError(t, err)
	assert.Equal(t, "tx1", outcome.Receipt.TransactionID)
}

func TestExecutor_SubmitTransaction_PublishFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	req := &dto.TransactionRequest{
		Kind:   market.KindClaimBalance,
		Intent: json.RawMessage(`{"balances":[{"value":"1.0000","token":"XPR"}]}`),
	}

	f.composer.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&market.Outcome{SubmissionID: "01HZZ", Kind: market.KindClaimBalance}, nil)
	f.clock.EXPECT().Now().Return(time.Now())
	f.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	outcome, err := f.exec.SubmitTransaction(context.Background(), domain.ChainXPRNetwork, "alice", req)
	require.NoError(t, err)
	assert.Equal(t, "01HZZ", outcome.SubmissionID)
}

func TestExecutor_SubmitTransaction_ActorMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newExecutorFixture(ctrl)

	req := &dto.TransactionRequest{
		Kind:   market.KindClaimAuction,
		Actor:  "mallory",
		Intent: json.RawMessage(`{"auction_ids":["1"]}`),
	}

	_, err := f.exec.SubmitTransaction(context.Background(), domain.ChainXPRNetwork, "alice", req)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}
