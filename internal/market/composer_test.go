package market_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/config"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/inventory"
	"github.com/abstrakts/storefront-core/internal/market"
	"github.com/abstrakts/storefront-core/internal/mocks"
	"github.com/abstrakts/storefront-core/internal/providers/wallet"
	"github.com/abstrakts/storefront-core/internal/registry"
)

type composerFixture struct {
	composer   market.Composer
	signer     *mocks.MockSigner
	clock      *mocks.MockClock
	aggregator *mocks.MockAggregator
}

func newComposerFixture(ctrl *gomock.Controller) composerFixture {
	signer := mocks.NewMockSigner(ctrl)
	clock := mocks.NewMockClock(ctrl)
	aggregator := mocks.NewMockAggregator(ctrl)
	cfg := config.MarketConfig{
		ReloadDelay:      domain.DEFAULT_RELOAD_DELAY,
		ShortReloadDelay: domain.DEFAULT_SHORT_RELOAD_DELAY,
	}

	c := market.NewComposer(
		market.NewBuilder(registry.NewTokenRegistry(nil), cfg),
		signer,
		aggregator,
		clock,
		adapter.NewJCS(),
		adapter.NewJSON(),
		[]domain.ChainKey{domain.ChainXPRNetwork, domain.ChainXPRNetworkTest},
		cfg,
	)
	return composerFixture{composer: c, signer: signer, clock: clock, aggregator: aggregator}
}

var aliceSession = domain.Session{Actor: "alice", Permission: "active", ChainKey: domain.ChainXPRNetwork}

func TestComposer_Execute_Buy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newComposerFixture(ctrl)

	timer := make(chan time.Time, 1)
	f.clock.EXPECT().Now().Return(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	f.clock.EXPECT().After(6 * time.Second).Return((<-chan time.Time)(timer))

	f.signer.EXPECT().
		SignTransaction(gomock.Any(), aliceSession, gomock.Any(), domain.SignOptions{BlocksBehind: 3, ExpireSeconds: 30}).
		DoAndReturn(func(ctx context.Context, session domain.Session, tx domain.Transaction, opts domain.SignOptions) (*wallet.Receipt, error) {
			require.Len(t, tx.Actions, 2)
			assert.Equal(t, "transfer", tx.Actions[0].Name)
			assert.Equal(t, "purchasesale", tx.Actions[1].Name)
			return &wallet.Receipt{TransactionID: "abc123"}, nil
		})

	outcome, err := f.composer.Execute(context.Background(), aliceSession, domain.ChainXPRNetwork, &market.Buy{
		Price:      decimal.NewFromInt(10),
		Token:      "XPR",
		SaleID:     "5",
		Collection: "abstrakts",
		AssetID:    "100",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, outcome.SubmissionID)
	assert.Equal(t, market.KindBuy, outcome.Kind)
	assert.Len(t, outcome.Actions, 2)
	assert.Len(t, outcome.Fingerprint, 64)
	assert.Equal(t, "abc123", outcome.Receipt.TransactionID)
	assert.Equal(t, "NFT was successfully bought", outcome.Title)
	assert.Equal(t, market.RELOAD_MESSAGE, outcome.Message)
	assert.Equal(t, "/xprnetwork/collection/abstrakts/asset/100", outcome.Redirect)
	assert.Equal(t, 6*time.Second, outcome.ReloadDelay)
	assert.Equal(t, int64(6000), outcome.ReloadAfterMS)
	assert.Equal(t, market.StateSuccess, outcome.Submission.State())

	timer <- time.Now()
	select {
	case <-outcome.Submission.Reloaded():
	case <-time.After(time.Second):
		t.Fatal("submission did not reload")
	}
}

func TestComposer_Execute_SellAttachesSaleIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newComposerFixture(ctrl)

	f.clock.EXPECT().Now().Return(time.Now())
	f.clock.EXPECT().After(6 * time.Second).Return(make(<-chan time.Time))
	f.aggregator.EXPECT().
		FetchSalesInventory(gomock.Any(), inventory.Filter{ChainKey: domain.ChainXPRNetwork, Seller: "alice"}).
		Return([]domain.ListedAsset{
			{AssetID: "1", SaleID: "77"},
			{AssetID: "9", SaleID: "99"},
		})
	f.signer.EXPECT().
		SignTransaction(gomock.Any(), aliceSession, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, session domain.Session, tx domain.Transaction, opts domain.SignOptions) (*wallet.Receipt, error) {
			require.Len(t, tx.Actions, 5)
			assert.Equal(t, "cancelsale", tx.Actions[0].Name)
			assert.Equal(t, market.CancelSaleData{SaleID: "77"}, tx.Actions[0].Data)
			assert.Equal(t, "announcesale", tx.Actions[1].Name)
			return &wallet.Receipt{TransactionID: "def456"}, nil
		})

	outcome, err := f.composer.Execute(context.Background(), aliceSession, domain.ChainXPRNetwork, market.Sell{
		Assets: []market.SelectedAsset{{AssetID: "1"}, {AssetID: "2"}},
		Price:  decimal.NewFromInt(1),
		Token:  "XPR",
	})
	require.NoError(t, err)
	assert.Equal(t, "NFTs was successfully put on sale", outcome.Title)
	assert.Empty(t, outcome.Redirect)
}

func TestComposer_Execute_ShortReloadDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newComposerFixture(ctrl)

	f.clock.EXPECT().Now().Return(time.Now())
	f.clock.EXPECT().After(3 * time.Second).Return(make(<-chan time.Time))
	f.signer.EXPECT().SignTransaction(gomock.Any(), aliceSession, gomock.Any(), gomock.Any()).Return(&wallet.Receipt{}, nil)

	outcome, err := f.composer.Execute(context.Background(), aliceSession, domain.ChainXPRNetwork, market.CancelSale{SaleIDs: []string{"1"}})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, outcome.ReloadDelay)
	assert.Equal(t, "Sales of the NFTs was successfully canceled", outcome.Title)
}

func TestComposer_Execute_Gate(t *testing.T) {
	tests := []struct {
		name        string
		session     domain.Session
		chainKey    domain.ChainKey
		expectedErr error
	}{
		{
			name:        "no actor",
			session:     domain.Session{ChainKey: domain.ChainXPRNetwork},
			chainKey:    domain.ChainXPRNetwork,
			expectedErr: domain.ErrNotLoggedIn,
		},
		{
			name:        "session on testnet",
			session:     domain.Session{Actor: "alice", ChainKey: domain.ChainXPRNetworkTest},
			chainKey:    domain.ChainXPRNetwork,
			expectedErr: domain.ErrWrongChain,
		},
		{
			name:        "unknown chain",
			session:     domain.Session{Actor: "alice", ChainKey: "eos"},
			chainKey:    "eos",
			expectedErr: domain.ErrUnknownChain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newComposerFixture(ctrl)

			intent := market.CancelSale{SaleIDs: []string{"1"}}
			outcome, err := f.composer.Execute(context.Background(), tt.session, tt.chainKey, intent)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, outcome)

			outcome, err = f.composer.Build(context.Background(), tt.session, tt.chainKey, intent)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, outcome)
		})
	}
}

func TestComposer_Execute_SignerFailure(t *testing.T) {
	chainErr := &wallet.ChainError{
		Message:    "transaction declined",
		StatusCode: 500,
		Cause: &wallet.ErrorCause{JSON: &wallet.NodeError{
			Code:    500,
			Message: "Internal Service Error",
			Error: wallet.NodeErrorBody{
				Code:    3050003,
				Name:    "eosio_assert_message_exception",
				Details: []wallet.ErrorDetail{{Message: "assertion failure with message: overdrawn balance"}},
			},
		}},
	}

	tests := []struct {
		name            string
		signErr         error
		expectedMessage string
	}{
		{
			name:            "chain detail message",
			signErr:         chainErr,
			expectedMessage: "assertion failure with message: overdrawn balance",
		},
		{
			name:            "fallback message",
			signErr:         errors.New("connection reset"),
			expectedMessage: "Unable to buy the NFT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newComposerFixture(ctrl)

			f.clock.EXPECT().Now().Return(time.Now())
			f.signer.EXPECT().SignTransaction(gomock.Any(), aliceSession, gomock.Any(), gomock.Any()).Return(nil, tt.signErr)

			outcome, err := f.composer.Execute(context.Background(), aliceSession, domain.ChainXPRNetwork, market.Buy{
				Price:  decimal.NewFromInt(10),
				Token:  "XPR",
				SaleID: "5",
			})
			assert.Nil(t, outcome)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.signErr)

			subErr, ok := market.AsSubmissionError(err)
			require.True(t, ok)
			assert.NotEmpty(t, subErr.SubmissionID)
			assert.Equal(t, market.KindBuy, subErr.Kind)
			assert.Equal(t, tt.expectedMessage, subErr.Failure.Message)
			assert.Equal(t, tt.expectedMessage, err.Error())
			assert.NotEmpty(t, subErr.Failure.Details)
		})
	}
}

func TestComposer_Execute_BuildFailureNeverSigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newComposerFixture(ctrl)

	f.clock.EXPECT().Now().Return(time.Now())
	f.signer.EXPECT().SignTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.composer.Execute(context.Background(), aliceSession, domain.ChainXPRNetwork, market.Buy{
		Price:  decimal.NewFromInt(10),
		Token:  "DOGE",
		SaleID: "5",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownToken)

	subErr, ok := market.AsSubmissionError(err)
	require.True(t, ok)
	assert.Equal(t, "Unable to buy the NFT", subErr.Failure.Message)
}

func TestComposer_Build_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newComposerFixture(ctrl)

	f.signer.EXPECT().SignTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	intent := market.ClaimAuction{AuctionIDs: []string{"11"}}
	first, err := f.composer.Build(context.Background(), aliceSession, domain.ChainXPRNetwork, intent)
	require.NoError(t, err)
	assert.Empty(t, first.SubmissionID)
	assert.Nil(t, first.Receipt)
	assert.Equal(t, []domain.Action{{
		Account:       "atomicmarket",
		Name:          "cancelauct",
		Authorization: []domain.Authorization{{Actor: "alice", Permission: "active"}},
		Data:          market.CancelAuctionData{AuctionID: "11"},
	}}, first.Actions)

	second, err := f.composer.Build(context.Background(), aliceSession, domain.ChainXPRNetwork, intent)
	require.NoError(t, err)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestExtractErrorMessage(t *testing.T) {
	assert.Equal(t, "Unable to sell NFTs", market.ExtractErrorMessage(market.KindSell, errors.New("boom")))
	assert.Equal(t, "Unable to claim", market.ExtractErrorMessage(market.KindClaimAuction, nil))
	assert.Equal(t, "Unable to mint", market.ExtractErrorMessage(market.KindSpecialMint, &wallet.ChainError{Message: "no details"}))
	assert.Equal(t, "Unable to submit the transaction", market.ExtractErrorMessage("other", errors.New("boom")))
}
