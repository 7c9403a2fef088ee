package ownership_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/abstrakts/storefront-core/internal/config"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/mocks"
	"github.com/abstrakts/storefront-core/internal/ownership"
	"github.com/abstrakts/storefront-core/internal/providers/atomic"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testConfig = config.OwnershipConfig{
	KeyTemplateID:       "97288",
	BotKeyTemplateID:    "98644",
	UnlockKeyTemplateID: "98646",
}

func keyQuery(templateID string, limit int) atomic.AssetsQuery {
	return atomic.AssetsQuery{
		Owner:      "alice",
		TemplateID: templateID,
		Page:       1,
		Limit:      limit,
		Order:      "desc",
		Sort:       "asset_id",
	}
}

func TestChecker_OwnsKey(t *testing.T) {
	tests := []struct {
		name     string
		assets   []domain.AssetRecord
		err      error
		expected bool
	}{
		{name: "holder", assets: []domain.AssetRecord{{AssetID: "1", Owner: "alice"}}, expected: true},
		{name: "no asset", assets: []domain.AssetRecord{}, expected: false},
		{name: "owner mismatch", assets: []domain.AssetRecord{{AssetID: "1", Owner: "bob"}}, expected: false},
		{name: "indexer error", err: errors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockAtomicClient(ctrl)
			client.EXPECT().
				ListAssets(gomock.Any(), domain.ChainXPRNetwork, keyQuery("97288", 1)).
				Return(tt.assets, tt.err)

			checker := ownership.NewChecker(client, testConfig)
			assert.Equal(t, tt.expected, checker.OwnsKey(context.Background(), domain.ChainXPRNetwork, "alice"))
		})
	}
}

func TestChecker_OwnsUnlockKey(t *testing.T) {
	tests := []struct {
		name     string
		assets   []domain.AssetRecord
		expected bool
	}{
		{
			name:     "first collection field",
			assets:   []domain.AssetRecord{{AssetID: "1", MutableData: map[string]interface{}{"Collection": "abstrakts"}}},
			expected: true,
		},
		{
			name: "text field of a later key",
			assets: []domain.AssetRecord{
				{AssetID: "1", MutableData: map[string]interface{}{"Collection": "other"}},
				{AssetID: "2", MutableData: map[string]interface{}{"CollectionText3": "abstrakts"}},
			},
			expected: true,
		},
		{
			name:     "collection in an unrelated field",
			assets:   []domain.AssetRecord{{AssetID: "1", MutableData: map[string]interface{}{"Name": "abstrakts"}}},
			expected: false,
		},
		{
			name:     "key without mutable data",
			assets:   []domain.AssetRecord{{AssetID: "1"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockAtomicClient(ctrl)
			client.EXPECT().
				ListAssets(gomock.Any(), domain.ChainXPRNetwork, keyQuery("98646", ownership.UNLOCK_KEY_SCAN_LIMIT)).
				Return(tt.assets, nil)

			checker := ownership.NewChecker(client, testConfig)
			assert.Equal(t, tt.expected, checker.OwnsUnlockKey(context.Background(), domain.ChainXPRNetwork, "alice", "abstrakts"))
		})
	}
}

func TestChecker_Keys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockAtomicClient(ctrl)
	client.EXPECT().
		ListAssets(gomock.Any(), domain.ChainXPRNetwork, keyQuery("97288", 1)).
		Return([]domain.AssetRecord{{AssetID: "1", Owner: "alice"}}, nil)
	client.EXPECT().
		ListAssets(gomock.Any(), domain.ChainXPRNetwork, keyQuery("98644", 1)).
		Return([]domain.AssetRecord{}, nil)

	checker := ownership.NewChecker(client, testConfig)
	status := checker.Keys(context.Background(), domain.ChainXPRNetwork, "alice", "")
	assert.Equal(t, ownership.KeyStatus{Key: true}, status)
}

func TestChecker_EmptyOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := ownership.NewChecker(mocks.NewMockAtomicClient(ctrl), testConfig)
	assert.Equal(t, ownership.KeyStatus{}, checker.Keys(context.Background(), domain.ChainXPRNetwork, "", "abstrakts"))
}
