package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstrakts/storefront-core/internal/config"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/mocks"
	"github.com/abstrakts/storefront-core/internal/registry"
)

func TestTokenRegistry_FormatQuantity(t *testing.T) {
	reg := registry.NewTokenRegistry(nil)

	tests := []struct {
		name        string
		amount      string
		symbol      string
		expected    string
		expectedErr error
	}{
		{name: "XPR pads to four decimals", amount: "12.5", symbol: "XPR", expected: "12.5000 XPR"},
		{name: "XUSDC pads to six decimals", amount: "12.5", symbol: "XUSDC", expected: "12.500000 XUSDC"},
		{name: "METAL pads to eight decimals", amount: "1", symbol: "METAL", expected: "1.00000000 METAL"},
		{name: "LOAN", amount: "0.1", symbol: "LOAN", expected: "0.1000 LOAN"},
		{name: "lowercase symbol", amount: "3", symbol: "xpr", expected: "3.0000 XPR"},
		{name: "extra precision is rounded", amount: "1.23456", symbol: "XPR", expected: "1.2346 XPR"},
		{name: "unknown token", amount: "1", symbol: "DOGE", expectedErr: domain.ErrUnknownToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.FormatQuantity(decimal.RequireFromString(tt.amount), tt.symbol)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenRegistry_FormatQuantity_Idempotent(t *testing.T) {
	reg := registry.NewTokenRegistry(nil)

	first, err := reg.FormatQuantity(decimal.RequireFromString("12.5"), "XPR")
	require.NoError(t, err)

	balance, err := registry.ParseQuantity(first)
	require.NoError(t, err)

	second, err := reg.FormatQuantity(decimal.RequireFromString(balance.Value), balance.Token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTokenRegistry_SettlementSymbol(t *testing.T) {
	reg := registry.NewTokenRegistry(nil)

	got, err := reg.SettlementSymbol("XPR")
	require.NoError(t, err)
	assert.Equal(t, "4,XPR", got)

	got, err = reg.SettlementSymbol("XUSDC")
	require.NoError(t, err)
	assert.Equal(t, "6,XUSDC", got)

	_, err = reg.SettlementSymbol("NOPE")
	assert.ErrorIs(t, err, domain.ErrUnknownToken)
}

func TestTokenRegistry_Overrides(t *testing.T) {
	reg := registry.NewTokenRegistry(map[string]config.TokenConfig{
		"foo": {Contract: "foo.token", Decimals: 2},
		"xpr": {Contract: "other.token", Decimals: 4},
		"bad": {Contract: "", Decimals: 2},
	})

	foo, err := reg.Lookup("FOO")
	require.NoError(t, err)
	assert.Equal(t, registry.Token{Symbol: "FOO", Contract: "foo.token", Decimals: 2}, foo)

	xpr, err := reg.Lookup("XPR")
	require.NoError(t, err)
	assert.Equal(t, "other.token", xpr.Contract)

	assert.False(t, reg.Purchasable("BAD"))
	assert.True(t, reg.Purchasable("METAL"))

	symbols := make([]string, 0)
	for _, token := range reg.Tokens() {
		symbols = append(symbols, token.Symbol)
	}
	assert.Equal(t, []string{"FOO", "LOAN", "METAL", "XPR", "XUSDC"}, symbols)
}

func TestParseQuantity(t *testing.T) {
	b, err := registry.ParseQuantity("12.5000 XPR")
	require.NoError(t, err)
	assert.Equal(t, domain.Balance{Value: "12.5000", Token: "XPR"}, b)

	_, err = registry.ParseQuantity("12.5000")
	assert.Error(t, err)

	_, err = registry.ParseQuantity("abc XPR")
	assert.Error(t, err)
}

func TestTokenRegistryLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string
		validateFunc func(t *testing.T, reg registry.TokenRegistry)
	}{
		{
			name: "successful load with valid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("tokens.json").
					Return([]byte(`{"snips": {"contract": "snipcoins", "decimals": 4}}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validateFunc: func(t *testing.T, reg registry.TokenRegistry) {
				token, err := reg.Lookup("SNIPS")
				require.NoError(t, err)
				assert.Equal(t, "snipcoins", token.Contract)
				assert.True(t, reg.Purchasable("XPR"))
			},
		},
		{
			name: "file read error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("tokens.json").
					Return(nil, assert.AnError)
			},
			expectedErr: "failed to read token registry file",
		},
		{
			name: "JSON parse error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				data := []byte(`invalid json`)
				mockFS.
					EXPECT().
					ReadFile("tokens.json").
					Return(data, nil)
				mockJSON.
					EXPECT().
					Unmarshal(data, gomock.Any()).
					Return(assert.AnError)
			},
			expectedErr: "failed to parse token registry JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)
			tt.setupMocks(mockFS, mockJSON)

			loader := registry.NewTokenRegistryLoader(mockFS, mockJSON)
			reg, err := loader.Load("tokens.json", nil)

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, reg)
				return
			}
			require.NoError(t, err)
			tt.validateFunc(t, reg)
		})
	}
}
