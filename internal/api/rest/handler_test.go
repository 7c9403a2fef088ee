package rest_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstrakts/storefront-core/internal/api/middleware"
	"github.com/abstrakts/storefront-core/internal/api/rest"
	"github.com/abstrakts/storefront-core/internal/api/shared/dto"
	apierrors "github.com/abstrakts/storefront-core/internal/api/shared/errors"
	"github.com/abstrakts/storefront-core/internal/domain"
	"github.com/abstrakts/storefront-core/internal/inventory"
	"github.com/abstrakts/storefront-core/internal/logger"
	"github.com/abstrakts/storefront-core/internal/market"
	"github.com/abstrakts/storefront-core/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type routerFixture struct {
	router   *gin.Engine
	executor *mocks.MockAPIExecutor
	key      *rsa.PrivateKey
}

func newRouterFixture(t *testing.T, ctrl *gomock.Controller) routerFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := gin.New()
	router.Use(middleware.RequestID())
	rest.SetupRoutes(router, rest.NewHandler(false, exec), middleware.AuthConfig{
		JWTPublicKey: string(pemKey),
		APIKeys:      []string{"backend-key"},
	}, []domain.ChainKey{domain.ChainXPRNetwork, domain.ChainXPRNetworkTest})

	return routerFixture{router: router, executor: exec, key: key}
}

func (f routerFixture) token(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(f.key)
	require.NoError(t, err)
	return signed
}

func (f routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(middleware.REQUEST_ID_HEADER))
}

func TestListSales(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantFast  bool
	}{
		{name: "defaults", query: "", wantLimit: 100},
		{name: "capped limit", query: "?limit=1000", wantLimit: 100},
		{name: "fast preview", query: "?limit=20&fast=true", wantLimit: 20, wantFast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newRouterFixture(t, ctrl)

			f.executor.EXPECT().
				ListSales(gomock.Any(), domain.ChainXPRNetwork, "", "", tt.wantLimit, tt.wantFast).
				Return(&dto.SalesResponse{Items: []domain.ListedAsset{}, Fast: tt.wantFast}, nil)

			rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/xprnetwork/sales"+tt.query, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestListSales_InvalidSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/xprnetwork/sales?seller=NotAnAccount", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, rec).Code)
}

func TestUnknownChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/ethereum/sales", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, rec).Code)
}

func TestListShowcases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	f.executor.EXPECT().
		ListShowcases(gomock.Any(), domain.ChainXPRNetworkTest, []string{"abstrakts", "pixels"}, "alice", true).
		Return(&dto.ShowcasesResponse{Showcases: []inventory.Showcase{{Collection: "abstrakts"}}}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet,
		"/api/v1/xprnetwork-test/showcases?collection=abstrakts,pixels&seller=alice&fallback=true", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ShowcasesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Showcases, 1)
	assert.Equal(t, "abstrakts", resp.Showcases[0].Collection)
}

func TestListShowcases_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "no collection", query: ""},
		{name: "too many collections", query: "?collection=a,b,c,d"},
		{name: "invalid collection", query: "?collection=Bad_Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newRouterFixture(t, ctrl)

			rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/xprnetwork/showcases"+tt.query, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetSalePrice_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	f.executor.EXPECT().
		GetSalePrice(gomock.Any(), domain.ChainXPRNetwork, "100").
		Return(nil, apierrors.NewNotFoundError("Asset is not on sale", "100"))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/xprnetwork/assets/100/price", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Asset is not on sale", decodeError(t, rec).Message)
}

func TestGetBalances_InvalidAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/xprnetwork/accounts/ALICE/balances", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStorefront_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	f.executor.EXPECT().
		GetStorefront(gomock.Any(), domain.ChainXPRNetwork, "alice").
		Return(nil, assert.AnError)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/xprnetwork/accounts/alice/storefront", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apierrors.ErrCodeInternalError, apiErr.Code)
	assert.Empty(t, apiErr.Details)
}

func TestBuildTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	f.executor.EXPECT().
		BuildTransaction(gomock.Any(), domain.ChainXPRNetwork, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.ChainKey, req *dto.TransactionRequest) (*market.Outcome, error) {
			assert.Equal(t, market.KindClaimAuction, req.Kind)
			assert.Equal(t, "alice", req.Actor)
			return &market.Outcome{Kind: market.KindClaimAuction, Actions: []domain.Action{{Name: "cancelauct"}}}, nil
		})

	body := []byte(`{"kind":"claim_auction","actor":"alice","intent":{"auction_ids":["7"]}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/xprnetwork/transactions/build", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := f.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cancelauct")
}

func TestBuildTransaction_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `kind=buy`},
		{name: "missing kind", body: `{"intent":{}}`},
		{name: "unknown kind", body: `{"kind":"burn","intent":{}}`},
		{name: "missing intent", body: `{"kind":"buy"}`},
		{name: "invalid actor", body: `{"kind":"buy","actor":"Alice!","intent":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newRouterFixture(t, ctrl)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/xprnetwork/transactions/build", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")

			rec := f.do(req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSubmitTransaction_RequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	body := []byte(`{"kind":"claim_auction","intent":{"auction_ids":["7"]}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/xprnetwork/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := f.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitTransaction_APIKeyHasNoSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	body := []byte(`{"kind":"claim_auction","intent":{"auction_ids":["7"]}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/xprnetwork/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey backend-key")

	rec := f.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitTransaction_ActsAsTokenSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	f.executor.EXPECT().
		SubmitTransaction(gomock.Any(), domain.ChainXPRNetwork, "alice", gomock.Any()).
		Return(&market.Outcome{SubmissionID: "01HZY", Kind: market.KindClaimAuction, ReloadAfterMS: 6000}, nil)

	body := []byte(`{"kind":"claim_auction","intent":{"auction_ids":["7"]}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/xprnetwork/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token(t, "alice"))

	rec := f.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reload_after_ms":6000`)
}

func TestSubmitTransaction_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	f.executor.EXPECT().
		SubmitTransaction(gomock.Any(), domain.ChainXPRNetwork, "alice", gomock.Any()).
		Return(nil, apierrors.NewTransactionError("assertion failure with message: sale not found"))

	body := []byte(`{"kind":"buy","intent":{"price":"10","token":"XPR","sale_id":"5"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/xprnetwork/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.token(t, "alice"))

	rec := f.do(req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apierrors.ErrCodeTransactionFailed, decodeError(t, rec).Code)
}
