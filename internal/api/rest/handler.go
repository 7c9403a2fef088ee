package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abstrakts/storefront-core/internal/api/middleware"
	"github.com/abstrakts/storefront-core/internal/api/shared/constants"
	"github.com/abstrakts/storefront-core/internal/api/shared/dto"
	"github.com/abstrakts/storefront-core/internal/api/shared/executor"
	"github.com/abstrakts/storefront-core/internal/api/shared/validator"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListSales retrieves the flattened active listings
	// GET /api/v1/:chain_key/sales?collection=<name>&seller=<account>&limit=<limit>&fast=<bool>
	ListSales(c *gin.Context)

	// ListShowcases retrieves a preview of up to three collections
	// GET /api/v1/:chain_key/showcases?collection=<name1>,<name2>&seller=<account>&fallback=<bool>
	ListShowcases(c *gin.Context)

	// GetSalePrice retrieves the buy prefill of an asset
	// GET /api/v1/:chain_key/assets/:asset_id/price
	GetSalePrice(c *gin.Context)

	// GetCollection retrieves a collection by name
	// GET /api/v1/:chain_key/collections/:collection_name
	GetCollection(c *gin.Context)

	// GetProfile retrieves the public profile of an account
	// GET /api/v1/:chain_key/accounts/:account
	GetProfile(c *gin.Context)

	// GetBalances retrieves the withdrawable market balances of an account
	// GET /api/v1/:chain_key/accounts/:account/balances
	GetBalances(c *gin.Context)

	// GetStorefront retrieves the storefront settings and showcases of an account
	// GET /api/v1/:chain_key/accounts/:account/storefront
	GetStorefront(c *gin.Context)

	// GetClaimableAuctions retrieves the ended auctions a seller can take back
	// GET /api/v1/:chain_key/accounts/:account/claimable-auctions
	GetClaimableAuctions(c *gin.Context)

	// GetKeys retrieves the access keys held by an account
	// GET /api/v1/:chain_key/accounts/:account/keys?collection=<name>
	GetKeys(c *gin.Context)

	// GetMedia resolves an IPFS reference and detects its type
	// GET /api/v1/media/:cid
	GetMedia(c *gin.Context)

	// BuildTransaction returns the actions of an intent without signing (open, no authentication required)
	// POST /api/v1/:chain_key/transactions/build
	BuildTransaction(c *gin.Context)

	// SubmitTransaction signs and broadcasts an intent as the authenticated account (requires authentication)
	// POST /api/v1/:chain_key/transactions
	SubmitTransaction(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// ListSales retrieves the flattened active listings
func (h *handler) ListSales(c *gin.Context) {
	queryParams, err := ParseListSalesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListSales(
		c.Request.Context(),
		middleware.GetChainKey(c),
		queryParams.Collection,
		queryParams.Seller,
		queryParams.Limit,
		queryParams.Fast,
	)
	if err != nil {
		h.respondError(c, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListShowcases retrieves a preview of each requested collection
func (h *handler) ListShowcases(c *gin.Context) {
	queryParams, err := ParseListShowcasesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListShowcases(
		c.Request.Context(),
		middleware.GetChainKey(c),
		queryParams.Collections,
		queryParams.Seller,
		queryParams.Fallback,
	)
	if err != nil {
		h.respondError(c, err, "Failed to list showcases")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSalePrice retrieves the buy prefill of an asset
func (h *handler) GetSalePrice(c *gin.Context) {
	assetID := c.Param("asset_id")
	if assetID == "" {
		respondBadRequest(c, "asset_id is required")
		return
	}

	price, err := h.executor.GetSalePrice(c.Request.Context(), middleware.GetChainKey(c), assetID)
	if err != nil {
		h.respondError(c, err, "Failed to get sale price", zap.String("asset_id", assetID))
		return
	}

	c.JSON(http.StatusOK, price)
}

// GetCollection retrieves a collection by name
func (h *handler) GetCollection(c *gin.Context) {
	collectionName := c.Param("collection_name")
	if !validator.IsValidName(collectionName) {
		respondBadRequest(c, "Invalid collection name", collectionName)
		return
	}

	collection, err := h.executor.GetCollection(c.Request.Context(), middleware.GetChainKey(c), collectionName)
	if err != nil {
		h.respondError(c, err, "Failed to get collection", zap.String("collection", collectionName))
		return
	}

	c.JSON(http.StatusOK, collection)
}

// GetProfile retrieves the public profile of an account
func (h *handler) GetProfile(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	profile, err := h.executor.GetProfile(c.Request.Context(), middleware.GetChainKey(c), account)
	if err != nil {
		h.respondError(c, err, "Failed to get profile", zap.String("account", account))
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetBalances retrieves the withdrawable market balances of an account
func (h *handler) GetBalances(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	balances, err := h.executor.GetBalances(c.Request.Context(), middleware.GetChainKey(c), account)
	if err != nil {
		h.respondError(c, err, "Failed to get balances", zap.String("account", account))
		return
	}

	c.JSON(http.StatusOK, balances)
}

// GetStorefront retrieves the storefront settings and showcases of an account
func (h *handler) GetStorefront(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	storefront, err := h.executor.GetStorefront(c.Request.Context(), middleware.GetChainKey(c), account)
	if err != nil {
		h.respondError(c, err, "Failed to get storefront", zap.String("account", account))
		return
	}

	c.JSON(http.StatusOK, storefront)
}

// GetClaimableAuctions retrieves the ended auctions a seller can take back
func (h *handler) GetClaimableAuctions(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	auctions, err := h.executor.GetClaimableAuctions(c.Request.Context(), middleware.GetChainKey(c), account)
	if err != nil {
		h.respondError(c, err, "Failed to get claimable auctions", zap.String("account", account))
		return
	}

	c.JSON(http.StatusOK, auctions)
}

// GetKeys retrieves the access keys held by an account
func (h *handler) GetKeys(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}

	queryParams, err := ParseGetKeysQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	keys, err := h.executor.GetKeys(c.Request.Context(), middleware.GetChainKey(c), account, queryParams.Collection)
	if err != nil {
		h.respondError(c, err, "Failed to get keys", zap.String("account", account))
		return
	}

	c.JSON(http.StatusOK, keys)
}

// GetMedia resolves an IPFS reference and detects its type
func (h *handler) GetMedia(c *gin.Context) {
	cid := c.Param("cid")
	if cid == "" {
		respondBadRequest(c, "cid is required")
		return
	}

	resolved, err := h.executor.GetMedia(c.Request.Context(), cid)
	if err != nil {
		h.respondError(c, err, "Failed to resolve media", zap.String("cid", cid))
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// BuildTransaction returns the actions of an intent without signing
func (h *handler) BuildTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(c, err, "Invalid request body")
		return
	}

	outcome, err := h.executor.BuildTransaction(c.Request.Context(), middleware.GetChainKey(c), &req)
	if err != nil {
		h.respondError(c, err, "Failed to build transaction", zap.String("kind", string(req.Kind)))
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// SubmitTransaction signs and broadcasts an intent as the authenticated account
func (h *handler) SubmitTransaction(c *gin.Context) {
	actor := middleware.Subject(c)
	if actor == "" {
		h.respondError(c, errUnauthorizedSubject, "Authentication failed")
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(c, err, "Invalid request body")
		return
	}

	outcome, err := h.executor.SubmitTransaction(c.Request.Context(), middleware.GetChainKey(c), actor, &req)
	if err != nil {
		h.respondError(c, err, "Failed to submit transaction", zap.String("kind", string(req.Kind)))
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": constants.SERVICE_NAME,
	})
}

// accountParam reads and validates the :account path parameter
func accountParam(c *gin.Context) (string, bool) {
	account := c.Param("account")
	if !validator.IsValidName(account) {
		respondBadRequest(c, "Invalid account name", account)
		return "", false
	}
	return account, true
}
