package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/abstrakts/storefront-core/internal/api/middleware"
	"github.com/abstrakts/storefront-core/internal/domain"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, chains []domain.ChainKey) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Media resolution is chain independent
		v1.GET("/media/:cid", handler.GetMedia)
	}

	// Per-network routes
	chain := v1.Group("/:chain_key", middleware.ChainKey(chains))
	{
		// Market reads (public read access)
		chain.GET("/sales", handler.ListSales)
		chain.GET("/showcases", handler.ListShowcases)
		chain.GET("/assets/:asset_id/price", handler.GetSalePrice)
		chain.GET("/collections/:collection_name", handler.GetCollection)

		// Account reads (public read access)
		chain.GET("/accounts/:account", handler.GetProfile)
		chain.GET("/accounts/:account/balances", handler.GetBalances)
		chain.GET("/accounts/:account/storefront", handler.GetStorefront)
		chain.GET("/accounts/:account/claimable-auctions", handler.GetClaimableAuctions)
		chain.GET("/accounts/:account/keys", handler.GetKeys)

		// Dry run of an intent (open, no authentication required)
		chain.POST("/transactions/build", handler.BuildTransaction)

		// Submission as the token subject (requires authentication)
		chain.POST("/transactions", middleware.Auth(authCfg), handler.SubmitTransaction)
	}
}
