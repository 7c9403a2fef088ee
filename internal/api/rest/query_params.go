package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abstrakts/storefront-core/internal/api/shared/constants"
	"github.com/abstrakts/storefront-core/internal/api/shared/validator"
)

// ListSalesQueryParams holds query parameters for GET /sales
type ListSalesQueryParams struct {
	Collection string `form:"collection"`
	Seller     string `form:"seller"`
	Limit      int    `form:"limit,default=100"`
	// Fast reads only the first page
	Fast bool `form:"fast,default=false"`
}

// ListShowcasesQueryParams holds query parameters for GET /showcases
type ListShowcasesQueryParams struct {
	Collections []string `form:"collection"`
	Seller      string   `form:"seller"`
	Fallback    bool     `form:"fallback,default=false"`
}

// GetKeysQueryParams holds query parameters for GET /accounts/:account/keys
type GetKeysQueryParams struct {
	Collection string `form:"collection"`
}

// ParseListSalesQuery parses query parameters for GET /sales
func ParseListSalesQuery(c *gin.Context) (*ListSalesQueryParams, error) {
	var params ListSalesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_SALES_LIMIT
	}
	if params.Limit > constants.MAX_SALES_LIMIT {
		params.Limit = constants.MAX_SALES_LIMIT
	}

	return &params, nil
}

// Validate validates the sales filters
func (p *ListSalesQueryParams) Validate() error {
	if p.Seller != "" && !validator.IsValidName(p.Seller) {
		return fmt.Errorf("invalid seller: %s", p.Seller)
	}
	if p.Collection != "" && !validator.IsValidName(p.Collection) {
		return fmt.Errorf("invalid collection: %s", p.Collection)
	}
	return nil
}

// ParseListShowcasesQuery parses query parameters for GET /showcases.
// Collections may be repeated or comma separated.
func ParseListShowcasesQuery(c *gin.Context) (*ListShowcasesQueryParams, error) {
	var params ListShowcasesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	var collections []string
	for _, value := range params.Collections {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				collections = append(collections, name)
			}
		}
	}
	params.Collections = collections

	return &params, nil
}

// Validate validates the showcase filters
func (p *ListShowcasesQueryParams) Validate() error {
	if len(p.Collections) == 0 {
		return fmt.Errorf("at least one collection is required")
	}
	if len(p.Collections) > constants.MAX_SHOWCASE_COLLECTIONS {
		return fmt.Errorf("at most %d collections are allowed", constants.MAX_SHOWCASE_COLLECTIONS)
	}
	for _, name := range p.Collections {
		if !validator.IsValidName(name) {
			return fmt.Errorf("invalid collection: %s", name)
		}
	}
	if p.Seller != "" && !validator.IsValidName(p.Seller) {
		return fmt.Errorf("invalid seller: %s", p.Seller)
	}
	return nil
}

// ParseGetKeysQuery parses query parameters for GET /accounts/:account/keys
func ParseGetKeysQuery(c *gin.Context) (*GetKeysQueryParams, error) {
	var params GetKeysQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Collection != "" && !validator.IsValidName(params.Collection) {
		return nil, fmt.Errorf("invalid collection: %s", params.Collection)
	}
	return &params, nil
}
