package inventory

import (
	"fmt"

	"github.com/abstrakts/storefront-core/internal/domain"
)

// Flatten maps one sale to one ListedAsset per contained asset.
// The listing price is price.amount scaled down by the token precision;
// listing_price is only read when the indexer left amount empty.
func Flatten(sale domain.SaleRecord) ([]domain.ListedAsset, error) {
	if sale.SaleID == "" {
		return nil, fmt.Errorf("%w: missing sale_id", domain.ErrMalformedSale)
	}

	price := sale.Price
	if price.Amount == "" {
		price.Amount = sale.ListingPrice
	}
	listingPrice, err := price.Display()
	if err != nil {
		return nil, fmt.Errorf("%w: sale %s: %v", domain.ErrMalformedSale, sale.SaleID, err)
	}

	symbol := price.TokenSymbol
	if symbol == "" {
		symbol = sale.ListingSymbol
	}

	listed := make([]domain.ListedAsset, 0, len(sale.Assets))
	for i, asset := range sale.Assets {
		if asset.AssetID == "" {
			return nil, fmt.Errorf("%w: sale %s: asset %d has no asset_id", domain.ErrMalformedSale, sale.SaleID, i)
		}

		collection := asset.Collection
		if collection.CollectionName == "" {
			collection = sale.Collection
		}

		listed = append(listed, domain.ListedAsset{
			AssetID:       asset.AssetID,
			SaleID:        sale.SaleID,
			ListingPrice:  listingPrice,
			ListingSymbol: symbol,
			Name:          asset.Name,
			Data:          asset.Data,
			Owner:         asset.Owner,
			Collection:    collection,
		})
	}

	return listed, nil
}
