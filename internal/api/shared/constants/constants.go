package constants

const (
	MAX_SALES_LIMIT          = 100
	DEFAULT_SALES_LIMIT      = 100
	MAX_SHOWCASE_COLLECTIONS = 3
	SERVICE_NAME             = "storefront-core-api"
)
