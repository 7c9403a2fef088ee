package domain

import "time"

const (
	// Network keys
	ChainXPRNetwork     ChainKey = "xprnetwork"
	ChainXPRNetworkTest ChainKey = "xprnetwork-test"

	// Contract accounts
	ATOMIC_MARKET_CONTRACT = "atomicmarket"
	ATOMIC_ASSETS_CONTRACT = "atomicassets"
	STOREFRONT_CONTRACT    = "storefront"
	SPECIAL_MINT_CONTRACT  = "specialmint"
	XTOKENS_CONTRACT       = "xtokens"

	// DEFAULT_MARKETPLACE is the maker/taker marketplace credited on listings and purchases
	DEFAULT_MARKETPLACE = "abstraktsmkt"

	// Permission used for every authorization
	ACTIVE_PERMISSION = "active"

	// Sale states on the indexer
	SALE_STATE_LISTED = 1

	// Auction states on the indexer
	AUCTION_STATE_LISTED   = 1
	AUCTION_STATE_CANCELED = 2
	AUCTION_STATE_SOLD     = 3
	AUCTION_STATE_INVALID  = 4

	// DEFAULT_PAGE_LIMIT is the page size used when the caller does not provide one
	DEFAULT_PAGE_LIMIT = 100

	// Signing defaults
	DEFAULT_BLOCKS_BEHIND  = 3
	DEFAULT_EXPIRE_SECONDS = 30

	// MIN_AUCTION_DURATION is the shortest auction the market accepts
	MIN_AUCTION_DURATION = 5 * time.Minute

	DEFAULT_RELOAD_DELAY       = 6 * time.Second
	DEFAULT_SHORT_RELOAD_DELAY = 3 * time.Second

	DEFAULT_IPFS_GATEWAY = "https://ipfs.io"
)
