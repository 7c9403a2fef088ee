package domain

import "time"

// MarketEvent is published after a transaction was accepted by the chain
type MarketEvent struct {
	ID            string    `json:"id"`
	ChainKey      ChainKey  `json:"chain_key"`
	Kind          string    `json:"kind"`
	Actor         string    `json:"actor"`
	TransactionID string    `json:"transaction_id"`
	Fingerprint   string    `json:"fingerprint"`
	Collection    string    `json:"collection,omitempty"`
	AssetIDs      []string  `json:"asset_ids,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
