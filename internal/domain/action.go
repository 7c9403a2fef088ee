package domain

// Authorization names the account and permission that approve an action
type Authorization struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// NewAuthorization returns an active-permission authorization for actor
func NewAuthorization(actor string) Authorization {
	return Authorization{Actor: actor, Permission: ACTIVE_PERMISSION}
}

// Action is a single contract call. Order inside a transaction is significant.
type Action struct {
	Account       string          `json:"account"`
	Name          string          `json:"name"`
	Authorization []Authorization `json:"authorization"`
	Data          interface{}     `json:"data"`
}

// Transaction is the ordered set of actions signed and broadcast atomically
type Transaction struct {
	Actions []Action `json:"actions"`
}

// SignOptions controls TAPOS reference and expiration for the signed transaction
type SignOptions struct {
	BlocksBehind  int `json:"blocksBehind"`
	ExpireSeconds int `json:"expireSeconds"`
}

// DefaultSignOptions returns the options used for every submission
func DefaultSignOptions() SignOptions {
	return SignOptions{
		BlocksBehind:  DEFAULT_BLOCKS_BEHIND,
		ExpireSeconds: DEFAULT_EXPIRE_SECONDS,
	}
}

// Session is the wallet session a transaction is built for
type Session struct {
	Actor      string   `json:"actor"`
	Permission string   `json:"permission"`
	ChainKey   ChainKey `json:"chain_key"`
}

// Authorization returns the authorization derived from the session
func (s Session) Authorization() Authorization {
	if s.Permission == "" {
		return NewAuthorization(s.Actor)
	}
	return Authorization{Actor: s.Actor, Permission: s.Permission}
}
