package domain

import "errors"

var (
	// ErrUnknownChain is returned when a chain key is not configured
	ErrUnknownChain = errors.New("unknown chain")

	// ErrUnknownToken is returned when a token symbol is not in the registry
	ErrUnknownToken = errors.New("unknown token")

	// ErrMalformedSale is returned when an indexer sale record misses required fields
	ErrMalformedSale = errors.New("malformed sale record")

	// ErrNotLoggedIn is returned when a transaction is requested without an actor
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrWrongChain is returned when the session is bound to another network
	ErrWrongChain = errors.New("session is connected to another chain")

	// ErrNoActions is returned when an intent produces nothing to sign
	ErrNoActions = errors.New("no actions to submit")

	// ErrInvalidPrice is returned when a listing price or amount is not positive
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidDuration is returned when an auction is shorter than the minimum
	ErrInvalidDuration = errors.New("invalid auction duration")

	// ErrNotFound is returned when a lookup yields nothing
	ErrNotFound = errors.New("not found")
)
