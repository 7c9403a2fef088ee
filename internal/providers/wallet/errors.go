package wallet

import "errors"

// ErrorDetail is one entry of the node's error details
type ErrorDetail struct {
	Message    string `json:"message"`
	File       string `json:"file,omitempty"`
	LineNumber int    `json:"line_number,omitempty"`
	Method     string `json:"method,omitempty"`
}

// NodeErrorBody is the error object of a rejected transaction
type NodeErrorBody struct {
	Code    int           `json:"code"`
	Name    string        `json:"name"`
	What    string        `json:"what"`
	Details []ErrorDetail `json:"details"`
}

// NodeError is the JSON answer of the chain node
type NodeError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Error   NodeErrorBody `json:"error"`
}

// ErrorCause carries the node answer that caused the failure
type ErrorCause struct {
	JSON *NodeError `json:"json,omitempty"`
}

// ChainError is a transaction rejected by the wallet or the chain
type ChainError struct {
	Message    string      `json:"message"`
	Cause      *ErrorCause `json:"cause,omitempty"`
	StatusCode int         `json:"-"`
}

func (e *ChainError) Error() string {
	if msg, ok := e.DetailMessage(); ok {
		return msg
	}
	return e.Message
}

// DetailMessage returns cause.json.error.details[0].message when present
func (e *ChainError) DetailMessage() (string, bool) {
	if e == nil || e.Cause == nil || e.Cause.JSON == nil {
		return "", false
	}
	details := e.Cause.JSON.Error.Details
	if len(details) == 0 || details[0].Message == "" {
		return "", false
	}
	return details[0].Message, true
}

// AsChainError unwraps err into a ChainError when possible
func AsChainError(err error) (*ChainError, bool) {
	var ce *ChainError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
