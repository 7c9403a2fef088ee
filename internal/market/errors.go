package market

import (
	"errors"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/providers/wallet"
)

// Failure is what a user sees when a submission fails
type Failure struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SubmissionError is returned by the composer when building or signing fails
type SubmissionError struct {
	SubmissionID string
	Kind         Kind
	Failure      Failure
	Err          error
}

func (e *SubmissionError) Error() string {
	return e.Failure.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// AsSubmissionError unwraps err into a SubmissionError when possible
func AsSubmissionError(err error) (*SubmissionError, bool) {
	var se *SubmissionError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

var fallbackMessages = map[Kind]string{
	KindBuy:              "Unable to buy the NFT",
	KindSell:             "Unable to sell NFTs",
	KindAuction:          "Unable to auction NFTs",
	KindCancelSale:       "Unable to cancel sales",
	KindClaimBalance:     "Unable to claim",
	KindClaimAuction:     "Unable to claim",
	KindTransfer:         "Unable to transfer",
	KindUpdateStorefront: "Unable to update storefront",
	KindSpecialMint:      "Unable to mint",
}

// ExtractErrorMessage returns the first detail message reported by the chain,
// or the fallback message of kind
func ExtractErrorMessage(kind Kind, err error) string {
	if chainErr, ok := wallet.AsChainError(err); ok {
		if msg, ok := chainErr.DetailMessage(); ok {
			return msg
		}
	}
	if msg, ok := fallbackMessages[kind]; ok {
		return msg
	}
	return "Unable to submit the transaction"
}

// NewFailure builds the user-facing failure of err
func NewFailure(j adapter.JSON, kind Kind, err error) Failure {
	return Failure{
		Message: ExtractErrorMessage(kind, err),
		Details: errorDetails(j, err),
	}
}

// errorDetails renders err as indented JSON, the chain error when there is one
func errorDetails(j adapter.JSON, err error) string {
	var payload interface{} = map[string]string{"message": err.Error()}
	if chainErr, ok := wallet.AsChainError(err); ok {
		payload = chainErr
	}

	details, marshalErr := j.MarshalIndent(payload, "", "  ")
	if marshalErr != nil {
		return err.Error()
	}
	return string(details)
}
