package errors_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/abstrakts/storefront-core/internal/api/shared/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *apierrors.APIError
		want int
	}{
		{name: "bad request", err: apierrors.NewBadRequestError("bad"), want: http.StatusBadRequest},
		{name: "validation", err: apierrors.NewValidationError("limit"), want: http.StatusBadRequest},
		{name: "not found", err: apierrors.NewNotFoundError("missing"), want: http.StatusNotFound},
		{name: "unauthorized", err: apierrors.NewUnauthorizedError("who"), want: http.StatusUnauthorized},
		{name: "forbidden", err: apierrors.NewForbiddenError("no"), want: http.StatusForbidden},
		{name: "transaction", err: apierrors.NewTransactionError("rejected"), want: http.StatusUnprocessableEntity},
		{name: "service", err: apierrors.NewServiceError("upstream"), want: http.StatusBadGateway},
		{name: "internal", err: apierrors.NewInternalError("oops"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestError(t *testing.T) {
	err := apierrors.NewTransactionError("rejected", "overdrawn balance")
	assert.JSONEq(t, `{"code":"transaction_failed","message":"rejected","details":"overdrawn balance"}`, err.Error())
}
