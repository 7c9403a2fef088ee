package adapter_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abstrakts/storefront-core/internal/adapter"
	"github.com/abstrakts/storefront-core/internal/mocks"
)

func TestFingerprint_IgnoresKeyOrder(t *testing.T) {
	j := adapter.NewJCS()

	a, err := adapter.Fingerprint(j, []byte(`{"account":"atomicmarket","name":"purchasesale","data":{"buyer":"alice","sale_id":"5"}}`))
	require.NoError(t, err)
	b, err := adapter.Fingerprint(j, []byte(`{"data":{"sale_id":"5","buyer":"alice"},"name":"purchasesale","account":"atomicmarket"}`))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprint_TransformError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	j := mocks.NewMockJCS(ctrl)
	j.EXPECT().Transform([]byte(`{`)).Return(nil, errors.New("unexpected end of input"))

	_, err := adapter.Fingerprint(j, []byte(`{`))
	assert.ErrorContains(t, err, "failed to canonicalize JSON")
}
