package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abstrakts/storefront-core/internal/api/shared/validator"
	"github.com/abstrakts/storefront-core/internal/market"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple", input: "alice", want: true},
		{name: "digits and dots", input: "abstrakts.x1", want: true},
		{name: "twelve chars", input: "abcdefghijkl", want: true},
		{name: "single char", input: "a", want: true},
		{name: "empty", input: "", want: false},
		{name: "thirteen chars", input: "abcdefghijklm", want: false},
		{name: "uppercase", input: "Alice", want: false},
		{name: "digit outside range", input: "alice6", want: false},
		{name: "trailing dot", input: "alice.", want: false},
		{name: "underscore", input: "bad_name", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsValidName(tt.input))
		})
	}
}

func TestVar(t *testing.T) {
	assert.NoError(t, validator.Var("alice", "required,eosname"))
	assert.Error(t, validator.Var("", "required,eosname"))
	assert.Error(t, validator.Var("Alice", validator.EOSNAME_TAG))
}

func TestStruct(t *testing.T) {
	assert.NoError(t, validator.Struct(&market.Transfer{To: "bob", Token: "XPR"}))
	assert.Error(t, validator.Struct(&market.Transfer{To: "Bob", Token: "XPR"}))
	assert.Error(t, validator.Struct(&market.Transfer{To: "bob"}))
	assert.Error(t, validator.Struct(&market.SpecialMint{Schema: "art"}))
}
