package validator

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// EOSNAME_TAG is the validation tag for chain account names
const EOSNAME_TAG = "eosname"

// Account names are 1 to 12 characters of a-z, 1-5 and dots, not ending with a dot
var eosNamePattern = regexp.MustCompile(`^[a-z1-5.]{0,11}[a-z1-5]$`)

var validate = newValidate()

// newValidate reads the same struct tags as gin's binding engine
func newValidate() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

// IsValidName reports whether name is a valid chain account name
func IsValidName(name string) bool {
	return eosNamePattern.MatchString(name)
}

// Register adds the custom rules to v
func Register(v *validator.Validate) error {
	return v.RegisterValidation(EOSNAME_TAG, func(fl validator.FieldLevel) bool {
		return IsValidName(fl.Field().String())
	})
}

// RegisterWithGin adds the custom rules to gin's binding engine
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

// Var validates a single value against tag, e.g. Var("alice", "required,eosname")
func Var(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// Struct validates the binding tags of a decoded request value
func Struct(value interface{}) error {
	return validate.Struct(value)
}
