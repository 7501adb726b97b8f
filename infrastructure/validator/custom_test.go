package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Aa1!aaaa", true},
		{"too short", "Aa1!a", false},
		{"no upper", "aa1!aaaa", false},
		{"no lower", "AA1!AAAA", false},
		{"no digit", "Aa!!aaaa", false},
		{"no special", "Aa1aaaaa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatorInstance.ValidateValue(tt.password, "password")
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,password"`
	}

	errs := ValidatorInstance.ValidateStruct(payload{Email: "s100@uni.edu", Password: "Aa1!aaaa"})
	assert.Nil(t, errs)

	errs = ValidatorInstance.ValidateStruct(payload{Email: "not-an-email", Password: "weak"})
	assert.NotNil(t, errs)
	assert.Len(t, *errs, 2)
}
