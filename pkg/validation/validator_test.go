package validation

import (
	"strings"
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"user_name" validate:"username"`
	Age  int    `json:"age_num" validate:"adult"`
	City string `json:"address" validate:"required,max=5"`
}

func TestStruct(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		in     sample
		field  string
		reason string
	}{
		{"valid", sample{"ann", 18, "Oslo"}, "", ""},
		{"missing name", sample{"", 30, "Oslo"}, "user_name", "must be non-empty and at most 255 characters long"},
		{"underage", sample{"ann", 17, "Oslo"}, "age_num", "must be 18 or older to have an account"},
		{"missing address", sample{"ann", 40, ""}, "address", "is required"},
		{"long address", sample{"ann", 40, "Bergen"}, "address", "must be at most 5 characters long"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.in)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, domain.ErrValidation)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.reason, verr.Reason)
		})
	}
}

func TestStructPasswordLength(t *testing.T) {
	t.Parallel()
	type creds struct {
		Password string `json:"password" validate:"password"`
	}
	assert.NoError(t, Struct(creds{strings.Repeat("a", MaxPasswordBytes)}))

	for name, pw := range map[string]string{
		"empty":     "",
		"too long":  strings.Repeat("a", MaxPasswordBytes+1),
		"multibyte": strings.Repeat("ø", 37),
	} {
		err := Struct(creds{pw})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, name)
		assert.Equal(t, "password", verr.Field, name)
	}
}
