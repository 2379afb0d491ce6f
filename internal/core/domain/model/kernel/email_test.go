package kernel_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  error
	}{
		{name: "plain address", input: "ana@example.com", expected: "ana@example.com"},
		{name: "normalizes case and spaces", input: "  Ana@Example.COM ", expected: "ana@example.com"},
		{name: "empty", input: "   ", wantErr: errs.ErrValueIsRequired},
		{name: "missing domain", input: "ana", wantErr: errs.ErrValueIsInvalid},
		{name: "display name is not a bare address", input: "Ana <ana@example.com>", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := kernel.NewEmail(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, email.String())
			require.NoError(t, email.Validate())
		})
	}
}

func TestEmail_IsEqual(t *testing.T) {
	a := kernel.MustNewEmail("ana@example.com")
	b := kernel.MustNewEmail("ANA@example.com")
	c := kernel.MustNewEmail("bob@example.com")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestEmail_ZeroValueIsInvalid(t *testing.T) {
	var email kernel.Email

	require.ErrorIs(t, email.Validate(), errs.ErrValueIsRequired)
}

func TestMustNewEmail_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewEmail("nope") })
}
