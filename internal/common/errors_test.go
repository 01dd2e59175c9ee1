package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		want    string
	}{
		{
			name:    "with cause",
			err:     errors.New("disk full"),
			message: "could not save source DN111",
			want:    "could not save source DN111: disk full",
		},
		{
			name:    "without cause",
			err:     nil,
			message: "no files found to import",
			want:    "no files found to import",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUserError(tt.message, tt.err).Error())
		})
	}
}

func TestUserErrorUnwraps(t *testing.T) {
	err := NewUserError("could not read config", ErrMissingConfig)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestUserErrorSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("import: %w", NewUserError("could not save source", ErrDuplicateEntry))

	var userErr *UserError
	require.ErrorAs(t, wrapped, &userErr)
	assert.Equal(t, "could not save source", userErr.UserMessage)
	assert.ErrorIs(t, wrapped, ErrDuplicateEntry)
}
