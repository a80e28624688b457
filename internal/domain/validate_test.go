package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNamesJSONFields(t *testing.T) {
	t.Parallel()
	err := Validate(CopyRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "giftcard_name is required")
	assert.Contains(t, err.Error(), "prompt is required")
}

func TestValidateMaxLength(t *testing.T) {
	t.Parallel()
	err := Validate(ImageRequest{GiftcardName: strings.Repeat("a", 201), Description: "scene"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "giftcard_name must be at most 200 characters")
}

func TestValidateAcceptsCompleteRequest(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Validate(ImageRequest{GiftcardName: "x", Description: "y"}))
}
