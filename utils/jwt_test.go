package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, h := range []string{"", "Bearer ", "Basic abc", "bearer abc", "abc"} {
		_, err := ExtractTokenFromHeader(h)
		assert.ErrorIs(t, err, ErrNoBearerToken, h)
	}
}
