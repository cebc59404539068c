package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 20, ParseIntDefault("", 20))
	assert.Equal(t, 20, ParseIntDefault("abc", 20))
	assert.Equal(t, 7, ParseIntDefault("7", 20))
	assert.Equal(t, -3, ParseIntDefault("-3", 20))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(0, 1, 100))
	assert.Equal(t, 100, ClampInt(500, 1, 100))
	assert.Equal(t, 42, ClampInt(42, 1, 100))
}

func TestPage(t *testing.T) {
	limit, offset := Page("", "", 20, 100)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, offset = Page("9999", "-5", 20, 100)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)

	limit, offset = Page("50", "10", 20, 100)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 10, offset)
}
