package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	t.Run("float input", func(t *testing.T) {
		amount, err := ParsePrice(19.99)
		assert.NoError(t, err)
		assert.EqualValues(t, 1999, amount)
	})

	t.Run("integer input", func(t *testing.T) {
		amount, err := ParsePrice(10)
		assert.NoError(t, err)
		assert.EqualValues(t, 1000, amount)
	})

	t.Run("string input", func(t *testing.T) {
		amount, err := ParsePrice("12.5")
		assert.NoError(t, err)
		assert.EqualValues(t, 1250, amount)
	})

	t.Run("rounding", func(t *testing.T) {
		amount, err := ParsePrice(19.999)
		assert.NoError(t, err)
		assert.EqualValues(t, 2000, amount)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ParsePrice("not-a-number")
		assert.Error(t, err)
	})
}

func TestJSONF(t *testing.T) {
	assert.Equal(t, `{"a":1}`, JSONF(map[string]int{"a": 1}))
}
