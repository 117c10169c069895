package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, validStatus("pending"))
	assert.True(t, validStatus("approved"))
	assert.True(t, validStatus("rejected"))
	assert.False(t, validStatus("archived"))
	assert.False(t, validStatus(""))
}
