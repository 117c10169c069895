package util

import (
	"edu-manage/biz/application/dto/basic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageOpt(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		skip, limit := ParsePageOpt(nil)
		assert.EqualValues(t, 0, skip)
		assert.EqualValues(t, 10, limit)

		skip, limit = ParsePageOpt(&basic.PaginationOptions{})
		assert.EqualValues(t, 0, skip)
		assert.EqualValues(t, 10, limit)
	})

	t.Run("explicit page and limit", func(t *testing.T) {
		page, limit := int64(3), int64(5)
		skip, l := ParsePageOpt(&basic.PaginationOptions{Page: &page, Limit: &limit})
		assert.EqualValues(t, 10, skip)
		assert.EqualValues(t, 5, l)
	})

	t.Run("non-positive values fall back to defaults", func(t *testing.T) {
		page, limit := int64(0), int64(-1)
		skip, l := ParsePageOpt(&basic.PaginationOptions{Page: &page, Limit: &limit})
		assert.EqualValues(t, 0, skip)
		assert.EqualValues(t, 10, l)
	})
}

func TestTotalPages(t *testing.T) {
	assert.EqualValues(t, 0, TotalPages(0, 10))
	assert.EqualValues(t, 1, TotalPages(10, 10))
	assert.EqualValues(t, 3, TotalPages(21, 10))
	assert.EqualValues(t, 0, TotalPages(5, 0))
}
