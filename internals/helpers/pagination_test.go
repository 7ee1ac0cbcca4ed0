package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 20, p.Count)
}

func TestBuildPaginationEmptyResult(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20, 0)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
	assert.Zero(t, p.Count)
}

func TestBuildPaginationNormalizesBadInput(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, 0, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 1, p.TotalPages)
}

func TestBuildPaginationLastPagePartial(t *testing.T) {
	p := BuildPaginationFromPage(45, 3, 20, 5)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 5, p.Count)
}
