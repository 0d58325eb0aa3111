package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]string{"a", "b"}, 2, 2, 5)

	assert.Equal(t, []string{"a", "b"}, resp.Data)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.PerPage)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestNewPaginatedResponse_Empty(t *testing.T) {
	resp := NewPaginatedResponse([]int{}, 1, 10, 0)

	assert.Empty(t, resp.Data)
	assert.Zero(t, resp.Pagination.TotalPages)
}
