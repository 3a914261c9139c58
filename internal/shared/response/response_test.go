package response_test

import (
	"net/http/httptest"
	"testing"

	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
}

func TestPageParamsAndSlice(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/x?page=2&pageSize=2", nil)

	page, size := response.PageParams(c, 10)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, size)

	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, response.Slice(items, page, size))
	assert.Empty(t, response.Slice(items, 9, size))
}

func TestErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, 409, "CONFLICT", "already cancelled", nil)

	assert.Equal(t, 409, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"CONFLICT","message":"already cancelled","details":null}}`, w.Body.String())
}

func TestPaged(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Paged(c, []string{"a"}, 11, 2, 5)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":["a"],"meta":{"total":11,"totalPages":3,"page":2,"pageSize":5}}`, w.Body.String())
}
