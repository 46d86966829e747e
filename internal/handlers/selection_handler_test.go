package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-manager/internal/handlers"
)

func TestToggleSelection(t *testing.T) {
	srv := newTestServer(t, 12)
	code := srv.create(t, bookForm("A"))["sku"].(string)

	rec := srv.do(t, http.MethodPost, "/v1/selection/"+code, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[handlers.ToggleResponse](t, rec).Selected)

	sel := decode[handlers.SelectionResponse](t, srv.do(t, http.MethodGet, "/v1/selection", nil))
	assert.Equal(t, []string{code}, sel.Selected)
	assert.True(t, sel.CanEdit)
	assert.True(t, sel.CanDelete)

	page := decode[handlers.ProductListResponse](t, srv.do(t, http.MethodGet, "/v1/products", nil))
	require.Len(t, page.Products, 1)
	assert.True(t, page.Products[0].Selected)

	rec = srv.do(t, http.MethodPost, "/v1/selection/"+code, nil)
	assert.False(t, decode[handlers.ToggleResponse](t, rec).Selected)

	rec = srv.do(t, http.MethodPost, "/v1/selection/UNKNOWN", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSelectedClearsSelection(t *testing.T) {
	srv := newTestServer(t, 2)
	var codes []string
	for _, name := range []string{"A", "B", "C"} {
		codes = append(codes, srv.create(t, bookForm(name))["sku"].(string))
	}

	// ir a la última página y borrar lo suficiente para que desaparezca
	srv.do(t, http.MethodGet, "/v1/products?page=2", nil)
	srv.do(t, http.MethodPost, "/v1/selection/"+codes[0], nil)
	srv.do(t, http.MethodPost, "/v1/selection/"+codes[1], nil)

	rec := srv.do(t, http.MethodPost, "/v1/selection/delete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[handlers.DeleteResponse](t, rec).Deleted)

	sel := decode[handlers.SelectionResponse](t, srv.do(t, http.MethodGet, "/v1/selection", nil))
	assert.Empty(t, sel.Selected)
	assert.False(t, sel.CanDelete)

	page := decode[handlers.ProductListResponse](t, srv.do(t, http.MethodGet, "/v1/products", nil))
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Products, 1)
	assert.Equal(t, codes[2], page.Products[0].SKU)
}
