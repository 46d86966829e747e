package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAndExpose(t *testing.T) {
	m := New()
	m.Observe("add", ResultSuccess)
	m.Observe("add", ResultSuccess)
	m.Observe("add", ResultInvalid)
	m.SetProducts(2)
	m.SetCachedPages(3)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.operations.WithLabelValues("add", ResultSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.products))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.cached))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `catalog_product_operations_total{operation="add",result="invalid"} 1`)
}
