package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"catalog-manager/internal/cache"
	"catalog-manager/internal/metrics"
	"catalog-manager/internal/models"
	"catalog-manager/internal/repository"
	"catalog-manager/internal/selection"
	"catalog-manager/internal/validation"
)

const listCachePrefix = "products:list:"

type ProductHandler struct {
	repo    *repository.ProductRepository
	state   *selection.ListState
	cache   *cache.Cache
	metrics *metrics.Metrics
	log     *zap.Logger

	// generation cambia con cada mutación; forma parte de la clave de caché
	generation atomic.Uint64
}

func NewProductHandler(
	repo *repository.ProductRepository,
	state *selection.ListState,
	c *cache.Cache,
	m *metrics.Metrics,
	log *zap.Logger,
) *ProductHandler {
	h := &ProductHandler{
		repo:    repo,
		state:   state,
		cache:   c,
		metrics: m,
		log:     log,
	}
	h.collectionChanged()
	return h
}

// Estructuras para respuestas
type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationResponse struct {
	Errors validation.Errors `json:"errors"`
}

type ProductListItem struct {
	SKU        string             `json:"sku"`
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	PriceLabel string             `json:"price_label"`
	ImageURL   string             `json:"imageUrl"`
	Type       models.ProductType `json:"type"`
	Attribute  string             `json:"attribute"`
	CreatedAt  int64              `json:"createdAt"`
	Selected   bool               `json:"selected"`
}

type ProductListResponse struct {
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	Products   []ProductListItem `json:"products"`
	Selected   []string          `json:"selected"`
}

type UpdateResponse struct {
	Updated bool `json:"updated"`
}

type DeleteRequest struct {
	SKUs []string `json:"skus"`
}

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

// GET /v1/products?page=N
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if raw, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
			return
		}
		h.state.SetPage(page)
	}

	page := h.state.Page()
	items := h.pageItems(page)

	selected := h.state.Selected()
	for i := range items {
		items[i].Selected = h.state.IsSelected(items[i].SKU)
	}

	h.metrics.Observe("list", metrics.ResultSuccess)
	c.JSON(http.StatusOK, ProductListResponse{
		Page:       page,
		PageSize:   h.state.PageSize(),
		Total:      h.state.Total(),
		TotalPages: h.state.PageCount(),
		Products:   items,
		Selected:   selected,
	})
}

// pageItems arma la página desde el caché o desde el repositorio
func (h *ProductHandler) pageItems(page int) []ProductListItem {
	key, items, cached := h.loadPage(page)
	if !cached {
		h.storePage(key, page, items)
	}
	return items
}

// loadPage lee la generación antes que la colección, así una página armada
// antes de una mutación queda guardada bajo una clave que ya no se consulta.
func (h *ProductHandler) loadPage(page int) (string, []ProductListItem, bool) {
	key := fmt.Sprintf("%sg%d_p%d_s%d", listCachePrefix, h.generation.Load(), page, h.state.PageSize())

	var items []ProductListItem
	if found, err := h.cache.Unmarshal(key, &items); err == nil && found {
		return key, items, true
	}

	products := h.repo.Page(page, h.state.PageSize())
	items = make([]ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, ProductListItem{
			SKU:        p.SKU,
			Name:       p.Name,
			Price:      p.Price,
			PriceLabel: p.PriceLabel(),
			ImageURL:   p.ImageURL,
			Type:       p.Type(),
			Attribute:  p.AttributeLabel(),
			CreatedAt:  p.CreatedAt,
		})
	}
	return key, items, false
}

func (h *ProductHandler) storePage(key string, page int, items []ProductListItem) {
	if err := h.cache.Marshal(key, items); err != nil {
		h.log.Warn("could not cache product page", zap.Int("page", page), zap.Error(err))
	}
	h.metrics.SetCachedPages(h.cache.Size())
}

// GET /v1/products/:sku
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.repo.FindBySKU(c.Param("sku"))
	if !ok {
		h.metrics.Observe("get", metrics.ResultNotFound)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	h.metrics.Observe("get", metrics.ResultSuccess)
	c.JSON(http.StatusOK, product)
}

// GET /v1/products/:sku/form
func (h *ProductHandler) GetProductForm(c *gin.Context) {
	product, ok := h.repo.FindBySKU(c.Param("sku"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}
	c.JSON(http.StatusOK, models.FormFromProduct(product))
}

// POST /v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	form, ok := h.bindForm(c, "add")
	if !ok {
		return
	}

	draft, err := form.Draft()
	if err != nil {
		h.metrics.Observe("add", metrics.ResultInvalid)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.repo.Add(c.Request.Context(), draft)
	if err != nil {
		h.fail(c, "add", err)
		return
	}

	h.collectionChanged()
	h.metrics.Observe("add", metrics.ResultSuccess)
	c.JSON(http.StatusCreated, product)
}

// PUT /v1/products/:sku
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	form, ok := h.bindForm(c, "update")
	if !ok {
		return
	}

	product, err := form.Product(c.Param("sku"))
	if err != nil {
		h.metrics.Observe("update", metrics.ResultInvalid)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), product)
	if err != nil {
		h.fail(c, "update", err)
		return
	}

	if updated {
		h.collectionChanged()
		h.metrics.Observe("update", metrics.ResultSuccess)
	} else {
		h.metrics.Observe("update", metrics.ResultNotFound)
	}
	c.JSON(http.StatusOK, UpdateResponse{Updated: updated})
}

// DELETE /v1/products
func (h *ProductHandler) DeleteProducts(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	deleted, err := h.repo.DeleteMany(c.Request.Context(), req.SKUs)
	if err != nil {
		h.fail(c, "delete", err)
		return
	}

	h.state.Deselect(req.SKUs...)
	h.collectionChanged()
	h.metrics.Observe("delete", metrics.ResultSuccess)
	c.JSON(http.StatusOK, DeleteResponse{Deleted: deleted})
}

// --- Métodos auxiliares ---

// bindForm lee el cuerpo como formulario y lo valida.
// Si devuelve false la respuesta ya fue escrita.
func (h *ProductHandler) bindForm(c *gin.Context, operation string) (models.Form, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	form := models.FormFromMap(raw)
	if errs := validation.Validate(form); !errs.Valid() {
		h.metrics.Observe(operation, metrics.ResultInvalid)
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Errors: errs})
		return nil, false
	}
	return form, true
}

// collectionChanged invalida el caché de listados y ajusta la paginación
func (h *ProductHandler) collectionChanged() {
	total := h.repo.Count()
	h.generation.Add(1)
	h.cache.DeleteByPrefix(listCachePrefix)
	h.metrics.SetCachedPages(h.cache.Size())
	h.state.SetTotal(total)
	h.metrics.SetProducts(total)
}

func (h *ProductHandler) fail(c *gin.Context, operation string, err error) {
	h.metrics.Observe(operation, metrics.ResultFailure)
	h.log.Error("product operation failed", zap.String("operation", operation), zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("could not %s product", operation)})
}
