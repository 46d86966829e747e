package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-manager/internal/metrics"
)

type SelectionResponse struct {
	Selected  []string `json:"selected"`
	CanEdit   bool     `json:"can_edit"`
	CanDelete bool     `json:"can_delete"`
}

type ToggleResponse struct {
	SKU      string `json:"sku"`
	Selected bool   `json:"selected"`
}

// GET /v1/selection
func (h *ProductHandler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.selectionResponse())
}

// POST /v1/selection/:sku
func (h *ProductHandler) ToggleSelection(c *gin.Context) {
	sku := c.Param("sku")
	if _, ok := h.repo.FindBySKU(sku); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{SKU: sku, Selected: h.state.Toggle(sku)})
}

// POST /v1/selection/delete
func (h *ProductHandler) DeleteSelected(c *gin.Context) {
	selected := h.state.Selected()

	deleted, err := h.repo.DeleteMany(c.Request.Context(), selected)
	if err != nil {
		h.fail(c, "delete", err)
		return
	}

	h.state.Clear()
	h.collectionChanged()
	h.metrics.Observe("delete", metrics.ResultSuccess)
	c.JSON(http.StatusOK, DeleteResponse{Deleted: deleted})
}

func (h *ProductHandler) selectionResponse() SelectionResponse {
	return SelectionResponse{
		Selected:  h.state.Selected(),
		CanEdit:   h.state.CanEdit(),
		CanDelete: h.state.CanDelete(),
	}
}
