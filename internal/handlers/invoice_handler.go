package handler

import (
	"net/http"
	"strconv"

	invoices "billing-dashboard-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	service *invoices.Service
}

func NewInvoiceHandler(service *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// ListInvoices serves one page of the filtered invoices table.
// GET /api/invoices?query=lee&page=2
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page number"})
		return
	}
	items, err := h.service.List(c.Request.Context(), c.Query("query"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": items})
}

// GetPages reports how many pages the filtered invoice set spans.
func (h *InvoiceHandler) GetPages(c *gin.Context) {
	pages, err := h.service.TotalPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": pages})
}

// GetInvoice serves a single invoice as edit-form values.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	form, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": form})
}
