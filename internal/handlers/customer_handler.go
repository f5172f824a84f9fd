package handler

import (
	"net/http"

	customers "billing-dashboard-backend/internal/services/customers"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service *customers.Service
}

func NewCustomerHandler(service *customers.Service) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// ListCustomers serves the id+name pairs for selection widgets.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	options, err := h.service.Options(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": options})
}

// GetCustomerTable serves the filtered customers table with invoice totals.
func (h *CustomerHandler) GetCustomerTable(c *gin.Context) {
	rows, err := h.service.Table(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": rows})
}
