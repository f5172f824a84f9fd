package handler

import (
	"net/http"

	"billing-dashboard-backend/internal/dberr"

	"github.com/gin-gonic/gin"
)

// respondError translates a classified store error into an HTTP status.
// Raw error text never reaches the client; the stable kind does.
func respondError(c *gin.Context, err error) {
	kind := dberr.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case dberr.NotFound:
		status = http.StatusNotFound
	case dberr.InvalidInput:
		status = http.StatusBadRequest
	case dberr.StoreUnavailable, dberr.AggregationFailed:
		status = http.StatusServiceUnavailable
	}
	if kind == "" {
		kind = "internal"
	}
	c.JSON(status, gin.H{"error": string(kind)})
}
