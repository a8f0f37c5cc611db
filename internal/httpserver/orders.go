package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"optical-storefront/internal/domain"
	orderrepo "optical-storefront/internal/repository/order"
)

// createOrderRequest accepts both the name and customer_name spellings the
// page scripts have used over time.
type createOrderRequest struct {
	Name         string             `json:"name"`
	CustomerName string             `json:"customer_name"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Address      string             `json:"address"`
	Notes        string             `json:"notes"`
	Items        []domain.OrderItem `json:"items"`
	Total        int64              `json:"total"`
}

func createOrderHandler(repo orderrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = strings.TrimSpace(req.CustomerName)
		}
		if name == "" || strings.TrimSpace(req.Phone) == "" ||
			strings.TrimSpace(req.Address) == "" || len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
			return
		}

		// The stored total is always recomputed from the items so a stale
		// client total cannot drift from what was ordered.
		var total int64
		for _, item := range req.Items {
			total += item.Price * int64(item.Quantity)
		}

		order, err := repo.Create(c.Request.Context(), domain.Order{
			CustomerName: name,
			Phone:        req.Phone,
			Email:        req.Email,
			Address:      req.Address,
			Notes:        req.Notes,
			Items:        req.Items,
			Total:        total,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order not stored"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orderId": order.ID})
	}
}
