package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"optical-storefront/internal/domain"
	productrepo "optical-storefront/internal/repository/product"
)

func listProductsHandler(repo productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "products not available"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(repo productrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		product, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "products not available"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
