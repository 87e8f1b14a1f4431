package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/serialtrack/serialtrack/internal/catalog/domain"
)

// AdminProducts lists catalog rows matching the filters. Without any filter
// the result set is empty; the admin screen only shows rows after a search.
func (s *Server) AdminProducts(c *gin.Context) {
	filter := catalogdomain.ProductFilter{
		Query: c.Query("q"),
		Brand: c.Query("brand"),
	}
	if raw := c.Query("cat"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		filter.CategoryID = id
	}

	products, err := s.catalog.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	categories, err := s.catalog.Categories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"categories": categories,
	})
}

func (s *Server) AdminProduct(c *gin.Context) {
	raw := c.Param("id")
	if raw == "new" {
		categories, err := s.catalog.Categories(c.Request.Context())
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": nil, "categories": categories})
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	detail, err := s.catalog.Detail(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	categories, err := s.catalog.Categories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": detail, "categories": categories})
}

func (s *Server) AdminSaveProduct(c *gin.Context) {
	var req catalogdomain.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	product, err := s.catalog.SaveProduct(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "pid": product.ID, "name": product.Name})
}

// ManualProduct creates a catalog row directly, bypassing the external
// lookups, for products the services do not know.
func (s *Server) ManualProduct(c *gin.Context) {
	var req catalogdomain.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = 0

	product, err := s.catalog.SaveProduct(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "pid": product.ID, "name": product.Name})
}
