package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Lookup resolves an EAN through the fallback chain and answers with the
// product plus its category and brand names. A full miss is {ok:false}, not
// an error.
func (s *Server) Lookup(c *gin.Context) {
	ean := c.Param("ean")

	product, err := s.resolver.Resolve(c.Request.Context(), ean)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusOK, gin.H{"ok": false})
		return
	}

	detail, err := s.catalog.Detail(c.Request.Context(), product.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"pid":   detail.ID,
		"name":  detail.Name,
		"cat":   detail.Category,
		"brand": detail.Brand,
	})
}
