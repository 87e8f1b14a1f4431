package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	slipdomain "github.com/serialtrack/serialtrack/internal/slip/domain"
)

// Home is the technician entry screen: the next candidate slip number and the
// category list for the manual-product form.
func (s *Server) Home(c *gin.Context) {
	number, err := s.slips.NextNumber(c.Request.Context())
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
		"number":     number,
		"categories": categories,
		"role":       roleFromContext(c),
	})
}

func (s *Server) NextNumber(c *gin.Context) {
	number, err := s.slips.NextNumber(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": number})
}

func (s *Server) SaveSlip(c *gin.Context) {
	var req slipdomain.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	saved, err := s.slips.Save(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"number":  saved.Number,
		"pdf_url": "/pdf/" + saved.Number,
	})
}

func (s *Server) ListSlips(c *gin.Context) {
	filter := slipdomain.ListFilter{
		Query: c.Query("q"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	}

	slips, err := s.slips.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slips": slips})
}
