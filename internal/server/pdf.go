package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/serialtrack/serialtrack/internal/providers/pdf"
	slipdomain "github.com/serialtrack/serialtrack/internal/slip/domain"
	"go.uber.org/zap"
)

// ProtocolPDF streams the rendered protocol as a file download. Unknown slip
// numbers are a 404; rendering failures are logged with a stack server-side
// and answered with a generic 500.
func (s *Server) ProtocolPDF(c *gin.Context) {
	number := c.Param("number")

	doc, err := s.slips.Document(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, slipdomain.ErrNotFound) {
			AbortWithError(c, ErrNotFound)
			return
		}
		AbortWithError(c, err)
		return
	}

	rendered, err := s.pdf.GenerateProtocol(c.Request.Context(), doc)
	if err != nil {
		s.log.Error("protocol rendering failed",
			zap.String("number", number),
			zap.Error(err),
			zap.Stack("stack"),
		)
		AbortWithError(c, ErrInternal)
		return
	}

	filename := pdf.Filename(doc.OrderNo, doc.Customer, doc.CreatedAt)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(rendered)))
	c.Data(http.StatusOK, "application/pdf", rendered)
}
