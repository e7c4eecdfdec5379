package ui

import (
	stderrors "errors"
	"io"
	"net/http"

	"econhub/app"
	"econhub/domain/worldview"
	"econhub/internal/errors"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// handleHealth is the liveness check
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleWorldviewOptions lists every factor and its options
func (s *Server) handleWorldviewOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"factors": s.worldviews.Catalog()})
}

// handleWorldviewQuery resolves a worldview from query parameters
func (s *Server) handleWorldviewQuery(c *gin.Context) {
	in := worldview.InputFromValues(c.Request.URL.Query())
	c.JSON(http.StatusOK, s.worldviews.Resolve(c.Request.Context(), in))
}

// handleWorldviewBody resolves a worldview from any JSON body. Bodies that
// are not JSON objects count as empty input.
func (s *Server) handleWorldviewBody(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		s.writeError(c, errors.InvalidInput("request body too large or unreadable"))
		return
	}
	in := worldview.InputFromJSON(body)
	c.JSON(http.StatusOK, s.worldviews.Resolve(c.Request.Context(), in))
}

// handleForecast runs the predictive engine
func (s *Server) handleForecast(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req app.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		s.writeError(c, errors.InvalidInput("invalid forecast request: "+err.Error()))
		return
	}

	res, err := s.forecasts.Run(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("[API] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
