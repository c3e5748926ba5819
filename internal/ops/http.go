package ops

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ducktide/factory-service/pkg/apperrors"
	"github.com/ducktide/factory-service/pkg/logger"
)

// Handler exposes the registry over HTTP: one POST route per dispatch,
// the operation named in the path, the input as the JSON body.
type Handler struct {
	registry *Registry
	logger   logger.ZapLogger
}

func NewHandler(registry *Registry, log logger.ZapLogger) *Handler {
	return &Handler{registry: registry, logger: log}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/ops", h.listOps)
	router.POST("/ops/:name", h.dispatch)
}

func (h *Handler) listOps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"operations": h.registry.Names()})
}

func (h *Handler) dispatch(c *gin.Context) {
	name := c.Param("name")

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), name, payload)
	if err != nil {
		h.logger.Warn("operation failed", zap.String("op", name), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrEmptyOrder):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
