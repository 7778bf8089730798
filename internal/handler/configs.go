package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"algoconfig/internal/models"
	"algoconfig/internal/repository"
	"algoconfig/internal/service"
)

const msgNotFound = "Config not found."

type ConfigHandler struct {
	Service *service.ConfigService
	Logger  *zap.Logger
}

func (h *ConfigHandler) Register(r *gin.Engine) {
	group := r.Group("/configs")
	group.GET("", h.list)
	group.GET("/:id", h.get)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.delete)
}

func (h *ConfigHandler) list(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	List(c, items, len(items))
}

func (h *ConfigHandler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	item, err := h.Service.Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		Error(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	Data(c, http.StatusOK, item)
}

func (h *ConfigHandler) create(c *gin.Context) {
	var payload models.ConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		Error(c, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	item, fieldErrs, err := h.Service.Create(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		FieldErrors(c, fieldErrs)
		return
	}
	Data(c, http.StatusCreated, item)
}

func (h *ConfigHandler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var payload models.ConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		Error(c, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	item, fieldErrs, err := h.Service.Update(c.Request.Context(), id, payload)
	if errors.Is(err, repository.ErrNotFound) {
		Error(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		FieldErrors(c, fieldErrs)
		return
	}
	Data(c, http.StatusOK, item)
}

func (h *ConfigHandler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	item, err := h.Service.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		Error(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	Data(c, http.StatusOK, item)
}

// fail logs the underlying error and answers with a generic message so
// internals never leak to the client.
func (h *ConfigHandler) fail(c *gin.Context, err error) {
	h.Logger.Error("config handler failure",
		zap.String("path", c.FullPath()), zap.Error(err))
	Error(c, http.StatusInternalServerError, "Internal server error")
}
