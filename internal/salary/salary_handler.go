package salary

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paambaati/sqlary/internal/shared/apperror"
	"github.com/paambaati/sqlary/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Delete reports the no-op case (zero rows matched) with a 410 rather than
// an error body.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "id must be a number", nil)
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	status := http.StatusOK
	if !resp.Deleted {
		status = http.StatusGone
	}
	c.JSON(status, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Stats(c *gin.Context) {
	var q StatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.Stats(c.Request.Context(), q)
	if err != nil {
		response.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) StatsByDepartment(c *gin.Context) {
	var q StatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.StatsByDepartment(c.Request.Context(), q)
	if err != nil {
		response.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) StatsByDepartmentAndSubDepartment(c *gin.Context) {
	var q StatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err)
		return
	}

	resp, err := h.service.StatsByDepartmentAndSubDepartment(c.Request.Context(), q)
	if err != nil {
		response.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
