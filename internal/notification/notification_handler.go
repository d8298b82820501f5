package notification

import (
	"net/http"

	"go-talento/internal/shared/apperror"
	"go-talento/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetMine(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	onlyUnread := c.Query("unread") == "true"

	resp, err := h.service.GetForEmployee(c.Request.Context(), employeeID, onlyUnread)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkRead(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	if err := h.service.MarkRead(c.Request.Context(), employeeID, c.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true}, nil)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	if err := h.service.MarkAllRead(c.Request.Context(), employeeID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true}, nil)
}
