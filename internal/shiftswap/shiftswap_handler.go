package shiftswap

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-talento/internal/middleware"
	"go-talento/internal/shared/apperror"
	"go-talento/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("shiftswap.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shiftswap.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("shift swap request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req CreateShiftSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create shift swap validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Entrada no válida", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.SubjectFrom(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), middleware.SubjectFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), middleware.SubjectFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// PendingSignOff responde la bandeja del reemplazante nominado.
func (h *Handler) PendingSignOff(c *gin.Context) {
	resp, err := h.service.PendingSignOff(c.Request.Context(), middleware.SubjectFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ApproveSignOff(c *gin.Context) {
	h.signOff(c, true)
}

func (h *Handler) RejectSignOff(c *gin.Context) {
	h.signOff(c, false)
}

func (h *Handler) signOff(c *gin.Context, approve bool) {
	var req SignOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http sign off validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Entrada no válida", err.Error())
		return
	}

	resp, err := h.service.SignOff(c.Request.Context(), middleware.SubjectFrom(c), c.Param("id"), approve, req.Comment)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// ReviewQueue responde la bandeja del jefe: solicitudes con visto bueno
// que esperan su decisión.
func (h *Handler) ReviewQueue(c *gin.Context) {
	resp, err := h.service.ReviewQueue(c.Request.Context(), middleware.SubjectFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ApproveByHead(c *gin.Context) {
	h.headDecide(c, true)
}

func (h *Handler) RejectByHead(c *gin.Context) {
	h.headDecide(c, false)
}

func (h *Handler) headDecide(c *gin.Context, approve bool) {
	var req HeadDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http head decision validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Entrada no válida", err.Error())
		return
	}

	resp, err := h.service.HeadDecide(c.Request.Context(), middleware.SubjectFrom(c), c.Param("id"), approve, req.Comment)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context(), middleware.SubjectFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
