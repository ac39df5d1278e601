package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charadas/charadas-api/internal/charada/service"
	"github.com/charadas/charadas-api/pkg/logger"
	"github.com/charadas/charadas-api/pkg/metrics"
	"github.com/charadas/charadas-api/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// Response messages. Clients match on these strings, keep them stable.
const (
	MsgEmpty    = "Erro! Nenhuma charada encontrada"
	MsgNotFound = "Erro! - Charada não encontrada"
	MsgInvalid  = "Erro! - Dados inválidos"
	MsgInternal = "Erro! - Falha interna"
	MsgCreated  = "Charada adicionada com sucesso!"
	MsgUpdated  = "Charada alterada com sucesso!"
	MsgDeleted  = "Charada excluída com sucesso!"
	RootBanner  = "CHARADAS API"
)

type charadaRequest struct {
	Pergunta string `json:"pergunta" binding:"required"`
	Resposta string `json:"resposta" binding:"required"`
}

type Handler struct {
	svc service.Service
}

func New(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterCharadaRoutes mounts the root banner and the /charadas CRUD routes.
func RegisterCharadaRoutes(r *gin.Engine, svc service.Service) {
	h := New(svc)
	r.GET("/", h.Index)
	r.GET("/charadas", h.Random)
	r.GET("/charadas/:id", h.Get)
	r.POST("/charadas", h.Create)
	r.PUT("/charadas/:id", h.Update)
	r.DELETE("/charadas/:id", h.Delete)
}

func (h *Handler) Index(c *gin.Context) {
	c.String(http.StatusOK, RootBanner)
}

// Random returns one stored riddle picked uniformly at random.
func (h *Handler) Random(c *gin.Context) {
	ch, err := h.svc.Random(c.Request.Context())
	if err != nil {
		h.fail(c, "random", err)
		return
	}
	respond(c, "random", http.StatusOK, ch)
}

func (h *Handler) Get(c *gin.Context) {
	ch, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	respond(c, "get", http.StatusOK, ch)
}

func (h *Handler) Create(c *gin.Context) {
	var req charadaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "create", service.ErrInvalid)
		return
	}
	ch, err := h.svc.Create(c.Request.Context(), req.Pergunta, req.Resposta)
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	logger.Debugf("charada %d created", ch.ID)
	respond(c, "create", http.StatusCreated, gin.H{"mensagem": MsgCreated})
}

// Update answers 201 on success, matching the status clients already rely on.
func (h *Handler) Update(c *gin.Context) {
	var req charadaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "update", service.ErrInvalid)
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Pergunta, req.Resposta); err != nil {
		h.fail(c, "update", err)
		return
	}
	respond(c, "update", http.StatusCreated, gin.H{"mensagem": MsgUpdated})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	respond(c, "delete", http.StatusOK, gin.H{"mensagem": MsgDeleted})
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		respond(c, op, http.StatusBadRequest, gin.H{"mensagem": MsgInvalid})
	case errors.Is(err, service.ErrEmpty):
		respond(c, op, http.StatusNotFound, gin.H{"mensagem": MsgEmpty})
	case errors.Is(err, service.ErrNotFound):
		respond(c, op, http.StatusNotFound, gin.H{"mensagem": MsgNotFound})
	default:
		logger.Errorf("charadas %s failed (request_id=%s): %v", op, c.GetString(middleware.RequestIDKey), err)
		respond(c, op, http.StatusInternalServerError, gin.H{"mensagem": MsgInternal})
	}
}

func respond(c *gin.Context, op string, status int, body any) {
	metrics.CharadaRequests.WithLabelValues(op, strconv.Itoa(status)).Inc()
	c.JSON(status, body)
}
