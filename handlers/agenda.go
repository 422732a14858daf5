package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fitgarden/backend"
	"fitgarden/models"
	"fitgarden/services/agenda"
	"fitgarden/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgendaHandler serves the day view: list, tallies, delete and pending
// payment resolution.
type AgendaHandler struct {
	Agenda agenda.Service
	Logger *zap.Logger
}

func NewAgendaHandler(service agenda.Service, logger *zap.Logger) *AgendaHandler {
	return &AgendaHandler{
		Agenda: service,
		Logger: logger,
	}
}

// ListDay returns one page of the date's bookings with zone colors.
func (h *AgendaHandler) ListDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: date", "")
		return
	}
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 20)

	result, err := h.Agenda.DayAgendamentos(c.Request.Context(), date, page, pageSize)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Producao returns the kitchen tally for a date.
func (h *AgendaHandler) Producao(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: date", "")
		return
	}

	itens, err := h.Agenda.ProducaoDoDia(c.Request.Context(), date)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "itens": itens})
}

// Rota returns the per-zone delivery tally for a date.
func (h *AgendaHandler) Rota(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: date", "")
		return
	}

	regioes, err := h.Agenda.RotaDoDia(c.Request.Context(), date)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "regioes": regioes})
}

// Delete removes a booking.
func (h *AgendaHandler) Delete(c *gin.Context) {
	if err := h.Agenda.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// FinalizarPagamento resolves a pending payment.
func (h *AgendaHandler) FinalizarPagamento(c *gin.Context) {
	var input struct {
		FormaPagamento models.FormaPagamento `json:"formaPagamento" binding:"required"`
		CanalTaxa      models.CanalTaxa      `json:"canalTaxa"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Agenda.FinalizarPagamento(c.Request.Context(), c.Param("id"), input.FormaPagamento, input.CanalTaxa); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"finalizado": true})
}

func (h *AgendaHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, backend.ErrSessionExpired):
		utils.JSONError(c, http.StatusUnauthorized, "Sessão expirada, faça login novamente", "")
	case errors.Is(err, backend.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Agendamento não encontrado", "")
	default:
		h.Logger.Error("agenda operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Falha ao comunicar com o servidor, tente novamente", "")
	}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
