package handlers

import (
	"errors"
	"net/http"

	"fitgarden/backend"
	"fitgarden/models"
	"fitgarden/services/booking"
	"fitgarden/services/notification"
	"fitgarden/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the agendamento dialog: draft lifecycle, line
// items, submission and the post-confirmation WhatsApp link.
type BookingHandler struct {
	Drafts   booking.DraftService
	Notifier notification.Service
	Logger   *zap.Logger
}

func NewBookingHandler(drafts booking.DraftService, notifier notification.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Drafts:   drafts,
		Notifier: notifier,
		Logger:   logger,
	}
}

// OpenDraft creates a draft: empty for create mode, pre-filled when the
// request carries the record being edited.
func (h *BookingHandler) OpenDraft(c *gin.Context) {
	var input struct {
		Source *models.AgendamentoView `json:"source"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var draft *models.AgendamentoDraft
	var err error
	if input.Source != nil {
		draft, err = h.Drafts.OpenDraftFrom(c.Request.Context(), *input.Source)
	} else {
		draft, err = h.Drafts.OpenDraft(c.Request.Context())
	}
	if err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"draft": draft, "total": draft.Total()})
}

// GetDraft returns the current draft state.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	draft, err := h.Drafts.GetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "total": draft.Total()})
}

// PatchDraft applies the dialog's field setters.
func (h *BookingHandler) PatchDraft(c *gin.Context) {
	var input struct {
		ClienteID      *string                `json:"clienteId"`
		Tipo           *models.TipoEntrega    `json:"tipo"`
		Data           *string                `json:"data"`
		HorarioInicio  *string                `json:"horarioInicio"`
		HorarioFim     *string                `json:"horarioFim"`
		Endereco       *string                `json:"endereco"`
		Regiao         *string                `json:"regiao"`
		Observacoes    *string                `json:"observacoes"`
		FormaPagamento *models.FormaPagamento `json:"formaPagamento"`
		CanalTaxa      *models.CanalTaxa      `json:"canalTaxa"`
		VoucherCodigo  *string                `json:"voucherCodigo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	patch := booking.DraftPatch{
		ClienteID:      input.ClienteID,
		Tipo:           input.Tipo,
		Data:           input.Data,
		HorarioInicio:  input.HorarioInicio,
		HorarioFim:     input.HorarioFim,
		Endereco:       input.Endereco,
		Regiao:         input.Regiao,
		Observacoes:    input.Observacoes,
		FormaPagamento: input.FormaPagamento,
		CanalTaxa:      input.CanalTaxa,
		VoucherCodigo:  input.VoucherCodigo,
	}

	draft, err := h.Drafts.ApplyPatch(c.Request.Context(), c.Param("draftID"), patch)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "total": draft.Total()})
}

// AddItem appends an option+size+quantity line to the draft.
func (h *BookingHandler) AddItem(c *gin.Context) {
	var input struct {
		OpcaoID    string `json:"opcaoId" binding:"required"`
		TamanhoID  string `json:"tamanhoId" binding:"required"`
		Quantidade int    `json:"quantidade"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Drafts.AddItem(c.Request.Context(), c.Param("draftID"), input.OpcaoID, input.TamanhoID, input.Quantidade)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "total": draft.Total()})
}

// RemoveItem drops one line item.
func (h *BookingHandler) RemoveItem(c *gin.Context) {
	draft, err := h.Drafts.RemoveItem(c.Request.Context(), c.Param("draftID"), c.Param("itemID"))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "total": draft.Total()})
}

// ChangeQuantity adjusts one line item by a delta, clamped at 1.
func (h *BookingHandler) ChangeQuantity(c *gin.Context) {
	var input struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Drafts.ChangeQuantity(c.Request.Context(), c.Param("draftID"), c.Param("itemID"), input.Delta)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "total": draft.Total()})
}

// ResetDraft clears the dialog back to its defaults.
func (h *BookingHandler) ResetDraft(c *gin.Context) {
	draft, err := h.Drafts.Reset(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "total": draft.Total()})
}

// DiscardDraft closes the dialog without saving.
func (h *BookingHandler) DiscardDraft(c *gin.Context) {
	if err := h.Drafts.Discard(c.Request.Context(), c.Param("draftID")); err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"discarded": true})
}

// ConfirmDraft validates and submits the draft to the core backend.
func (h *BookingHandler) ConfirmDraft(c *gin.Context) {
	draft, err := h.Drafts.Confirm(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft":         draft,
		"total":         draft.Total(),
		"pedidoId":      draft.PedidoID,
		"agendamentoId": draft.AgendamentoID,
	})
}

// WhatsAppLink returns the wa.me confirmation link for a confirmed
// draft.
func (h *BookingHandler) WhatsAppLink(c *gin.Context) {
	draft, err := h.Drafts.GetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	if draft.State != models.DraftConfirmed {
		utils.JSONError(c, http.StatusConflict, "Agendamento ainda não confirmado", "")
		return
	}

	link, err := h.Notifier.ConfirmationLink(draft)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}

// renderDraftError maps service errors to HTTP answers.
func (h *BookingHandler) renderDraftError(c *gin.Context, err error) {
	var draftErr *booking.DraftError
	switch {
	case errors.Is(err, booking.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, "Rascunho não encontrado ou expirado", "")
	case errors.Is(err, booking.ErrDraftBusy):
		utils.JSONError(c, http.StatusConflict, "Envio em andamento, aguarde a conclusão", "")
	case errors.Is(err, booking.ErrDraftReadOnly):
		utils.JSONError(c, http.StatusConflict, "Agendamento já confirmado", "")
	case errors.As(err, &draftErr):
		utils.JSONErrorCode(c, http.StatusUnprocessableEntity, draftErr.Code, draftErr.Message)
	case errors.Is(err, backend.ErrSessionExpired):
		utils.JSONError(c, http.StatusUnauthorized, "Sessão expirada, faça login novamente", "")
	case errors.Is(err, backend.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Registro não encontrado", "")
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Falha ao comunicar com o servidor, tente novamente", "")
	}
}
