package booking

import (
	"context"

	"fitgarden/backend"
	"fitgarden/models"
	"fitgarden/services/catalog"

	"go.uber.org/zap"
)

// EditPolicy governs what an edit-mode draft may change. Voucher/plan
// payment is refused on updates by the backend regardless of policy.
type EditPolicy struct {
	AllowPaymentChange bool
	AllowClienteChange bool
}

// DraftPatch carries the field setters of the dialog; nil fields are
// left untouched.
type DraftPatch struct {
	ClienteID      *string
	Tipo           *models.TipoEntrega
	Data           *string
	HorarioInicio  *string
	HorarioFim     *string
	Endereco       *string
	Regiao         *string
	Observacoes    *string
	FormaPagamento *models.FormaPagamento
	CanalTaxa      *models.CanalTaxa
	VoucherCodigo  *string
}

// DraftService owns the agendamento composition workflow: draft
// lifecycle, line items and submission to the core backend.
type DraftService interface {
	OpenDraft(ctx context.Context) (*models.AgendamentoDraft, error)
	OpenDraftFrom(ctx context.Context, source models.AgendamentoView) (*models.AgendamentoDraft, error)
	GetDraft(ctx context.Context, draftID string) (*models.AgendamentoDraft, error)
	ApplyPatch(ctx context.Context, draftID string, patch DraftPatch) (*models.AgendamentoDraft, error)
	AddItem(ctx context.Context, draftID, opcaoID, tamanhoID string, quantidade int) (*models.AgendamentoDraft, error)
	RemoveItem(ctx context.Context, draftID, itemID string) (*models.AgendamentoDraft, error)
	ChangeQuantity(ctx context.Context, draftID, itemID string, delta int) (*models.AgendamentoDraft, error)
	Reset(ctx context.Context, draftID string) (*models.AgendamentoDraft, error)
	Discard(ctx context.Context, draftID string) error
	Confirm(ctx context.Context, draftID string) (*models.AgendamentoDraft, error)
}

// DefaultDraftService implements DraftService.
type DefaultDraftService struct {
	Store   DraftStore
	Backend backend.AgendamentoAPI
	Catalog catalog.Service
	Policy  EditPolicy
	Logger  *zap.Logger
}
