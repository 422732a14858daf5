package booking

import (
	"context"
	"fmt"

	"fitgarden/models"

	"github.com/google/uuid"
)

// OpenDraft creates an empty create-mode draft with the dialog defaults.
func (s *DefaultDraftService) OpenDraft(ctx context.Context) (*models.AgendamentoDraft, error) {
	draft := &models.AgendamentoDraft{
		DraftID: uuid.New().String(),
		State:   models.DraftEmpty,
	}
	applyDefaults(draft)

	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to open draft: %w", err)
	}
	return draft, nil
}

// OpenDraftFrom creates an edit-mode draft pre-filled from an existing
// record, reconstructing the time window from the combined faixa string.
func (s *DefaultDraftService) OpenDraftFrom(ctx context.Context, source models.AgendamentoView) (*models.AgendamentoDraft, error) {
	inicio, fim := SplitFaixaHorario(source.FaixaHorario)

	draft := &models.AgendamentoDraft{
		DraftID:                uuid.New().String(),
		State:                  models.DraftEditing,
		EditingID:              source.ID,
		ClienteID:              source.ClienteID,
		ClienteNome:            source.ClienteNome,
		Tipo:                   source.Tipo,
		Data:                   source.Data,
		HorarioInicio:          inicio,
		HorarioFim:             fim,
		Endereco:               source.Endereco,
		Regiao:                 source.Regiao,
		Observacoes:            source.Observacoes,
		FormaPagamento:         source.FormaPagamento,
		OriginalFormaPagamento: source.FormaPagamento,
		PedidoID:               source.PedidoID,
		Itens:                  make([]models.ItemDraft, 0, len(source.Itens)),
	}

	// The view carries no phone; denormalize it from the customer list.
	if cliente, err := s.Catalog.FindCliente(ctx, source.ClienteID); err == nil && cliente != nil {
		draft.ClienteTelefone = cliente.Telefone
	}

	for _, it := range source.Itens {
		draft.Itens = append(draft.Itens, models.ItemDraft{
			ID:            uuid.New().String(),
			OpcaoID:       it.OpcaoID,
			TamanhoID:     it.TamanhoID,
			OpcaoNome:     it.OpcaoNome,
			TamanhoRotulo: it.TamanhoRotulo,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
		})
	}

	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to open edit draft: %w", err)
	}
	return draft, nil
}

// GetDraft returns the current draft state.
func (s *DefaultDraftService) GetDraft(ctx context.Context, draftID string) (*models.AgendamentoDraft, error) {
	return s.loadDraft(ctx, draftID)
}

// ApplyPatch applies the dialog's field setters to a mutable draft.
func (s *DefaultDraftService) ApplyPatch(ctx context.Context, draftID string, patch DraftPatch) (*models.AgendamentoDraft, error) {
	draft, err := s.loadMutable(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if patch.ClienteID != nil && *patch.ClienteID != draft.ClienteID {
		if draft.IsEdit() && !s.Policy.AllowClienteChange {
			return nil, NewDraftError("editClienteBloqueado",
				"Não é possível trocar o cliente ao editar um agendamento")
		}
		cliente, err := s.Catalog.FindCliente(ctx, *patch.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, NewDraftError("clienteDesconhecido", "Cliente não encontrado")
		}
		draft.ClienteID = cliente.ID
		draft.ClienteNome = cliente.Nome
		draft.ClienteTelefone = cliente.Telefone
		if draft.Endereco == "" {
			draft.Endereco = cliente.Endereco
		}
	}

	if patch.FormaPagamento != nil && *patch.FormaPagamento != draft.FormaPagamento {
		if draft.IsEdit() && !s.Policy.AllowPaymentChange {
			return nil, NewDraftError("editPagamentoBloqueado",
				"Não é possível alterar a forma de pagamento ao editar um agendamento")
		}
		draft.FormaPagamento = *patch.FormaPagamento
	}

	if patch.Tipo != nil {
		draft.Tipo = *patch.Tipo
	}
	if patch.Data != nil {
		draft.Data = *patch.Data
	}
	if patch.HorarioInicio != nil {
		draft.HorarioInicio = *patch.HorarioInicio
	}
	if patch.HorarioFim != nil {
		draft.HorarioFim = *patch.HorarioFim
	}
	if patch.Endereco != nil {
		draft.Endereco = *patch.Endereco
	}
	if patch.Regiao != nil {
		draft.Regiao = *patch.Regiao
	}
	if patch.Observacoes != nil {
		draft.Observacoes = *patch.Observacoes
	}
	if patch.CanalTaxa != nil {
		draft.CanalTaxa = *patch.CanalTaxa
	}
	if patch.VoucherCodigo != nil {
		draft.VoucherCodigo = *patch.VoucherCodigo
	}

	return draft, s.saveMutated(ctx, draft)
}

// Reset returns every field to the dialog defaults, keeping the draft
// id and edit linkage.
func (s *DefaultDraftService) Reset(ctx context.Context, draftID string) (*models.AgendamentoDraft, error) {
	draft, err := s.loadMutable(ctx, draftID)
	if err != nil {
		return nil, err
	}

	reset := &models.AgendamentoDraft{
		DraftID:                draft.DraftID,
		State:                  models.DraftEmpty,
		EditingID:              draft.EditingID,
		OriginalFormaPagamento: draft.OriginalFormaPagamento,
	}
	applyDefaults(reset)

	if err := s.Store.Save(ctx, reset); err != nil {
		return nil, fmt.Errorf("failed to reset draft: %w", err)
	}
	return reset, nil
}

// Discard drops the draft. An already-sent backend request is not
// cancelled.
func (s *DefaultDraftService) Discard(ctx context.Context, draftID string) error {
	return s.Store.Delete(ctx, draftID)
}

func applyDefaults(draft *models.AgendamentoDraft) {
	draft.Tipo = models.TipoEntregaDomicilio
	draft.HorarioInicio = DefaultHorarioInicio
	draft.HorarioFim = DefaultHorarioFim
	draft.FormaPagamento = models.PagamentoDinheiro
	draft.CanalTaxa = models.TaxaCartao
	draft.Itens = []models.ItemDraft{}
	draft.ClienteID = ""
	draft.ClienteNome = ""
	draft.ClienteTelefone = ""
	draft.Data = ""
	draft.Endereco = ""
	draft.Regiao = ""
	draft.Observacoes = ""
	draft.VoucherCodigo = ""
	draft.LastError = ""
}

func (s *DefaultDraftService) loadDraft(ctx context.Context, draftID string) (*models.AgendamentoDraft, error) {
	draft, err := s.Store.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// loadMutable loads a draft and rejects mutation in the states where
// the dialog is locked.
func (s *DefaultDraftService) loadMutable(ctx context.Context, draftID string) (*models.AgendamentoDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	switch draft.State {
	case models.DraftSubmitting:
		return nil, ErrDraftBusy
	case models.DraftConfirmed:
		return nil, ErrDraftReadOnly
	}
	return draft, nil
}

// saveMutated persists a mutation, moving EMPTY and FAILED drafts back
// into EDITING.
func (s *DefaultDraftService) saveMutated(ctx context.Context, draft *models.AgendamentoDraft) error {
	if draft.State == models.DraftEmpty || draft.State == models.DraftFailed {
		draft.State = models.DraftEditing
		draft.LastError = ""
	}
	if err := s.Store.Save(ctx, draft); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}
