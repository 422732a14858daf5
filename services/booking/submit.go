package booking

import (
	"context"
	"fmt"

	"fitgarden/backend"
	"fitgarden/models"

	"go.uber.org/zap"
)

// Confirm validates the draft and submits it to the core backend.
// Business-rule rejections are raised synchronously, before any network
// call. While the call is in flight the draft sits in SUBMITTING and
// every other operation on it is refused; a backend failure moves it to
// FAILED with the message preserved so the operator can correct and
// resubmit.
func (s *DefaultDraftService) Confirm(ctx context.Context, draftID string) (*models.AgendamentoDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	switch draft.State {
	case models.DraftSubmitting:
		return draft, ErrDraftBusy
	case models.DraftConfirmed:
		return draft, ErrDraftReadOnly
	}

	if err := validateDraft(draft); err != nil {
		return draft, err
	}

	formaPagamento := MapFormaPagamentoComTaxa(draft.FormaPagamento, draft.CanalTaxa)

	// The backend accepts no voucher/plan payment on updates.
	if draft.IsEdit() && IsVoucherOuPlano(formaPagamento) && formaPagamento != draft.OriginalFormaPagamento {
		return draft, NewDraftError("editVoucherBloqueado",
			"Não é possível alterar para pagamento com voucher ou plano ao editar um agendamento")
	}

	draft.State = models.DraftSubmitting
	draft.LastError = ""
	if err := s.Store.Save(ctx, draft); err != nil {
		return draft, fmt.Errorf("failed to mark draft as submitting: %w", err)
	}

	if draft.IsEdit() {
		err = s.submitUpdate(ctx, draft, formaPagamento)
	} else {
		err = s.submitCreate(ctx, draft, formaPagamento)
	}

	if err != nil {
		draft.State = models.DraftFailed
		draft.LastError = err.Error()
		if saveErr := s.Store.Save(ctx, draft); saveErr != nil {
			s.Logger.Warn("failed to persist failed draft state", zap.Error(saveErr))
		}
		return draft, err
	}

	draft.State = models.DraftConfirmed
	if saveErr := s.Store.Save(ctx, draft); saveErr != nil {
		s.Logger.Warn("failed to persist confirmed draft state", zap.Error(saveErr))
	}
	return draft, nil
}

func (s *DefaultDraftService) submitCreate(ctx context.Context, draft *models.AgendamentoDraft, forma models.FormaPagamento) error {
	req := backend.CreateAgendamentoRequest{
		ClienteID:      draft.ClienteID,
		Tipo:           draft.Tipo,
		Data:           draft.Data,
		FaixaHorario:   JoinFaixaHorario(draft.HorarioInicio, draft.HorarioFim),
		Endereco:       draft.Endereco,
		Regiao:         draft.Regiao,
		Observacoes:    draft.Observacoes,
		FormaPagamento: forma,
		VoucherCodigo:  draft.VoucherCodigo,
		Itens:          buildItens(draft.Itens),
	}

	resp, err := s.Backend.CreateAgendamento(ctx, req)
	if err != nil {
		return err
	}
	draft.PedidoID = resp.PedidoID
	draft.AgendamentoID = resp.AgendamentoID
	return nil
}

func (s *DefaultDraftService) submitUpdate(ctx context.Context, draft *models.AgendamentoDraft, forma models.FormaPagamento) error {
	req := backend.UpdateAgendamentoRequest{
		Tipo:           draft.Tipo,
		Data:           draft.Data,
		FaixaHorario:   JoinFaixaHorario(draft.HorarioInicio, draft.HorarioFim),
		Endereco:       draft.Endereco,
		Regiao:         draft.Regiao,
		Observacoes:    draft.Observacoes,
		FormaPagamento: forma,
		Itens:          buildItens(draft.Itens),
	}

	if _, err := s.Backend.UpdateAgendamento(ctx, draft.EditingID, req); err != nil {
		return err
	}
	draft.AgendamentoID = draft.EditingID
	return nil
}

func buildItens(itens []models.ItemDraft) []backend.ItemRequest {
	out := make([]backend.ItemRequest, 0, len(itens))
	for _, it := range itens {
		out = append(out, backend.ItemRequest{
			OpcaoID:    it.OpcaoID,
			TamanhoID:  it.TamanhoID,
			Quantidade: it.Quantidade,
		})
	}
	return out
}

func validateDraft(draft *models.AgendamentoDraft) error {
	if draft.ClienteID == "" {
		return NewDraftError("clienteObrigatorio", "Selecione um cliente")
	}
	if draft.Data == "" {
		return NewDraftError("dataObrigatoria", "Informe a data do agendamento")
	}
	if len(draft.Itens) == 0 {
		return NewDraftError("itensObrigatorios", "Adicione pelo menos um item ao pedido")
	}
	if draft.Tipo == models.TipoEntregaDomicilio && draft.Endereco == "" {
		return NewDraftError("enderecoObrigatorio", "Informe o endereço de entrega")
	}
	if draft.FormaPagamento == models.PagamentoVoucher && draft.VoucherCodigo == "" {
		return NewDraftError("voucherObrigatorio", "Informe o código do voucher")
	}
	return nil
}
