package booking

import (
	"context"

	"fitgarden/models"

	"github.com/google/uuid"
)

// AddItem appends a line item for an option+size+quantity combination.
// Unknown option or size ids are rejected silently: the draft is
// returned unchanged, matching the dialog's disabled-add behavior. The
// unit price is copied from the catalog now and never re-fetched.
func (s *DefaultDraftService) AddItem(ctx context.Context, draftID, opcaoID, tamanhoID string, quantidade int) (*models.AgendamentoDraft, error) {
	draft, err := s.loadMutable(ctx, draftID)
	if err != nil {
		return nil, err
	}

	opcao, err := s.Catalog.FindOpcao(ctx, opcaoID)
	if err != nil {
		return nil, err
	}
	if opcao == nil {
		return draft, nil
	}
	tamanho, ok := opcao.FindTamanho(tamanhoID)
	if !ok {
		return draft, nil
	}

	if quantidade < 1 {
		quantidade = 1
	}

	draft.Itens = append(draft.Itens, models.ItemDraft{
		ID:            uuid.New().String(),
		OpcaoID:       opcao.ID,
		TamanhoID:     tamanho.ID,
		OpcaoNome:     opcao.Nome,
		TamanhoRotulo: tamanho.Rotulo,
		Quantidade:    quantidade,
		PrecoUnitario: tamanho.Preco,
	})

	return draft, s.saveMutated(ctx, draft)
}

// RemoveItem drops a single line item.
func (s *DefaultDraftService) RemoveItem(ctx context.Context, draftID, itemID string) (*models.AgendamentoDraft, error) {
	draft, err := s.loadMutable(ctx, draftID)
	if err != nil {
		return nil, err
	}

	itens := draft.Itens[:0]
	for _, it := range draft.Itens {
		if it.ID != itemID {
			itens = append(itens, it)
		}
	}
	draft.Itens = itens

	return draft, s.saveMutated(ctx, draft)
}

// ChangeQuantity adjusts a line item by delta, never driving the
// quantity below 1. Unknown item ids are a silent no-op.
func (s *DefaultDraftService) ChangeQuantity(ctx context.Context, draftID, itemID string, delta int) (*models.AgendamentoDraft, error) {
	draft, err := s.loadMutable(ctx, draftID)
	if err != nil {
		return nil, err
	}

	for i := range draft.Itens {
		if draft.Itens[i].ID != itemID {
			continue
		}
		quantidade := draft.Itens[i].Quantidade + delta
		if quantidade < 1 {
			quantidade = 1
		}
		draft.Itens[i].Quantidade = quantidade
		break
	}

	return draft, s.saveMutated(ctx, draft)
}
