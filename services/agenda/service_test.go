package agenda

import (
	"context"
	"testing"

	"fitgarden/backend"
	"fitgarden/models"

	"go.uber.org/zap"
)

// pagedBackend serves a fixed day split across pages and records
// payment finalizations.
type pagedBackend struct {
	views       []models.AgendamentoView
	listCalls   int
	deleted     []string
	finalizados map[string]models.FormaPagamento
}

func (f *pagedBackend) ListAgendamentos(ctx context.Context, date string, page, pageSize int) (*models.PaginatedAgendamentos, error) {
	f.listCalls++
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(f.views) {
		start = len(f.views)
	}
	if end > len(f.views) {
		end = len(f.views)
	}
	return &models.PaginatedAgendamentos{
		Agendamentos: f.views[start:end],
		Page:         page,
		PageSize:     pageSize,
		Total:        len(f.views),
	}, nil
}

func (f *pagedBackend) CreateAgendamento(ctx context.Context, req backend.CreateAgendamentoRequest) (*backend.CreateAgendamentoResponse, error) {
	return nil, nil
}

func (f *pagedBackend) UpdateAgendamento(ctx context.Context, id string, req backend.UpdateAgendamentoRequest) (*models.AgendamentoView, error) {
	return nil, nil
}

func (f *pagedBackend) DeleteAgendamento(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *pagedBackend) FinalizarPagamento(ctx context.Context, id string, forma models.FormaPagamento) error {
	if f.finalizados == nil {
		f.finalizados = make(map[string]models.FormaPagamento)
	}
	f.finalizados[id] = forma
	return nil
}

func TestDayAgendamentosStampsZoneColors(t *testing.T) {
	be := &pagedBackend{views: dayViews()}
	svc := &DefaultService{Backend: be, Logger: zap.NewNop()}

	result, err := svc.DayAgendamentos(context.Background(), "2026-09-01", 1, 20)
	if err != nil {
		t.Fatalf("DayAgendamentos: %v", err)
	}
	for _, view := range result.Agendamentos {
		if view.RegiaoCor == "" {
			t.Errorf("booking %s missing zone color", view.ID)
		}
	}
	if result.Agendamentos[0].RegiaoCor != ZoneColor("Centro") {
		t.Errorf("color = %s, want stable ZoneColor for Centro", result.Agendamentos[0].RegiaoCor)
	}
}

func TestProducaoDoDiaPagesThroughWholeDay(t *testing.T) {
	// 250 bookings of one item each; the service pages in chunks of 100.
	var views []models.AgendamentoView
	for i := 0; i < 250; i++ {
		views = append(views, models.AgendamentoView{
			Tipo:  models.TipoEntregaDomicilio,
			Itens: []models.ItemView{{OpcaoNome: "Fit", TamanhoRotulo: "350g", Quantidade: 1}},
		})
	}
	be := &pagedBackend{views: views}
	svc := &DefaultService{Backend: be, Logger: zap.NewNop()}

	itens, err := svc.ProducaoDoDia(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("ProducaoDoDia: %v", err)
	}
	if len(itens) != 1 || itens[0].Quantidade != 250 {
		t.Errorf("tally = %+v, want 250x Fit 350g", itens)
	}
	if be.listCalls != 3 {
		t.Errorf("list calls = %d, want 3 pages", be.listCalls)
	}
}

func TestFinalizarPagamentoAppliesVoucherFeeMapping(t *testing.T) {
	be := &pagedBackend{}
	svc := &DefaultService{Backend: be, Logger: zap.NewNop()}

	if err := svc.FinalizarPagamento(context.Background(), "ag-1", models.PagamentoVoucher, models.TaxaPix); err != nil {
		t.Fatalf("FinalizarPagamento: %v", err)
	}
	if be.finalizados["ag-1"] != models.PagamentoVoucherTaxaPix {
		t.Errorf("forma = %s, want VOUCHER_TAXA_PIX", be.finalizados["ag-1"])
	}

	if err := svc.FinalizarPagamento(context.Background(), "ag-2", models.PagamentoDinheiro, ""); err != nil {
		t.Fatalf("FinalizarPagamento: %v", err)
	}
	if be.finalizados["ag-2"] != models.PagamentoDinheiro {
		t.Errorf("forma = %s, want DINHEIRO unchanged", be.finalizados["ag-2"])
	}
}

func TestDeleteProxiesToBackend(t *testing.T) {
	be := &pagedBackend{}
	svc := &DefaultService{Backend: be, Logger: zap.NewNop()}

	if err := svc.Delete(context.Background(), "ag-9"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(be.deleted) != 1 || be.deleted[0] != "ag-9" {
		t.Errorf("deleted = %v, want [ag-9]", be.deleted)
	}
}
