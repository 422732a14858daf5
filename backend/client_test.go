package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitgarden/models"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, StaticTokenProvider("staff-token"), zap.NewNop())
}

func TestListAgendamentosMapsRows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agendamentos" {
			t.Errorf("path = %s, want /agendamentos", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2026-09-01" {
			t.Errorf("date = %s, want 2026-09-01", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer staff-token" {
			t.Errorf("authorization = %q, want injected bearer token", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"agendamentos": [{
				"id": "ag-1",
				"pedidoId": "ped-1",
				"clienteId": "cli-maria",
				"clienteNome": "Maria",
				"tipo": "ENTREGA",
				"data": "2026-09-01",
				"faixaHorario": "13:00-15:00",
				"endereco": "Rua A, 100",
				"regiao": "Centro",
				"formaPagamento": "DINHEIRO",
				"itens": [
					{"opcaoId": "op-fit", "tamanhoId": "tam-350", "opcaoNome": "Fit", "tamanhoRotulo": "350g", "quantidade": 2, "precoUnitario": 19.90}
				]
			}],
			"page": 1,
			"pageSize": 20,
			"total": 1
		}`))
	})

	result, err := client.ListAgendamentos(context.Background(), "2026-09-01", 1, 20)
	if err != nil {
		t.Fatalf("ListAgendamentos: %v", err)
	}
	if len(result.Agendamentos) != 1 || result.Total != 1 {
		t.Fatalf("result = %+v, want one booking", result)
	}

	view := result.Agendamentos[0]
	if view.Tipo != models.TipoEntregaDomicilio || view.ClienteNome != "Maria" {
		t.Errorf("view = %+v, want mapped ENTREGA for Maria", view)
	}
	if len(view.Itens) != 1 || view.Itens[0].Subtotal != 39.80 {
		t.Errorf("items = %+v, want one line with subtotal 39.80", view.Itens)
	}
	if view.Total != 39.80 {
		t.Errorf("total = %.2f, want 39.80", view.Total)
	}
}

func TestCreateAgendamentoPayloadShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/agendamentos" {
			t.Errorf("%s %s, want POST /agendamentos", r.Method, r.URL.Path)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		for _, key := range []string{"clienteId", "tipo", "data", "faixaHorario", "formaPagamento", "itens"} {
			if _, ok := payload[key]; !ok {
				t.Errorf("payload missing %q: %v", key, payload)
			}
		}
		itens := payload["itens"].([]any)
		item := itens[0].(map[string]any)
		if item["quantidade"].(float64) != 2 {
			t.Errorf("item quantidade = %v, want 2", item["quantidade"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"pedidoId": "ped-9", "agendamentoId": "ag-9"}`))
	})

	resp, err := client.CreateAgendamento(context.Background(), CreateAgendamentoRequest{
		ClienteID:      "cli-maria",
		Tipo:           models.TipoEntregaDomicilio,
		Data:           "2026-09-01",
		FaixaHorario:   "13:00-15:00",
		Endereco:       "Rua A, 100",
		FormaPagamento: models.PagamentoDinheiro,
		Itens:          []ItemRequest{{OpcaoID: "op-fit", TamanhoID: "tam-350", Quantidade: 2}},
	})
	if err != nil {
		t.Fatalf("CreateAgendamento: %v", err)
	}
	if resp.PedidoID != "ped-9" || resp.AgendamentoID != "ag-9" {
		t.Errorf("resp = %+v, want backend identifiers", resp)
	}
}

func TestUnauthorizedBecomesSessionExpired(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.ListAgendamentos(context.Background(), "2026-09-01", 1, 20); err != ErrSessionExpired {
		t.Errorf("err = %v, want ErrSessionExpired", err)
	}
}

func TestNotFoundBecomesErrNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if err := client.DeleteAgendamento(context.Background(), "ag-missing"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStaffTokenProviderPrefersCallerToken(t *testing.T) {
	provider := StaffTokenProvider{Fallback: "service-token"}

	token, err := provider.Token(context.Background())
	if err != nil || token != "service-token" {
		t.Errorf("Token = (%q, %v), want service-token fallback", token, err)
	}

	ctx := WithStaffToken(context.Background(), "staff-token")
	token, err = provider.Token(ctx)
	if err != nil || token != "staff-token" {
		t.Errorf("Token = (%q, %v), want caller token from context", token, err)
	}
}

func TestBackendErrorCarriesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "voucher inválido"}`))
	})

	err := client.FinalizarPagamento(context.Background(), "ag-1", models.PagamentoVoucherTaxaPix)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("err = %T (%v), want *APIError", err, err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Message != "voucher inválido" {
		t.Errorf("apiErr = %+v, want status 422 with backend message", apiErr)
	}
}
