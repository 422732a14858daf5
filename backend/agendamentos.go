package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"fitgarden/models"
)

// AgendamentoAPI is the slice of the backend consumed by the booking
// workflow. Services depend on this interface so tests can fake the
// collaborator.
type AgendamentoAPI interface {
	ListAgendamentos(ctx context.Context, date string, page, pageSize int) (*models.PaginatedAgendamentos, error)
	CreateAgendamento(ctx context.Context, req CreateAgendamentoRequest) (*CreateAgendamentoResponse, error)
	UpdateAgendamento(ctx context.Context, id string, req UpdateAgendamentoRequest) (*models.AgendamentoView, error)
	DeleteAgendamento(ctx context.Context, id string) error
	FinalizarPagamento(ctx context.Context, id string, forma models.FormaPagamento) error
}

// ItemRequest is one line of a create/update payload.
type ItemRequest struct {
	OpcaoID    string `json:"opcaoId"`
	TamanhoID  string `json:"tamanhoId"`
	Quantidade int    `json:"quantidade"`
}

// CreateAgendamentoRequest is the POST /agendamentos body.
type CreateAgendamentoRequest struct {
	ClienteID      string                `json:"clienteId"`
	Tipo           models.TipoEntrega    `json:"tipo"`
	Data           string                `json:"data"`
	FaixaHorario   string                `json:"faixaHorario"`
	Endereco       string                `json:"endereco,omitempty"`
	Regiao         string                `json:"regiao,omitempty"`
	Observacoes    string                `json:"observacoes,omitempty"`
	FormaPagamento models.FormaPagamento `json:"formaPagamento"`
	VoucherCodigo  string                `json:"voucherCodigo,omitempty"`
	Itens          []ItemRequest         `json:"itens"`
}

// UpdateAgendamentoRequest is the PUT /agendamentos/:id body. The
// backend accepts no clienteId and no voucher fields on update.
type UpdateAgendamentoRequest struct {
	Tipo           models.TipoEntrega    `json:"tipo"`
	Data           string                `json:"data"`
	FaixaHorario   string                `json:"faixaHorario"`
	Endereco       string                `json:"endereco,omitempty"`
	Regiao         string                `json:"regiao,omitempty"`
	Observacoes    string                `json:"observacoes,omitempty"`
	FormaPagamento models.FormaPagamento `json:"formaPagamento"`
	Itens          []ItemRequest         `json:"itens"`
}

// CreateAgendamentoResponse carries the identifiers minted by the backend.
type CreateAgendamentoResponse struct {
	PedidoID      string `json:"pedidoId"`
	AgendamentoID string `json:"agendamentoId"`
}

// agendamentoRow is the backend's wire shape for one booking. It is the
// single place backend rows are declared; see MapAgendamentoRow.
type agendamentoRow struct {
	ID             string    `json:"id"`
	PedidoID       string    `json:"pedidoId"`
	ClienteID      string    `json:"clienteId"`
	ClienteNome    string    `json:"clienteNome"`
	Tipo           string    `json:"tipo"`
	Data           string    `json:"data"`
	FaixaHorario   string    `json:"faixaHorario"`
	Endereco       string    `json:"endereco"`
	Regiao         string    `json:"regiao"`
	Observacoes    string    `json:"observacoes"`
	FormaPagamento string    `json:"formaPagamento"`
	Itens          []itemRow `json:"itens"`
}

type itemRow struct {
	OpcaoID       string  `json:"opcaoId"`
	TamanhoID     string  `json:"tamanhoId"`
	OpcaoNome     string  `json:"opcaoNome"`
	TamanhoRotulo string  `json:"tamanhoRotulo"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"precoUnitario"`
}

type listAgendamentosResponse struct {
	Agendamentos []agendamentoRow `json:"agendamentos"`
	Page         int              `json:"page"`
	PageSize     int              `json:"pageSize"`
	Total        int              `json:"total"`
}

// mapAgendamentoRow converts a backend row into the view model used by
// the agenda screens.
func mapAgendamentoRow(row agendamentoRow) models.AgendamentoView {
	view := models.AgendamentoView{
		ID:             row.ID,
		PedidoID:       row.PedidoID,
		ClienteID:      row.ClienteID,
		ClienteNome:    row.ClienteNome,
		Tipo:           models.TipoEntrega(row.Tipo),
		Data:           row.Data,
		FaixaHorario:   row.FaixaHorario,
		Endereco:       row.Endereco,
		Regiao:         row.Regiao,
		Observacoes:    row.Observacoes,
		FormaPagamento: models.FormaPagamento(row.FormaPagamento),
		Itens:          make([]models.ItemView, 0, len(row.Itens)),
	}
	var total float64
	for _, it := range row.Itens {
		subtotal := float64(it.Quantidade) * it.PrecoUnitario
		view.Itens = append(view.Itens, models.ItemView{
			OpcaoID:       it.OpcaoID,
			TamanhoID:     it.TamanhoID,
			OpcaoNome:     it.OpcaoNome,
			TamanhoRotulo: it.TamanhoRotulo,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      subtotal,
		})
		total += subtotal
	}
	view.Total = total
	return view
}

// ListAgendamentos fetches one page of bookings for a date.
func (c *Client) ListAgendamentos(ctx context.Context, date string, page, pageSize int) (*models.PaginatedAgendamentos, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("pageSize", fmt.Sprintf("%d", pageSize))

	var resp listAgendamentosResponse
	if err := c.do(ctx, http.MethodGet, "/agendamentos?"+query.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	out := &models.PaginatedAgendamentos{
		Agendamentos: make([]models.AgendamentoView, 0, len(resp.Agendamentos)),
		Page:         resp.Page,
		PageSize:     resp.PageSize,
		Total:        resp.Total,
	}
	for _, row := range resp.Agendamentos {
		out.Agendamentos = append(out.Agendamentos, mapAgendamentoRow(row))
	}
	return out, nil
}

// CreateAgendamento submits a new booking.
func (c *Client) CreateAgendamento(ctx context.Context, req CreateAgendamentoRequest) (*CreateAgendamentoResponse, error) {
	var resp CreateAgendamentoResponse
	if err := c.do(ctx, http.MethodPost, "/agendamentos", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAgendamento replaces an existing booking.
func (c *Client) UpdateAgendamento(ctx context.Context, id string, req UpdateAgendamentoRequest) (*models.AgendamentoView, error) {
	var row agendamentoRow
	if err := c.do(ctx, http.MethodPut, "/agendamentos/"+id, req, &row); err != nil {
		return nil, err
	}
	view := mapAgendamentoRow(row)
	return &view, nil
}

// DeleteAgendamento removes a booking.
func (c *Client) DeleteAgendamento(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/agendamentos/"+id, nil, nil)
}

// FinalizarPagamento resolves a pending payment with the chosen method.
func (c *Client) FinalizarPagamento(ctx context.Context, id string, forma models.FormaPagamento) error {
	body := struct {
		FormaPagamento models.FormaPagamento `json:"formaPagamento"`
	}{FormaPagamento: forma}
	return c.do(ctx, http.MethodPost, "/agendamentos/"+id+"/finalizar-pagamento", body, nil)
}
