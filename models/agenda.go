package models

// ItemView is a confirmed line item as rendered in the day list.
type ItemView struct {
	OpcaoID       string  `json:"opcaoId"`
	TamanhoID     string  `json:"tamanhoId"`
	OpcaoNome     string  `json:"opcaoNome"`
	TamanhoRotulo string  `json:"tamanhoRotulo"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"precoUnitario"`
	Subtotal      float64 `json:"subtotal"`
}

// AgendamentoView is a confirmed booking as rendered in the day list.
// Backend rows cross the typed mapper boundary in the backend package
// before reaching this shape.
type AgendamentoView struct {
	ID             string         `json:"id"`
	PedidoID       string         `json:"pedidoId"`
	ClienteID      string         `json:"clienteId"`
	ClienteNome    string         `json:"clienteNome"`
	Tipo           TipoEntrega    `json:"tipo"`
	Data           string         `json:"data"`
	FaixaHorario   string         `json:"faixaHorario"` // "HH:MM-HH:MM"
	Endereco       string         `json:"endereco,omitempty"`
	Regiao         string         `json:"regiao,omitempty"`
	RegiaoCor      string         `json:"regiaoCor,omitempty"` // strip color for the list row
	Observacoes    string         `json:"observacoes,omitempty"`
	FormaPagamento FormaPagamento `json:"formaPagamento"`
	Itens          []ItemView     `json:"itens"`
	Total          float64        `json:"total"`
}

// PaginatedAgendamentos is one page of the day list.
type PaginatedAgendamentos struct {
	Agendamentos []AgendamentoView `json:"agendamentos"`
	Page         int               `json:"page"`
	PageSize     int               `json:"pageSize"`
	Total        int               `json:"total"`
}
