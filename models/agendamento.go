package models

import "math"

// TipoEntrega distinguishes deliveries from counter pickups.
type TipoEntrega string

const (
	TipoEntregaDomicilio TipoEntrega = "ENTREGA"
	TipoRetirada         TipoEntrega = "RETIRADA"
)

// DraftState is the lifecycle of an in-progress agendamento draft.
// Invalid combinations of the old boolean flags (confirmed while still
// saving, etc.) are unrepresentable.
type DraftState string

const (
	DraftEmpty      DraftState = "EMPTY"      // opened for create, untouched
	DraftEditing    DraftState = "EDITING"    // fields being filled or corrected
	DraftSubmitting DraftState = "SUBMITTING" // backend call in flight
	DraftConfirmed  DraftState = "CONFIRMED"  // backend accepted; read-only
	DraftFailed     DraftState = "FAILED"     // backend rejected; editable again
)

// ItemDraft is one line of the draft. The unit price is copied from the
// catalog when the item is added and never re-fetched.
type ItemDraft struct {
	ID            string  `json:"id"`
	OpcaoID       string  `json:"opcaoId"`
	TamanhoID     string  `json:"tamanhoId"`
	OpcaoNome     string  `json:"opcaoNome"`
	TamanhoRotulo string  `json:"tamanhoRotulo"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"precoUnitario"`
}

// Subtotal is quantity times the locked-in unit price.
func (i ItemDraft) Subtotal() float64 {
	return round2(float64(i.Quantidade) * i.PrecoUnitario)
}

// AgendamentoDraft holds every mutable field of the booking dialog.
type AgendamentoDraft struct {
	DraftID string     `json:"draftId"`
	State   DraftState `json:"state"`

	// EditingID is the backend agendamento id when the draft was opened
	// over an existing record; empty in create mode.
	EditingID string `json:"editingId,omitempty"`

	ClienteID       string `json:"clienteId"`
	ClienteNome     string `json:"clienteNome"`
	ClienteTelefone string `json:"clienteTelefone"`

	Tipo          TipoEntrega `json:"tipo"`
	Data          string      `json:"data"`          // "YYYY-MM-DD"
	HorarioInicio string      `json:"horarioInicio"` // "HH:MM"
	HorarioFim    string      `json:"horarioFim"`    // "HH:MM"
	Endereco      string      `json:"endereco"`
	Regiao        string      `json:"regiao"`
	Observacoes   string      `json:"observacoes"`

	FormaPagamento FormaPagamento `json:"formaPagamento"`
	CanalTaxa      CanalTaxa      `json:"canalTaxa,omitempty"`
	VoucherCodigo  string         `json:"voucherCodigo,omitempty"`

	// Payment method the record carried when the edit draft was opened;
	// used by the edit-policy checks.
	OriginalFormaPagamento FormaPagamento `json:"originalFormaPagamento,omitempty"`

	Itens []ItemDraft `json:"itens"`

	// Identifiers returned by the backend after confirmation.
	PedidoID      string `json:"pedidoId,omitempty"`
	AgendamentoID string `json:"agendamentoId,omitempty"`

	// Last submission failure, shown to the operator.
	LastError string `json:"lastError,omitempty"`
}

// IsEdit reports whether the draft mutates an existing record.
func (d *AgendamentoDraft) IsEdit() bool {
	return d.EditingID != ""
}

// Total sums all line subtotals.
func (d *AgendamentoDraft) Total() float64 {
	var total float64
	for _, it := range d.Itens {
		total += it.Subtotal()
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
