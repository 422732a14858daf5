package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route
// registration.
type HandlerBundle struct {
	// Booking dialog endpoints.
	OpenDraft      gin.HandlerFunc
	GetDraft       gin.HandlerFunc
	PatchDraft     gin.HandlerFunc
	AddItem        gin.HandlerFunc
	RemoveItem     gin.HandlerFunc
	ChangeQuantity gin.HandlerFunc
	ResetDraft     gin.HandlerFunc
	DiscardDraft   gin.HandlerFunc
	ConfirmDraft   gin.HandlerFunc
	WhatsAppLink   gin.HandlerFunc

	// Agenda (day view) endpoints.
	ListDay            gin.HandlerFunc
	Producao           gin.HandlerFunc
	Rota               gin.HandlerFunc
	DeleteAgendamento  gin.HandlerFunc
	FinalizarPagamento gin.HandlerFunc

	// Reference data endpoints.
	ListClientes gin.HandlerFunc
	ListOpcoes   gin.HandlerFunc
}

// NewHandlerBundle wires the bundle from the concrete handlers.
func NewHandlerBundle(bookingH *BookingHandler, agendaH *AgendaHandler, catalogH *CatalogHandler) *HandlerBundle {
	return &HandlerBundle{
		OpenDraft:      bookingH.OpenDraft,
		GetDraft:       bookingH.GetDraft,
		PatchDraft:     bookingH.PatchDraft,
		AddItem:        bookingH.AddItem,
		RemoveItem:     bookingH.RemoveItem,
		ChangeQuantity: bookingH.ChangeQuantity,
		ResetDraft:     bookingH.ResetDraft,
		DiscardDraft:   bookingH.DiscardDraft,
		ConfirmDraft:   bookingH.ConfirmDraft,
		WhatsAppLink:   bookingH.WhatsAppLink,

		ListDay:            agendaH.ListDay,
		Producao:           agendaH.Producao,
		Rota:               agendaH.Rota,
		DeleteAgendamento:  agendaH.Delete,
		FinalizarPagamento: agendaH.FinalizarPagamento,

		ListClientes: catalogH.ListClientes,
		ListOpcoes:   catalogH.ListOpcoes,
	}
}
