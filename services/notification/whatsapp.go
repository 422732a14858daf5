// Package notification builds the WhatsApp click-to-chat link sent to
// the customer after an agendamento is confirmed. The message template
// and the phone-digit normalization are exact contracts of the wa.me
// scheme; changing either breaks the link for operators.
package notification

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fitgarden/models"
)

// ErrSemTelefone is returned when the customer has no phone on file.
var ErrSemTelefone = errors.New("cliente sem telefone cadastrado")

// Service composes customer-facing confirmation messages.
type Service interface {
	ComposeConfirmation(draft *models.AgendamentoDraft) string
	ConfirmationLink(draft *models.AgendamentoDraft) (string, error)
}

// WhatsAppService implements Service for the wa.me deep-link scheme.
type WhatsAppService struct {
	// CountryCode is prefixed to local numbers, "55" for Brazil.
	CountryCode string
}

// ComposeConfirmation renders the fixed pt-BR confirmation template:
// delivery type, date, time window, zone, address, itemized list with
// per-line subtotals, grand total and optional notes.
func (s *WhatsAppService) ComposeConfirmation(draft *models.AgendamentoDraft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Olá, %s!\n", draft.ClienteNome)
	b.WriteString("Seu pedido FitGarden foi confirmado.\n\n")

	faixa := draft.HorarioInicio + "-" + draft.HorarioFim
	if draft.Tipo == models.TipoRetirada {
		fmt.Fprintf(&b, "Retirada: %s, %s\n", draft.Data, faixa)
	} else {
		fmt.Fprintf(&b, "Entrega: %s, %s\n", draft.Data, faixa)
		if draft.Regiao != "" {
			fmt.Fprintf(&b, "Região: %s\n", draft.Regiao)
		}
		fmt.Fprintf(&b, "Endereço: %s\n", draft.Endereco)
	}

	b.WriteString("\nItens:\n")
	for _, it := range draft.Itens {
		fmt.Fprintf(&b, "- %dx %s (%s) — R$ %.2f\n",
			it.Quantidade, it.OpcaoNome, it.TamanhoRotulo, it.Subtotal())
	}
	fmt.Fprintf(&b, "Total: R$ %.2f\n", draft.Total())

	if draft.Observacoes != "" {
		fmt.Fprintf(&b, "\nObservações: %s\n", draft.Observacoes)
	}

	return b.String()
}

// ConfirmationLink returns the ready-to-open wa.me URL for the draft's
// customer.
func (s *WhatsAppService) ConfirmationLink(draft *models.AgendamentoDraft) (string, error) {
	digits := NormalizePhoneToWaMe(draft.ClienteTelefone, s.CountryCode)
	if digits == "" {
		return "", ErrSemTelefone
	}
	message := s.ComposeConfirmation(draft)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message), nil
}

// NormalizePhoneToWaMe strips formatting and ensures the country code
// wa.me requires. A 10-11 digit number is treated as local and gets the
// country code prefixed; a number already starting with the code and at
// least 12 digits long passes through unchanged.
func NormalizePhoneToWaMe(phone, countryCode string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if number == "" {
		return ""
	}

	if strings.HasPrefix(number, countryCode) && len(number) >= 12 {
		return number
	}
	if len(number) >= 10 && len(number) <= 11 {
		return countryCode + number
	}
	return number
}
