package notification

import (
	"strings"
	"testing"

	"fitgarden/models"
)

func TestNormalizePhoneToWaMe(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"11-digit local number", "43999998888", "5543999998888"},
		{"10-digit local number", "4399998888", "554399998888"},
		{"already has country code", "5543999998888", "5543999998888"},
		{"formatted local number", "(43) 99999-8888", "5543999998888"},
		{"formatted with country code", "+55 (43) 99999-8888", "5543999998888"},
		{"empty", "", ""},
		{"no digits", "sem telefone", ""},
		// Too short to be a local mobile; passed through untouched.
		{"short number", "99998888", "99998888"},
		// Starts with 55 but too short for code+number; treated as local.
		{"local number starting with 55", "5599998888", "555599998888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhoneToWaMe(tt.phone, "55"); got != tt.want {
				t.Errorf("NormalizePhoneToWaMe(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func testDraft() *models.AgendamentoDraft {
	return &models.AgendamentoDraft{
		State:           models.DraftConfirmed,
		ClienteNome:     "Maria",
		ClienteTelefone: "43999998888",
		Tipo:            models.TipoEntregaDomicilio,
		Data:            "2026-09-01",
		HorarioInicio:   "13:00",
		HorarioFim:      "15:00",
		Endereco:        "Rua A, 100",
		Regiao:          "Centro",
		Itens: []models.ItemDraft{
			{OpcaoNome: "Fit", TamanhoRotulo: "350g", Quantidade: 2, PrecoUnitario: 19.90},
			{OpcaoNome: "Low Carb", TamanhoRotulo: "500g", Quantidade: 1, PrecoUnitario: 24.90},
		},
	}
}

func TestComposeConfirmationDelivery(t *testing.T) {
	svc := &WhatsAppService{CountryCode: "55"}
	message := svc.ComposeConfirmation(testDraft())

	for _, want := range []string{
		"Olá, Maria!",
		"Entrega: 2026-09-01, 13:00-15:00",
		"Região: Centro",
		"Endereço: Rua A, 100",
		"- 2x Fit (350g) — R$ 39.80",
		"- 1x Low Carb (500g) — R$ 24.90",
		"Total: R$ 64.70",
	} {
		if !strings.Contains(message, want) {
			t.Errorf("message missing %q:\n%s", want, message)
		}
	}
}

func TestComposeConfirmationPickupOmitsAddress(t *testing.T) {
	svc := &WhatsAppService{CountryCode: "55"}
	draft := testDraft()
	draft.Tipo = models.TipoRetirada

	message := svc.ComposeConfirmation(draft)
	if !strings.Contains(message, "Retirada: 2026-09-01, 13:00-15:00") {
		t.Errorf("message missing pickup line:\n%s", message)
	}
	if strings.Contains(message, "Endereço") {
		t.Errorf("pickup message should not carry an address:\n%s", message)
	}
}

func TestComposeConfirmationNotesOptional(t *testing.T) {
	svc := &WhatsAppService{CountryCode: "55"}
	draft := testDraft()

	if message := svc.ComposeConfirmation(draft); strings.Contains(message, "Observações") {
		t.Errorf("message carries notes section without notes:\n%s", message)
	}

	draft.Observacoes = "Sem cebola"
	if message := svc.ComposeConfirmation(draft); !strings.Contains(message, "Observações: Sem cebola") {
		t.Errorf("message missing notes:\n%s", svc.ComposeConfirmation(draft))
	}
}

func TestConfirmationLink(t *testing.T) {
	svc := &WhatsAppService{CountryCode: "55"}
	draft := testDraft()

	link, err := svc.ConfirmationLink(draft)
	if err != nil {
		t.Fatalf("ConfirmationLink: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/5543999998888?text=") {
		t.Errorf("link = %q, want wa.me prefix with normalized digits", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("link contains unescaped spaces: %q", link)
	}

	draft.ClienteTelefone = ""
	if _, err := svc.ConfirmationLink(draft); err != ErrSemTelefone {
		t.Errorf("ConfirmationLink without phone = %v, want ErrSemTelefone", err)
	}
}
