package booking

import "fmt"

// DraftError is a business-rule rejection raised before any backend
// call. Message is operator-facing Portuguese.
type DraftError struct {
	Code    string
	Message string
}

func (e *DraftError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewDraftError(code, msg string) error {
	return &DraftError{
		Code:    code,
		Message: msg,
	}
}

// Shared rejections.
var (
	ErrDraftNotFound = NewDraftError("draftNotFound", "Rascunho não encontrado ou expirado")
	ErrDraftBusy     = NewDraftError("draftBusy", "Envio em andamento, aguarde a conclusão")
	ErrDraftReadOnly = NewDraftError("draftReadOnly", "Agendamento já confirmado, abra um novo rascunho para alterações")
)
