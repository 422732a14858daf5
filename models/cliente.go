package models

// Cliente is read-only reference data owned by the core backend.
type Cliente struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco,omitempty"`
}
