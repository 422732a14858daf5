package models

// Tamanho is a size/price variant of a menu option.
type Tamanho struct {
	ID     string  `json:"id"`
	Rotulo string  `json:"rotulo"` // e.g. "350g"
	Preco  float64 `json:"preco"`
}

// Opcao is a purchasable menu option with its size tiers.
type Opcao struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	Tamanhos []Tamanho `json:"tamanhos"`
}

// FindTamanho returns the size variant with the given id, if present.
func (o *Opcao) FindTamanho(tamanhoID string) (Tamanho, bool) {
	for _, t := range o.Tamanhos {
		if t.ID == tamanhoID {
			return t, true
		}
	}
	return Tamanho{}, false
}
