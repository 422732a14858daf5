package models

// ProducaoItem is one row of the kitchen tally: an option+size pair and
// the total quantity across all of the day's bookings.
type ProducaoItem struct {
	OpcaoNome     string `json:"opcaoNome"`
	TamanhoRotulo string `json:"tamanhoRotulo"`
	Quantidade    int    `json:"quantidade"`
}

// RotaRegiao buckets the delivery-route tally per zone. Only ENTREGA
// bookings contribute.
type RotaRegiao struct {
	Regiao       string         `json:"regiao"`
	Cor          string         `json:"cor"`
	Agendamentos int            `json:"agendamentos"`
	Itens        []ProducaoItem `json:"itens"`
}
