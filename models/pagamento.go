package models

// FormaPagamento is the payment-method enum understood by the core backend.
type FormaPagamento string

const (
	PagamentoDinheiro FormaPagamento = "DINHEIRO"
	PagamentoCartao   FormaPagamento = "CARTAO"
	PagamentoPix      FormaPagamento = "PIX"
	PagamentoVoucher  FormaPagamento = "VOUCHER"
	PagamentoPlano    FormaPagamento = "PLANO"

	// Voucher variants carrying the delivery-fee payment channel.
	PagamentoVoucherTaxaDinheiro FormaPagamento = "VOUCHER_TAXA_DINHEIRO"
	PagamentoVoucherTaxaCartao   FormaPagamento = "VOUCHER_TAXA_CARTAO"
	PagamentoVoucherTaxaPix      FormaPagamento = "VOUCHER_TAXA_PIX"
)

// CanalTaxa is how the customer pays the delivery fee when the order
// itself is covered by a voucher.
type CanalTaxa string

const (
	TaxaDinheiro CanalTaxa = "DINHEIRO"
	TaxaCartao   CanalTaxa = "CARTAO"
	TaxaPix      CanalTaxa = "PIX"
)
