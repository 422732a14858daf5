package booking

import "fitgarden/models"

// MapFormaPagamentoComTaxa derives the concrete backend payment value.
// A voucher order still owes its delivery fee, paid through a separate
// channel; the backend encodes that channel in the enum. Non-voucher
// methods map to themselves.
func MapFormaPagamentoComTaxa(forma models.FormaPagamento, canal models.CanalTaxa) models.FormaPagamento {
	if forma != models.PagamentoVoucher {
		return forma
	}
	switch canal {
	case models.TaxaPix:
		return models.PagamentoVoucherTaxaPix
	case models.TaxaDinheiro:
		return models.PagamentoVoucherTaxaDinheiro
	default:
		return models.PagamentoVoucherTaxaCartao
	}
}

// IsVoucherOuPlano reports whether a payment method is one the backend
// refuses on updates.
func IsVoucherOuPlano(forma models.FormaPagamento) bool {
	switch forma {
	case models.PagamentoVoucher,
		models.PagamentoPlano,
		models.PagamentoVoucherTaxaDinheiro,
		models.PagamentoVoucherTaxaCartao,
		models.PagamentoVoucherTaxaPix:
		return true
	}
	return false
}
