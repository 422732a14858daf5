package booking

import (
	"testing"

	"fitgarden/models"
)

func TestMapFormaPagamentoComTaxa(t *testing.T) {
	tests := []struct {
		name  string
		forma models.FormaPagamento
		canal models.CanalTaxa
		want  models.FormaPagamento
	}{
		{"voucher with pix fee", models.PagamentoVoucher, models.TaxaPix, models.PagamentoVoucherTaxaPix},
		{"voucher with cash fee", models.PagamentoVoucher, models.TaxaDinheiro, models.PagamentoVoucherTaxaDinheiro},
		{"voucher with card fee", models.PagamentoVoucher, models.TaxaCartao, models.PagamentoVoucherTaxaCartao},
		{"voucher with unknown channel defaults to card", models.PagamentoVoucher, models.CanalTaxa("BOLETO"), models.PagamentoVoucherTaxaCartao},
		{"voucher with empty channel defaults to card", models.PagamentoVoucher, models.CanalTaxa(""), models.PagamentoVoucherTaxaCartao},
		{"cash unchanged", models.PagamentoDinheiro, models.TaxaPix, models.PagamentoDinheiro},
		{"card unchanged", models.PagamentoCartao, models.TaxaDinheiro, models.PagamentoCartao},
		{"pix unchanged", models.PagamentoPix, models.TaxaCartao, models.PagamentoPix},
		{"plan unchanged", models.PagamentoPlano, models.TaxaPix, models.PagamentoPlano},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapFormaPagamentoComTaxa(tt.forma, tt.canal); got != tt.want {
				t.Errorf("MapFormaPagamentoComTaxa(%q, %q) = %q, want %q",
					tt.forma, tt.canal, got, tt.want)
			}
		})
	}
}

func TestIsVoucherOuPlano(t *testing.T) {
	voucherLike := []models.FormaPagamento{
		models.PagamentoVoucher,
		models.PagamentoPlano,
		models.PagamentoVoucherTaxaDinheiro,
		models.PagamentoVoucherTaxaCartao,
		models.PagamentoVoucherTaxaPix,
	}
	for _, forma := range voucherLike {
		if !IsVoucherOuPlano(forma) {
			t.Errorf("IsVoucherOuPlano(%q) = false, want true", forma)
		}
	}
	for _, forma := range []models.FormaPagamento{models.PagamentoDinheiro, models.PagamentoCartao, models.PagamentoPix} {
		if IsVoucherOuPlano(forma) {
			t.Errorf("IsVoucherOuPlano(%q) = true, want false", forma)
		}
	}
}
