package catalog

import (
	"context"
	"testing"

	"fitgarden/models"
)

type fakeReference struct {
	opcaoCalls   int
	clienteCalls int
}

func (f *fakeReference) ListOpcoes(ctx context.Context) ([]models.Opcao, error) {
	f.opcaoCalls++
	return []models.Opcao{
		{
			ID:   "op-fit",
			Nome: "Fit",
			Tamanhos: []models.Tamanho{
				{ID: "tam-350", Rotulo: "350g", Preco: 19.90},
			},
		},
	}, nil
}

func (f *fakeReference) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	f.clienteCalls++
	return []models.Cliente{
		{ID: "cli-maria", Nome: "Maria", Telefone: "43999998888"},
	}, nil
}

func TestFindOpcao(t *testing.T) {
	svc := &DefaultService{Backend: &fakeReference{}}
	ctx := context.Background()

	opcao, err := svc.FindOpcao(ctx, "op-fit")
	if err != nil {
		t.Fatalf("FindOpcao: %v", err)
	}
	if opcao == nil || opcao.Nome != "Fit" {
		t.Errorf("opcao = %+v, want Fit", opcao)
	}

	tamanho, ok := opcao.FindTamanho("tam-350")
	if !ok || tamanho.Preco != 19.90 {
		t.Errorf("tamanho = %+v (ok=%v), want 350g at 19.90", tamanho, ok)
	}

	missing, err := svc.FindOpcao(ctx, "op-missing")
	if err != nil || missing != nil {
		t.Errorf("FindOpcao(missing) = (%+v, %v), want (nil, nil)", missing, err)
	}
}

func TestFindCliente(t *testing.T) {
	svc := &DefaultService{Backend: &fakeReference{}}
	ctx := context.Background()

	cliente, err := svc.FindCliente(ctx, "cli-maria")
	if err != nil {
		t.Fatalf("FindCliente: %v", err)
	}
	if cliente == nil || cliente.Telefone != "43999998888" {
		t.Errorf("cliente = %+v, want Maria with phone", cliente)
	}

	missing, err := svc.FindCliente(ctx, "cli-missing")
	if err != nil || missing != nil {
		t.Errorf("FindCliente(missing) = (%+v, %v), want (nil, nil)", missing, err)
	}
}

func TestNilCacheFetchesEveryTime(t *testing.T) {
	ref := &fakeReference{}
	svc := &DefaultService{Backend: ref}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.ListOpcoes(ctx); err != nil {
			t.Fatalf("ListOpcoes: %v", err)
		}
	}
	if ref.opcaoCalls != 3 {
		t.Errorf("backend calls = %d, want 3 with caching disabled", ref.opcaoCalls)
	}
}
