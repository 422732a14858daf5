package backend

import (
	"context"
	"net/http"

	"fitgarden/models"
)

// ReferenceAPI is the read-only slice of the backend: customers and the
// menu catalog with size/price tiers.
type ReferenceAPI interface {
	ListClientes(ctx context.Context) ([]models.Cliente, error)
	ListOpcoes(ctx context.Context) ([]models.Opcao, error)
}

type clienteRow struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
}

type tamanhoRow struct {
	ID     string  `json:"id"`
	Rotulo string  `json:"rotulo"`
	Preco  float64 `json:"preco"`
}

type opcaoRow struct {
	ID       string       `json:"id"`
	Nome     string       `json:"nome"`
	Tamanhos []tamanhoRow `json:"tamanhos"`
}

// ListClientes fetches the customer reference list.
func (c *Client) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	var resp struct {
		Clientes []clienteRow `json:"clientes"`
	}
	if err := c.do(ctx, http.MethodGet, "/clientes", nil, &resp); err != nil {
		return nil, err
	}

	clientes := make([]models.Cliente, 0, len(resp.Clientes))
	for _, row := range resp.Clientes {
		clientes = append(clientes, models.Cliente{
			ID:       row.ID,
			Nome:     row.Nome,
			Telefone: row.Telefone,
			Endereco: row.Endereco,
		})
	}
	return clientes, nil
}

// ListOpcoes fetches the menu options with their size tiers.
func (c *Client) ListOpcoes(ctx context.Context) ([]models.Opcao, error) {
	var resp struct {
		Opcoes []opcaoRow `json:"opcoes"`
	}
	if err := c.do(ctx, http.MethodGet, "/cardapio/opcoes", nil, &resp); err != nil {
		return nil, err
	}

	opcoes := make([]models.Opcao, 0, len(resp.Opcoes))
	for _, row := range resp.Opcoes {
		opcao := models.Opcao{
			ID:       row.ID,
			Nome:     row.Nome,
			Tamanhos: make([]models.Tamanho, 0, len(row.Tamanhos)),
		}
		for _, t := range row.Tamanhos {
			opcao.Tamanhos = append(opcao.Tamanhos, models.Tamanho{
				ID:     t.ID,
				Rotulo: t.Rotulo,
				Preco:  t.Preco,
			})
		}
		opcoes = append(opcoes, opcao)
	}
	return opcoes, nil
}
