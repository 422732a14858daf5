// Package catalog serves the read-only reference data (customers and
// menu options) the booking dialog renders and copies prices from. The
// backend owns the data; this layer only caches it briefly.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fitgarden/backend"
	"fitgarden/models"

	"github.com/go-redis/redis/v8"
)

const (
	opcoesCacheKey   = "ref:opcoes"
	clientesCacheKey = "ref:clientes"
)

// Service exposes the reference data to the booking workflow.
type Service interface {
	ListOpcoes(ctx context.Context) ([]models.Opcao, error)
	FindOpcao(ctx context.Context, opcaoID string) (*models.Opcao, error)
	ListClientes(ctx context.Context) ([]models.Cliente, error)
	FindCliente(ctx context.Context, clienteID string) (*models.Cliente, error)
}

// DefaultService implements Service backed by the core backend with a
// short-lived Redis cache. A nil Cache disables caching.
type DefaultService struct {
	Backend backend.ReferenceAPI
	Cache   *redis.Client
	TTL     time.Duration
}

// ListOpcoes returns the menu options with their size tiers.
func (s *DefaultService) ListOpcoes(ctx context.Context) ([]models.Opcao, error) {
	var opcoes []models.Opcao
	if s.cacheGet(ctx, opcoesCacheKey, &opcoes) {
		return opcoes, nil
	}

	opcoes, err := s.Backend.ListOpcoes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cardápio options: %w", err)
	}
	s.cacheSet(ctx, opcoesCacheKey, opcoes)
	return opcoes, nil
}

// FindOpcao returns the option with the given id, or nil when unknown.
func (s *DefaultService) FindOpcao(ctx context.Context, opcaoID string) (*models.Opcao, error) {
	opcoes, err := s.ListOpcoes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range opcoes {
		if opcoes[i].ID == opcaoID {
			return &opcoes[i], nil
		}
	}
	return nil, nil
}

// ListClientes returns the customer reference list.
func (s *DefaultService) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	var clientes []models.Cliente
	if s.cacheGet(ctx, clientesCacheKey, &clientes) {
		return clientes, nil
	}

	clientes, err := s.Backend.ListClientes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clientes: %w", err)
	}
	s.cacheSet(ctx, clientesCacheKey, clientes)
	return clientes, nil
}

// FindCliente returns the customer with the given id, or nil when unknown.
func (s *DefaultService) FindCliente(ctx context.Context, clienteID string) (*models.Cliente, error) {
	clientes, err := s.ListClientes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clientes {
		if clientes[i].ID == clienteID {
			return &clientes[i], nil
		}
	}
	return nil, nil
}

func (s *DefaultService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

func (s *DefaultService) cacheSet(ctx context.Context, key string, value any) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Best effort; a cache miss next time just refetches.
	s.Cache.Set(ctx, key, data, s.TTL)
}
