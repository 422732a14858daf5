// Package agenda serves the day view: the booking list with its
// zone-colored strips, plus the kitchen and route tallies derived from
// it. Tallies are pure reductions over the fetched list; they trigger
// no extra backend calls beyond the day fetch itself.
package agenda

import (
	"context"
	"fmt"

	"fitgarden/backend"
	"fitgarden/models"
	bookingsvc "fitgarden/services/booking"

	"go.uber.org/zap"
)

// Service exposes the day-view operations.
type Service interface {
	DayAgendamentos(ctx context.Context, date string, page, pageSize int) (*models.PaginatedAgendamentos, error)
	ProducaoDoDia(ctx context.Context, date string) ([]models.ProducaoItem, error)
	RotaDoDia(ctx context.Context, date string) ([]models.RotaRegiao, error)
	Delete(ctx context.Context, id string) error
	FinalizarPagamento(ctx context.Context, id string, forma models.FormaPagamento, canal models.CanalTaxa) error
}

// DefaultService implements Service over the core backend.
type DefaultService struct {
	Backend backend.AgendamentoAPI
	Logger  *zap.Logger
}

// DayAgendamentos fetches one page of the date's bookings and stamps
// each row with its zone color.
func (s *DefaultService) DayAgendamentos(ctx context.Context, date string, page, pageSize int) (*models.PaginatedAgendamentos, error) {
	result, err := s.Backend.ListAgendamentos(ctx, date, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agendamentos for %s: %w", date, err)
	}
	for i := range result.Agendamentos {
		result.Agendamentos[i].RegiaoCor = ZoneColor(result.Agendamentos[i].Regiao)
	}
	return result, nil
}

// ProducaoDoDia tallies item+size quantities across every booking of
// the date, for the kitchen.
func (s *DefaultService) ProducaoDoDia(ctx context.Context, date string) ([]models.ProducaoItem, error) {
	views, err := s.fetchAll(ctx, date)
	if err != nil {
		return nil, err
	}
	return ProductionTally(views), nil
}

// RotaDoDia tallies deliveries per zone for routing; pickups are
// excluded.
func (s *DefaultService) RotaDoDia(ctx context.Context, date string) ([]models.RotaRegiao, error) {
	views, err := s.fetchAll(ctx, date)
	if err != nil {
		return nil, err
	}
	return RouteTally(views), nil
}

// Delete removes a booking; callers refetch the day list afterwards.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if err := s.Backend.DeleteAgendamento(ctx, id); err != nil {
		return fmt.Errorf("failed to delete agendamento %s: %w", id, err)
	}
	s.Logger.Info("agendamento deleted", zap.String("id", id))
	return nil
}

// FinalizarPagamento resolves a pending payment, applying the same
// voucher-fee mapping the booking dialog uses.
func (s *DefaultService) FinalizarPagamento(ctx context.Context, id string, forma models.FormaPagamento, canal models.CanalTaxa) error {
	mapped := bookingsvc.MapFormaPagamentoComTaxa(forma, canal)
	if err := s.Backend.FinalizarPagamento(ctx, id, mapped); err != nil {
		return fmt.Errorf("failed to finalize payment for %s: %w", id, err)
	}
	return nil
}

// fetchAll pages through the whole day.
func (s *DefaultService) fetchAll(ctx context.Context, date string) ([]models.AgendamentoView, error) {
	const pageSize = 100

	var views []models.AgendamentoView
	for page := 1; ; page++ {
		result, err := s.Backend.ListAgendamentos(ctx, date, page, pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch agendamentos for %s: %w", date, err)
		}
		views = append(views, result.Agendamentos...)
		if len(views) >= result.Total || len(result.Agendamentos) == 0 {
			return views, nil
		}
	}
}
