package usecase

import (
	"context"
	"sort"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"
)

// IDashboardUseCase computes the aggregates behind the back-office charts.
// Everything is derived on demand from the orders table.
//
// Definitions:
//   - revenue: sum of completed order totals
//   - active: orders still in play (quotes + firm orders)
//   - this month: orders whose event date falls in the current month

type IDashboardUseCase interface {
	Revenue(ctx context.Context) (float64, error)
	ActiveOrders(ctx context.Context) (int, error)
	PendingOrders(ctx context.Context) (int, error)
	OrdersThisMonth(ctx context.Context) (int, error)
	EventsPerMonth(ctx context.Context) ([]entities.MonthCount, error)
	CompletedVsPending(ctx context.Context) (entities.CompletedVsPending, error)
}

type DashboardUseCase struct {
	repo interfaces.IOrderRepository
	now  func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// NewDashboardUseCaseWithClock pins "now" for deterministic tests.
func NewDashboardUseCaseWithClock(repo interfaces.IOrderRepository, now func() time.Time) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: now}
}

func (u *DashboardUseCase) Revenue(ctx context.Context) (float64, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, o := range orders {
		if o.Status == entities.OrderStatusCompletado {
			total += o.Total
		}
	}
	return total, nil
}

func (u *DashboardUseCase) ActiveOrders(ctx context.Context) (int, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, o := range orders {
		if o.Status == entities.OrderStatusOrcado || o.Status == entities.OrderStatusPendente {
			count++
		}
	}
	return count, nil
}

func (u *DashboardUseCase) PendingOrders(ctx context.Context) (int, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, o := range orders {
		if o.Status == entities.OrderStatusPendente {
			count++
		}
	}
	return count, nil
}

func (u *DashboardUseCase) OrdersThisMonth(ctx context.Context) (int, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	month := u.now().UTC().Format("2006-01")
	count := 0
	for _, o := range orders {
		if len(o.EventDate) >= len(month) && o.EventDate[:len(month)] == month {
			count++
		}
	}
	return count, nil
}

func (u *DashboardUseCase) EventsPerMonth(ctx context.Context) ([]entities.MonthCount, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byMonth := map[string]int{}
	for _, o := range orders {
		if o.Status == entities.OrderStatusCancelado {
			continue
		}
		if len(o.EventDate) < 7 {
			continue
		}
		byMonth[o.EventDate[:7]]++
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]entities.MonthCount, 0, len(months))
	for _, m := range months {
		out = append(out, entities.MonthCount{Month: m, Count: byMonth[m]})
	}
	return out, nil
}

func (u *DashboardUseCase) CompletedVsPending(ctx context.Context) (entities.CompletedVsPending, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return entities.CompletedVsPending{}, err
	}
	var result entities.CompletedVsPending
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusCompletado:
			result.Completados++
		case entities.OrderStatusPendente:
			result.Pendentes++
		}
	}
	return result, nil
}
