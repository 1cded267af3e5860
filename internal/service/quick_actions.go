package service

import (
	"context"
	"fmt"

	"github.com/jask/navshell/internal/database/repository"
	"github.com/jask/navshell/internal/state"
)

// QuickActionService resolves the quick actions offered on a route.
type QuickActionService struct {
	Repo *repository.QuickActionRepo
}

// ForRoute returns the route's quick actions as state entries.
func (s *QuickActionService) ForRoute(ctx context.Context, route string) ([]state.QuickAction, error) {
	rows, err := s.Repo.ForRoute(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("quick actions for %s: %w", route, err)
	}
	out := make([]state.QuickAction, 0, len(rows))
	for _, r := range rows {
		out = append(out, state.QuickAction{ID: r.ID, LabelID: r.LabelID, Path: r.Target})
	}
	return out, nil
}
