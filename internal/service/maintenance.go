package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jask/navshell/internal/database/repository"
	"github.com/jask/navshell/internal/logx"
)

// MaintenanceService houses housekeeping run at startup.
type MaintenanceService struct {
	DB *sql.DB
}

// PruneSessions removes sessions that expired before now.
func (s *MaintenanceService) PruneSessions(ctx context.Context, now time.Time) (int64, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	n, err := repository.NewSessionRepo(s.DB).DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	if n > 0 {
		logx.Info("pruned expired sessions", "count", n)
	}
	return n, nil
}
