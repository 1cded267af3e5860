package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/navshell/internal/database/repository"
)

type seedAction struct {
	route   string
	labelID string
	target  string
}

var defaultQuickActions = []seedAction{
	{route: "/", labelID: "page.about", target: "/about"},
	{route: "/about", labelID: "page.home", target: "/"},
	{route: "/login", labelID: "action.sign_up", target: "/signup"},
	{route: "/signup", labelID: "page.me.login", target: "/login"},
	{route: "/profile", labelID: "action.preferences", target: "/preferences"},
	{route: "/preferences", labelID: "page.me.profile", target: "/profile"},
}

// SeedDefaults ensures baseline quick actions exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewQuickActionRepo(db).Count(ctx)
	if err != nil {
		return fmt.Errorf("count quick actions: %w", err)
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewQuickActionRepo(tx)
		for idx, a := range defaultQuickActions {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("qa:"+a.route+":"+a.target)).String()
			qa := repository.QuickAction{ID: id, Route: a.route, LabelID: a.labelID, Target: a.target, SortOrder: idx}
			if err := repo.Upsert(ctx, qa); err != nil {
				return fmt.Errorf("seed quick action %s: %w", a.route, err)
			}
		}
		return nil
	})
}
