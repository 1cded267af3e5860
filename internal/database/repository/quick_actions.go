package repository

import "context"

// QuickActionRepo handles per-route quick actions.
type QuickActionRepo struct {
	db DBTX
}

func NewQuickActionRepo(db DBTX) *QuickActionRepo { return &QuickActionRepo{db: db} }

func (r *QuickActionRepo) Upsert(ctx context.Context, a QuickAction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO quick_actions(id, route, label_id, target, sort_order) VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET route=excluded.route, label_id=excluded.label_id,
		target=excluded.target, sort_order=excluded.sort_order;
	`, a.ID, a.Route, a.LabelID, a.Target, a.SortOrder)
	return err
}

func (r *QuickActionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quick_actions`).Scan(&n)
	return n, err
}

// ForRoute lists the quick actions of route in display order.
func (r *QuickActionRepo) ForRoute(ctx context.Context, route string) ([]QuickAction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, route, label_id, target, sort_order FROM quick_actions
	WHERE route = ? ORDER BY sort_order, id`, route)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []QuickAction
	for rows.Next() {
		var a QuickAction
		if err := rows.Scan(&a.ID, &a.Route, &a.LabelID, &a.Target, &a.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
