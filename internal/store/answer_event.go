package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

type answerRepo struct {
	db    *sql.DB
	clock clockwork.Clock
}

func (r *answerRepo) Append(ctx context.Context, ev *AnswerEvent) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = r.clock.Now()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (session_id, subject_id, subject_kind, task_type, response, status, plugin, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.SubjectID, ev.SubjectKind, ev.TaskType,
		ev.Response, ev.Status, ev.Plugin, ev.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("answer id: %w", err)
	}
	ev.ID = id
	return nil
}

func (r *answerRepo) Recent(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, opts.SessionID)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UnixMilli())
	}

	query := `SELECT id, session_id, subject_id, subject_kind, task_type, response, status, plugin, timestamp
		FROM answers`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY timestamp DESC, id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var (
			ev AnswerEvent
			ts int64
		)
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.SubjectID, &ev.SubjectKind,
			&ev.TaskType, &ev.Response, &ev.Status, &ev.Plugin, &ts); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		ev.Timestamp = time.UnixMilli(ts).UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return out, nil
}

func (r *answerRepo) Stats(ctx context.Context) (*Stats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM answers GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count answers: %w", err)
	}
	defer rows.Close()

	stats := &Stats{ByStatus: make(map[string]int)}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		stats.ByStatus[status] = n
		stats.Total += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	if stats.Total == 0 {
		return nil, ErrNoAnswers
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT plugin, COUNT(*) AS n FROM answers
		WHERE status = 'hint' AND plugin != ''
		GROUP BY plugin ORDER BY n DESC, plugin ASC LIMIT 1`,
	).Scan(&stats.TopHintPlugin, &stats.TopHintCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("top hint plugin: %w", err)
	}
	return stats, nil
}

func (r *answerRepo) Truncate(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM answers`)
	if err != nil {
		return 0, fmt.Errorf("delete answers: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
