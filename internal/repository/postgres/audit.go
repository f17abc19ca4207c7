package postgres

import (
	"context"
	"database/sql"
	"time"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/repository"
)

type auditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	query := `INSERT INTO audit_log (id, actor_id, action, entity_type, entity_id, before_snapshot, after_snapshot, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	entry.CreatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.ActorID, entry.Action, entry.EntityType,
		entry.EntityID, []byte(entry.Before), []byte(entry.After), entry.CreatedAt)
	return err
}

func (r *auditRepository) List(ctx context.Context, entityType string, limit, offset int32) ([]domain.AuditEntry, int32, error) {
	baseWhere := ``
	args := []any{}
	if entityType != "" {
		baseWhere = ` WHERE entity_type = $1`
		args = append(args, entityType)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM audit_log`+baseWhere, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, actor_id, action, entity_type, entity_id, before_snapshot, after_snapshot, created_at FROM audit_log` + baseWhere
	if entityType != "" {
		query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var before, after sql.NullString
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Action, &e.EntityType, &e.EntityID, &before, &after, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		e.Before = []byte(before.String)
		e.After = []byte(after.String)
		entries = append(entries, e)
	}
	return entries, count, rows.Err()
}
