package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createLeadTransitionsTable = `
	CREATE TABLE IF NOT EXISTS lead_transitions (
		id          BIGSERIAL PRIMARY KEY,
		lead_id     BIGINT      NOT NULL,
		from_status TEXT        NOT NULL,
		to_status   TEXT        NOT NULL,
		actor_id    TEXT        NOT NULL,
		reverted    BOOLEAN     NOT NULL DEFAULT FALSE,
		reason      TEXT        NOT NULL DEFAULT '',
		occurred_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS lead_transitions_lead_id_idx ON lead_transitions (lead_id, occurred_at);
`

// PostgresLeadJournal - реализация LeadJournalPort для PostgreSQL.
type PostgresLeadJournal struct {
	pool *pgxpool.Pool
}

// NewPostgresLeadJournal - конструктор, создает таблицу при необходимости.
func NewPostgresLeadJournal(ctx context.Context, pool *pgxpool.Pool) (*PostgresLeadJournal, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	if _, err := pool.Exec(ctx, createLeadTransitionsTable); err != nil {
		return nil, fmt.Errorf("failed to prepare lead_transitions table: %w", err)
	}
	return &PostgresLeadJournal{pool: pool}, nil
}

func (r *PostgresLeadJournal) Record(ctx context.Context, record domain.LeadTransitionRecord) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresLeadJournal",
		"method":    "Record",
		"lead_id":   record.LeadID,
	})

	query := `
		INSERT INTO lead_transitions (lead_id, from_status, to_status, actor_id, reverted, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		record.LeadID,
		string(record.FromStatus),
		string(record.ToStatus),
		record.ActorID,
		record.Reverted,
		record.Reason,
		record.OccurredAt,
	)
	if err != nil {
		repoLogger.Error("Failed to record lead transition", err, nil)
		return fmt.Errorf("failed to record lead transition: %w", err)
	}

	repoLogger.Debug("Lead transition recorded", port.Fields{"to_status": string(record.ToStatus), "reverted": record.Reverted})
	return nil
}

func (r *PostgresLeadJournal) History(ctx context.Context, leadID int64) ([]domain.LeadTransitionRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresLeadJournal",
		"method":    "History",
		"lead_id":   leadID,
	})

	query := `
		SELECT lead_id, from_status, to_status, actor_id, reverted, reason, occurred_at
		FROM lead_transitions
		WHERE lead_id = $1
		ORDER BY occurred_at, id
	`
	rows, err := r.pool.Query(ctx, query, leadID)
	if err != nil {
		repoLogger.Error("Failed to query lead history", err, nil)
		return nil, fmt.Errorf("failed to query lead history: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeadTransitionRecord, error) {
		var rec domain.LeadTransitionRecord
		var from, to string
		err := row.Scan(&rec.LeadID, &from, &to, &rec.ActorID, &rec.Reverted, &rec.Reason, &rec.OccurredAt)
		rec.FromStatus = domain.LeadStatus(from)
		rec.ToStatus = domain.LeadStatus(to)
		return rec, err
	})
	if err != nil {
		repoLogger.Error("Failed to scan lead history", err, nil)
		return nil, fmt.Errorf("failed to scan lead history: %w", err)
	}

	return records, nil
}
