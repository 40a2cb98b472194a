// Package journal persists one record per money-movement call made through
// the Pratik Ödeme client, for reconciliation against provider reports.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

// Entry is a stored TransferRecord.
type Entry struct {
	ID string
	pratikode.TransferRecord
}

// Service stores transfer records in the transfer_journal table
type Service struct {
	db     *sql.DB
	logger *zap.Logger
}

// New creates a new journal service
func New(db *sql.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, logger: logger.Named("journal")}
}

// RecordTransfer implements pratikode.Recorder.
func (s *Service) RecordTransfer(ctx context.Context, rec *pratikode.TransferRecord) error {
	_, err := s.Insert(ctx, rec)
	return err
}

// Insert stores rec and returns the generated entry ID.
func (s *Service) Insert(ctx context.Context, rec *pratikode.TransferRecord) (string, error) {
	id := uuid.New().String()
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transfer_journal (id, endpoint, ext_transaction_id, transaction_id, amount_minor, currency, success, response_code, next_step, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, id, rec.Endpoint, nullString(rec.ExtTransactionID), nullString(rec.TransactionID), rec.AmountMinor,
		rec.CurrencyCode, rec.Success, nullString(rec.ResponseCode), nullString(rec.NextStep), createdAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert journal entry: %w", err)
	}

	s.logger.Debug("transfer recorded",
		zap.String("id", id),
		zap.String("endpoint", rec.Endpoint),
		zap.Bool("success", rec.Success))
	return id, nil
}

// Filter defines criteria for listing journal entries
type Filter struct {
	ExtTransactionID string
	TransactionID    string
	Endpoint         string
	OnlyFailed       bool
	From             time.Time
	To               time.Time
	Limit            int
}

// List retrieves journal entries, newest first
func (s *Service) List(ctx context.Context, filter *Filter) ([]*Entry, error) {
	query, args := buildListQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var extID, txID, code, step sql.NullString

		err := rows.Scan(&e.ID, &e.Endpoint, &extID, &txID, &e.AmountMinor, &e.CurrencyCode,
			&e.Success, &code, &step, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		e.ExtTransactionID = extID.String
		e.TransactionID = txID.String
		e.ResponseCode = code.String
		e.NextStep = step.String
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

func buildListQuery(filter *Filter) (string, []any) {
	query := `SELECT id, endpoint, ext_transaction_id, transaction_id, amount_minor, currency, success, response_code, next_step, created_at
			  FROM transfer_journal WHERE 1=1`
	args := []any{}
	paramIdx := 1

	if filter != nil {
		if filter.ExtTransactionID != "" {
			query += fmt.Sprintf(" AND ext_transaction_id = $%d", paramIdx)
			args = append(args, filter.ExtTransactionID)
			paramIdx++
		}
		if filter.TransactionID != "" {
			query += fmt.Sprintf(" AND transaction_id = $%d", paramIdx)
			args = append(args, filter.TransactionID)
			paramIdx++
		}
		if filter.Endpoint != "" {
			query += fmt.Sprintf(" AND endpoint = $%d", paramIdx)
			args = append(args, filter.Endpoint)
			paramIdx++
		}
		if filter.OnlyFailed {
			query += " AND success = FALSE"
		}
		if !filter.From.IsZero() {
			query += fmt.Sprintf(" AND created_at >= $%d", paramIdx)
			args = append(args, filter.From)
			paramIdx++
		}
		if !filter.To.IsZero() {
			query += fmt.Sprintf(" AND created_at <= $%d", paramIdx)
			args = append(args, filter.To)
			paramIdx++
		}
	}

	query += " ORDER BY created_at DESC"

	if filter != nil && filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", paramIdx)
		args = append(args, filter.Limit)
	} else {
		query += " LIMIT 100"
	}

	return query, args
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
