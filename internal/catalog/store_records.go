package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"cardgallery/internal/gallery"
)

const recordColumns = "id, batch_id, position, kind, token, output, error_message, filename_json, caption_json, created_at"

// SaveBatch stores every result of one render invocation under batchID. An
// empty batchID is replaced with a fresh UUID. The stored records are
// returned in input order.
func (s *Store) SaveBatch(ctx context.Context, batchID string, kind gallery.Kind, results []gallery.Result) ([]Record, error) {
	ctx = ensureContext(ctx)
	if batchID == "" {
		batchID = uuid.NewString()
	}
	now := s.now().UTC()

	records := make([]Record, 0, len(results))
	for _, result := range results {
		rec := recordFromResult(batchID, kind, result, now)
		rec.ID = uuid.NewString()
		records = append(records, rec)
	}

	err := retryOnBusy(ctx, func() error {
		return s.insertRecords(ctx, records)
	})
	if err != nil {
		return nil, fmt.Errorf("save batch %s: %w", batchID, err)
	}
	return records, nil
}

func (s *Store) insertRecords(ctx context.Context, records []Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (`+recordColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		filenameJSON, err := marshalNullable(rec.Filename)
		if err != nil {
			return fmt.Errorf("marshal filename: %w", err)
		}
		captionJSON, err := marshalNullable(rec.Caption)
		if err != nil {
			return fmt.Errorf("marshal caption: %w", err)
		}
		if _, err := stmt.ExecContext(ctx,
			rec.ID,
			rec.BatchID,
			rec.Position,
			rec.Kind.String(),
			rec.Token,
			nullableString(rec.Output),
			nullableString(rec.Error),
			filenameJSON,
			captionJSON,
			formatTimestamp(rec.CreatedAt),
		); err != nil {
			return fmt.Errorf("insert record %d: %w", rec.Position, err)
		}
	}
	return tx.Commit()
}

// List returns the most recent records, newest batch first and in input
// order within a batch. A limit <= 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	ctx = ensureContext(ctx)
	query := `SELECT ` + recordColumns + ` FROM entries ORDER BY created_at DESC, seq`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryRecords(ctx, query, args...)
}

// Batch returns the records saved under batchID in input order.
func (s *Store) Batch(ctx context.Context, batchID string) ([]Record, error) {
	ctx = ensureContext(ctx)
	return s.queryRecords(ctx,
		`SELECT `+recordColumns+` FROM entries WHERE batch_id = ? ORDER BY position`,
		batchID,
	)
}

// Get fetches a record by ID. Unknown IDs return ErrRecordNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM entries WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

// Count reports the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// Clear removes every record and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, "DELETE FROM entries")
	if err != nil {
		return 0, fmt.Errorf("clear catalog: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
