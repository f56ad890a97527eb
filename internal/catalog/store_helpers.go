package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"cardgallery/internal/gallery"
)

// timestampLayout is fixed width so created_at sorts chronologically as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		id           string
		batchID      string
		position     int
		kindRaw      string
		token        string
		output       sql.NullString
		errorMessage sql.NullString
		filenameJSON sql.NullString
		captionJSON  sql.NullString
		createdRaw   string
	)

	if err := scanner.Scan(
		&id,
		&batchID,
		&position,
		&kindRaw,
		&token,
		&output,
		&errorMessage,
		&filenameJSON,
		&captionJSON,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	kind, err := gallery.ParseKind(kindRaw)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", id, err)
	}

	rec := &Record{
		ID:       id,
		BatchID:  batchID,
		Position: position,
		Kind:     kind,
		Token:    token,
		Output:   output.String,
		Error:    errorMessage.String,
	}
	if t, err := time.Parse(timestampLayout, createdRaw); err == nil {
		rec.CreatedAt = t
	}
	if filenameJSON.Valid {
		var filename gallery.Filename
		if err := json.Unmarshal([]byte(filenameJSON.String), &filename); err != nil {
			return nil, fmt.Errorf("record %s: decode filename: %w", id, err)
		}
		rec.Filename = &filename
	}
	if captionJSON.Valid {
		var caption gallery.Caption
		if err := json.Unmarshal([]byte(captionJSON.String), &caption); err != nil {
			return nil, fmt.Errorf("record %s: decode caption: %w", id, err)
		}
		rec.Caption = &caption
	}
	return rec, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func marshalNullable[T any](value *T) (any, error) {
	if value == nil {
		return nil, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
