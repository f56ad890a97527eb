package catalog

import (
	"time"

	"cardgallery/internal/gallery"
)

// Record is one rendered token as stored in the catalog.
type Record struct {
	ID        string            `json:"id"`
	BatchID   string            `json:"batch_id"`
	Position  int               `json:"position"`
	Kind      gallery.Kind      `json:"kind"`
	Token     string            `json:"token"`
	Output    string            `json:"output,omitempty"`
	Error     string            `json:"error,omitempty"`
	Filename  *gallery.Filename `json:"filename,omitempty"`
	Caption   *gallery.Caption  `json:"caption,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Failed reports whether the token could not be rendered.
func (r Record) Failed() bool {
	return r.Error != ""
}

// recordFromResult converts a batch result into an unsaved record.
func recordFromResult(batchID string, kind gallery.Kind, result gallery.Result, createdAt time.Time) Record {
	rec := Record{
		BatchID:   batchID,
		Position:  result.Index,
		Kind:      kind,
		Token:     result.Token,
		Output:    result.Output,
		CreatedAt: createdAt,
	}
	if result.Err != nil {
		rec.Error = result.Err.Error()
	}
	if result.Entry != nil {
		filename := result.Entry.Filename()
		caption := result.Entry.Caption()
		rec.Filename = &filename
		rec.Caption = &caption
	}
	return rec
}
