package gallery

import (
	"strings"

	"cardgallery/internal/textutil"
)

// DefaultExtension is the image extension left implicit in rendered entries.
const DefaultExtension = "png"

// RenderOptions tunes Entry rendering.
type RenderOptions struct {
	// DefaultExtension is omitted from the options group. Empty means
	// DefaultExtension.
	DefaultExtension string
}

func (o RenderOptions) defaultExtension() string {
	if o.DefaultExtension == "" {
		return DefaultExtension
	}
	return o.DefaultExtension
}

// Entry is one gallery line: a filename and its caption.
type Entry struct {
	kind     Kind
	raw      string
	filename Filename
	caption  Caption
}

// ParseEntry splits a "filename | caption" token and decodes both halves with
// the grammar for kind. Pipes inside the caption are preserved.
func ParseEntry(kind Kind, token string) (*Entry, error) {
	parts := pipePattern.Split(token, -1)
	name := parts[0]
	if strings.TrimSpace(name) == "" {
		return nil, &InputFormatError{Input: token, Reason: "token has no filename segment"}
	}

	filename, err := ParseFilename(kind, name)
	if err != nil {
		return nil, err
	}
	caption, err := ParseCaption(kind, strings.Join(parts[1:], "|"))
	if err != nil {
		return nil, err
	}

	return &Entry{kind: kind, raw: token, filename: filename, caption: caption}, nil
}

// ParseCardEntry is ParseEntry for card galleries.
func ParseCardEntry(token string) (*Entry, error) {
	return ParseEntry(KindCard, token)
}

// Kind reports the grammar the entry was parsed with.
func (e *Entry) Kind() Kind { return e.kind }

// Raw returns the token the entry was parsed from.
func (e *Entry) Raw() string { return e.raw }

// Filename returns the decoded filename.
func (e *Entry) Filename() Filename { return e.filename }

// Caption returns the decoded caption.
func (e *Entry) Caption() Caption { return e.caption }

// Options builds the option group for the entry. A fresh collection is built
// on every call.
func (e *Entry) Options(opts RenderOptions) *Options {
	options := NewOptions()
	if e.filename.Extension != opts.defaultExtension() {
		options.Add(OptionExtension, e.filename.Extension)
	}
	options.Add(OptionDescription, e.caption.Description)
	return options
}

// Render encodes the entry with default options.
func (e *Entry) Render() string {
	return e.RenderWith(RenderOptions{})
}

// RenderWith encodes the entry as a {{Card gallery}} parameter:
//
//	number; set; rarity; edition; alt :: release // options
//
// The card number falls back to the filename's set code. Empty fields and
// empty groups are dropped together with their separators. Every "=" in the
// result is escaped.
func (e *Entry) RenderWith(opts RenderOptions) string {
	number := e.caption.Number
	if number == "" {
		number = e.filename.SetCode
	}

	var acc textutil.Accumulator
	acc.Add(number).
		Add(e.caption.Set).
		Add(e.filename.Rarity).
		Add(e.filename.Edition).
		Add(e.filename.Alt).
		Flush("; ").
		Add(e.filename.Release).
		Flush(" :: ").
		Add(e.Options(opts).String()).
		Flush(" // ")

	return textutil.EscapeTemplateValue(acc.String())
}
