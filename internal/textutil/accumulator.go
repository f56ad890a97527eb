package textutil

import "strings"

// Accumulator buffers tokens and joins them in delimiter-specific passes.
//
// Each Flush collapses the current buffer into a single token joined with the
// given delimiter, so successive Add/Flush rounds build nested groups such as
// "a; b :: c". The zero value is ready to use.
type Accumulator struct {
	buffer []string
}

// Add appends token to the buffer. Empty tokens are ignored.
func (a *Accumulator) Add(token string) *Accumulator {
	if token != "" {
		a.buffer = append(a.buffer, token)
	}
	return a
}

// Flush joins the buffered tokens with delimiter and replaces the buffer with
// the joined result. Flushing an empty buffer is a no-op.
func (a *Accumulator) Flush(delimiter string) *Accumulator {
	if len(a.buffer) == 0 {
		return a
	}
	joined := strings.Join(a.buffer, delimiter)
	a.buffer = append(a.buffer[:0], joined)
	return a
}

// Len reports how many tokens are currently buffered.
func (a *Accumulator) Len() int {
	return len(a.buffer)
}

// String flushes with an empty delimiter and returns the accumulated text.
func (a *Accumulator) String() string {
	a.Flush("")
	return strings.Join(a.buffer, "")
}
