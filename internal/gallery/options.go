package gallery

import "cardgallery/internal/textutil"

// Option keys emitted after the "//" separator of a rendered entry.
const (
	OptionExtension   = "extension"
	OptionDescription = "description"
)

// Options is an insertion-ordered set of entry options. The zero value is
// ready to use.
type Options struct {
	keys   []string
	values map[string]string
}

// NewOptions returns an empty collection.
func NewOptions() *Options {
	return &Options{}
}

// Add stores key=value. Empty keys or values are ignored. Re-adding a key
// replaces its value but keeps its original position.
func (o *Options) Add(key, value string) *Options {
	if key == "" || value == "" {
		return o
	}
	if o.values == nil {
		o.values = make(map[string]string)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value stored for key.
func (o *Options) Get(key string) (string, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (o *Options) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len reports the number of stored options.
func (o *Options) Len() int {
	return len(o.keys)
}

// String serializes the collection as "key::value; key::value".
func (o *Options) String() string {
	var acc textutil.Accumulator
	for _, key := range o.keys {
		acc.Add(key).Flush("; ").Add(o.values[key]).Flush("::")
	}
	return acc.String()
}
