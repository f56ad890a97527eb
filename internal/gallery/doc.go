// Package gallery decodes card image filenames and captions from the wiki's
// card galleries and encodes them back into {{Card gallery}} entries.
//
// A gallery token has the shape "filename | caption". ParseEntry splits it,
// decomposes the filename (name, set code, region, release, rarity, edition,
// alt, extension) and the caption (card number, rarity, release, edition, set
// name, description), and Render emits the compact parameter string
//
//	NUMBER; SET; RARITY; EDITION; ALT :: RELEASE // key::value; key::value
//
// with every "=" escaped as {{=}}. Parsing is best-effort: patterns that do
// not match leave their fields empty. Only structurally unusable input (no
// filename, no extension separator) is rejected with an *InputFormatError.
//
// Records carry a Kind. Card galleries are fully supported; set galleries are
// reserved and currently return ErrKindUnsupported.
package gallery
