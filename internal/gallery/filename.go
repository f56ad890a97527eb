package gallery

import (
	"regexp"
	"strings"
)

// Release codes recognised in filenames.
const (
	ReleaseOfficialProxy = "OP"
	ReleaseGiantCard     = "GC"
	ReleaseCaseTopper    = "CT"
	ReleaseReplica       = "RP"
)

const (
	regionJapanese = "JP"
	editionDT      = "DT"
)

// releasePattern finds a release code bounded by "-" on the left and "-" or
// "." on the right. It runs over the whole raw filename, so an alt segment
// spelled like a release code is read as the release.
var releasePattern = regexp.MustCompile(`(?i)-(OP|GC|CT|RP)[-.]`)

// Filename is a decomposed card image name such as
// "BlueEyesWhiteDragon-LOB-EN-UR-1E.png".
type Filename struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	SetCode   string `json:"set_code,omitempty" yaml:"set_code,omitempty"`
	Region    string `json:"region,omitempty" yaml:"region,omitempty"`
	Release   string `json:"release,omitempty" yaml:"release,omitempty"`
	Rarity    string `json:"rarity,omitempty" yaml:"rarity,omitempty"`
	Edition   string `json:"edition,omitempty" yaml:"edition,omitempty"`
	Alt       string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
	IsProxy   bool   `json:"is_proxy" yaml:"is_proxy"`
	Raw       string `json:"raw" yaml:"raw"`
}

// ParseFilename decodes raw with the grammar for kind.
func ParseFilename(kind Kind, raw string) (Filename, error) {
	switch kind {
	case KindCard:
		return ParseCardFilename(raw)
	default:
		return Filename{Kind: kind, Raw: raw}, unsupportedKind(kind)
	}
}

// ParseCardFilename decodes a card gallery filename of the form
//
//	name-setCode-region[-release][-rarity]-edition[-alt].extension
//
// Missing trailing segments are left empty. Official proxies (release OP)
// carry no rarity, and Japanese prints only keep the DT edition; any other
// edition on a JP filename is really the alt.
func ParseCardFilename(raw string) (Filename, error) {
	f := Filename{Kind: KindCard, Raw: raw}

	dot := strings.LastIndex(raw, ".")
	if dot < 0 {
		return f, &InputFormatError{Input: raw, Reason: "filename has no extension separator"}
	}
	indexes, extension := raw[:dot], raw[dot+1:]
	if indexes == "" {
		return f, &InputFormatError{Input: raw, Reason: "filename has no name segment"}
	}

	segments := newCursor(strings.Split(indexes, "-"))
	f.Name = segments.next()
	f.SetCode = segments.next()
	f.Region = segments.next()

	if match := releasePattern.FindStringSubmatch(raw); match != nil {
		f.Release = match[1]
		segments.remove(f.Release)
	}
	f.IsProxy = f.Release == ReleaseOfficialProxy

	if f.IsProxy {
		f.Edition = segments.next()
	} else {
		f.Rarity = segments.next()
		f.Edition = segments.next()
	}
	f.Alt = segments.next()

	if f.Region == regionJapanese && f.Edition != editionDT {
		f.Alt, f.Edition = f.Edition, ""
	}

	f.Extension = extension
	return f, nil
}

// Segments returns the non-empty dash segments in canonical order: name, set
// code, region, release, rarity, edition, alt.
func (f Filename) Segments() []string {
	out := make([]string, 0, 7)
	for _, value := range []string{f.Name, f.SetCode, f.Region, f.Release, f.Rarity, f.Edition, f.Alt} {
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
