package gallery

import "regexp"

var (
	// lineBreakPattern splits captions on <br>, <br/>, </br>, < br / > etc.
	lineBreakPattern = regexp.MustCompile(`< */? *br */? *>`)

	// cardNumberPattern captures "[[SETCODE-NUMBER]]" at the start of a line.
	cardNumberPattern = regexp.MustCompile(`(?m)^\[\[((.*?)-(.*?))\]\]`)

	// parenLinkPattern captures "([[TEXT]])".
	parenLinkPattern = regexp.MustCompile(`(?i)\(\[\[(.*?)\]\]\)`)

	releaseKeywordPattern = regexp.MustCompile(`Proxy|Giant|Topper|Replica`)

	// editionLinkPattern captures "([[... Edition]])" including the word Edition.
	editionLinkPattern = regexp.MustCompile(`(?i)\(\[\[((.*?) Edition)\]\]\)`)

	// setLinkPattern captures a leading "[[Set name]]" or "[[Set name|label]]".
	setLinkPattern = regexp.MustCompile(`(?m)^\[\[(.*?)\]\]`)

	pipePattern = regexp.MustCompile(` *\| *`)
)

// Caption is a decomposed card gallery caption, e.g.
//
//	[[LOB-EN001]] ([[Ultra Rare]])<br>([[1st Edition]])<br>[[Legend of Blue Eyes White Dragon]]
type Caption struct {
	Kind        Kind   `json:"kind" yaml:"kind"`
	Number      string `json:"number,omitempty" yaml:"number,omitempty"`
	SetCode     string `json:"set_code,omitempty" yaml:"set_code,omitempty"`
	Rarity      string `json:"rarity,omitempty" yaml:"rarity,omitempty"`
	Release     string `json:"release,omitempty" yaml:"release,omitempty"`
	Edition     string `json:"edition,omitempty" yaml:"edition,omitempty"`
	Set         string `json:"set,omitempty" yaml:"set,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Raw         string `json:"raw" yaml:"raw"`
}

// ParseCaption decodes raw with the grammar for kind.
func ParseCaption(kind Kind, raw string) (Caption, error) {
	switch kind {
	case KindCard:
		return ParseCardCaption(raw), nil
	default:
		return Caption{Kind: kind, Raw: raw}, unsupportedKind(kind)
	}
}

// ParseCardCaption decodes a card gallery caption. The caption is split on
// line breaks and read in order:
//
//  1. card number link and parenthesised rarity link
//  2. release link, only when it names a Proxy, Giant, Topper or Replica
//  3. "([[... Edition]])" link
//  4. set name link
//  5. description, taken verbatim
//
// Steps 2 and 3 only consume a part when they match, so absent annotations
// shift the later parts up. Nothing here fails; unmatched fields stay empty.
func ParseCardCaption(raw string) Caption {
	c := Caption{Kind: KindCard, Raw: raw}
	parts := newCursor(lineBreakPattern.Split(raw, -1))

	current := parts.next()
	if match := cardNumberPattern.FindStringSubmatch(current); match != nil {
		c.Number = match[1]
		c.SetCode = match[2]
	}
	if match := parenLinkPattern.FindStringSubmatch(current); match != nil {
		c.Rarity = match[1]
	}

	current = parts.next()
	if releaseKeywordPattern.MatchString(current) {
		if match := parenLinkPattern.FindStringSubmatch(current); match != nil {
			c.Release = match[1]
			current = parts.next()
		}
	}

	if match := editionLinkPattern.FindStringSubmatch(current); match != nil {
		c.Edition = match[1]
		current = parts.next()
	}

	if match := setLinkPattern.FindStringSubmatch(current); match != nil {
		c.Set = pipePattern.Split(match[1], 2)[0]
	}

	c.Description = parts.next()
	return c
}
