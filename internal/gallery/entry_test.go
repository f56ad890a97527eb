package gallery

import (
	"errors"
	"strings"
	"testing"
)

func TestEntryRender(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "non default extension and description",
			token: "12345-LOB-EN-R-UE.jpg | [[LOB-EN001]] ([[Common]])<br>[[Legend of Blue Eyes White Dragon|LOB]]<br>Some card.",
			want:  "LOB-EN001; Legend of Blue Eyes White Dragon; R; UE // extension::jpg; description::Some card.",
		},
		{
			name:  "png without description has no options group",
			token: "12345-LOB-EN-R-UE.png | [[LOB-EN001]] ([[Common]])<br>[[Legend of Blue Eyes White Dragon]]",
			want:  "LOB-EN001; Legend of Blue Eyes White Dragon; R; UE",
		},
		{
			name:  "official proxy release group",
			token: "12345-LOB-EN-OP-UE.png|[[LOB-EN001]]<br>([[Official Proxy]])<br>[[Legend of Blue Eyes White Dragon]]",
			want:  "LOB-EN001; Legend of Blue Eyes White Dragon; UE :: OP",
		},
		{
			name:  "no caption falls back to filename set code",
			token: "12345-LOB-EN-R-UE.png",
			want:  "LOB; R; UE",
		},
		{
			name:  "japanese alt",
			token: "DarkMagician-SDY-JP-UR-AA.png | [[SDY-JP005]] ([[Ultra Rare]])<br>[[Starter Deck: Yugi]]",
			want:  "SDY-JP005; Starter Deck: Yugi; UR; AA",
		},
		{
			name:  "equals sign escaped",
			token: "Card-LOB-EN-R-UE.png | [[LOB-EN001]]<br>[[Legend]]<br>x=1",
			want:  "LOB-EN001; Legend; R; UE // description::x{{=}}1",
		},
		{
			name:  "release and options together",
			token: "Card-SDK-EN-GC-UR-LE.gif | [[SDK-001]]<br>([[Giant Card]])<br>([[Limited Edition]])<br>[[Starter Deck: Kaiba]]<br>Oversized.",
			want:  "SDK-001; Starter Deck: Kaiba; UR; LE :: GC // extension::gif; description::Oversized.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ParseCardEntry(tt.token)
			if err != nil {
				t.Fatalf("ParseCardEntry: %v", err)
			}
			if got := entry.Render(); got != tt.want {
				t.Errorf("Render()\n got  %q\n want %q", got, tt.want)
			}
		})
	}
}

func TestParseEntryKeepsCaptionPipes(t *testing.T) {
	entry, err := ParseCardEntry("Card-LOB-EN-R-UE.png | [[LOB-EN001]]<br>[[Legend of Blue Eyes White Dragon | LOB]]")
	if err != nil {
		t.Fatalf("ParseCardEntry: %v", err)
	}
	if got := entry.Caption().Raw; got != "[[LOB-EN001]]<br>[[Legend of Blue Eyes White Dragon|LOB]]" {
		t.Fatalf("caption raw = %q", got)
	}
	if got := entry.Caption().Set; got != "Legend of Blue Eyes White Dragon" {
		t.Fatalf("caption set = %q", got)
	}
	if got := entry.Filename().Raw; got != "Card-LOB-EN-R-UE.png" {
		t.Fatalf("filename raw = %q", got)
	}
	if entry.Kind() != KindCard {
		t.Fatalf("kind = %v", entry.Kind())
	}
}

func TestParseEntryErrors(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		token string
		want  error
	}{
		{"empty token", KindCard, "", ErrInputFormat},
		{"blank filename", KindCard, "  | [[LOB-EN001]]", ErrInputFormat},
		{"filename without extension", KindCard, "Card-LOB-EN | [[LOB-EN001]]", ErrInputFormat},
		{"set galleries", KindSet, "LOB-EN.png | [[LOB]]", ErrKindUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ParseEntry(tt.kind, tt.token)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseEntry error = %v, want %v", err, tt.want)
			}
			if entry != nil {
				t.Fatalf("expected nil entry on error, got %+v", entry)
			}
		})
	}
}

func TestRenderWithCustomDefaultExtension(t *testing.T) {
	entry, err := ParseCardEntry("Card-LOB-EN-R-UE.jpg | [[LOB-EN001]]")
	if err != nil {
		t.Fatalf("ParseCardEntry: %v", err)
	}
	if got := entry.RenderWith(RenderOptions{DefaultExtension: "jpg"}); got != "LOB-EN001; R; UE" {
		t.Fatalf("RenderWith(jpg) = %q", got)
	}
	if got := entry.Render(); got != "LOB-EN001; R; UE // extension::jpg" {
		t.Fatalf("Render() = %q", got)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	entry, err := ParseCardEntry("Card-LOB-EN-R-UE.jpg | [[LOB-EN001]]<br>[[Legend]]<br>Text")
	if err != nil {
		t.Fatalf("ParseCardEntry: %v", err)
	}
	first := entry.Render()
	if second := entry.Render(); second != first {
		t.Fatalf("second render %q differs from first %q", second, first)
	}
	if entry.Options(RenderOptions{}).Len() != 2 {
		t.Fatalf("expected two options, got %v", entry.Options(RenderOptions{}).Keys())
	}
}

func TestRenderNeverLeavesBareEquals(t *testing.T) {
	for _, token := range []string{
		"A=B-LOB-EN-R-UE.png | [[LOB-EN001]]<br>[[Set=Name]]<br>a=b=c",
		"Card-LOB-EN-R-UE.j=g | [[LOB=EN001]]",
		"Card-LOB-EN-R-UE.png",
	} {
		entry, err := ParseCardEntry(token)
		if err != nil {
			t.Fatalf("ParseCardEntry(%q): %v", token, err)
		}
		out := entry.Render()
		if strings.Contains(strings.ReplaceAll(out, "{{=}}", ""), "=") {
			t.Errorf("unescaped '=' in %q", out)
		}
	}
}
