package gallery

import (
	"encoding/json"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindCard, false},
		{"card", KindCard, false},
		{" Card ", KindCard, false},
		{"set", KindSet, false},
		{"SET", KindSet, false},
		{"deck", KindCard, true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindText(t *testing.T) {
	data, err := json.Marshal(struct{ Kind Kind }{KindSet})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"Kind":"set"}` {
		t.Fatalf("json = %s", data)
	}

	var decoded struct{ Kind Kind }
	if err := json.Unmarshal([]byte(`{"Kind":"card"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Kind != KindCard {
		t.Fatalf("decoded kind = %v", decoded.Kind)
	}
	if err := json.Unmarshal([]byte(`{"Kind":"deck"}`), &decoded); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if got := Kind(9).String(); got != "kind(9)" {
		t.Fatalf("String() = %q", got)
	}
}
