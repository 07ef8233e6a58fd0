package dialog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/personform/gui/guitest"
)

func TestFilterNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"42", "42"},
		{"4a2", "42"},
		{"-1.5e3", "-1.53"},
		{"1..2--", "1..2--"},
		{"１２", ""}, // fullwidth digits are not ASCII
		{"a b c", ""},
	}
	for _, tt := range tests {
		got := Filter(InputNumber, tt.in)
		if got != tt.want {
			t.Errorf("Filter(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := Filter(InputNumber, got); again != got {
			t.Errorf("Filter not idempotent on %q: %q", got, again)
		}
	}
}

func TestFilterTextUnchanged(t *testing.T) {
	for _, s := range []string{"", "Ada Lovelace", "héllo 👋", "12-ab"} {
		if got := Filter(InputText, s); got != s {
			t.Errorf("Expected %q unchanged, got %q", s, got)
		}
	}
}

var numberCfg = Config{
	Title:          "Count",
	InputType:      InputNumber,
	PositiveAction: "OK",
	NegativeAction: "No",
}

func TestShowLayout(t *testing.T) {
	script := guitest.New()
	input := ""
	out, err := Show(script, "d", 1, numberCfg, &input)
	if out != Pending || err != nil {
		t.Fatalf("Expected Pending, got %v %v", out, err)
	}

	rec, ok := script.Record("d")
	if !ok {
		t.Fatal("Expected window d to be drawn")
	}
	if !rec.Options.Foreground || !rec.Options.Closable || rec.Options.Resizable || rec.Options.Collapsible {
		t.Errorf("Unexpected window options %+v", rec.Options)
	}
	if diff := cmp.Diff([]string{"OK", "No"}, rec.Buttons); diff != "" {
		t.Errorf("Buttons mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Count"}, rec.Texts); diff != "" {
		t.Errorf("Texts mismatch (-want +got):\n%s", diff)
	}
}

func TestShowOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		script  func(s *guitest.Script)
		cfg     Config
		want    Outcome
		wantBuf string
		wantErr bool
	}{
		{
			name:   "idle",
			script: func(s *guitest.Script) {},
			cfg:    numberCfg,
			want:   Pending,
		},
		{
			name:    "filtered typing",
			script:  func(s *guitest.Script) { s.Type("d", "1x2") },
			cfg:     numberCfg,
			want:    Pending,
			wantBuf: "12",
		},
		{
			name:   "empty confirm ignored",
			script: func(s *guitest.Script) { s.Click("d", "OK") },
			cfg:    numberCfg,
			want:   Pending,
		},
		{
			name:   "filtered to empty confirm ignored",
			script: func(s *guitest.Script) { s.Type("d", "abc").Click("d", "OK") },
			cfg:    numberCfg,
			want:   Pending,
		},
		{
			name:    "confirm",
			script:  func(s *guitest.Script) { s.Type("d", "7").Click("d", "OK") },
			cfg:     numberCfg,
			want:    Confirmed,
			wantBuf: "7",
		},
		{
			name:   "negative",
			script: func(s *guitest.Script) { s.Click("d", "No") },
			cfg:    numberCfg,
			want:   Dismissed,
		},
		{
			name:   "host close",
			script: func(s *guitest.Script) { s.Close("d") },
			cfg:    numberCfg,
			want:   Dismissed,
		},
		{
			name:   "rejected",
			script: func(s *guitest.Script) { s.Type("d", "1.5").Click("d", "OK") },
			cfg: Config{
				InputType:      InputNumber,
				PositiveAction: "OK",
				NegativeAction: "No",
				Validate:       func(string) error { return errors.New("bad") },
			},
			want:    Rejected,
			wantBuf: "1.5",
			wantErr: true,
		},
		{
			name:   "rejected then closed",
			script: func(s *guitest.Script) { s.Type("d", "1.5").Click("d", "OK").Close("d") },
			cfg: Config{
				InputType:      InputNumber,
				PositiveAction: "OK",
				NegativeAction: "No",
				Validate:       func(string) error { return errors.New("bad") },
			},
			want:    Dismissed,
			wantBuf: "1.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := guitest.New()
			tt.script(s)
			buf := ""
			got, err := Show(s, "d", 1, tt.cfg, &buf)
			if got != tt.want {
				t.Errorf("Expected outcome %d, got %d", tt.want, got)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("Unexpected error state: %v", err)
			}
			if buf != tt.wantBuf {
				t.Errorf("Expected buffer %q, got %q", tt.wantBuf, buf)
			}
		})
	}
}
