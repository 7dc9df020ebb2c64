package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "splash.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
palette = ["#ff0000", "#0f0"]
background = "#101010"
rotation_duration = "1.5s"
chime = false
`)
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Palette = []string{"#ff0000", "#0f0"}
	want.Background = "#101010"
	want.RotationDuration = Duration{1500 * time.Millisecond}
	want.Chime = false
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad duration", body: `disappear_after = "soon"`},
		{name: "unknown key", body: `speed = 3`},
		{name: "syntax", body: `palette = [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ff9600", want: color.RGBA{R: 0xff, G: 0x96, A: 0xff}},
		{in: "#fff", want: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "red", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColors(t *testing.T) {
	cfg := Default()
	cols, err := cfg.Colors()
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if len(cols) != len(DefaultPalette) {
		t.Errorf("got %d colors, want %d", len(cols), len(DefaultPalette))
	}

	cfg.Palette = []string{"#000000", "nope"}
	if _, err := cfg.Colors(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Colors error = %v, want ErrInvalidColor", err)
	}

	cfg.Palette = nil
	cols, err = cfg.Colors()
	if err != nil || len(cols) != 0 {
		t.Errorf("empty palette: got %v, %v", cols, err)
	}
}

func TestHSVPalette(t *testing.T) {
	p := HSVPalette(5)
	if len(p) != 5 {
		t.Fatalf("len = %d, want 5", len(p))
	}
	seen := map[string]bool{}
	for _, s := range p {
		if _, err := ParseColor(s); err != nil {
			t.Errorf("HSVPalette produced unparsable %q: %v", s, err)
		}
		if seen[s] {
			t.Errorf("duplicate color %q", s)
		}
		seen[s] = true
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("250ms")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d.Duration != 250*time.Millisecond {
		t.Errorf("got %v, want 250ms", d.Duration)
	}
	if err := d.UnmarshalText([]byte("soon")); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("error = %v, want ErrInvalidDuration", err)
	}
}
