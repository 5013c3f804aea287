package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Pattern: "p"},
		},
		{
			name:    "no pattern",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "count and quiet",
			cfg:     Config{Pattern: "p", CountOnly: true, Quiet: true},
			wantErr: true,
		},
		{
			name:    "count and json",
			cfg:     Config{Pattern: "p", CountOnly: true, JSONOutput: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{in: "", want: ColorAuto},
		{in: "auto", want: ColorAuto},
		{in: "always", want: ColorAlways},
		{in: "never", want: ColorNever},
		{in: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "powpow.yaml")
	data := "highlight: false\nline_numbers: true\ncolor: never\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POWPOW_CONFIG_PATH", path)

	fc, err := LoadFileConfig()
	if err != nil {
		t.Fatal(err)
	}
	if fc.Highlight == nil || *fc.Highlight {
		t.Error("highlight should be false")
	}
	if fc.LineNumbers == nil || !*fc.LineNumbers {
		t.Error("line_numbers should be true")
	}
	if fc.Color != "never" {
		t.Errorf("color = %q, want %q", fc.Color, "never")
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	t.Setenv("POWPOW_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	fc, err := LoadFileConfig()
	if err != nil {
		t.Fatal(err)
	}
	if fc.Highlight != nil || fc.LineNumbers != nil || fc.Color != "" {
		t.Errorf("expected empty config, got %+v", fc)
	}
}

func TestFileConfig_ApplyTo(t *testing.T) {
	no := false
	yes := true
	fc := FileConfig{Highlight: &no, LineNumbers: &yes, Color: "never"}

	cfg := Config{Pattern: "p", Highlight: true, Color: ColorAuto}
	fc.ApplyTo(&cfg, false, false, false)

	if cfg.Highlight {
		t.Error("file default should have turned highlight off")
	}
	if !cfg.LineNumbers {
		t.Error("file default should have turned line numbers on")
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %v, want ColorNever", cfg.Color)
	}

	// Flags set on the command line win over file defaults.
	cfg = Config{Pattern: "p", Highlight: true, Color: ColorAlways}
	fc.ApplyTo(&cfg, true, true, true)

	if !cfg.Highlight || cfg.LineNumbers || cfg.Color != ColorAlways {
		t.Errorf("explicit flags must not be overridden, got %+v", cfg)
	}
}
