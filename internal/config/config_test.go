package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid
// cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoadDefaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Template", cfg.Template, ""},
		{"Newline", cfg.Newline, false},
		{"Verbose", cfg.Verbose, false},
		{"Keep.Minutely", cfg.Keep.Minutely, 0},
		{"Keep.Hourly", cfg.Keep.Hourly, 0},
		{"Keep.Daily", cfg.Keep.Daily, 0},
		{"Keep.Weekly", cfg.Keep.Weekly, 0},
		{"Keep.Monthly", cfg.Keep.Monthly, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "template",
			envKey: "STAMPKEEP_TEMPLATE",
			envVal: "backup-{now}.tar",
			field:  func(c Config) any { return c.Template },
			want:   "backup-{now}.tar",
		},
		{
			name:   "newline",
			envKey: "STAMPKEEP_NEWLINE",
			envVal: "true",
			field:  func(c Config) any { return c.Newline },
			want:   true,
		},
		{
			name:   "verbose",
			envKey: "STAMPKEEP_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so STAMPKEEP_* env vars map to config keys.
			viper.SetEnvPrefix("STAMPKEEP")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoadFromConfigMap(t *testing.T) {
	resetViper()
	viper.Set("template", "snap-{now}.db")
	viper.Set("keep.daily", 7)
	viper.Set("keep.monthly", 6)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Template != "snap-{now}.db" {
		t.Errorf("Template = %q", cfg.Template)
	}
	if cfg.Keep.Daily != 7 || cfg.Keep.Monthly != 6 {
		t.Errorf("Keep = %+v, want daily 7, monthly 6", cfg.Keep)
	}
	if cfg.Keep.Hourly != 0 {
		t.Errorf("Keep.Hourly = %d, want 0", cfg.Keep.Hourly)
	}
}
