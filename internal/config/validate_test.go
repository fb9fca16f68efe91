package config

import (
	"testing"

	"github.com/thoreinstein/xmllint/internal/errors"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{Root: ".", XSDsPath: "xsd", XMLsPath: "xml"}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
		wantErr   error
	}{
		{"valid", func(*Config) {}, "", nil},
		{"json log format", func(c *Config) { c.LogFormat = LogFormatJSON }, "", nil},
		{"missing xsds", func(c *Config) { c.XSDsPath = "" }, KeyXSDsPath, errors.ErrMissingInput},
		{"missing xmls", func(c *Config) { c.XMLsPath = "" }, KeyXMLsPath, errors.ErrMissingInput},
		{"negative workers", func(c *Config) { c.Workers = -1 }, KeyWorkers, errors.ErrInvalidConfig},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, KeyLogFormat, errors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field != tt.wantField {
				t.Errorf("Validate() field = %v, want %q", fe, tt.wantField)
			}
		})
	}
}
