package dsv_test

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

func TestDefaultConfig(t *testing.T) {
	p, err := dsv.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for name, cfg := range map[string]dsv.Config{"DefaultConfig": dsv.DefaultConfig(), "Parser.Config": p.Config()} {
		t.Run(name, func(t *testing.T) {
			if got := cfg.LineDelimiter(); got != "\r\n" {
				t.Errorf("LineDelimiter() = %q, want %q", got, "\r\n")
			}
			if got := cfg.ColumnDelimiter(); got != "," {
				t.Errorf("ColumnDelimiter() = %q, want %q", got, ",")
			}
			if cfg.ColumnHeaders() {
				t.Error("ColumnHeaders() should be false")
			}
			if cfg.QuotedSegments() {
				t.Error("QuotedSegments() should be false")
			}
			if mark, ok := cfg.QuotationMark(); !ok || mark != `"` {
				t.Errorf("QuotationMark() = %q, %v, want %q, true", mark, ok, `"`)
			}
			if char, ok := cfg.EscapeCharacter(); !ok || char != `"` {
				t.Errorf("EscapeCharacter() = %q, %v, want %q, true", char, ok, `"`)
			}
			if cfg.AllowAsymmetry() {
				t.Error("AllowAsymmetry() should be false")
			}
			if got := cfg.SkipLines(); got != 0 {
				t.Errorf("SkipLines() = %d, want 0", got)
			}
			if got := cfg.LimitLines(); got != 0 {
				t.Errorf("LimitLines() = %d, want 0", got)
			}
			if got := cfg.EscapeMode(); got != dsv.EscapeSameCharacter {
				t.Errorf("EscapeMode() = %v, want %v", got, dsv.EscapeSameCharacter)
			}
		})
	}
}

func TestNew_AppliesOptions(t *testing.T) {
	p, err := dsv.New(
		dsv.WithLineDelimiter("#EOL#"),
		dsv.WithColumnDelimiter("#EOC#"),
		dsv.WithColumnHeaders(true),
		dsv.WithQuotedSegments(true),
		dsv.WithQuotationMark("'"),
		dsv.WithEscapeCharacter(`\`),
		dsv.WithAllowAsymmetry(true),
		dsv.WithSkipLines(2),
		dsv.WithLimitLines(5),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cfg := p.Config()
	if cfg.LineDelimiter() != "#EOL#" || cfg.ColumnDelimiter() != "#EOC#" {
		t.Errorf("delimiters = %q, %q", cfg.LineDelimiter(), cfg.ColumnDelimiter())
	}
	if !cfg.ColumnHeaders() || !cfg.QuotedSegments() || !cfg.AllowAsymmetry() {
		t.Error("boolean options were not applied")
	}
	if mark, _ := cfg.QuotationMark(); mark != "'" {
		t.Errorf("QuotationMark() = %q, want %q", mark, "'")
	}
	if char, _ := cfg.EscapeCharacter(); char != `\` {
		t.Errorf("EscapeCharacter() = %q, want %q", char, `\`)
	}
	if cfg.SkipLines() != 2 || cfg.LimitLines() != 5 {
		t.Errorf("SkipLines() = %d, LimitLines() = %d", cfg.SkipLines(), cfg.LimitLines())
	}
	if cfg.EscapeMode() != dsv.EscapeDistinctCharacter {
		t.Errorf("EscapeMode() = %v, want %v", cfg.EscapeMode(), dsv.EscapeDistinctCharacter)
	}
}

func TestNew_EscapeMode(t *testing.T) {
	tests := []struct {
		name string
		opts []dsv.Option
		want dsv.EscapeMode
	}{
		{"defaults", nil, dsv.EscapeSameCharacter},
		{"same custom mark", []dsv.Option{dsv.WithQuotationMark("'"), dsv.WithEscapeCharacter("'")}, dsv.EscapeSameCharacter},
		{"distinct escape", []dsv.Option{dsv.WithEscapeCharacter(`\`)}, dsv.EscapeDistinctCharacter},
		{"distinct quote", []dsv.Option{dsv.WithQuotationMark(`\`)}, dsv.EscapeDistinctCharacter},
		{"no escape", []dsv.Option{dsv.WithoutEscapeCharacter()}, dsv.EscapeNone},
		{"no quote", []dsv.Option{dsv.WithoutQuotationMark()}, dsv.EscapeDistinctCharacter},
		{"no marks", []dsv.Option{dsv.WithoutQuotationMark(), dsv.WithoutEscapeCharacter()}, dsv.EscapeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := dsv.New(tt.opts...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := p.Config().EscapeMode(); got != tt.want {
				t.Errorf("EscapeMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		opt       dsv.Option
		wantField string
		wantMsg   string
	}{
		{"empty line delimiter", dsv.WithLineDelimiter(""), "lineDelimiter", "dsv: invalid lineDelimiter: must be set"},
		{"empty column delimiter", dsv.WithColumnDelimiter(""), "columnDelimiter", "dsv: invalid columnDelimiter: must be set"},
		{"long quotation mark", dsv.WithQuotationMark("12"), "quotationMark", "dsv: invalid quotationMark: must be a single character"},
		{"empty quotation mark", dsv.WithQuotationMark(""), "quotationMark", "dsv: invalid quotationMark: must be a single character"},
		{"invalid utf8 quotation mark", dsv.WithQuotationMark("\xff"), "quotationMark", "dsv: invalid quotationMark: must be a single character"},
		{"long escape character", dsv.WithEscapeCharacter("12"), "escapeQuotationCharacter", "dsv: invalid escapeQuotationCharacter: must be a single character"},
		{"negative skip lines", dsv.WithSkipLines(-1), "skipLines", "dsv: invalid skipLines: must not be negative"},
		{"negative limit lines", dsv.WithLimitLines(-1), "limitLines", "dsv: invalid limitLines: must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := dsv.New(tt.opt)
			if err == nil {
				t.Fatal("New() expected error")
			}
			if p != nil {
				t.Error("New() should not return a parser on error")
			}

			var optErr *dsv.OptionsError
			if !errors.As(err, &optErr) {
				t.Fatalf("New() error = %T, want *dsv.OptionsError", err)
			}
			if optErr.Field != tt.wantField {
				t.Errorf("OptionsError.Field = %q, want %q", optErr.Field, tt.wantField)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNew_MultibyteMarks(t *testing.T) {
	if _, err := dsv.New(dsv.WithQuotationMark("«"), dsv.WithEscapeCharacter("»")); err != nil {
		t.Errorf("New() error = %v, want nil for single multibyte characters", err)
	}
}

func TestNew_FirstViolationWins(t *testing.T) {
	_, err := dsv.New(dsv.WithSkipLines(-1), dsv.WithColumnDelimiter(""))

	var optErr *dsv.OptionsError
	if !errors.As(err, &optErr) || optErr.Field != "columnDelimiter" {
		t.Errorf("New() error = %v, want columnDelimiter violation", err)
	}
}

func TestNew_LaterOptionsOverride(t *testing.T) {
	p, err := dsv.New(dsv.WithoutQuotationMark(), dsv.WithQuotationMark("'"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if mark, ok := p.Config().QuotationMark(); !ok || mark != "'" {
		t.Errorf("QuotationMark() = %q, %v, want %q, true", mark, ok, "'")
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() should panic on invalid options")
		}
	}()
	dsv.MustNew(dsv.WithLineDelimiter(""))
}

func TestOptionsError_Error(t *testing.T) {
	err := &dsv.OptionsError{Field: "skipLines", Message: "must not be negative"}
	want := "dsv: invalid skipLines: must not be negative"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
