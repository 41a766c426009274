package dsv

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/shapestone/shape-dsv/internal/assembler"
	"github.com/shapestone/shape-dsv/internal/mmapfile"
	"github.com/shapestone/shape-dsv/internal/scanner"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Parser parses delimited text with a fixed configuration.
// A Parser is safe for concurrent use; every call keeps its own scan state.
type Parser struct {
	config Config
	logger *zap.Logger
}

// New creates a Parser from the default configuration and opts.
// It returns an *OptionsError naming the first invalid option.
func New(opts ...Option) (*Parser, error) {
	o := options{
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.config.validate(); err != nil {
		return nil, err
	}
	o.config.escapeMode = scanner.ResolveEscapeMode(o.config.quote(), o.config.escape())

	return &Parser{config: o.config, logger: o.logger}, nil
}

// MustNew is like New but panics if the options are invalid.
func MustNew(opts ...Option) *Parser {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Config returns a copy of the parser configuration.
func (p *Parser) Config() Config {
	return p.config
}

// Parse splits text into column names and lines.
//
// It returns a *ColumnCountError when a line breaks the arity of the first
// line and asymmetry is not allowed. No partial result is returned.
func (p *Parser) Parse(text string) (*Result, error) {
	asm := assembler.New(p.config.assemblerOptions())

	if err := scanner.Scan(text, p.config.scannerOptions(), asm); err != nil {
		p.logger.Debug("parse failed",
			zap.Int("bytes", len(text)),
			zap.Error(err))
		return nil, err
	}

	stats := asm.Stats()
	result := &Result{
		ColumnNames: asm.ColumnNames(),
		Lines:       asm.Lines(),
	}

	p.logger.Debug("parsed delimited text",
		zap.Int("bytes", len(text)),
		zap.Int("columns", len(result.ColumnNames)),
		zap.Int("lines", stats.Lines),
		zap.Int("skipped", stats.Skipped),
		zap.Int("asymmetric", stats.Asymmetric))

	return result, nil
}

// ParseBytes is like Parse for a byte slice.
func (p *Parser) ParseBytes(data []byte) (*Result, error) {
	return p.Parse(string(data))
}

// ParseReader reads all of r into memory and parses it.
func (p *Parser) ParseReader(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return p.ParseBytes(data)
}

// ParseFile loads the named file into memory and parses it.
func (p *Parser) ParseFile(filename string) (*Result, error) {
	data, cleanup, err := mmapfile.Open(filename)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	// ParseBytes copies data, so the result outlives the mapping.
	return p.ParseBytes(data)
}

// Tokenize returns the lexical tokens of text.
//
// Tokens are context free: a delimiter inside a quoted region is still
// reported as a delimiter. Concatenating the token values yields text.
func (p *Parser) Tokenize(text string) []Token {
	tok := tokenizer.NewTokenizer(p.config.tokenizerOptions())
	tok.Initialize(text)

	tokens := make([]Token, 0, 16)
	for {
		t, ok := tok.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, Token{
			Kind:   t.Kind(),
			Value:  t.ValueString(),
			Offset: int(t.Offset()),
			Row:    int(t.Row()),
			Column: int(t.Column()),
		})
	}
	return tokens
}
