// Package script reads layout scripts, a small text format describing a venue
// and its sectors, and builds the venue they describe.
package script

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses layout scripts.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new script parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a script from a string
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses a script from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	f, err := p.parser.Parse(filename, file)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}
