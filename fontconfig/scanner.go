// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

/*
Escape aware scanner for the record stream produced by the font matching
service. A record is one line of fields separated by single spaces and
terminated by a newline. Inside a value, space, comma, newline and backslash
are escaped with a backslash. Field tokens are returned with their escape
sequences intact so that the family list can still be split on unescaped
commas afterwards; Unescape is applied as the final step.
*/

package fontconfig

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var _ = fmt.Print

// TokenType is a top-level token classification: a field or a record end.
type TokenType int

// runeClass is the classification of a single rune: separator, record end, escape.
type runeClass int

type scannerState int

// Token is a (type, value, position) triple. Field values preserve escape
// sequences, use Unescape to resolve them.
type Token struct {
	Type  TokenType
	Value string
	Pos   int64
}

func (self *Token) Equal(other *Token) bool {
	if self == nil || other == nil {
		return self == other
	}
	return self.Type == other.Type && self.Value == other.Value
}

const (
	FieldToken TokenType = iota
	RecordEndToken
)

func (t TokenType) String() string {
	switch t {
	case FieldToken:
		return "FieldToken"
	case RecordEndToken:
		return "RecordEndToken"
	default:
		return "UnknownToken"
	}
}

const (
	unknownRuneClass runeClass = iota
	separatorRuneClass
	recordEndRuneClass
	escapeRuneClass
	eofRuneClass
)

const (
	startState    scannerState = iota // between records
	inFieldState                      // accumulating field runes
	escapingState                     // the previous rune was the escape marker
)

func classify(r rune) runeClass {
	switch r {
	case ' ':
		return separatorRuneClass
	case '\n':
		return recordEndRuneClass
	case '\\':
		return escapeRuneClass
	}
	return unknownRuneClass
}

var ErrTrailingEscape = errors.New("EOF found after escape character")

// Tokenizer turns the raw record stream into a sequence of typed tokens.
type Tokenizer struct {
	input              io.RuneReader
	pos                int64
	in_record          bool
	pending_record_end bool
}

// NewTokenizer creates a new tokenizer from an input stream.
func NewTokenizer(input io.RuneReader) *Tokenizer {
	return &Tokenizer{input: input}
}

// Next returns the next token in the stream. After the last token the error
// is io.EOF. A FieldToken is returned for every field, including empty ones,
// and a RecordEndToken after the last field of each record. Blank lines
// between records produce no tokens.
func (self *Tokenizer) Next() (*Token, error) {
	if self.pending_record_end {
		self.pending_record_end = false
		self.in_record = false
		return &Token{Type: RecordEndToken, Pos: self.pos}, nil
	}
	state := startState
	if self.in_record {
		state = inFieldState
	}
	value := strings.Builder{}
	pos_at_start := self.pos

	for {
		next_rune, sz, err := self.input.ReadRune()
		rune_type := classify(next_rune)
		if err == io.EOF {
			rune_type = eofRuneClass
			err = nil
		} else if err != nil {
			return nil, err
		}
		self.pos += int64(sz)

		switch state {
		case startState:
			switch rune_type {
			case eofRuneClass:
				return nil, io.EOF
			case recordEndRuneClass:
				// blank line, skip
				pos_at_start = self.pos
			case separatorRuneClass:
				self.in_record = true
				return &Token{Type: FieldToken, Pos: pos_at_start}, nil
			case escapeRuneClass:
				self.in_record = true
				value.WriteRune(next_rune)
				state = escapingState
			default:
				self.in_record = true
				value.WriteRune(next_rune)
				state = inFieldState
			}
		case inFieldState:
			switch rune_type {
			case eofRuneClass:
				self.pending_record_end = true
				return &Token{Type: FieldToken, Value: value.String(), Pos: pos_at_start}, nil
			case recordEndRuneClass:
				self.pending_record_end = true
				return &Token{Type: FieldToken, Value: value.String(), Pos: pos_at_start}, nil
			case separatorRuneClass:
				return &Token{Type: FieldToken, Value: value.String(), Pos: pos_at_start}, nil
			case escapeRuneClass:
				value.WriteRune(next_rune)
				state = escapingState
			default:
				value.WriteRune(next_rune)
			}
		case escapingState:
			switch rune_type {
			case eofRuneClass:
				return &Token{Type: FieldToken, Value: value.String(), Pos: pos_at_start}, ErrTrailingEscape
			default:
				value.WriteRune(next_rune)
				state = inFieldState
			}
		default:
			return nil, fmt.Errorf("unexpected scanner state: %v", state)
		}
	}
}

// Pos returns the current position in the stream as a byte offset.
func (self *Tokenizer) Pos() int64 {
	return self.pos
}

// Unescape resolves backslash escapes: a backslash makes the following rune
// literal. A trailing lone backslash is an error.
func Unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	ans := strings.Builder{}
	ans.Grow(len(s))
	escaped := false
	for _, r := range s {
		if escaped {
			ans.WriteRune(r)
			escaped = false
		} else if r == '\\' {
			escaped = true
		} else {
			ans.WriteRune(r)
		}
	}
	if escaped {
		return ans.String(), ErrTrailingEscape
	}
	return ans.String(), nil
}

// Escape makes s safe for embedding in a record value by backslash escaping
// the delimiter and escape runes.
func Escape(s string) string {
	ans := strings.Builder{}
	ans.Grow(2 * len(s))
	for _, r := range s {
		switch r {
		case ' ', ',', '\n', '\\':
			ans.WriteRune('\\')
		}
		ans.WriteRune(r)
	}
	return ans.String()
}

// SplitEscaped splits s on unescaped occurrences of sep, keeping escape
// sequences in the returned parts intact.
func SplitEscaped(s string, sep rune) []string {
	ans := make([]string, 0, 2)
	part := strings.Builder{}
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			part.WriteRune(r)
			escaped = false
		case r == '\\':
			part.WriteRune(r)
			escaped = true
		case r == sep:
			ans = append(ans, part.String())
			part.Reset()
		default:
			part.WriteRune(r)
		}
	}
	ans = append(ans, part.String())
	return ans
}
