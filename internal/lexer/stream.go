package lexer

import "github.com/az-lang/az/internal/token"

// Stream is a fully-buffered view over a token slice supporting unbounded
// lookahead, mirroring the buffered reader the parser drives. Lexing is not
// incremental in this grammar (there is no streaming source), so Stream
// simply wraps the slice Tokenize already produced.
type Stream struct {
	tokens []token.Token
	pos    int
}

// NewStream buffers tokens for sequential, lookahead-capable consumption.
func NewStream(tokens []token.Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next returns the next token and advances the stream. The zero Token with
// Kind KindInvalid is returned once exhausted.
func (s *Stream) Next() token.Token {
	tok, ok := s.PeekAt(0)
	if ok {
		s.pos++
	}
	return tok
}

// Peek returns the nth token ahead (0 is the next token to be read) without
// consuming it.
func (s *Stream) Peek(n int) (token.Token, bool) {
	return s.PeekAt(n)
}

// PeekAt is the underlying lookup Peek and Next share.
func (s *Stream) PeekAt(n int) (token.Token, bool) {
	idx := s.pos + n
	if idx < 0 || idx >= len(s.tokens) {
		return token.Token{}, false
	}
	return s.tokens[idx], true
}

// AtEnd reports whether every token has been consumed.
func (s *Stream) AtEnd() bool {
	return s.pos >= len(s.tokens)
}
