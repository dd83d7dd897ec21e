package ast

import "github.com/az-lang/az/internal/token"

// FillerKind discriminates the trivia a Filler carries.
type FillerKind int

const (
	FillerCommentBlock FillerKind = iota
	FillerCommentLine
	FillerNewline
	FillerWhitespace
)

// FillerContent is the payload of a single piece of trivia: a block
// comment (one string per physical line), a line comment, a bare
// newline, or a run of non-newline whitespace.
type FillerContent struct {
	Kind FillerKind

	// FillerCommentBlock
	Lines []string

	// FillerCommentLine, FillerWhitespace
	Text string
}

// String renders the filler's exact source text.
func (f FillerContent) String() string {
	switch f.Kind {
	case FillerCommentBlock:
		result := ""
		for _, line := range f.Lines {
			result += line
		}
		return result
	case FillerCommentLine:
		return f.Text
	case FillerNewline:
		return "\n"
	case FillerWhitespace:
		return f.Text
	default:
		return ""
	}
}

// Filler is one piece of trivia attached to the meaningful token that
// follows it.
type Filler struct {
	Content  FillerContent
	Position token.SubstringPosition
}

// FillerFromToken converts a trivia token into its Filler form. Panics if
// given a non-trivia token; callers only call this after checking
// Token.IsTrivia.
func FillerFromToken(t token.Token) Filler {
	switch t.Content.Kind {
	case token.KindCommentBlock:
		return Filler{
			Content:  FillerContent{Kind: FillerCommentBlock, Lines: t.Content.Lines},
			Position: t.Position,
		}
	case token.KindCommentLine:
		return Filler{
			Content:  FillerContent{Kind: FillerCommentLine, Text: t.Content.Text},
			Position: t.Position,
		}
	case token.KindNewline:
		return Filler{Content: FillerContent{Kind: FillerNewline}, Position: t.Position}
	case token.KindWhitespace:
		return Filler{
			Content:  FillerContent{Kind: FillerWhitespace, Text: t.Content.Text},
			Position: t.Position,
		}
	default:
		panic("ast: FillerFromToken given a non-trivia token")
	}
}

// Token converts a Filler back into the trivia token it was built from,
// the inverse of FillerFromToken. Used by the serializer.
func (f Filler) Token() token.Token {
	switch f.Content.Kind {
	case FillerCommentBlock:
		return token.Token{
			Content:  token.TokenContent{Kind: token.KindCommentBlock, Lines: f.Content.Lines},
			Position: f.Position,
		}
	case FillerCommentLine:
		return token.Token{
			Content:  token.TokenContent{Kind: token.KindCommentLine, Text: f.Content.Text},
			Position: f.Position,
		}
	case FillerNewline:
		return token.Token{Content: token.TokenContent{Kind: token.KindNewline}, Position: f.Position}
	default:
		return token.Token{
			Content:  token.TokenContent{Kind: token.KindWhitespace, Text: f.Content.Text},
			Position: f.Position,
		}
	}
}
