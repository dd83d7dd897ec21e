package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-lang/az/internal/token"
)

const (
	startingIdentifierCharacters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"
	nonStartingIdentifierCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"
	numericCharacters               = "0123456789"
	typeSuffixSeparator             = '_'
	commentBlockStart               = "/*"
	commentBlockEnd                 = "*/"
)

// Tokenize scans source into a lossless sequence of tokens: every byte of
// source, including whitespace and comments, is captured by exactly one
// token. It stops and returns the first lexical error encountered.
func Tokenize(source string) ([]token.Token, error) {
	lines := strings.SplitAfter(source, "\n")
	var tokens []token.Token

	lineIndex := 0
	for lineIndex < len(lines) {
		line := lines[lineIndex]
		cur := &cursor{line: line}

	characters:
		for {
			startPos, ch, ok := cur.next()
			if !ok {
				break
			}

			if isNonNewlineWhitespace(ch) {
				wsStart := startPos
				for {
					nextPos, candidate, peeked := cur.peekPos()
					if !peeked {
						tokens = append(tokens, token.Token{
							Content: token.TokenContent{Kind: token.KindWhitespace, Text: tailFrom(line, wsStart)},
							Position: token.SubstringPosition{
								StartLine: lineIndex, EndLine: lineIndex,
								StartCharacter: charPos(wsStart), EndCharacter: lineEndPos(line),
							},
						})
						continue characters
					}
					if !isNonNewlineWhitespace(candidate) {
						tokens = append(tokens, token.Token{
							Content: token.TokenContent{Kind: token.KindWhitespace, Text: sliceByPositions(line, wsStart, nextPos)},
							Position: token.SubstringPosition{
								StartLine: lineIndex, EndLine: lineIndex,
								StartCharacter: charPos(wsStart), EndCharacter: charPos(nextPos),
							},
						})
						startPos, ch = nextPos, candidate
						cur.advance()
						break
					}
					cur.advance()
				}
			}

			if ch == '/' {
				if p, peeked := cur.peek(); peeked && p == '/' {
					cur.advance()
					tokens = append(tokens, token.Token{
						Content: token.TokenContent{Kind: token.KindCommentLine, Text: line[startPos.b:]},
						Position: token.SubstringPosition{
							StartLine: lineIndex, EndLine: lineIndex,
							StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
						},
					})
					break characters
				}
				if p, peeked := cur.peek(); peeked && p == '*' {
					cur.advance()
					tok, newLineIndex, newLine, newCur, err := scanCommentBlock(lines, lineIndex, line, startPos)
					if err != nil {
						return nil, err
					}
					tokens = append(tokens, tok)
					lineIndex, line, cur = newLineIndex, newLine, newCur
					continue characters
				}
				tokens = append(tokens, punctuatorToken(token.KindSlash, lineIndex, startPos, 1))
				continue
			}

			switch ch {
			case '=':
				if p, peeked := cur.peek(); peeked && p == '=' {
					cur.advance()
					tokens = append(tokens, punctuatorToken(token.KindEqualTo, lineIndex, startPos, 2))
				} else {
					tokens = append(tokens, punctuatorToken(token.KindAssignment, lineIndex, startPos, 1))
				}
			case '*':
				tokens = append(tokens, punctuatorToken(token.KindAsterisk, lineIndex, startPos, 1))
			case '}':
				tokens = append(tokens, punctuatorToken(token.KindCloseBrace, lineIndex, startPos, 1))
			case ')':
				tokens = append(tokens, punctuatorToken(token.KindCloseParenthesis, lineIndex, startPos, 1))
			case ':':
				tokens = append(tokens, punctuatorToken(token.KindColon, lineIndex, startPos, 1))
			case ',':
				tokens = append(tokens, punctuatorToken(token.KindComma, lineIndex, startPos, 1))
			case '.':
				if p, peeked := cur.peek(); peeked && isNumericCharacter(p) {
					cur.advance()
					tok, err := parseFloatingPointLiteralStartingWithDot(cur, lineIndex, line, startPos)
					if err != nil {
						return nil, err
					}
					tokens = append(tokens, tok)
				} else {
					tokens = append(tokens, punctuatorToken(token.KindDot, lineIndex, startPos, 1))
				}
			case '>':
				if p, peeked := cur.peek(); peeked && p == '=' {
					cur.advance()
					tokens = append(tokens, punctuatorToken(token.KindGreaterThanOrEqualTo, lineIndex, startPos, 2))
				} else {
					tokens = append(tokens, punctuatorToken(token.KindGreaterThan, lineIndex, startPos, 1))
				}
			case '<':
				if p, peeked := cur.peek(); peeked && p == '=' {
					cur.advance()
					tokens = append(tokens, punctuatorToken(token.KindLowerThanOrEqualTo, lineIndex, startPos, 2))
				} else {
					tokens = append(tokens, punctuatorToken(token.KindLowerThan, lineIndex, startPos, 1))
				}
			case '-':
				if p, peeked := cur.peek(); peeked && p == '>' {
					cur.advance()
					tokens = append(tokens, punctuatorToken(token.KindArrow, lineIndex, startPos, 2))
				} else {
					tokens = append(tokens, punctuatorToken(token.KindMinus, lineIndex, startPos, 1))
				}
			case '\n':
				tokens = append(tokens, punctuatorToken(token.KindNewline, lineIndex, startPos, 1))
			case '{':
				tokens = append(tokens, punctuatorToken(token.KindOpenBrace, lineIndex, startPos, 1))
			case '(':
				tokens = append(tokens, punctuatorToken(token.KindOpenParenthesis, lineIndex, startPos, 1))
			case '+':
				tokens = append(tokens, punctuatorToken(token.KindPlus, lineIndex, startPos, 1))
			case ';':
				tokens = append(tokens, punctuatorToken(token.KindSemicolon, lineIndex, startPos, 1))
			case '!':
				if p, peeked := cur.peek(); peeked && p == '=' {
					cur.advance()
					tokens = append(tokens, punctuatorToken(token.KindNotEqualTo, lineIndex, startPos, 2))
				} else {
					return nil, &UnexpectedCharacter{
						Character: ch,
						String:    line[startPos.b:],
						Pos: token.SubstringPosition{
							StartLine: lineIndex, EndLine: lineIndex,
							StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
						},
					}
				}
			default:
				switch {
				case isNumericCharacter(ch):
					tok, err := parseNumericLiteral(cur, lineIndex, line, startPos)
					if err != nil {
						return nil, err
					}
					tokens = append(tokens, tok)
				case isStartingIdentifierCharacter(ch):
					end := parseNonStartingIdentifierCharacters(cur, startPos, ch)
					tokens = append(tokens, token.Identifier(
						sliceByPositions(line, startPos, end),
						token.SubstringPosition{
							StartLine: lineIndex, EndLine: lineIndex,
							StartCharacter: charPos(startPos), EndCharacter: charPos(end),
						},
					))
				default:
					return nil, &UnexpectedCharacter{
						Character: ch,
						String:    line[startPos.b:],
						Pos: token.SubstringPosition{
							StartLine: lineIndex, EndLine: lineIndex,
							StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
						},
					}
				}
			}
		}

		lineIndex++
	}

	return tokens, nil
}

// cursor walks a single line rune by rune, tracking both byte and codepoint
// offsets so every emitted span carries dual indices.
type cursor struct {
	line string
	pos  cursorPos
}

type cursorPos struct {
	b int
	u token.Utf8Index
}

func charPos(c cursorPos) token.CharacterPosition {
	return token.CharacterPosition{Byte: token.ByteIndex(c.b), Utf8: c.u}
}

func (c *cursor) peek() (rune, bool) {
	if c.pos.b >= len(c.line) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.line[c.pos.b:])
	return r, true
}

func (c *cursor) peekPos() (cursorPos, rune, bool) {
	if c.pos.b >= len(c.line) {
		return c.pos, 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.line[c.pos.b:])
	return c.pos, r, true
}

func (c *cursor) advance() {
	if c.pos.b >= len(c.line) {
		return
	}
	_, w := utf8.DecodeRuneInString(c.line[c.pos.b:])
	c.pos.b += w
	c.pos.u++
}

func (c *cursor) next() (cursorPos, rune, bool) {
	if c.pos.b >= len(c.line) {
		return c.pos, 0, false
	}
	r, w := utf8.DecodeRuneInString(c.line[c.pos.b:])
	pos := c.pos
	c.pos.b += w
	c.pos.u++
	return pos, r, true
}

func isNonNewlineWhitespace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isNumericCharacter(r rune) bool {
	return strings.ContainsRune(numericCharacters, r)
}

func isStartingIdentifierCharacter(r rune) bool {
	return strings.ContainsRune(startingIdentifierCharacters, r)
}

func isNonStartingIdentifierCharacter(r rune) bool {
	return strings.ContainsRune(nonStartingIdentifierCharacters, r)
}

func sliceByPositions(line string, start, end cursorPos) string {
	return line[start.b:end.b]
}

func tailFrom(line string, start cursorPos) string {
	return line[start.b:]
}

func lineEndPos(line string) token.CharacterPosition {
	return token.CharacterPosition{
		Byte: token.ByteIndex(len(line)),
		Utf8: token.Utf8Index(utf8.RuneCountInString(line)),
	}
}

// punctuatorToken builds a punctuator token. width is the ASCII byte/rune
// width of its canonical spelling (1 or 2): every punctuator in this
// grammar is pure ASCII, so byte and codepoint widths coincide.
func punctuatorToken(kind token.Kind, lineIndex int, start cursorPos, width int) token.Token {
	end := cursorPos{b: start.b + width, u: start.u + token.Utf8Index(width)}
	return token.Punctuator(kind, token.SubstringPosition{
		StartLine: lineIndex, EndLine: lineIndex,
		StartCharacter: charPos(start), EndCharacter: charPos(end),
	})
}

func scanCommentBlock(lines []string, startLineIndex int, startLine string, startPos cursorPos) (token.Token, int, string, *cursor, error) {
	firstNonStartByte := startPos.b + len(commentBlockStart)
	if idx := strings.Index(startLine[firstNonStartByte:], commentBlockEnd); idx >= 0 {
		endByte := firstNonStartByte + idx + len(commentBlockEnd)
		text := startLine[startPos.b:endByte]
		endUtf8 := startPos.u + token.Utf8Index(utf8.RuneCountInString(text))
		endPos := cursorPos{b: endByte, u: endUtf8}
		cur := &cursor{line: startLine, pos: endPos}
		tok := token.Token{
			Content: token.TokenContent{Kind: token.KindCommentBlock, Lines: []string{text}},
			Position: token.SubstringPosition{
				StartLine: startLineIndex, EndLine: startLineIndex,
				StartCharacter: charPos(startPos), EndCharacter: charPos(endPos),
			},
		}
		return tok, startLineIndex, startLine, cur, nil
	}

	blockLines := []string{tailFrom(startLine, startPos)}
	lineIndex := startLineIndex
	line := startLine
	for {
		lineIndex++
		if lineIndex >= len(lines) {
			return token.Token{}, 0, "", nil, &CommentBlockIncomplete{
				Lines: blockLines,
				Pos: token.SubstringPosition{
					StartLine: startLineIndex, EndLine: lineIndex - 1,
					StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
				},
			}
		}
		line = lines[lineIndex]
		if idx := strings.Index(line, commentBlockEnd); idx >= 0 {
			endByte := idx + len(commentBlockEnd)
			ending := line[:endByte]
			blockLines = append(blockLines, ending)
			endUtf8 := token.Utf8Index(utf8.RuneCountInString(ending))
			cur := &cursor{line: line, pos: cursorPos{b: endByte, u: endUtf8}}
			tok := token.Token{
				Content: token.TokenContent{Kind: token.KindCommentBlock, Lines: blockLines},
				Position: token.SubstringPosition{
					StartLine: startLineIndex, EndLine: lineIndex,
					StartCharacter: charPos(startPos), EndCharacter: charPos(cur.pos),
				},
			}
			return tok, lineIndex, line, cur, nil
		}
		blockLines = append(blockLines, line)
	}
}

func parseNonStartingIdentifierCharacters(cur *cursor, startPos cursorPos, startChar rune) cursorPos {
	last := startPos
	lastWidth := utf8.RuneLen(startChar)
	for {
		pos, r, ok := cur.peekPos()
		if !ok {
			return cursorPos{b: last.b + lastWidth, u: last.u + 1}
		}
		if !isNonStartingIdentifierCharacter(r) {
			return pos
		}
		last, _, _ = cur.next()
		lastWidth = utf8.RuneLen(r)
	}
}

func parseIdentifierTail(cur *cursor, lineIndex int, line string, startPos cursorPos) (cursorPos, error) {
	pos, r, ok := cur.next()
	if !ok {
		return cursorPos{}, &IdentifierIncomplete{
			String: tailFrom(line, startPos),
			Pos: token.SubstringPosition{
				StartLine: lineIndex, EndLine: lineIndex,
				StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
			},
		}
	}
	if !isStartingIdentifierCharacter(r) {
		return cursorPos{}, &IdentifierUnexpectedCharacter{
			Character: r,
			Expected:  startingIdentifierCharacters,
			String:    tailFrom(line, startPos),
			Pos: token.SubstringPosition{
				StartLine: lineIndex, EndLine: lineIndex,
				StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
			},
		}
	}
	return parseNonStartingIdentifierCharacters(cur, pos, r), nil
}

func parseDigits(cur *cursor) bool {
	found := false
	for {
		r, ok := cur.peek()
		if !ok {
			return found
		}
		if !isNumericCharacter(r) {
			return found
		}
		cur.advance()
		found = true
	}
}

func parseFloatingPointExponent(cur *cursor, lineIndex int, line string, startPos cursorPos) error {
	if r, ok := cur.peek(); ok && (r == '+' || r == '-') {
		cur.advance()
	}
	_, r, ok := cur.next()
	if !ok {
		return &NumericLiteralValueIncomplete{
			Kind:   token.FloatingPoint,
			String: tailFrom(line, startPos),
			Pos: token.SubstringPosition{
				StartLine: lineIndex, EndLine: lineIndex,
				StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
			},
		}
	}
	if !isNumericCharacter(r) {
		end := lineEndPos(line)
		if pos, _, peeked := cur.peekPos(); peeked {
			end = charPos(pos)
		}
		return &NumericLiteralValueUnexpectedCharacter{
			Character: r,
			Expected:  numericCharacters,
			Kind:      token.FloatingPoint,
			String:    line[startPos.b:int(end.Byte)],
			Pos: token.SubstringPosition{
				StartLine: lineIndex, EndLine: lineIndex,
				StartCharacter: charPos(startPos), EndCharacter: end,
			},
		}
	}
	parseDigits(cur)
	return nil
}

func parseNumericLiteralTypeSuffix(cur *cursor, lineIndex int, line string, suffixStart cursorPos, isFloat bool) (cursorPos, string, error) {
	end, err := parseIdentifierTail(cur, lineIndex, line, suffixStart)
	if err != nil {
		valueKind := token.Integer
		if isFloat {
			valueKind = token.FloatingPoint
		}
		switch e := err.(type) {
		case *IdentifierIncomplete:
			return cursorPos{}, "", &NumericLiteralTypeSuffixIncomplete{
				Pos: e.Pos, String: e.String, Value: e.String, ValueKind: valueKind,
			}
		case *IdentifierUnexpectedCharacter:
			return cursorPos{}, "", &NumericLiteralTypeSuffixUnexpectedCharacter{
				Pos: e.Pos, Character: e.Character, Expected: e.Expected, String: e.String,
				Value: e.String, ValueKind: valueKind,
			}
		default:
			return cursorPos{}, "", err
		}
	}
	return end, sliceByPositions(line, suffixStart, end), nil
}

func parseNumericLiteral(cur *cursor, lineIndex int, line string, startPos cursorPos) (token.Token, error) {
	parseDigits(cur)
	valueEnd, ch, ok := cur.next()
	if !ok {
		return token.Token{}, &NumericLiteralValueIncomplete{
			Kind:   token.Integer,
			String: tailFrom(line, startPos),
			Pos: token.SubstringPosition{
				StartLine: lineIndex, EndLine: lineIndex,
				StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
			},
		}
	}
	isFloat := false
	if ch == '.' {
		isFloat = true
		if !parseDigits(cur) {
			return token.Token{}, &NumericLiteralTypeSuffixIncomplete{
				String: tailFrom(line, startPos), Value: tailFrom(line, startPos), ValueKind: token.FloatingPoint,
				Pos: token.SubstringPosition{
					StartLine: lineIndex, EndLine: lineIndex,
					StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
				},
			}
		}
		var nok bool
		valueEnd, ch, nok = cur.next()
		if !nok {
			return token.Token{}, &NumericLiteralTypeSuffixIncomplete{
				String: tailFrom(line, startPos), Value: tailFrom(line, startPos), ValueKind: token.FloatingPoint,
				Pos: token.SubstringPosition{
					StartLine: lineIndex, EndLine: lineIndex,
					StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
				},
			}
		}
	}
	if ch == 'e' || ch == 'E' {
		isFloat = true
		if err := parseFloatingPointExponent(cur, lineIndex, line, startPos); err != nil {
			return token.Token{}, err
		}
		var nok bool
		valueEnd, ch, nok = cur.next()
		if !nok {
			return token.Token{}, &NumericLiteralTypeSuffixIncomplete{
				String: tailFrom(line, startPos), Value: tailFrom(line, startPos), ValueKind: token.FloatingPoint,
				Pos: token.SubstringPosition{
					StartLine: lineIndex, EndLine: lineIndex,
					StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
				},
			}
		}
	}
	value := sliceByPositions(line, startPos, valueEnd)
	valueKind := token.Integer
	if isFloat {
		valueKind = token.FloatingPoint
	}
	if ch != typeSuffixSeparator {
		end := lineEndPos(line)
		if pos, _, peeked := cur.peekPos(); peeked {
			end = charPos(pos)
		}
		return token.Token{}, &NumericLiteralTypeSuffixUnexpectedCharacter{
			Character: ch, Expected: "_", String: tailFrom(line, startPos), Value: value, ValueKind: valueKind,
			Pos: token.SubstringPosition{
				StartLine: lineIndex, EndLine: lineIndex,
				StartCharacter: charPos(startPos), EndCharacter: end,
			},
		}
	}
	suffixStart := cursorPos{b: valueEnd.b + 1, u: valueEnd.u + 1}
	suffixEnd, suffix, err := parseNumericLiteralTypeSuffix(cur, lineIndex, line, suffixStart, isFloat)
	if err != nil {
		return token.Token{}, err
	}
	tokenPos := token.SubstringPosition{
		StartLine: lineIndex, EndLine: lineIndex,
		StartCharacter: charPos(startPos), EndCharacter: charPos(suffixEnd),
	}
	typ, known := token.NumericLiteralTypesBySuffix[suffix]
	if !known {
		return token.Token{}, &NumericLiteralTypeSuffixUnknown{
			TypeSuffix: suffix, Value: value, ValueKind: valueKind,
			String: sliceByPositions(line, startPos, suffixEnd), Pos: tokenPos,
		}
	}
	if isFloat && !typ.IsFloatCompatible() {
		return token.Token{}, &NumericLiteralValueTypeSuffixConflict{
			TypeSuffix: suffix, Value: value, ValueKind: valueKind,
			String: sliceByPositions(line, startPos, suffixEnd), Pos: tokenPos,
		}
	}
	return token.NumericLiteralToken(value, valueKind, typ, tokenPos), nil
}

func parseFloatingPointLiteralStartingWithDot(cur *cursor, lineIndex int, line string, startPos cursorPos) (token.Token, error) {
	parseDigits(cur)
	valueEnd, ch, ok := cur.next()
	if !ok {
		return token.Token{}, &NumericLiteralTypeSuffixIncomplete{
			String: tailFrom(line, startPos), Value: tailFrom(line, startPos), ValueKind: token.FloatingPoint,
			Pos: token.SubstringPosition{
				StartLine: lineIndex, EndLine: lineIndex,
				StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
			},
		}
	}
	if ch == 'e' || ch == 'E' {
		if err := parseFloatingPointExponent(cur, lineIndex, line, startPos); err != nil {
			return token.Token{}, err
		}
		var nok bool
		valueEnd, ch, nok = cur.next()
		if !nok {
			return token.Token{}, &NumericLiteralTypeSuffixIncomplete{
				String: tailFrom(line, startPos), Value: tailFrom(line, startPos), ValueKind: token.FloatingPoint,
				Pos: token.SubstringPosition{
					StartLine: lineIndex, EndLine: lineIndex,
					StartCharacter: charPos(startPos), EndCharacter: lineEndPos(line),
				},
			}
		}
	}
	value := sliceByPositions(line, startPos, valueEnd)
	if ch != typeSuffixSeparator {
		end := lineEndPos(line)
		if pos, _, peeked := cur.peekPos(); peeked {
			end = charPos(pos)
		}
		return token.Token{}, &NumericLiteralTypeSuffixUnexpectedCharacter{
			Character: ch, Expected: "_", String: tailFrom(line, startPos), Value: value, ValueKind: token.FloatingPoint,
			Pos: token.SubstringPosition{
				StartLine: lineIndex, EndLine: lineIndex,
				StartCharacter: charPos(startPos), EndCharacter: end,
			},
		}
	}
	suffixStart := cursorPos{b: valueEnd.b + 1, u: valueEnd.u + 1}
	suffixEnd, suffix, err := parseNumericLiteralTypeSuffix(cur, lineIndex, line, suffixStart, true)
	if err != nil {
		return token.Token{}, err
	}
	tokenPos := token.SubstringPosition{
		StartLine: lineIndex, EndLine: lineIndex,
		StartCharacter: charPos(startPos), EndCharacter: charPos(suffixEnd),
	}
	typ, known := token.NumericLiteralTypesBySuffix[suffix]
	if !known {
		return token.Token{}, &NumericLiteralTypeSuffixUnknown{
			TypeSuffix: suffix, Value: value, ValueKind: token.FloatingPoint,
			String: sliceByPositions(line, startPos, suffixEnd), Pos: tokenPos,
		}
	}
	if !typ.IsFloatCompatible() {
		return token.Token{}, &NumericLiteralValueTypeSuffixConflict{
			TypeSuffix: suffix, Value: value, ValueKind: token.FloatingPoint,
			String: sliceByPositions(line, startPos, suffixEnd), Pos: tokenPos,
		}
	}
	return token.NumericLiteralToken(value, token.FloatingPoint, typ, tokenPos), nil
}
