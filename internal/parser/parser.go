package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/az-lang/az/internal/ast"
	"github.com/az-lang/az/internal/lexer"
	"github.com/az-lang/az/internal/pipeline"
	"github.com/az-lang/az/internal/token"
)

// Parser drives a one-token-lookahead cursor over a buffered token stream.
// Trivia tokens are absorbed into a pending-filler queue as the cursor
// advances; consuming the cursor hands back both the token and the
// fillers that preceded it.
type Parser struct {
	stream    *lexer.Stream
	cursor    token.Token
	hasCursor bool
	fillers   []ast.Filler

	log *logrus.Entry
}

// New wraps a token stream for parsing, priming the cursor with the
// first meaningful token.
func New(stream *lexer.Stream) *Parser {
	p := &Parser{stream: stream, log: pipeline.Logger().WithField("stage", "parser")}
	p.advance()
	return p
}

// Parse runs the full Script grammar over tokens, the library's main
// entry point besides the pkg/az facade.
func Parse(tokens []token.Token) (*ast.Script, error) {
	p := New(lexer.NewStream(tokens))
	var statements []ast.Statement
	for {
		tok, fillers, ok := p.next()
		if !ok {
			break
		}
		stmt, err := p.parseStatement(tok, fillers)
		if err != nil {
			p.log.WithError(err).Debug("parse failed")
			return nil, err
		}
		statements = append(statements, stmt)
	}
	p.log.WithField("statements", len(statements)).Trace("parse complete")
	return &ast.Script{Statements: statements, Fillers: p.fillers}, nil
}

// advance pulls trivia tokens into the pending-filler queue until the
// cursor holds the next meaningful token, or the stream is exhausted.
func (p *Parser) advance() {
	for {
		tok, ok := p.stream.Peek(0)
		if !ok {
			p.hasCursor = false
			return
		}
		if tok.IsTrivia() {
			p.stream.Next()
			p.fillers = append(p.fillers, ast.FillerFromToken(tok))
			continue
		}
		p.stream.Next()
		p.cursor, p.hasCursor = tok, true
		return
	}
}

// next consumes the cursor token together with the fillers that preceded
// it and advances to the next one.
func (p *Parser) next() (token.Token, []ast.Filler, bool) {
	if !p.hasCursor {
		return token.Token{}, nil, false
	}
	tok, fillers := p.cursor, p.fillers
	p.fillers = nil
	p.hasCursor = false
	p.advance()
	return tok, fillers, true
}

// peek reports the cursor token without consuming it.
func (p *Parser) peek() (token.Token, bool) {
	return p.cursor, p.hasCursor
}

func (p *Parser) parseStatement(tok token.Token, fillers []ast.Filler) (ast.Statement, error) {
	expr, err := p.parseExpression(tok, fillers)
	if err != nil {
		return nil, err
	}
	semicolon, semicolonFillers, ok := p.next()
	if !ok {
		return nil, &OutOfTokens{}
	}
	if semicolon.Content.Kind != token.KindSemicolon {
		return nil, &MissingSemicolon{Token: semicolon}
	}
	return &ast.ExpressionStatement{
		Expression:        expr,
		SemicolonPosition: semicolon.Position,
		SemicolonFillers:  semicolonFillers,
	}, nil
}

func (p *Parser) parseExpression(tok token.Token, fillers []ast.Filler) (ast.Expression, error) {
	result, err := p.parseTerm(tok, fillers)
	if err != nil {
		return nil, err
	}
	return p.parseSubExpression(result, ast.MinimumPrecedence)
}

// parseSubExpression is the Pratt loop's infix/postfix step: while the
// next token names a binary operator at or above minPrecedence, fold it
// into result and continue. Call is special-cased since its "operator" is
// an open parenthesis introducing an argument list rather than a single
// right-hand operand.
func (p *Parser) parseSubExpression(result ast.Expression, minPrecedence ast.Precedence) (ast.Expression, error) {
	for {
		nextTok, ok := p.peek()
		if !ok {
			break
		}
		op, isOp := ast.BinaryOperatorFromContent(nextTok.Content)
		if !isOp {
			break
		}
		precedence := op.Precedence()
		if precedence < minPrecedence {
			break
		}

		if op == ast.BinaryCall {
			openParen, openFillers, _ := p.next()
			call, err := p.parseCallArguments(result, openParen.Position, openFillers)
			if err != nil {
				return nil, err
			}
			result = call
			continue
		}

		opTok, operatorFillers, _ := p.next()
		operand, err := p.parseOperand(precedence)
		if err != nil {
			return nil, err
		}

		next, err := foldBinary(op, result, operand, opTok.Position, operatorFillers)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}

// parseOperand parses a single right-hand operand for a pending operator
// at the given precedence, then greedily continues folding any
// tighter-or-equal-and-right-associative operators into it before
// returning control to the caller's loop.
func (p *Parser) parseOperand(precedence ast.Precedence) (ast.Expression, error) {
	tok, fillers, ok := p.next()
	if !ok {
		return nil, &OutOfTokens{}
	}
	operand, err := p.parseTerm(tok, fillers)
	if err != nil {
		return nil, err
	}
	for {
		nextTok, ok := p.peek()
		if !ok {
			break
		}
		nextOp, isOp := ast.BinaryOperatorFromContent(nextTok.Content)
		if !isOp {
			break
		}
		nextPrecedence := nextOp.Precedence()
		shouldContinue := nextPrecedence > precedence ||
			(nextPrecedence == precedence && nextOp.Associativity() == ast.RightToLeft)
		if !shouldContinue {
			break
		}
		minPrecedence := precedence
		if precedence < nextPrecedence {
			minPrecedence = precedence + 1
		}
		next, err := p.parseSubExpression(operand, minPrecedence)
		if err != nil {
			return nil, err
		}
		operand = next
	}
	return operand, nil
}

func (p *Parser) parseTerm(tok token.Token, fillers []ast.Filler) (ast.Expression, error) {
	if op, ok := ast.UnaryOperatorFromContent(tok.Content); ok {
		operand, err := p.parseOperand(op.Precedence())
		if err != nil {
			return nil, err
		}
		return &ast.UnaryArithmeticOperation{
			Operand:          operand,
			Operator:         op,
			OperatorPosition: tok.Position,
			OperatorFillers:  fillers,
		}, nil
	}

	switch tok.Content.Kind {
	case token.KindIdentifier:
		switch tok.Content.Identifier {
		case ast.FunctionOpener:
			return p.parseFunctionDefinition(tok.Position, fillers)
		case ast.ConditionalAntecedentOpener:
			return p.parseConditional(tok.Position, fillers)
		case ast.ConditionalAlternativeOpener:
			return nil, &UnexpectedToken{Token: tok}
		default:
			return &ast.Identifier{String: tok.Content.Identifier, Position: tok.Position, Fillers: fillers}, nil
		}
	case token.KindNumericLiteral:
		return &ast.NumericLiteral{
			Value:    tok.Content.NumericValue,
			Type:     tok.Content.NumericType,
			Position: tok.Position,
			Fillers:  fillers,
		}, nil
	case token.KindOpenBrace:
		return p.parseBlock(tok.Position, fillers)
	case token.KindOpenParenthesis:
		return p.parseTupleOrGrouping(tok.Position, fillers)
	default:
		return nil, &UnexpectedToken{Token: tok}
	}
}

// foldBinary builds the appropriate binary expression node for op, routing
// arithmetic/comparison/assignment/annotation/member-access operators to
// their distinct AST shapes even though they share one precedence table.
func foldBinary(op ast.BinaryOperator, left, right ast.Expression, operatorPosition token.SubstringPosition, operatorFillers []ast.Filler) (ast.Expression, error) {
	switch op {
	case ast.BinaryAssignment:
		return &ast.Assignment{
			Target: left, Value: right,
			OperatorPosition: operatorPosition, OperatorFillers: operatorFillers,
		}, nil
	case ast.BinaryAnnotation:
		identifier, ok := left.(*ast.Identifier)
		if !ok {
			return nil, &UnexpectedExpression{Expression: left}
		}
		return &ast.AnnotatedIdentifier{
			Identifier: identifier, Annotation: right,
			OperatorPosition: operatorPosition, OperatorFillers: operatorFillers,
		}, nil
	case ast.BinaryMemberAccess:
		member, ok := right.(*ast.Identifier)
		if !ok {
			return nil, &UnexpectedExpression{Expression: right}
		}
		return &ast.MemberAccess{
			Object: left, Member: member,
			OperatorPosition: operatorPosition, OperatorFillers: operatorFillers,
		}, nil
	case ast.BinaryAddition, ast.BinarySubtraction, ast.BinaryMultiplication, ast.BinaryDivision:
		return &ast.BinaryArithmeticOperation{
			Left: left, Right: right, Operator: op,
			OperatorPosition: operatorPosition, OperatorFillers: operatorFillers,
		}, nil
	default:
		return &ast.BinaryComparison{
			Left: left, Right: right, Operator: op,
			OperatorPosition: operatorPosition, OperatorFillers: operatorFillers,
		}, nil
	}
}

// parseCallArguments parses "(arguments...)" immediately following an
// already-consumed callable, sharing Tuple's comma/element parity rule but
// with no Grouping-style single-element ambiguity: a Call's parenthesized
// list is always an argument list, even with zero or one element.
func (p *Parser) parseCallArguments(callable ast.Expression, openParenPosition token.SubstringPosition, openParenFillers []ast.Filler) (ast.Expression, error) {
	tok, fillers, ok := p.next()
	if !ok {
		return nil, &MismatchedOpenParenthesis{Pos: openParenPosition}
	}
	if tok.Content.Kind == token.KindCloseParenthesis {
		return &ast.Call{
			Callable:                 callable,
			OpenParenthesisPosition:  openParenPosition,
			CloseParenthesisPosition: tok.Position,
			OpenParenthesisFillers:   openParenFillers,
			CloseParenthesisFillers:  fillers,
		}, nil
	}

	first, err := p.parseExpression(tok, fillers)
	if err != nil {
		return nil, err
	}
	arguments := []ast.Expression{first}
	var commasPositions []token.SubstringPosition
	var commasFillers [][]ast.Filler

	for {
		sepTok, sepFillers, ok := p.next()
		if !ok {
			return nil, &MismatchedOpenParenthesis{Pos: openParenPosition}
		}
		switch sepTok.Content.Kind {
		case token.KindCloseParenthesis:
			return &ast.Call{
				Callable:                 callable,
				Arguments:                arguments,
				OpenParenthesisPosition:  openParenPosition,
				CommasPositions:          commasPositions,
				CloseParenthesisPosition: sepTok.Position,
				OpenParenthesisFillers:   openParenFillers,
				CommasFillers:            commasFillers,
				CloseParenthesisFillers:  sepFillers,
			}, nil
		case token.KindComma:
			commasPositions = append(commasPositions, sepTok.Position)
			commasFillers = append(commasFillers, sepFillers)
			if nextTok, ok := p.peek(); ok && nextTok.Content.Kind == token.KindCloseParenthesis {
				closeTok, closeFillers, _ := p.next()
				return &ast.Call{
					Callable:                 callable,
					Arguments:                arguments,
					OpenParenthesisPosition:  openParenPosition,
					CommasPositions:          commasPositions,
					CloseParenthesisPosition: closeTok.Position,
					OpenParenthesisFillers:   openParenFillers,
					CommasFillers:            commasFillers,
					CloseParenthesisFillers:  closeFillers,
				}, nil
			}
			argTok, argFillers, ok := p.next()
			if !ok {
				return nil, &OutOfTokens{}
			}
			arg, err := p.parseExpression(argTok, argFillers)
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
		default:
			return nil, &UnexpectedToken{Token: sepTok}
		}
	}
}

// parseTupleOrGrouping parses "(...)" where the parenthesized content is
// not already known to be a call's argument list: zero elements and a
// trailing comma both force Tuple, while exactly one element with no
// trailing comma is a Grouping.
func (p *Parser) parseTupleOrGrouping(openParenPosition token.SubstringPosition, openParenFillers []ast.Filler) (ast.Expression, error) {
	tok, fillers, ok := p.next()
	if !ok {
		return nil, &MismatchedOpenParenthesis{Pos: openParenPosition}
	}
	if tok.Content.Kind == token.KindCloseParenthesis {
		return &ast.Tuple{
			OpenParenthesisPosition:  openParenPosition,
			CloseParenthesisPosition: tok.Position,
			OpenParenthesisFillers:   openParenFillers,
			CloseParenthesisFillers:  fillers,
		}, nil
	}

	first, err := p.parseExpression(tok, fillers)
	if err != nil {
		return nil, err
	}

	sepTok, sepFillers, ok := p.next()
	if !ok {
		return nil, &MismatchedOpenParenthesis{Pos: openParenPosition}
	}
	switch sepTok.Content.Kind {
	case token.KindCloseParenthesis:
		return &ast.Grouping{
			Expression:               first,
			OpenParenthesisPosition:  openParenPosition,
			CloseParenthesisPosition: sepTok.Position,
			OpenParenthesisFillers:   openParenFillers,
			CloseParenthesisFillers:  sepFillers,
		}, nil
	case token.KindComma:
		elements := []ast.Expression{first}
		commasPositions := []token.SubstringPosition{sepTok.Position}
		commasFillers := [][]ast.Filler{sepFillers}

		for {
			if nextTok, ok := p.peek(); ok && nextTok.Content.Kind == token.KindCloseParenthesis {
				closeTok, closeFillers, _ := p.next()
				return &ast.Tuple{
					Elements:                 elements,
					OpenParenthesisPosition:  openParenPosition,
					CommasPositions:          commasPositions,
					CloseParenthesisPosition: closeTok.Position,
					OpenParenthesisFillers:   openParenFillers,
					CommasFillers:            commasFillers,
					CloseParenthesisFillers:  closeFillers,
				}, nil
			}
			elemTok, elemFillers, ok := p.next()
			if !ok {
				return nil, &OutOfTokens{}
			}
			elem, err := p.parseExpression(elemTok, elemFillers)
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)

			nextSep, nextSepFillers, ok := p.next()
			if !ok {
				return nil, &MismatchedOpenParenthesis{Pos: openParenPosition}
			}
			switch nextSep.Content.Kind {
			case token.KindComma:
				commasPositions = append(commasPositions, nextSep.Position)
				commasFillers = append(commasFillers, nextSepFillers)
			case token.KindCloseParenthesis:
				return &ast.Tuple{
					Elements:                 elements,
					OpenParenthesisPosition:  openParenPosition,
					CommasPositions:          commasPositions,
					CloseParenthesisPosition: nextSep.Position,
					OpenParenthesisFillers:   openParenFillers,
					CommasFillers:            commasFillers,
					CloseParenthesisFillers:  nextSepFillers,
				}, nil
			default:
				return nil, &UnexpectedToken{Token: nextSep}
			}
		}
	default:
		return nil, &UnexpectedToken{Token: sepTok}
	}
}

// parseBlock parses "{ statements... expression? }". Each statement but
// the optional trailing expression is terminated by a semicolon; the
// trailing expression, if present, is the block's own value and has none.
func (p *Parser) parseBlock(openBracePosition token.SubstringPosition, openBraceFillers []ast.Filler) (ast.Expression, error) {
	var statements []ast.Statement

	for {
		tok, fillers, ok := p.next()
		if !ok {
			return nil, &MismatchedOpenBrace{Pos: openBracePosition}
		}
		if tok.Content.Kind == token.KindCloseBrace {
			return &ast.Block{
				Statements:         statements,
				OpenBracePosition:  openBracePosition,
				CloseBracePosition: tok.Position,
				OpenBraceFillers:   openBraceFillers,
				CloseBraceFillers:  fillers,
			}, nil
		}

		expr, err := p.parseExpression(tok, fillers)
		if err != nil {
			return nil, err
		}

		next, ok := p.peek()
		if ok && next.Content.Kind == token.KindSemicolon {
			semicolon, semicolonFillers, _ := p.next()
			statements = append(statements, &ast.ExpressionStatement{
				Expression:        expr,
				SemicolonPosition: semicolon.Position,
				SemicolonFillers:  semicolonFillers,
			})
			continue
		}

		closeTok, closeFillers, ok := p.next()
		if !ok {
			return nil, &MismatchedOpenBrace{Pos: openBracePosition}
		}
		if closeTok.Content.Kind != token.KindCloseBrace {
			return nil, &UnexpectedToken{Token: closeTok}
		}
		return &ast.Block{
			Statements:         statements,
			Expression:         expr,
			OpenBracePosition:  openBracePosition,
			CloseBracePosition: closeTok.Position,
			OpenBraceFillers:   openBraceFillers,
			CloseBraceFillers:  closeFillers,
		}, nil
	}
}

// requireBlock consumes the next token as the opening "{" of a block term,
// the shape a conditional's consequent and a function body both require.
func (p *Parser) requireBlock() (*ast.Block, error) {
	tok, fillers, ok := p.next()
	if !ok {
		return nil, &OutOfTokens{}
	}
	if tok.Content.Kind != token.KindOpenBrace {
		return nil, &UnexpectedToken{Token: tok}
	}
	expr, err := p.parseBlock(tok.Position, fillers)
	if err != nil {
		return nil, err
	}
	return expr.(*ast.Block), nil
}

// parseConditional parses "if antecedent { consequent } [else alternative]".
// The antecedent is parsed at full expression precedence; since "{" opens
// no infix operator, the Pratt loop halts there on its own, leaving the
// consequent to be parsed as a dedicated block term. The alternative must
// be a Block or another Conditional; any other shape is rejected.
func (p *Parser) parseConditional(openerPosition token.SubstringPosition, openerFillers []ast.Filler) (ast.Expression, error) {
	antecedentTok, antecedentFillers, ok := p.next()
	if !ok {
		return nil, &OutOfTokens{}
	}
	antecedent, err := p.parseExpression(antecedentTok, antecedentFillers)
	if err != nil {
		return nil, err
	}

	consequent, err := p.requireBlock()
	if err != nil {
		return nil, err
	}

	var alternative ast.Expression
	var alternativeOpenerPosition *token.SubstringPosition
	var alternativeOpenerFillers []ast.Filler
	if nextTok, ok := p.peek(); ok && nextTok.Content.Kind == token.KindIdentifier &&
		nextTok.Content.Identifier == ast.ConditionalAlternativeOpener {
		elseTok, elseFillers, _ := p.next()
		pos := elseTok.Position
		alternativeOpenerPosition = &pos
		alternativeOpenerFillers = elseFillers

		altTok, altFillers, ok := p.next()
		if !ok {
			return nil, &OutOfTokens{}
		}
		alternative, err = p.parseExpression(altTok, altFillers)
		if err != nil {
			return nil, err
		}
		switch alternative.(type) {
		case *ast.Block, *ast.Conditional:
		default:
			return nil, &UnexpectedExpression{Expression: alternative}
		}
	}

	return &ast.Conditional{
		Antecedent:                antecedent,
		Consequent:                *consequent,
		Alternative:               alternative,
		OpenerPosition:            openerPosition,
		AlternativeOpenerPosition: alternativeOpenerPosition,
		OpenerFillers:             openerFillers,
		AlternativeOpenerFillers:  alternativeOpenerFillers,
	}, nil
}

// parseFunctionDefinition parses
// "Function(parameters...) -> return_type { body }". Parameters follow
// Tuple's comma/element parity rule and are stored as plain Expression
// slots, same as Tuple's elements, but each one must actually be an
// AnnotatedIdentifier ("name: type") — any other shape is rejected.
func (p *Parser) parseFunctionDefinition(openerPosition token.SubstringPosition, openerFillers []ast.Filler) (ast.Expression, error) {
	openParenTok, openParenFillers, ok := p.next()
	if !ok {
		return nil, &OutOfTokens{}
	}
	if openParenTok.Content.Kind != token.KindOpenParenthesis {
		return nil, &UnexpectedToken{Token: openParenTok}
	}

	var parameters []ast.Expression
	var commasPositions []token.SubstringPosition
	var commasFillers [][]ast.Filler
	var closeParenPosition token.SubstringPosition
	var closeParenFillers []ast.Filler

	tok, fillers, ok := p.next()
	if !ok {
		return nil, &MismatchedOpenParenthesis{Pos: openParenTok.Position}
	}
	if tok.Content.Kind == token.KindCloseParenthesis {
		closeParenPosition, closeParenFillers = tok.Position, fillers
	} else {
		param, err := p.parseExpression(tok, fillers)
		if err != nil {
			return nil, err
		}
		if _, ok := param.(*ast.AnnotatedIdentifier); !ok {
			return nil, &UnexpectedExpression{Expression: param}
		}
		parameters = append(parameters, param)

		for done := false; !done; {
			sepTok, sepFillers, ok := p.next()
			if !ok {
				return nil, &MismatchedOpenParenthesis{Pos: openParenTok.Position}
			}
			switch sepTok.Content.Kind {
			case token.KindCloseParenthesis:
				closeParenPosition, closeParenFillers = sepTok.Position, sepFillers
				done = true
			case token.KindComma:
				commasPositions = append(commasPositions, sepTok.Position)
				commasFillers = append(commasFillers, sepFillers)
				if nextTok, ok := p.peek(); ok && nextTok.Content.Kind == token.KindCloseParenthesis {
					closeTok, closeFillers2, _ := p.next()
					closeParenPosition, closeParenFillers = closeTok.Position, closeFillers2
					done = true
					break
				}
				paramTok, paramFillers, ok := p.next()
				if !ok {
					return nil, &OutOfTokens{}
				}
				nextParam, err := p.parseExpression(paramTok, paramFillers)
				if err != nil {
					return nil, err
				}
				if _, ok := nextParam.(*ast.AnnotatedIdentifier); !ok {
					return nil, &UnexpectedExpression{Expression: nextParam}
				}
				parameters = append(parameters, nextParam)
			default:
				return nil, &UnexpectedToken{Token: sepTok}
			}
		}
	}

	arrowTok, arrowFillers, ok := p.next()
	if !ok {
		return nil, &OutOfTokens{}
	}
	if arrowTok.Content.Kind != token.KindArrow {
		return nil, &UnexpectedToken{Token: arrowTok}
	}

	returnTypeTok, returnTypeFillers, ok := p.next()
	if !ok {
		return nil, &OutOfTokens{}
	}
	returnType, err := p.parseExpression(returnTypeTok, returnTypeFillers)
	if err != nil {
		return nil, err
	}

	body, err := p.requireBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDefinition{
		Parameters:               parameters,
		ReturnType:               returnType,
		Body:                     *body,
		OpenerPosition:           openerPosition,
		OpenParenthesisPosition:  openParenTok.Position,
		CommasPositions:          commasPositions,
		CloseParenthesisPosition: closeParenPosition,
		ArrowPosition:            arrowTok.Position,
		OpenerFillers:            openerFillers,
		OpenParenthesisFillers:   openParenFillers,
		CommasFillers:            commasFillers,
		CloseParenthesisFillers:  closeParenFillers,
		ArrowFillers:             arrowFillers,
	}, nil
}
