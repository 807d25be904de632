/*
File    : go-mix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/langerr"
	"github.com/akashmaji946/go-mix/lexer"
)

// Parser is a recursive-descent parser over a fixed token slice. It
// mirrors the teacher's lookahead/error-collection idiom (a cursor plus
// an accumulated error list) but drives a fixed-precedence grammar
// instead of a Pratt dispatch table, per spec §4.2.
type Parser struct {
	Tokens []lexer.Token
	Pos    int
	Errors []*langerr.Diagnostic

	// currentLine is the line of the last-consumed token, updated only
	// by advance(). Diagnostics report against this line, not the
	// unconsumed lookahead token's line, matching the original's
	// current_line bookkeeping.
	currentLine int
}

// synchronisationSet is the set of token kinds sync() resumes at.
var synchronisationSet = map[lexer.TokenType]bool{
	lexer.EOF_TYPE:   true,
	lexer.FOR_KEY:    true,
	lexer.FUNC_KEY:   true,
	lexer.IF_KEY:     true,
	lexer.PRINT_KEY:  true,
	lexer.RETURN_KEY: true,
	lexer.VAR_KEY:    true,
	lexer.WHILE_KEY:  true,
}

// NewParser builds a Parser over an already-tokenized source.
func NewParser(tokens []lexer.Token) *Parser {
	line := 1
	if len(tokens) > 0 {
		line = tokens[0].Line
	}
	return &Parser{Tokens: tokens, Pos: 0, currentLine: line}
}

func (p *Parser) current() lexer.Token {
	if p.Pos >= len(p.Tokens) {
		return lexer.Token{Type: lexer.EOF_TYPE, Line: p.lastLine()}
	}
	return p.Tokens[p.Pos]
}

func (p *Parser) lastLine() int {
	if len(p.Tokens) == 0 {
		return 1
	}
	return p.Tokens[len(p.Tokens)-1].Line
}

func (p *Parser) atEnd() bool { return p.Pos >= len(p.Tokens) }

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if !p.atEnd() {
		p.Pos++
		p.currentLine = tok.Line
	}
	return tok
}

func (p *Parser) check(t lexer.TokenType) bool { return p.current().Type == t }

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// HasErrors reports whether the parser has recorded any diagnostics.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns the diagnostics recorded so far.
func (p *Parser) GetErrors() []*langerr.Diagnostic { return p.Errors }

func (p *Parser) addError(d *langerr.Diagnostic) { p.Errors = append(p.Errors, d) }

// sync advances the cursor until it sits on a token in the
// synchronisation set, so that parsing of the next top-level statement
// can resume after a syntax error.
func (p *Parser) sync() {
	for !p.atEnd() && !synchronisationSet[p.current().Type] {
		p.advance()
	}
}

// Parse parses the whole token stream. It returns either the full
// statement list (errs is nil) or a non-empty diagnostic list (stmts is
// nil) — per spec §8, never both.
func (p *Parser) Parse() (stmts []Stmt, errs []*langerr.Diagnostic) {
	var out []Stmt
	for !p.atEnd() {
		stmt, err := p.statement()
		if err != nil {
			p.addError(err)
			p.sync()
			continue
		}
		out = append(out, stmt)
	}
	if p.HasErrors() {
		return nil, p.Errors
	}
	return out, nil
}

func (p *Parser) statement() (Stmt, *langerr.Diagnostic) {
	switch {
	case p.check(lexer.BREAK_KEY):
		return p.breakStmt()
	case p.check(lexer.FOR_KEY):
		return p.forStmt()
	case p.check(lexer.FUNC_KEY):
		return p.funcStmt()
	case p.check(lexer.IF_KEY):
		return p.ifStmt()
	case p.check(lexer.PRINT_KEY):
		return p.printStmt()
	case p.check(lexer.RETURN_KEY):
		return p.returnStmt()
	case p.check(lexer.VAR_KEY):
		return p.varStmt()
	case p.check(lexer.WHILE_KEY):
		return p.whileStmt()
	case p.check(lexer.LEFT_BRACE):
		return p.block()
	default:
		return p.expressionStmt()
	}
}

func (p *Parser) breakStmt() (Stmt, *langerr.Diagnostic) {
	tok := p.advance()
	return BreakStmt{baseNode{tok.Line}}, nil
}

func (p *Parser) block() (Stmt, *langerr.Diagnostic) {
	tok := p.advance() // consume "{"
	var body []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.atEnd() {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if !p.match(lexer.RIGHT_BRACE) {
		return nil, langerr.NewExpectedCharacter('}', p.currentLine)
	}
	return BlockStmt{baseNode{tok.Line}, body}, nil
}

func (p *Parser) ifStmt() (Stmt, *langerr.Diagnostic) {
	tok := p.advance() // "if"
	if !p.match(lexer.LEFT_PAREN) {
		return nil, langerr.NewExpectedCharacter('(', p.currentLine)
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.RIGHT_PAREN) {
		return nil, langerr.NewExpectedCharacter(')', p.currentLine)
	}
	thenBody, err := p.block()
	if err != nil {
		return nil, err
	}
	var elseBody Stmt
	if p.match(lexer.ELSE_KEY) {
		if p.check(lexer.IF_KEY) {
			elseBody, err = p.ifStmt()
		} else {
			elseBody, err = p.block()
		}
		if err != nil {
			return nil, err
		}
	}
	return IfStmt{baseNode{tok.Line}, cond, thenBody, elseBody}, nil
}

func (p *Parser) printStmt() (Stmt, *langerr.Diagnostic) {
	tok := p.advance()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return PrintStmt{baseNode{tok.Line}, expr}, nil
}

func (p *Parser) returnStmt() (Stmt, *langerr.Diagnostic) {
	tok := p.advance()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return ReturnStmt{baseNode{tok.Line}, expr}, nil
}

func (p *Parser) varStmt() (Stmt, *langerr.Diagnostic) {
	tok := p.advance() // "var"
	if !p.check(lexer.IDENTIFIER_ID) {
		return nil, langerr.NewExpectedVariableName(p.currentLine)
	}
	name := p.advance().Literal
	if !p.match(lexer.ASSIGN_OP) {
		return nil, langerr.NewExpectedCharacter('=', p.currentLine)
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return VarDeclStmt{baseNode{tok.Line}, name, value}, nil
}

func (p *Parser) whileStmt() (Stmt, *langerr.Diagnostic) {
	tok := p.advance() // "while"
	if !p.match(lexer.LEFT_PAREN) {
		return nil, langerr.NewExpectedCharacter('(', p.currentLine)
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.RIGHT_PAREN) {
		return nil, langerr.NewExpectedCharacter(')', p.currentLine)
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return WhileStmt{baseNode{tok.Line}, cond, body}, nil
}

func (p *Parser) funcStmt() (Stmt, *langerr.Diagnostic) {
	tok := p.advance() // "func"
	if !p.check(lexer.IDENTIFIER_ID) {
		return nil, langerr.NewExpectedFunctionName(p.currentLine)
	}
	name := p.advance().Literal
	if !p.match(lexer.LEFT_PAREN) {
		return nil, langerr.NewExpectedCharacter('(', p.currentLine)
	}
	var params []string
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if !p.check(lexer.IDENTIFIER_ID) {
				return nil, langerr.NewExpectedParameterName(p.currentLine)
			}
			params = append(params, p.advance().Literal)
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	if !p.match(lexer.RIGHT_PAREN) {
		return nil, langerr.NewExpectedCharacter(')', p.currentLine)
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return FunctionStmt{baseNode{tok.Line}, name, params, body}, nil
}

// forStmt desugars `for (I; C; U) B` into `{ I ; while (C) { { B } ; U } }`
// at parse time, per spec §4.2. Elisions leave the branch absent and
// default C to `true`.
func (p *Parser) forStmt() (Stmt, *langerr.Diagnostic) {
	tok := p.advance() // "for"
	if !p.match(lexer.LEFT_PAREN) {
		return nil, langerr.NewExpectedCharacter('(', p.currentLine)
	}

	var init Stmt
	if !p.check(lexer.SEMICOLON_DELIM) {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		init = s
	}
	if !p.match(lexer.SEMICOLON_DELIM) {
		return nil, langerr.NewExpectedSemicolonAfterInit(p.currentLine)
	}

	var cond Expr
	if !p.check(lexer.SEMICOLON_DELIM) {
		c, err := p.expression()
		if err != nil {
			return nil, err
		}
		cond = c
	} else {
		cond = LiteralExpr{baseNode{tok.Line}, BoolLit, 0, "", true}
	}
	if !p.match(lexer.SEMICOLON_DELIM) {
		return nil, langerr.NewExpectedSemicolonAfterCondition(p.currentLine)
	}

	var incr Stmt
	if !p.check(lexer.RIGHT_PAREN) {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		incr = s
	}
	if !p.match(lexer.RIGHT_PAREN) {
		return nil, langerr.NewExpectedParenAfterIncrement(p.currentLine)
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	innerBody := []Stmt{BlockStmt{baseNode{tok.Line}, []Stmt{body}}}
	if incr != nil {
		innerBody = append(innerBody, incr)
	}
	whileStmt := WhileStmt{baseNode{tok.Line}, cond, BlockStmt{baseNode{tok.Line}, innerBody}}

	outer := []Stmt{}
	if init != nil {
		outer = append(outer, init)
	}
	outer = append(outer, whileStmt)
	return BlockStmt{baseNode{tok.Line}, outer}, nil
}

func (p *Parser) expressionStmt() (Stmt, *langerr.Diagnostic) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return ExpressionStmt{baseNode{expr.Line()}, expr}, nil
}
