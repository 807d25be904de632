/*
File    : go-mix/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-mix/langerr"
	"github.com/akashmaji946/go-mix/lexer"
)

func (p *Parser) expression() (Expr, *langerr.Diagnostic) {
	return p.assignment()
}

// assignment is right-associative: a = (b = (c = 3)).
func (p *Parser) assignment() (Expr, *langerr.Diagnostic) {
	target, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.ASSIGN_OP) {
		line := target.Line()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return AssignmentExpr{baseNode{line}, target, value}, nil
	}
	return target, nil
}

func (p *Parser) or() (Expr, *langerr.Diagnostic) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.OR_KEY) {
		tok := p.advance()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{baseNode{tok.Line}, left, lexer.OR_KEY, right}
	}
	return left, nil
}

func (p *Parser) and() (Expr, *langerr.Diagnostic) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.AND_KEY) {
		tok := p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{baseNode{tok.Line}, left, lexer.AND_KEY, right}
	}
	return left, nil
}

func (p *Parser) equality() (Expr, *langerr.Diagnostic) {
	left, err := p.compare()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.EQ_OP) || p.check(lexer.NE_OP) {
		tok := p.advance()
		right, err := p.compare()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{baseNode{tok.Line}, left, tok.Type, right}
	}
	return left, nil
}

func (p *Parser) compare() (Expr, *langerr.Diagnostic) {
	left, err := p.sum()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.GT_OP) || p.check(lexer.LT_OP) || p.check(lexer.GE_OP) || p.check(lexer.LE_OP) {
		tok := p.advance()
		right, err := p.sum()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{baseNode{tok.Line}, left, tok.Type, right}
	}
	return left, nil
}

func (p *Parser) sum() (Expr, *langerr.Diagnostic) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.PLUS_OP) || p.check(lexer.MINUS_OP) {
		tok := p.advance()
		right, err := p.product()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{baseNode{tok.Line}, left, tok.Type, right}
	}
	return left, nil
}

func (p *Parser) product() (Expr, *langerr.Diagnostic) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.MUL_OP) || p.check(lexer.DIV_OP) || p.check(lexer.MOD_OP) {
		tok := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{baseNode{tok.Line}, left, tok.Type, right}
	}
	return left, nil
}

func (p *Parser) unary() (Expr, *langerr.Diagnostic) {
	if p.check(lexer.NOT_OP) || p.check(lexer.MINUS_OP) {
		tok := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return UnaryExpr{baseNode{tok.Line}, tok.Type, right}, nil
	}
	return p.element()
}

func (p *Parser) element() (Expr, *langerr.Diagnostic) {
	expr, err := p.call()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.LEFT_BRACKET) {
		tok := p.advance()
		index, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(lexer.RIGHT_BRACKET) {
			return nil, langerr.NewExpectedCharacter(']', p.currentLine)
		}
		expr = ElementExpr{baseNode{tok.Line}, expr, index}
	}
	return expr, nil
}

func (p *Parser) call() (Expr, *langerr.Diagnostic) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.LEFT_PAREN) {
		tok := p.advance()
		var args []Expr
		if !p.check(lexer.RIGHT_PAREN) {
			for {
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.match(lexer.COMMA_DELIM) {
					break
				}
			}
		}
		if !p.match(lexer.RIGHT_PAREN) {
			return nil, langerr.NewExpectedCharacter(')', p.currentLine)
		}
		expr = CallExpr{baseNode{tok.Line}, expr, args}
	}
	return expr, nil
}

func (p *Parser) primary() (Expr, *langerr.Diagnostic) {
	tok := p.current()
	switch tok.Type {
	case lexer.NUMBER_LIT:
		p.advance()
		n, convErr := strconv.ParseFloat(tok.Literal, 64)
		if convErr != nil {
			return nil, langerr.NewExpectedExpression(p.currentLine)
		}
		return LiteralExpr{baseNode{tok.Line}, NumberLit, n, "", false}, nil
	case lexer.STRING_LIT:
		p.advance()
		return LiteralExpr{baseNode{tok.Line}, StringLit, 0, tok.Literal, false}, nil
	case lexer.TRUE_KEY:
		p.advance()
		return LiteralExpr{baseNode{tok.Line}, BoolLit, 0, "", true}, nil
	case lexer.FALSE_KEY:
		p.advance()
		return LiteralExpr{baseNode{tok.Line}, BoolLit, 0, "", false}, nil
	case lexer.NULL_KEY:
		p.advance()
		return LiteralExpr{baseNode{tok.Line}, NullLit, 0, "", false}, nil
	case lexer.IDENTIFIER_ID:
		p.advance()
		return VariableExpr{baseNode{tok.Line}, tok.Literal}, nil
	case lexer.LEFT_PAREN:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(lexer.RIGHT_PAREN) {
			return nil, langerr.NewExpectedCharacter(')', p.currentLine)
		}
		return GroupingExpr{baseNode{tok.Line}, inner}, nil
	case lexer.LEFT_BRACKET:
		p.advance()
		var elems []Expr
		if !p.check(lexer.RIGHT_BRACKET) {
			for {
				e, err := p.expression()
				if err != nil {
					return nil, err
				}
				elems = append(elems, e)
				if !p.match(lexer.COMMA_DELIM) {
					break
				}
			}
		}
		if !p.match(lexer.RIGHT_BRACKET) {
			return nil, langerr.NewExpectedCharacter(']', p.currentLine)
		}
		return ArrayExpr{baseNode{tok.Line}, elems}, nil
	case lexer.LEFT_BRACE:
		p.advance()
		var entries []DictEntry
		if !p.check(lexer.RIGHT_BRACE) {
			for {
				key, err := p.expression()
				if err != nil {
					return nil, err
				}
				if !p.match(lexer.COLON_DELIM) {
					return nil, langerr.NewExpectedColonAfterKey(p.currentLine)
				}
				val, err := p.expression()
				if err != nil {
					return nil, err
				}
				entries = append(entries, DictEntry{key, val})
				if !p.match(lexer.COMMA_DELIM) {
					break
				}
			}
		}
		if !p.match(lexer.RIGHT_BRACE) {
			return nil, langerr.NewExpectedCharacter('}', p.currentLine)
		}
		return DictionaryExpr{baseNode{tok.Line}, entries}, nil
	default:
		return nil, langerr.NewExpectedExpression(p.currentLine)
	}
}
