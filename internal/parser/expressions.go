package parser

import (
	"strconv"

	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/token"
)

// parseExpression parses the comma ("chain") operator at the top level:
// a sequence of assignment-level expressions evaluated left to right,
// whose value is that of the last.
func (p *Parser) parseExpression() ast.Expression {
	tok := p.cur
	first := p.parseAssignment()
	if p.cur.Type != token.COMMA {
		return first
	}
	exprs := []ast.Expression{first}
	for p.cur.Type == token.COMMA {
		p.next()
		exprs = append(exprs, p.parseAssignment())
	}
	return &ast.Chain{Tok: tok, Exprs: exprs}
}

var assignOps = map[token.Type]string{
	token.ASSIGN:       "=",
	token.PLUS_ASSIGN:  "+=",
	token.MINUS_ASSIGN: "-=",
	token.STAR_ASSIGN:  "*=",
	token.SLASH_ASSIGN: "/=",
}

func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseTernary()
	if op, ok := assignOps[p.cur.Type]; ok {
		tok := p.cur
		p.next()
		right := p.parseAssignment() // right-associative
		return &ast.Assignment{Tok: tok, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) parseTernary() ast.Expression {
	cond := p.parseLogicalOr()
	if p.cur.Type == token.QUESTION {
		tok := p.cur
		p.next()
		then := p.parseExpression()
		p.expect(token.COLON)
		elseExpr := p.parseAssignment() // right-associative
		return &ast.Ternary{Tok: tok, Cond: cond, Then: then, Else: elseExpr}
	}
	return cond
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for p.cur.Type == token.OROR {
		tok := p.cur
		p.next()
		left = &ast.Binary{Tok: tok, Op: "||", Left: left, Right: p.parseLogicalAnd()}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseBitOr()
	for p.cur.Type == token.ANDAND {
		tok := p.cur
		p.next()
		left = &ast.Binary{Tok: tok, Op: "&&", Left: left, Right: p.parseBitOr()}
	}
	return left
}

func (p *Parser) parseBitOr() ast.Expression {
	left := p.parseBitXor()
	for p.cur.Type == token.PIPE {
		tok := p.cur
		p.next()
		left = &ast.Binary{Tok: tok, Op: "|", Left: left, Right: p.parseBitXor()}
	}
	return left
}

func (p *Parser) parseBitXor() ast.Expression {
	left := p.parseBitAnd()
	for p.cur.Type == token.CARET {
		tok := p.cur
		p.next()
		left = &ast.Binary{Tok: tok, Op: "^", Left: left, Right: p.parseBitAnd()}
	}
	return left
}

func (p *Parser) parseBitAnd() ast.Expression {
	left := p.parseEquality()
	for p.cur.Type == token.AMP {
		tok := p.cur
		p.next()
		left = &ast.Binary{Tok: tok, Op: "&", Left: left, Right: p.parseEquality()}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseRelational()
	for p.cur.Type == token.EQ || p.cur.Type == token.NEQ {
		tok := p.cur
		op := tok.Literal
		p.next()
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: p.parseRelational()}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseShift()
	for p.cur.Type == token.LT || p.cur.Type == token.GT || p.cur.Type == token.LE || p.cur.Type == token.GE {
		tok := p.cur
		op := tok.Literal
		p.next()
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: p.parseShift()}
	}
	return left
}

func (p *Parser) parseShift() ast.Expression {
	left := p.parseAdditive()
	for p.cur.Type == token.SHL || p.cur.Type == token.SHR || p.cur.Type == token.USHR {
		tok := p.cur
		op := tok.Literal
		p.next()
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: p.parseAdditive()}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.cur.Type == token.PLUS || p.cur.Type == token.MINUS {
		tok := p.cur
		op := tok.Literal
		p.next()
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: p.parseMultiplicative()}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for p.cur.Type == token.STAR || p.cur.Type == token.SLASH || p.cur.Type == token.PERCENT {
		tok := p.cur
		op := tok.Literal
		p.next()
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: p.parseUnary()}
	}
	return left
}

// parseUnary handles prefix operators, pre-increment/decrement, and the
// cast production "(TYPE) expr". A '(' is unambiguously the start of a
// cast when immediately followed by a type keyword — no type keyword can
// otherwise begin a parenthesized expression — so no backtracking is
// required.
func (p *Parser) parseUnary() ast.Expression {
	switch p.cur.Type {
	case token.PLUS:
		tok := p.cur
		p.next()
		return &ast.Unary{Tok: tok, Op: "+", Expr: p.parseUnary()}
	case token.MINUS:
		tok := p.cur
		p.next()
		operand := p.parseUnary()
		// A negated numeric literal folds into the literal itself.
		switch lit := operand.(type) {
		case *ast.IntLiteral:
			return &ast.IntLiteral{Tok: lit.Tok, Value: -lit.Value}
		case *ast.FloatLiteral:
			return &ast.FloatLiteral{Tok: lit.Tok, Value: -lit.Value}
		}
		return &ast.Unary{Tok: tok, Op: "-", Expr: operand}
	case token.BANG:
		tok := p.cur
		p.next()
		return &ast.Unary{Tok: tok, Op: "!", Expr: p.parseUnary()}
	case token.TILDE:
		tok := p.cur
		p.next()
		return &ast.Unary{Tok: tok, Op: "~", Expr: p.parseUnary()}
	case token.INC:
		tok := p.cur
		p.next()
		return &ast.Increment{Tok: tok, Expr: p.parseUnary(), Pre: true}
	case token.DEC:
		tok := p.cur
		p.next()
		return &ast.Increment{Tok: tok, Expr: p.parseUnary(), Dec: true, Pre: true}
	case token.LPAREN:
		if isTypeStart(p.peek.Type) {
			tok := p.cur
			p.next() // consume '('
			typ := p.parseTypeExpr()
			p.expect(token.RPAREN)
			return &ast.Cast{Tok: tok, Type: typ, Expr: p.parseUnary()}
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch p.cur.Type {
		case token.LPAREN:
			tok := p.cur
			p.next()
			args := p.parseArgs()
			p.expect(token.RPAREN)
			expr = &ast.Call{Tok: tok, Callee: expr, Args: args}
		case token.DOT:
			tok := p.cur
			p.next()
			name := p.expectIdent()
			var explicitType *ast.TypeExpr
			if p.cur.Type == token.COLON {
				p.next()
				explicitType = p.parseTypeExpr()
			}
			expr = &ast.Member{Tok: tok, Target: expr, Name: name.Literal, ExplicitType: explicitType}
		case token.LBRACKET:
			tok := p.cur
			p.next()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = &ast.Member{Tok: tok, Target: expr, Index: idx}
		case token.INC:
			tok := p.cur
			p.next()
			expr = &ast.Increment{Tok: tok, Expr: expr}
		case token.DEC:
			tok := p.cur
			p.next()
			expr = &ast.Increment{Tok: tok, Expr: expr, Dec: true}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgs() []ast.Expression {
	var args []ast.Expression
	if p.cur.Type == token.RPAREN {
		return args
	}
	args = append(args, p.parseAssignment())
	for p.cur.Type == token.COMMA {
		p.next()
		args = append(args, p.parseAssignment())
	}
	return args
}

func (p *Parser) parseInitList() []ast.Expression {
	p.expect(token.LBRACE)
	var items []ast.Expression
	if p.cur.Type != token.RBRACE {
		items = append(items, p.parseAssignment())
		for p.cur.Type == token.COMMA {
			p.next()
			items = append(items, p.parseAssignment())
		}
	}
	p.expect(token.RBRACE)
	return items
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur
	switch tok.Type {
	case token.INT:
		p.next()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail(cerrors.SyntaxError, tok.Pos, "invalid integer literal %q", tok.Literal)
		}
		return &ast.IntLiteral{Tok: tok, Value: v}
	case token.FLOAT:
		p.next()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fail(cerrors.SyntaxError, tok.Pos, "invalid float literal %q", tok.Literal)
		}
		return &ast.FloatLiteral{Tok: tok, Value: v}
	case token.STRING:
		p.next()
		return &ast.StringLiteral{Tok: tok, Value: tok.Literal}
	case token.TRUE:
		p.next()
		return &ast.BoolLiteral{Tok: tok, Value: true}
	case token.FALSE:
		p.next()
		return &ast.BoolLiteral{Tok: tok, Value: false}
	case token.NULL:
		p.next()
		return &ast.NullLiteral{Tok: tok}
	case token.THIS:
		p.next()
		return &ast.ThisLiteral{Tok: tok}
	case token.IDENT:
		p.next()
		return &ast.Identifier{Tok: tok, Name: tok.Literal}
	case token.LPAREN:
		p.next()
		inner := p.parseExpression()
		p.expect(token.RPAREN)
		return &ast.Grouped{Tok: tok, Expr: inner}
	case token.LBRACE:
		items := p.parseInitList()
		return &ast.InitializerList{Tok: tok, Items: items}
	default:
		if isTypeStart(tok.Type) {
			typ := p.parseTypeExpr()
			if p.cur.Type != token.LBRACE {
				p.fail(cerrors.SyntaxError, p.cur.Pos, "expected '{' after type in construct expression, got %q", p.cur.Literal)
			}
			inits := p.parseInitList()
			return &ast.Construct{Tok: tok, Type: typ, Inits: inits}
		}
		p.fail(cerrors.SyntaxError, tok.Pos, "unexpected token %s (%q)", tok.Type, tok.Literal)
		return nil
	}
}
