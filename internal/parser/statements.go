package parser

import (
	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/token"
)

func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(token.LBRACE)
	block := &ast.Block{Tok: tok}
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		block.Stmts = append(block.Stmts, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.SEMI:
		tok := p.cur
		p.next()
		return &ast.Nop{Tok: tok}
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.SWITCH:
		return p.parseSwitch()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.FOREACH:
		return p.parseForEach()
	case token.BREAK:
		tok := p.cur
		p.next()
		p.expect(token.SEMI)
		return &ast.Break{Tok: tok}
	case token.RETURN:
		return p.parseReturn()
	default:
		if isTypeStartOrVar(p.cur.Type) {
			return p.parseVarDef()
		}
		return p.parseExprStatement()
	}
}

func (p *Parser) parseVarDef() *ast.VarDef {
	tok := p.cur
	typ := p.parseTypeExpr()
	vd := &ast.VarDef{Tok: tok, Type: typ}
	for {
		name := p.expectIdent()
		v := ast.Variable{Name: name.Literal}
		if p.cur.Type == token.ASSIGN {
			p.next()
			v.Init = p.parseAssignment()
		}
		vd.Vars = append(vd.Vars, v)
		if p.cur.Type != token.COMMA {
			break
		}
		p.next()
	}
	p.expect(token.SEMI)
	return vd
}

func (p *Parser) parseExprStatement() *ast.ExprStatement {
	tok := p.cur
	expr := p.parseExpression()
	p.expect(token.SEMI)
	return &ast.ExprStatement{Tok: tok, Expr: expr}
}

func (p *Parser) parseIf() *ast.If {
	tok := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	then := p.parseStatement()
	var elseStmt ast.Statement
	if p.cur.Type == token.ELSE {
		p.next()
		elseStmt = p.parseStatement()
	}
	return &ast.If{Tok: tok, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseSwitch() *ast.Switch {
	tok := p.expect(token.SWITCH)
	p.expect(token.LPAREN)
	expr := p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)

	sw := &ast.Switch{Tok: tok, Expr: expr}
	for p.cur.Type == token.CASE {
		p.next()
		lit := p.parseAssignment()
		p.expect(token.COLON)
		var body []ast.Statement
		for p.cur.Type != token.CASE && p.cur.Type != token.DEFAULT && p.cur.Type != token.RBRACE {
			body = append(body, p.parseStatement())
		}
		sw.Cases = append(sw.Cases, ast.Case{Literal: lit, Body: body})
	}
	if p.cur.Type == token.DEFAULT {
		p.next()
		p.expect(token.COLON)
		var body []ast.Statement
		for p.cur.Type != token.CASE && p.cur.Type != token.DEFAULT && p.cur.Type != token.RBRACE {
			body = append(body, p.parseStatement())
		}
		sw.Default = body
	}
	p.expect(token.RBRACE)
	return sw
}

func (p *Parser) parseWhile() *ast.While {
	tok := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	body := p.parseStatement()
	return &ast.While{Tok: tok, Cond: cond, Body: body}
}

func (p *Parser) parseFor() *ast.For {
	tok := p.expect(token.FOR)
	p.expect(token.LPAREN)

	var init ast.Statement
	switch {
	case p.cur.Type == token.SEMI:
		p.next()
	case isTypeStartOrVar(p.cur.Type):
		init = p.parseVarDef() // consumes the trailing ';'
	default:
		e := p.parseExpression()
		p.expect(token.SEMI)
		init = &ast.ExprStatement{Expr: e}
	}

	var cond ast.Expression
	if p.cur.Type != token.SEMI {
		cond = p.parseExpression()
	}
	p.expect(token.SEMI)

	var post ast.Expression
	if p.cur.Type != token.RPAREN {
		post = p.parseExpression()
	}
	p.expect(token.RPAREN)

	body := p.parseStatement()
	return &ast.For{Tok: tok, Init: init, Cond: cond, Post: post, Body: body}
}

func (p *Parser) parseForEach() *ast.ForEach {
	tok := p.expect(token.FOREACH)
	p.expect(token.LPAREN)

	var elemType *ast.TypeExpr
	if isTypeStartOrVar(p.cur.Type) {
		elemType = p.parseTypeExpr()
	}
	name := p.expectIdent()
	p.expect(token.COLON)
	iterable := p.parseExpression()
	p.expect(token.RPAREN)
	body := p.parseStatement()

	return &ast.ForEach{Tok: tok, ElemType: elemType, Name: name.Literal, Iterable: iterable, Body: body}
}

func (p *Parser) parseReturn() *ast.Return {
	tok := p.expect(token.RETURN)
	var val ast.Expression
	if p.cur.Type != token.SEMI {
		val = p.parseExpression()
	}
	p.expect(token.SEMI)
	return &ast.Return{Tok: tok, Value: val}
}
