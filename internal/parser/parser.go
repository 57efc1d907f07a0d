// Package parser implements a recursive-descent/Pratt parser for the
// script language. It performs no name lookup or typing; it only builds
// the AST (internal/ast). Per the language's error model there is no
// syntax-error recovery: the first offending token aborts parsing
// immediately via a bail-out panic, recovered at the Parse entry point.
package parser

import (
	"fmt"

	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/lexer"
	"github.com/hackermdch/giscript/internal/token"
)

// Parser turns a token stream into a *ast.Program.
type Parser struct {
	l      *lexer.Lexer
	source string
	file   string

	cur  token.Token
	peek token.Token
}

// New creates a Parser over source. file is used only for diagnostics.
func New(source, file string) *Parser {
	p := &Parser{l: lexer.New(source), source: source, file: file}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// bailout is the sentinel panic value used to unwind to Parse on the
// first syntax error.
type bailout struct{ err *cerrors.CompilerError }

func (p *Parser) fail(kind cerrors.Kind, pos token.Position, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	panic(bailout{cerrors.New(kind, pos, msg, p.source, p.file)})
}

func (p *Parser) expect(tt token.Type) token.Token {
	if p.cur.Type != tt {
		p.fail(cerrors.SyntaxError, p.cur.Pos, "expected %s, got %s (%q)", tt, p.cur.Type, p.cur.Literal)
	}
	tok := p.cur
	p.next()
	return tok
}

func (p *Parser) expectIdent() token.Token {
	if token.IsKeyword(p.cur.Literal) {
		p.fail(cerrors.KeywordMisuse, p.cur.Pos, "reserved word %q used as identifier", p.cur.Literal)
	}
	return p.expect(token.IDENT)
}

// Parse lexes and parses source into a *ast.Program. It returns the first
// syntax error encountered, if any; there is no partial result on error.
func Parse(source, file string) (prog *ast.Program, err *cerrors.CompilerError) {
	defer func() {
		if r := recover(); r != nil {
			if b, ok := r.(bailout); ok {
				err = b.err
				prog = nil
				return
			}
			panic(r)
		}
	}()

	p := New(source, file)
	prog = p.parseProgram()

	if p.cur.Type != token.EOF {
		p.fail(cerrors.UnexpectedTokenAfterProgram, p.cur.Pos, "unexpected token %q after program", p.cur.Literal)
	}

	return prog, nil
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Type != token.EOF {
		// Anything that cannot start a declaration after at least one has
		// been parsed is left for Parse to report as trailing input.
		if len(prog.Decls) > 0 && p.cur.Type != token.EVENT && p.cur.Type != token.GLOBAL && p.cur.Type != token.FUNCTION {
			break
		}
		prog.Decls = append(prog.Decls, p.parseDecl())
	}
	return prog
}

func (p *Parser) parseDecl() ast.Decl {
	switch p.cur.Type {
	case token.EVENT:
		return p.parseEventDecl()
	case token.GLOBAL, token.FUNCTION:
		return p.parseFunctionDecl()
	default:
		p.fail(cerrors.SyntaxError, p.cur.Pos, "expected 'event' or 'function', got %s (%q)", p.cur.Type, p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseEventDecl() *ast.EventDecl {
	tok := p.expect(token.EVENT)
	name := p.expectIdent()
	params := p.parseParamList()
	body := p.parseBlock()
	return &ast.EventDecl{Tok: tok, Name: name.Literal, Params: params, Body: body}
}

func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	global := false
	if p.cur.Type == token.GLOBAL {
		global = true
		p.next()
	}
	tok := p.expect(token.FUNCTION)

	var retType *ast.TypeExpr
	if isTypeStart(p.cur.Type) {
		retType = p.parseTypeExpr()
	}
	name := p.expectIdent()
	params := p.parseParamList()
	body := p.parseBlock()

	return &ast.FunctionDecl{
		Tok:        tok,
		Global:     global,
		Name:       name.Literal,
		ReturnType: retType,
		Params:     params,
		Body:       body,
	}
}

func (p *Parser) parseParamList() []ast.Param {
	p.expect(token.LPAREN)
	var params []ast.Param
	if p.cur.Type != token.RPAREN {
		params = append(params, p.parseParam())
		for p.cur.Type == token.COMMA {
			p.next()
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseParam() ast.Param {
	typ := p.parseTypeExpr()
	name := p.expectIdent()
	return ast.Param{Tok: name, Name: name.Literal, Type: typ}
}

func isTypeStart(tt token.Type) bool {
	switch tt {
	case token.INT_TYPE, token.FLOAT_TYPE, token.BOOL_TYPE, token.STRING_TYPE,
		token.ENTITY_TYPE, token.VEC_TYPE, token.GUID_TYPE, token.LIST_TYPE, token.MAP_TYPE:
		return true
	default:
		return false
	}
}

func isTypeStartOrVar(tt token.Type) bool {
	return tt == token.VAR || isTypeStart(tt)
}
