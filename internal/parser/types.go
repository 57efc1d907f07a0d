package parser

import (
	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/token"
)

// parseTypeExpr parses a TYPE production: a builtin keyword, guid<kind>,
// list<TYPE>, map<TYPE,TYPE>, a tuple "(TYPE, TYPE, ...)", or the `var`
// inferred-type placeholder.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	tok := p.cur
	switch p.cur.Type {
	case token.INT_TYPE, token.FLOAT_TYPE, token.BOOL_TYPE, token.STRING_TYPE,
		token.ENTITY_TYPE, token.VEC_TYPE:
		p.next()
		return &ast.TypeExpr{Tok: tok, Name: tok.Type.String()}
	case token.VAR:
		p.next()
		return &ast.TypeExpr{Tok: tok, Name: "var"}
	case token.GUID_TYPE:
		p.next()
		p.expect(token.LT)
		kind := p.parseGuidKind()
		p.expect(token.GT)
		return &ast.TypeExpr{Tok: tok, Name: "guid", GuidKind: kind}
	case token.LIST_TYPE:
		p.next()
		p.expect(token.LT)
		elem := p.parseTypeExpr()
		p.expect(token.GT)
		return &ast.TypeExpr{Tok: tok, Name: "list", Elem: elem}
	case token.MAP_TYPE:
		p.next()
		p.expect(token.LT)
		key := p.parseTypeExpr()
		p.expect(token.COMMA)
		val := p.parseTypeExpr()
		p.expect(token.GT)
		return &ast.TypeExpr{Tok: tok, Name: "map", Key: key, Value: val}
	case token.LPAREN:
		p.next()
		var members []*ast.TypeExpr
		members = append(members, p.parseTypeExpr())
		for p.cur.Type == token.COMMA {
			p.next()
			members = append(members, p.parseTypeExpr())
		}
		p.expect(token.RPAREN)
		return &ast.TypeExpr{Tok: tok, Tuple: members}
	default:
		p.fail(cerrors.UnknownType, p.cur.Pos, "expected a type, got %s (%q)", p.cur.Type, p.cur.Literal)
		return nil
	}
}

// parseGuidKind parses the kind name inside "guid<kind>". "entity" lexes
// as the ENTITY_TYPE keyword token rather than IDENT, so it is accepted
// alongside the plain identifiers "prefab", "cfg", "faction".
func (p *Parser) parseGuidKind() string {
	switch p.cur.Type {
	case token.ENTITY_TYPE:
		p.next()
		return "entity"
	case token.IDENT:
		switch p.cur.Literal {
		case "prefab", "cfg", "faction":
			lit := p.cur.Literal
			p.next()
			return lit
		}
	}
	p.fail(cerrors.UnknownType, p.cur.Pos, "expected guid kind (entity, prefab, cfg, faction), got %q", p.cur.Literal)
	return ""
}
