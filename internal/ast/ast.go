// Package ast defines the abstract syntax tree for the script language: a
// closed tagged variant over declarations, statements and expressions, with
// no open-class visitation — dispatch happens via type switches in the
// emitter.
package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hackermdch/giscript/internal/token"
	"github.com/hackermdch/giscript/internal/types"
)

// Node is the base interface for every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Decl marks a top-level declaration (event, function, global function).
type Decl interface {
	Node
	declNode()
}

// Statement marks a node that performs an action but yields no value.
type Statement interface {
	Node
	statementNode()
}

// Expression marks a node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of a single module's AST.
type Program struct {
	Decls []Decl
}

func (p *Program) TokenLiteral() string {
	if len(p.Decls) > 0 {
		return p.Decls[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Decls {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	return out.String()
}

// TypeExpr is the syntactic spelling of a type annotation, as written by
// the programmer. It is resolved to a types.Type during emission; the
// parser does not perform name lookup or typing (see internal/emitter).
type TypeExpr struct {
	Tok token.Token

	Name string // "int","float","bool","string","entity","vec","guid","list","map","var"

	GuidKind string // set when Name == "guid": "entity","prefab","cfg","faction"

	Elem *TypeExpr // set when Name == "list"

	Key   *TypeExpr // set when Name == "map"
	Value *TypeExpr // set when Name == "map"

	Tuple []*TypeExpr // set for tuple type syntax "(T, T, ...)"
}

func (t *TypeExpr) Pos() token.Position  { return t.Tok.Pos }
func (t *TypeExpr) TokenLiteral() string { return t.Tok.Literal }

// IsInferred reports whether this is the `var` placeholder spelling.
func (t *TypeExpr) IsInferred() bool { return t != nil && t.Name == "var" }

func (t *TypeExpr) String() string {
	if t == nil {
		return "void"
	}
	switch t.Name {
	case "guid":
		return fmt.Sprintf("guid<%s>", t.GuidKind)
	case "list":
		return fmt.Sprintf("list<%s>", t.Elem.String())
	case "map":
		return fmt.Sprintf("map<%s,%s>", t.Key.String(), t.Value.String())
	case "":
		if len(t.Tuple) > 0 {
			parts := make([]string, len(t.Tuple))
			for i, m := range t.Tuple {
				parts[i] = m.String()
			}
			return "(" + strings.Join(parts, ", ") + ")"
		}
		return "var"
	default:
		return t.Name
	}
}

// Param is a single formal parameter of an event, local function, or
// global function.
type Param struct {
	Tok  token.Token
	Name string
	Type *TypeExpr
}

// typeHolder is embedded by every expression node to carry the type
// resolved for it during emission, mirroring GetType/SetType on the
// teacher's expression nodes.
type typeHolder struct {
	resolved *types.Type
}

func (h *typeHolder) GetType() *types.Type     { return h.resolved }
func (h *typeHolder) SetType(t types.Type)     { h.resolved = &t }
func (h *typeHolder) HasType() bool            { return h.resolved != nil }
