package ast

import (
	"bytes"
	"strings"

	"github.com/hackermdch/giscript/internal/token"
)

// EventDecl declares an event handler: `event NAME(params) { body }`.
type EventDecl struct {
	Tok    token.Token
	Name   string
	Params []Param
	Body   *Block
}

func (e *EventDecl) declNode()              {}
func (e *EventDecl) TokenLiteral() string   { return e.Tok.Literal }
func (e *EventDecl) Pos() token.Position    { return e.Tok.Pos }
func (e *EventDecl) String() string {
	var out bytes.Buffer
	out.WriteString("event " + e.Name + "(")
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.Type.String() + " " + p.Name
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(") ")
	out.WriteString(e.Body.String())
	return out.String()
}

// FunctionDecl declares a local or global function:
// `[global] function SIG { body }`.
type FunctionDecl struct {
	Tok        token.Token
	Global     bool
	Name       string
	ReturnType *TypeExpr // nil = void
	Params     []Param
	Body       *Block
}

func (f *FunctionDecl) declNode()            {}
func (f *FunctionDecl) TokenLiteral() string { return f.Tok.Literal }
func (f *FunctionDecl) Pos() token.Position  { return f.Tok.Pos }
func (f *FunctionDecl) String() string {
	var out bytes.Buffer
	if f.Global {
		out.WriteString("global ")
	}
	out.WriteString("function ")
	if f.ReturnType != nil {
		out.WriteString(f.ReturnType.String() + " ")
	}
	out.WriteString(f.Name + "(")
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Type.String() + " " + p.Name
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}
