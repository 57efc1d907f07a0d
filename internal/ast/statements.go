package ast

import (
	"bytes"
	"strings"

	"github.com/hackermdch/giscript/internal/token"
)

// Block is a brace-delimited sequence of statements.
type Block struct {
	Tok   token.Token // the '{' token
	Stmts []Statement
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Tok.Literal }
func (b *Block) Pos() token.Position  { return b.Tok.Pos }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Stmts {
		out.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// Variable is one `NAME (= init)?` clause of a VarDef.
type Variable struct {
	Name string
	Init Expression // nil if no initializer
}

// VarDef declares one or more locals sharing a type:
// `TYPE name (= init)? (, name (= init)?)*;`. TYPE is `var` for inferred
// declarations, which require an initializer on every clause.
type VarDef struct {
	Tok  token.Token
	Type *TypeExpr
	Vars []Variable
}

func (v *VarDef) statementNode()       {}
func (v *VarDef) TokenLiteral() string { return v.Tok.Literal }
func (v *VarDef) Pos() token.Position  { return v.Tok.Pos }
func (v *VarDef) String() string {
	var out bytes.Buffer
	out.WriteString(v.Type.String() + " ")
	parts := make([]string, len(v.Vars))
	for i, vr := range v.Vars {
		if vr.Init != nil {
			parts[i] = vr.Name + " = " + vr.Init.String()
		} else {
			parts[i] = vr.Name
		}
	}
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(";")
	return out.String()
}

// ExprStatement wraps an expression evaluated for its side effect.
type ExprStatement struct {
	Tok  token.Token
	Expr Expression
}

func (e *ExprStatement) statementNode()       {}
func (e *ExprStatement) TokenLiteral() string { return e.Tok.Literal }
func (e *ExprStatement) Pos() token.Position  { return e.Tok.Pos }
func (e *ExprStatement) String() string       { return e.Expr.String() + ";" }

// If is a conditional with an optional else branch.
type If struct {
	Tok  token.Token
	Cond Expression
	Then Statement
	Else Statement // nil if no else
}

func (i *If) statementNode()       {}
func (i *If) TokenLiteral() string { return i.Tok.Literal }
func (i *If) Pos() token.Position  { return i.Tok.Pos }
func (i *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (" + i.Cond.String() + ") " + i.Then.String())
	if i.Else != nil {
		out.WriteString(" else " + i.Else.String())
	}
	return out.String()
}

// Case is one labeled arm of a Switch. Literal is nil for the default arm.
type Case struct {
	Literal Expression
	Body    []Statement
}

// Switch dispatches on an Int or String expression across literal case
// labels, with an optional default arm.
type Switch struct {
	Tok     token.Token
	Expr    Expression
	Cases   []Case
	Default []Statement // nil if no default
}

func (s *Switch) statementNode()       {}
func (s *Switch) TokenLiteral() string { return s.Tok.Literal }
func (s *Switch) Pos() token.Position  { return s.Tok.Pos }
func (s *Switch) String() string {
	var out bytes.Buffer
	out.WriteString("switch (" + s.Expr.String() + ") {\n")
	for _, c := range s.Cases {
		out.WriteString("case " + c.Literal.String() + ":\n")
		for _, st := range c.Body {
			out.WriteString("  " + st.String() + "\n")
		}
	}
	if s.Default != nil {
		out.WriteString("default:\n")
		for _, st := range s.Default {
			out.WriteString("  " + st.String() + "\n")
		}
	}
	out.WriteString("}")
	return out.String()
}

// While is a pre-condition loop.
type While struct {
	Tok  token.Token
	Cond Expression
	Body Statement
}

func (w *While) statementNode()       {}
func (w *While) TokenLiteral() string { return w.Tok.Literal }
func (w *While) Pos() token.Position  { return w.Tok.Pos }
func (w *While) String() string {
	return "while (" + w.Cond.String() + ") " + w.Body.String()
}

// For is a classic C-style loop; Init, Cond and Post are each optional.
type For struct {
	Tok  token.Token
	Init Statement  // *VarDef or *ExprStatement, may be nil
	Cond Expression // may be nil (runs to the iteration cap)
	Post Expression // may be nil
	Body Statement
}

func (f *For) statementNode()       {}
func (f *For) TokenLiteral() string { return f.Tok.Literal }
func (f *For) Pos() token.Position  { return f.Tok.Pos }
func (f *For) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if f.Init != nil {
		out.WriteString(f.Init.String())
	} else {
		out.WriteString(";")
	}
	out.WriteString(" ")
	if f.Cond != nil {
		out.WriteString(f.Cond.String())
	}
	out.WriteString("; ")
	if f.Post != nil {
		out.WriteString(f.Post.String())
	}
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}

// ForEach iterates the elements of a List-typed expression. ElemType is
// nil when the element type is to be inferred from the iterable.
type ForEach struct {
	Tok      token.Token
	ElemType *TypeExpr
	Name     string
	Iterable Expression
	Body     Statement
}

func (f *ForEach) statementNode()       {}
func (f *ForEach) TokenLiteral() string { return f.Tok.Literal }
func (f *ForEach) Pos() token.Position  { return f.Tok.Pos }
func (f *ForEach) String() string {
	var out bytes.Buffer
	out.WriteString("foreach (")
	if f.ElemType != nil {
		out.WriteString(f.ElemType.String() + " ")
	}
	out.WriteString(f.Name + " : " + f.Iterable.String() + ") ")
	out.WriteString(f.Body.String())
	return out.String()
}

// Return yields an optional value from the enclosing function or event.
// Neither the parser nor the emitter checks that a return is the last
// statement of its body; a return elsewhere is accepted as written.
type Return struct {
	Tok   token.Token
	Value Expression // nil for bare `return;`
}

func (r *Return) statementNode()       {}
func (r *Return) TokenLiteral() string { return r.Tok.Literal }
func (r *Return) Pos() token.Position  { return r.Tok.Pos }
func (r *Return) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}

// Break exits the innermost enclosing loop. A switch is not a break
// target: inside a switch within a loop, break exits the loop, and a
// break in a switch outside any loop is rejected.
type Break struct {
	Tok token.Token
}

func (b *Break) statementNode()       {}
func (b *Break) TokenLiteral() string { return b.Tok.Literal }
func (b *Break) Pos() token.Position  { return b.Tok.Pos }
func (b *Break) String() string       { return "break;" }

// Nop is a standalone `;` with no effect.
type Nop struct {
	Tok token.Token
}

func (n *Nop) statementNode()       {}
func (n *Nop) TokenLiteral() string { return n.Tok.Literal }
func (n *Nop) Pos() token.Position  { return n.Tok.Pos }
func (n *Nop) String() string       { return ";" }
