package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/hackermdch/giscript/internal/token"
)

// IntLiteral is a decimal integer literal.
type IntLiteral struct {
	typeHolder
	Tok   token.Token
	Value int64
}

func (l *IntLiteral) expressionNode()      {}
func (l *IntLiteral) TokenLiteral() string { return l.Tok.Literal }
func (l *IntLiteral) Pos() token.Position  { return l.Tok.Pos }
func (l *IntLiteral) String() string       { return strconv.FormatInt(l.Value, 10) }

// FloatLiteral is a decimal floating-point literal.
type FloatLiteral struct {
	typeHolder
	Tok   token.Token
	Value float64
}

func (l *FloatLiteral) expressionNode()      {}
func (l *FloatLiteral) TokenLiteral() string { return l.Tok.Literal }
func (l *FloatLiteral) Pos() token.Position  { return l.Tok.Pos }
func (l *FloatLiteral) String() string       { return strconv.FormatFloat(l.Value, 'g', -1, 64) }

// StringLiteral is a double-quoted string literal (already unescaped by
// the lexer).
type StringLiteral struct {
	typeHolder
	Tok   token.Token
	Value string
}

func (l *StringLiteral) expressionNode()      {}
func (l *StringLiteral) TokenLiteral() string { return l.Tok.Literal }
func (l *StringLiteral) Pos() token.Position  { return l.Tok.Pos }
func (l *StringLiteral) String() string       { return `"` + l.Value + `"` }

// BoolLiteral is the `true`/`false` keyword literal.
type BoolLiteral struct {
	typeHolder
	Tok   token.Token
	Value bool
}

func (l *BoolLiteral) expressionNode()      {}
func (l *BoolLiteral) TokenLiteral() string { return l.Tok.Literal }
func (l *BoolLiteral) Pos() token.Position  { return l.Tok.Pos }
func (l *BoolLiteral) String() string       { return l.Tok.Literal }

// NullLiteral is the `null` keyword literal.
type NullLiteral struct {
	typeHolder
	Tok token.Token
}

func (l *NullLiteral) expressionNode()      {}
func (l *NullLiteral) TokenLiteral() string { return l.Tok.Literal }
func (l *NullLiteral) Pos() token.Position  { return l.Tok.Pos }
func (l *NullLiteral) String() string       { return "null" }

// ThisLiteral is the `this` keyword literal, referring to the entity the
// event fired on.
type ThisLiteral struct {
	typeHolder
	Tok token.Token
}

func (l *ThisLiteral) expressionNode()      {}
func (l *ThisLiteral) TokenLiteral() string { return l.Tok.Literal }
func (l *ThisLiteral) Pos() token.Position  { return l.Tok.Pos }
func (l *ThisLiteral) String() string       { return "this" }

// Identifier refers to a local variable, function, or user function by
// name; which it is gets resolved during emission.
type Identifier struct {
	typeHolder
	Tok  token.Token
	Name string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Tok.Literal }
func (i *Identifier) Pos() token.Position  { return i.Tok.Pos }
func (i *Identifier) String() string       { return i.Name }

// Call invokes a built-in function, local function, or global function.
// ExplicitReturnType disambiguates overloads that differ only in return
// type where the call-site context alone cannot decide; it is nil in the
// common case.
type Call struct {
	typeHolder
	Tok                token.Token
	Callee             Expression
	Args               []Expression
	ExplicitReturnType *TypeExpr
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Tok.Literal }
func (c *Call) Pos() token.Position  { return c.Tok.Pos }
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Increment is pre/post `++`/`--` on an lvalue expression.
type Increment struct {
	typeHolder
	Tok  token.Token
	Expr Expression
	Dec  bool // true for --, false for ++
	Pre  bool // true for prefix, false for postfix
}

func (n *Increment) expressionNode()      {}
func (n *Increment) TokenLiteral() string { return n.Tok.Literal }
func (n *Increment) Pos() token.Position  { return n.Tok.Pos }
func (n *Increment) String() string {
	op := "++"
	if n.Dec {
		op = "--"
	}
	if n.Pre {
		return op + n.Expr.String()
	}
	return n.Expr.String() + op
}

// Member is postfix `.name` or `[index]` access on Target: dot access on
// an Entity reads/writes a custom variable (Name set, optional
// ExplicitType suffix disambiguates its value type); dot access on a Vec
// selects "x"/"y"/"z"; bracket access on a List indexes by Index.
type Member struct {
	typeHolder
	Tok          token.Token
	Target       Expression
	Name         string     // set for dot access; empty when Index is set
	Index        Expression // set for bracket access; nil when Name is set
	ExplicitType *TypeExpr  // optional ":Type" suffix, entity custom vars only
}

func (m *Member) expressionNode()      {}
func (m *Member) TokenLiteral() string { return m.Tok.Literal }
func (m *Member) Pos() token.Position  { return m.Tok.Pos }
func (m *Member) String() string {
	if m.Index != nil {
		return m.Target.String() + "[" + m.Index.String() + "]"
	}
	s := m.Target.String() + "." + m.Name
	if m.ExplicitType != nil {
		s += ":" + m.ExplicitType.String()
	}
	return s
}

// Assignment is `lhs op rhs` where op is one of =, +=, -=, *=, /=.
type Assignment struct {
	typeHolder
	Tok   token.Token
	Left  Expression
	Op    string
	Right Expression
}

func (a *Assignment) expressionNode()      {}
func (a *Assignment) TokenLiteral() string { return a.Tok.Literal }
func (a *Assignment) Pos() token.Position  { return a.Tok.Pos }
func (a *Assignment) String() string {
	return "(" + a.Left.String() + " " + a.Op + " " + a.Right.String() + ")"
}

// Unary is a prefix `+ - ! ~` applied to Expr.
type Unary struct {
	typeHolder
	Tok  token.Token
	Op   string
	Expr Expression
}

func (u *Unary) expressionNode()      {}
func (u *Unary) TokenLiteral() string { return u.Tok.Literal }
func (u *Unary) Pos() token.Position  { return u.Tok.Pos }
func (u *Unary) String() string       { return "(" + u.Op + u.Expr.String() + ")" }

// Binary is an infix operator application.
type Binary struct {
	typeHolder
	Tok   token.Token
	Op    string
	Left  Expression
	Right Expression
}

func (b *Binary) expressionNode()      {}
func (b *Binary) TokenLiteral() string { return b.Tok.Literal }
func (b *Binary) Pos() token.Position  { return b.Tok.Pos }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	typeHolder
	Tok  token.Token
	Cond Expression
	Then Expression
	Else Expression
}

func (t *Ternary) expressionNode()      {}
func (t *Ternary) TokenLiteral() string { return t.Tok.Literal }
func (t *Ternary) Pos() token.Position  { return t.Tok.Pos }
func (t *Ternary) String() string {
	return "(" + t.Cond.String() + " ? " + t.Then.String() + " : " + t.Else.String() + ")"
}

// Chain is the comma operator: a sequence of expressions evaluated in
// order, whose value is that of the last.
type Chain struct {
	typeHolder
	Tok   token.Token
	Exprs []Expression
}

func (c *Chain) expressionNode()      {}
func (c *Chain) TokenLiteral() string { return c.Tok.Literal }
func (c *Chain) Pos() token.Position  { return c.Tok.Pos }
func (c *Chain) String() string {
	var out bytes.Buffer
	for i, e := range c.Exprs {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(e.String())
	}
	return out.String()
}

// Cast is an explicit `(TYPE) expr` conversion.
type Cast struct {
	typeHolder
	Tok  token.Token
	Type *TypeExpr
	Expr Expression
}

func (c *Cast) expressionNode()      {}
func (c *Cast) TokenLiteral() string { return c.Tok.Literal }
func (c *Cast) Pos() token.Position  { return c.Tok.Pos }
func (c *Cast) String() string       { return "(" + c.Type.String() + ")" + c.Expr.String() }

// Construct is `TYPE { init, init, ... }`, a typed initializer-list
// expression (used directly, not only as a VarDef initializer).
type Construct struct {
	typeHolder
	Tok   token.Token
	Type  *TypeExpr
	Inits []Expression
}

func (c *Construct) expressionNode()      {}
func (c *Construct) TokenLiteral() string { return c.Tok.Literal }
func (c *Construct) Pos() token.Position  { return c.Tok.Pos }
func (c *Construct) String() string {
	items := make([]string, len(c.Inits))
	for i, it := range c.Inits {
		items[i] = it.String()
	}
	return c.Type.String() + "{" + strings.Join(items, ", ") + "}"
}

// InitializerList is a bare `{ init, init, ... }` with no leading type,
// valid only where the surrounding context supplies the target type (a
// VarDef or Assignment initializer).
type InitializerList struct {
	typeHolder
	Tok   token.Token
	Items []Expression
}

func (l *InitializerList) expressionNode()      {}
func (l *InitializerList) TokenLiteral() string { return l.Tok.Literal }
func (l *InitializerList) Pos() token.Position  { return l.Tok.Pos }
func (l *InitializerList) String() string {
	items := make([]string, len(l.Items))
	for i, it := range l.Items {
		items[i] = it.String()
	}
	return "{" + strings.Join(items, ", ") + "}"
}

// Grouped is a parenthesized expression, kept distinct from its inner
// expression so re-printing round-trips (spec §8 property 7).
type Grouped struct {
	typeHolder
	Tok  token.Token
	Expr Expression
}

func (g *Grouped) expressionNode()      {}
func (g *Grouped) TokenLiteral() string { return g.Tok.Literal }
func (g *Grouped) Pos() token.Position  { return g.Tok.Pos }
func (g *Grouped) String() string       { return "(" + g.Expr.String() + ")" }
