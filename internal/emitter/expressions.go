package emitter

import (
	"golang.org/x/text/unicode/norm"

	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/fragment"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/nodefactory"
	"github.com/hackermdch/giscript/internal/registry"
	"github.com/hackermdch/giscript/internal/token"
	"github.com/hackermdch/giscript/internal/types"
)

// lvalue records how to re-emit an assignment to the expression that
// produced it: a setter-node factory plus, for a compound op or a
// post-increment, the getter node to read the prior value from.
type lvalue struct {
	kind       lvalueKind
	getter     graph.Node // node whose value pin supplies the current value
	getterPin  int
	entity     fragment.Expr // for lvCustom: the target entity expression
	name       string        // for lvCustom: the custom variable's name
	typ        types.Type
}

type lvalueKind int

const (
	lvNone lvalueKind = iota
	lvLocal
	lvCustom
)

// emitExpr lowers e to a fragment. body is the enclosing function/event
// body being compiled (for scope lookups and function-table access).
func (b *bodyCtx) emitExpr(e ast.Expression) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	switch ex := e.(type) {
	case *ast.IntLiteral:
		return fragment.Expr{Type: types.TInt(), Literal: fragment.Literal{Kind: fragment.LiteralInt, Int: ex.Value}}, nil, nil
	case *ast.FloatLiteral:
		return fragment.Expr{Type: types.TFloat(), Literal: fragment.Literal{Kind: fragment.LiteralFloat, Float: float32(ex.Value)}}, nil, nil
	case *ast.StringLiteral:
		// Normalize to NFC so two source files spelling the same string
		// with different combining-mark orderings bake to identical
		// bytes in the emitted graph.
		return fragment.Expr{Type: types.TString(), Literal: fragment.Literal{Kind: fragment.LiteralString, String: norm.NFC.String(ex.Value)}}, nil, nil
	case *ast.BoolLiteral:
		return fragment.Expr{Type: types.TBool(), Literal: fragment.Literal{Kind: fragment.LiteralBool, Bool: ex.Value}}, nil, nil
	case *ast.NullLiteral:
		return fragment.Expr{Type: types.TNull()}, nil, nil
	case *ast.ThisLiteral:
		n := b.g.AddNode(registry.NKGetSelfEntity)
		n.SetPin(0, graph.EntityType, true)
		return fragment.Expr{Nodes: []graph.Node{n}, Type: types.TEntity(), Start: n, StartPin: 0}, nil, nil
	case *ast.Identifier:
		return b.emitIdentifier(ex)
	case *ast.Grouped:
		return b.emitExpr(ex.Expr)
	case *ast.Unary:
		return b.emitUnary(ex)
	case *ast.Binary:
		return b.emitBinary(ex)
	case *ast.Cast:
		return b.emitCast(ex)
	case *ast.Call:
		return b.emitCall(ex)
	case *ast.Member:
		return b.emitMember(ex)
	case *ast.Assignment:
		return b.emitAssignment(ex)
	case *ast.Increment:
		return b.emitIncrement(ex)
	case *ast.Ternary:
		return b.emitTernary(ex)
	case *ast.Chain:
		return b.emitChain(ex)
	case *ast.Construct:
		return b.emitConstruct(ex.Type, ex.Inits, ex.Pos())
	case *ast.InitializerList:
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, ex.Pos(), "initializer list has no target type here")
	default:
		return fragment.Expr{}, nil, b.fail(cerrors.SyntaxError, e.Pos(), "unsupported expression")
	}
}

func (b *bodyCtx) emitIdentifier(id *ast.Identifier) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	if lv := b.scope.Find(id.Name); lv != nil {
		ls := lv.Content.(localSlot)
		return fragment.Expr{Type: lv.Type, Start: ls.Node, StartPin: ls.Pin},
			&lvalue{kind: lvLocal, getter: ls.Node, getterPin: ls.Pin, typ: lv.Type}, nil
	}
	if _, ok := b.locals[id.Name]; ok {
		return fragment.Expr{Type: types.TFunction()}, nil, nil
	}
	if _, ok := b.globals[id.Name]; ok {
		return fragment.Expr{Type: types.TFunction()}, nil, nil
	}
	return fragment.Expr{}, nil, b.fail(cerrors.UndefinedSymbol, id.Pos(), "undefined symbol: %s", id.Name)
}

func (b *bodyCtx) emitUnary(u *ast.Unary) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	operand, _, err := b.emitExpr(u.Expr)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	switch u.Op {
	case "-":
		zero := fragment.Expr{Type: operand.Type}
		switch operand.Type.Kind {
		case types.Int:
			zero.Literal = fragment.Literal{Kind: fragment.LiteralInt, Int: 0}
		case types.Float:
			zero.Literal = fragment.Literal{Kind: fragment.LiteralFloat, Float: 0}
		default:
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, u.Pos(), "unary - requires Int or Float, got %s", operand.Type)
		}
		n, nerr := nodefactory.Sub(b.g, zero, operand)
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, u.Pos(), "%s", nerr.Error())
		}
		return b.wireBinaryResult(n, zero, operand, operand.Type), nil, nil
	case "!":
		n, nerr := nodefactory.Not(b.g, operand)
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, u.Pos(), "%s", nerr.Error())
		}
		return b.wireUnaryResult(n, operand, types.TBool()), nil, nil
	case "~":
		n, nerr := nodefactory.BitwiseNot(b.g, operand)
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, u.Pos(), "%s", nerr.Error())
		}
		return b.wireUnaryResult(n, operand, types.TInt()), nil, nil
	case "+":
		return operand, nil, nil
	default:
		return fragment.Expr{}, nil, b.fail(cerrors.SyntaxError, u.Pos(), "unknown unary operator %q", u.Op)
	}
}

// wireBinaryResult connects two already-evaluated operand fragments into
// n's pins 0/1 (skipping literal operands, already folded by the node
// factory) and returns the combined fragment exposing n's result.
func (b *bodyCtx) wireBinaryResult(n graph.Node, e1, e2 fragment.Expr, resultType types.Type) fragment.Expr {
	combined := fragment.Combine(e1, e2)
	if !e1.IsLiteral() && e1.Start != nil {
		e1.Start.Connect(n, e1.StartPin, 0, false)
	}
	if !e2.IsLiteral() && e2.Start != nil {
		e2.Start.Connect(n, e2.StartPin, 1, false)
	}
	combined.Nodes = append(combined.Nodes, n)
	combined.Type = resultType
	combined.Start = n
	combined.StartPin = resultOutPin(n)
	combined.Literal = fragment.Literal{}
	return combined
}

func (b *bodyCtx) wireUnaryResult(n graph.Node, e fragment.Expr, resultType types.Type) fragment.Expr {
	if !e.IsLiteral() && e.Start != nil {
		e.Start.Connect(n, e.StartPin, 0, false)
	}
	return fragment.Expr{
		Nodes:    append(append([]graph.Node{}, e.Nodes...), n),
		Type:     resultType,
		Start:    n,
		StartPin: resultOutPin(n),
	}
}

// resultOutPin returns the pin every factory-built operator node places
// its result on: unary nodes use pin 1, binary nodes use pin 2 (see
// internal/nodefactory's binaryOutPin/unaryOutPin convention). Equal's
// result also lives at pin 2, matching that convention.
func resultOutPin(n graph.Node) int {
	switch n.Kind() {
	case nodefactory.NKLogicalNOTOperation, nodefactory.NKBitwiseComplement, nodefactory.NKDataTypeConversion:
		return 1
	default:
		return 2
	}
}

func (b *bodyCtx) emitBinary(bin *ast.Binary) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	switch bin.Op {
	case "&&":
		return b.emitLogical(bin, nodefactory.LogAnd)
	case "||":
		return b.emitLogical(bin, nodefactory.LogOr)
	}

	l, _, err := b.emitExpr(bin.Left)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	r, _, err := b.emitExpr(bin.Right)
	if err != nil {
		return fragment.Expr{}, nil, err
	}

	var n graph.Node
	var nerr error
	resultType := l.Type

	switch bin.Op {
	case "+":
		n, nerr = nodefactory.Add(b.g, l, r)
	case "-":
		n, nerr = nodefactory.Sub(b.g, l, r)
	case "*":
		n, nerr = nodefactory.Mul(b.g, l, r)
	case "/":
		n, nerr = nodefactory.Div(b.g, l, r)
	case "%":
		n, nerr = nodefactory.Mod(b.g, l, r)
	case "<":
		n, nerr = nodefactory.Compare(b.g, l, r, nodefactory.LT)
		resultType = types.TBool()
	case ">":
		n, nerr = nodefactory.Compare(b.g, l, r, nodefactory.GT)
		resultType = types.TBool()
	case "<=":
		n, nerr = nodefactory.Compare(b.g, l, r, nodefactory.LE)
		resultType = types.TBool()
	case ">=":
		n, nerr = nodefactory.Compare(b.g, l, r, nodefactory.GE)
		resultType = types.TBool()
	case "==":
		n, nerr = nodefactory.Equal(b.g, l, r)
		resultType = types.TBool()
	case "!=":
		eq, eerr := nodefactory.Equal(b.g, l, r)
		if eerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, bin.Pos(), "%s", eerr.Error())
		}
		if !l.IsLiteral() && l.Start != nil {
			l.Start.Connect(eq, l.StartPin, 0, false)
		}
		if !r.IsLiteral() && r.Start != nil {
			r.Start.Connect(eq, r.StartPin, 1, false)
		}
		not := nodefactory.NotEqual(b.g, l, r, eq)
		combined := fragment.Combine(l, r)
		combined.Nodes = append(combined.Nodes, eq, not)
		combined.Type = types.TBool()
		combined.Start = not
		combined.StartPin = resultOutPin(not)
		combined.Literal = fragment.Literal{}
		return combined, nil, nil
	case "&":
		n, nerr = nodefactory.Bitwise(b.g, l, r, nodefactory.BitAnd)
		resultType = types.TInt()
	case "|":
		n, nerr = nodefactory.Bitwise(b.g, l, r, nodefactory.BitOr)
		resultType = types.TInt()
	case "^":
		n, nerr = nodefactory.Bitwise(b.g, l, r, nodefactory.BitXor)
		resultType = types.TInt()
	case "<<":
		n, nerr = nodefactory.Bitwise(b.g, l, r, nodefactory.ShiftLeft)
		resultType = types.TInt()
	case ">>":
		return b.emitArithmeticShift(bin, l, r)
	case ">>>":
		n, nerr = nodefactory.Bitwise(b.g, l, r, nodefactory.ShiftRightLogical)
		resultType = types.TInt()
	default:
		return fragment.Expr{}, nil, b.fail(cerrors.SyntaxError, bin.Pos(), "unknown binary operator %q", bin.Op)
	}
	if nerr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, bin.Pos(), "%s", nerr.Error())
	}
	return b.wireBinaryResult(n, l, r, resultType), nil, nil
}

// emitArithmeticShift synthesizes `>>` (sign-preserving shift) from the
// node catalog's logical-only right-shift primitive, per the property:
// x >> n  ==  (x >>> n) | (-(x >>> 31) << (32 - n))
func (b *bodyCtx) emitArithmeticShift(bin *ast.Binary, l, r fragment.Expr) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	if l.Type.Kind != types.Int || r.Type.Kind != types.Int {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, bin.Pos(), "shift requires Int operands, got %s and %s", l.Type, r.Type)
	}
	// n=0 is a no-op, and must be special-cased: the general formula's
	// `32-n` left-shift degenerates to a full-width shift-by-32 here,
	// which is outside what a 32-bit shift node is defined to do. x>>0
	// folds straight to x with no synthesis at all.
	if r.IsLiteral() && r.Literal.Kind == fragment.LiteralInt && r.Literal.Int == 0 {
		return l, nil, nil
	}
	thirtyOne := fragment.Expr{Type: types.TInt(), Literal: fragment.Literal{Kind: fragment.LiteralInt, Int: 31}}
	logical, _ := nodefactory.Bitwise(b.g, l, r, nodefactory.ShiftRightLogical)
	signShift, _ := nodefactory.Bitwise(b.g, l, thirtyOne, nodefactory.ShiftRightLogical)
	zero := fragment.Expr{Type: types.TInt(), Literal: fragment.Literal{Kind: fragment.LiteralInt, Int: 0}}
	signVal := fragment.Expr{Type: types.TInt(), Start: signShift, StartPin: resultOutPin(signShift)}
	negated, _ := nodefactory.Sub(b.g, zero, signVal)
	negatedVal := fragment.Expr{Type: types.TInt(), Start: negated, StartPin: resultOutPin(negated)}

	// 32-n is constant whenever the shift amount is a literal, so it
	// folds into an inline value instead of its own Sub node (the node
	// factory already folds literal operands into a node's own pins;
	// this folds the whole sub-expression away when both operands of
	// the subtraction are known at compile time).
	var widthVal fragment.Expr
	var widthMinusN graph.Node
	if r.IsLiteral() && r.Literal.Kind == fragment.LiteralInt {
		widthVal = fragment.Expr{Type: types.TInt(), Literal: fragment.Literal{Kind: fragment.LiteralInt, Int: 32 - r.Literal.Int}}
	} else {
		thirtyTwo := fragment.Expr{Type: types.TInt(), Literal: fragment.Literal{Kind: fragment.LiteralInt, Int: 32}}
		widthMinusN, _ = nodefactory.Sub(b.g, thirtyTwo, r)
		widthVal = fragment.Expr{Type: types.TInt(), Start: widthMinusN, StartPin: resultOutPin(widthMinusN)}
	}
	shiftedSign, _ := nodefactory.Bitwise(b.g, negatedVal, widthVal, nodefactory.ShiftLeft)

	logicalVal := fragment.Expr{Type: types.TInt(), Start: logical, StartPin: resultOutPin(logical)}
	shiftedSignVal := fragment.Expr{Type: types.TInt(), Start: shiftedSign, StartPin: resultOutPin(shiftedSign)}
	or, nerr := nodefactory.Bitwise(b.g, logicalVal, shiftedSignVal, nodefactory.BitOr)
	if nerr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, bin.Pos(), "%s", nerr.Error())
	}

	wireOperand(l, logical, 0)
	wireOperand(r, logical, 1)
	wireOperand(l, signShift, 0)
	if widthMinusN != nil {
		wireOperand(r, widthMinusN, 1)
	}
	wireOperand(signVal, negated, 1)
	wireOperand(negatedVal, shiftedSign, 0)
	wireOperand(widthVal, shiftedSign, 1)
	wireOperand(logicalVal, or, 0)
	wireOperand(shiftedSignVal, or, 1)

	combined := fragment.Combine(l, r)
	nodes := []graph.Node{logical, signShift, negated}
	if widthMinusN != nil {
		nodes = append(nodes, widthMinusN)
	}
	combined.Nodes = append(combined.Nodes, append(nodes, shiftedSign, or)...)
	combined.Type = types.TInt()
	combined.Start = or
	combined.StartPin = resultOutPin(or)
	combined.Literal = fragment.Literal{}
	return combined, nil, nil
}

func wireOperand(e fragment.Expr, target graph.Node, pin int) {
	if !e.IsLiteral() && e.Start != nil {
		e.Start.Connect(target, e.StartPin, pin, false)
	}
}

func (b *bodyCtx) emitLogical(bin *ast.Binary, op nodefactory.LogicalOp) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	l, _, err := b.emitExpr(bin.Left)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	r, _, err := b.emitExpr(bin.Right)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	n, nerr := nodefactory.Logical(b.g, l, r, op)
	if nerr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, bin.Pos(), "%s", nerr.Error())
	}
	return b.wireBinaryResult(n, l, r, types.TBool()), nil, nil
}

func (b *bodyCtx) emitCast(c *ast.Cast) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	target, err := resolveTypeExpr(c.Type)
	if err != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.UnknownType, c.Pos(), "%s", err.Error())
	}
	src, _, cerr := b.emitExpr(c.Expr)
	if cerr != nil {
		return fragment.Expr{}, nil, cerr
	}
	n, nerr := nodefactory.Cast(b.g, src, target)
	if nerr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, c.Pos(), "%s", nerr.Error())
	}
	return b.wireUnaryResult(n, src, target), nil, nil
}

func (b *bodyCtx) emitChain(c *ast.Chain) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	var result fragment.Expr
	for _, e := range c.Exprs {
		v, _, err := b.emitExpr(e)
		if err != nil {
			return fragment.Expr{}, nil, err
		}
		if result.Nodes == nil && result.Start == nil {
			result = v
		} else {
			result = fragment.Combine(result, v)
		}
	}
	return result, nil, nil
}

func (b *bodyCtx) emitConstruct(typeExpr *ast.TypeExpr, inits []ast.Expression, pos token.Position) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	target, err := resolveTypeExpr(typeExpr)
	if err != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.UnknownType, pos, "%s", err.Error())
	}
	return b.emitInitializerList(target, inits, pos)
}

// emitInitializerList lowers a `{ ... }` literal against a known target
// type: Vec (<=3 Float items, always a Create3DVector node; literal
// components fill its pins, and an all-literal Vec does not fold to an
// inline constant) or List<E> (one AssemblyList input per item).
func (b *bodyCtx) emitInitializerList(target types.Type, inits []ast.Expression, pos token.Position) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	items := make([]fragment.Expr, len(inits))
	for i, it := range inits {
		v, _, err := b.emitExpr(it)
		if err != nil {
			return fragment.Expr{}, nil, err
		}
		items[i] = v
	}

	switch target.Kind {
	case types.Vec:
		if len(items) > 3 {
			return fragment.Expr{}, nil, b.fail(cerrors.InvalidLValue, pos, "vector initializer has more than 3 components")
		}
		// Vec has no inline-literal representation (fragment.Literal only
		// folds scalars), so even an all-constant vector still needs a
		// Create3DVector node; its per-component values fold onto the
		// node's pins via fillLiteral instead.
		n, nerr := nodefactory.Create3DVector(b.g, items)
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "%s", nerr.Error())
		}
		for i, it := range items {
			wireOperand(it, n, i)
		}
		combined := fragment.Expr{Type: types.TVec(), Start: n, StartPin: 3}
		for _, it := range items {
			combined.Nodes = append(combined.Nodes, it.Nodes...)
		}
		combined.Nodes = append(combined.Nodes, n)
		return combined, nil, nil
	case types.List:
		n, nerr := nodefactory.AssembleList(b.g, *target.Elem, items)
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "%s", nerr.Error())
		}
		for i, it := range items {
			if !it.Type.Equals(*target.Elem) {
				return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "list element %d: expected %s, got %s", i, target.Elem, it.Type)
			}
			wireOperand(it, n, i)
		}
		combined := fragment.Expr{Type: target, Start: n, StartPin: len(items)}
		for _, it := range items {
			combined.Nodes = append(combined.Nodes, it.Nodes...)
		}
		combined.Nodes = append(combined.Nodes, n)
		return combined, nil, nil
	default:
		return fragment.Expr{}, nil, b.fail(cerrors.InvalidLValue, pos, "initializer list not supported for type %s", target)
	}
}

// fillLiteral folds a fragment's literal value onto a directly-constructed
// node's pin, mirroring internal/nodefactory's own unexported helper for
// the nodes this package builds by hand (calls, variable setters) rather
// than through a nodefactory constructor.
func fillLiteral(n graph.Node, pin int, lit fragment.Literal) {
	switch lit.Kind {
	case fragment.LiteralInt:
		n.Fill(pin, lit.Int)
	case fragment.LiteralFloat:
		n.Fill(pin, lit.Float)
	case fragment.LiteralString:
		n.Fill(pin, lit.String)
	case fragment.LiteralBool:
		n.Fill(pin, lit.Bool)
	}
}

// wireArgInto wires e into n's pin: folds a literal inline, otherwise
// connects e's producing node. Unlike wireOperand (which leaves a literal
// operand for a nodefactory constructor to fold internally), this is for
// pins on nodes this package constructs directly.
func wireArgInto(n graph.Node, pin int, e fragment.Expr) {
	if e.IsLiteral() {
		fillLiteral(n, pin, e.Literal)
		return
	}
	if e.Start != nil {
		e.Start.Connect(n, e.StartPin, pin, false)
	}
}

// appendFlow wires prefix's own side effects (if any) immediately ahead of
// node at pin and reports where the combined fragment's flow now begins:
// prefix's entry if it had one, otherwise node itself. Composing two
// fragments that both have side effects is the emitter's job, not
// fragment.Combine's (see internal/fragment's doc comment).
func appendFlow(prefix fragment.Expr, node graph.Node, pin int) (graph.Node, int) {
	if len(prefix.Branches) > 0 {
		for _, br := range prefix.Branches {
			br.Node.Connect(node, br.Pin, pin, true)
		}
		return prefix.FlowStart, prefix.FlowStartPin
	}
	if prefix.FlowEnd != nil {
		prefix.FlowEnd.Connect(node, prefix.FlowEndPin, pin, true)
		return prefix.FlowStart, prefix.FlowStartPin
	}
	if prefix.FlowStart != nil {
		return prefix.FlowStart, prefix.FlowStartPin
	}
	return node, pin
}

// chainArgFlows sequences the side effects of zero or more already-emitted
// argument fragments (e.g. impure calls nested as call arguments) into a
// single chain, without connecting into whatever comes next — the caller
// decides whether that's an impure node of its own (connect tail into it)
// or nothing (a pure node simply reads the value once the chain settles,
// with the tail propagating as the enclosing fragment's own FlowEnd).
// Reports whether any argument carried flow at all.
func chainArgFlows(args []fragment.Expr) (start, tail graph.Node, startPin, tailPin int, have bool) {
	for _, a := range args {
		if a.FlowStart == nil {
			continue
		}
		if !have {
			start, startPin = a.FlowStart, a.FlowStartPin
		} else {
			tail.Connect(a.FlowStart, tailPin, a.FlowStartPin, true)
		}
		have = true
		switch {
		case len(a.Branches) > 0:
			tail, tailPin = a.Branches[len(a.Branches)-1].Node, a.Branches[len(a.Branches)-1].Pin
		case a.FlowEnd != nil:
			tail, tailPin = a.FlowEnd, a.FlowEndPin
		}
	}
	return start, tail, startPin, tailPin, have
}

// Custom-variable pin convention: GetCustomVariable/SetCustomVariable only
// declare their own value pin via SetPin (pin 0 out / pin 2 in); the
// entity target and the variable's name key are left for the caller to
// wire, so this package reserves its own pin indices for them rather than
// reusing 0 (which Get's factory already claims for its output).
const (
	customVarGetEntityPin = 1
	customVarGetNamePin   = 2
	customVarSetEntityPin = 0
	customVarSetNamePin   = 1
	customVarSetValuePin  = 2
)

func (b *bodyCtx) emitMember(m *ast.Member) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	target, _, err := b.emitExpr(m.Target)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	if m.Index != nil {
		return b.emitListIndex(m, target)
	}
	switch target.Type.Kind {
	case types.Entity:
		if m.ExplicitType == nil {
			return fragment.Expr{}, nil, b.fail(cerrors.UnknownType, m.Pos(), "custom variable access requires an explicit :Type suffix")
		}
		varType, terr := resolveTypeExpr(m.ExplicitType)
		if terr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.UnknownType, m.Pos(), "%s", terr.Error())
		}
		n, nerr := nodefactory.GetCustomVariable(b.g, varType)
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, m.Pos(), "%s", nerr.Error())
		}
		n.SetPin(customVarGetEntityPin, graph.EntityType, false)
		wireArgInto(n, customVarGetEntityPin, target)
		n.SetPin(customVarGetNamePin, graph.String, false)
		n.Fill(customVarGetNamePin, m.Name)
		result := fragment.Expr{
			Nodes:    append(append([]graph.Node{}, target.Nodes...), n),
			Type:     varType,
			Start:    n,
			StartPin: 0,
		}
		lv := &lvalue{kind: lvCustom, getter: n, getterPin: 0, entity: target, name: m.Name, typ: varType}
		return result, lv, nil
	case types.Vec:
		var comp nodefactory.VecComponent
		switch m.Name {
		case "x":
			comp = nodefactory.VecX
		case "y":
			comp = nodefactory.VecY
		case "z":
			comp = nodefactory.VecZ
		default:
			return fragment.Expr{}, nil, b.fail(cerrors.UnknownType, m.Pos(), "vector has no member %q", m.Name)
		}
		n, pin := nodefactory.Split3DVector(b.g, comp)
		wireOperand(target, n, 0)
		result := fragment.Expr{
			Nodes:    append(append([]graph.Node{}, target.Nodes...), n),
			Type:     types.TFloat(),
			Start:    n,
			StartPin: pin,
		}
		return result, nil, nil
	default:
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, m.Pos(), "member access not supported on %s", target.Type)
	}
}

// emitListIndex lowers a `list[index]` read. List writes go through the
// InsertValue/SetValue/RemoveValue built-ins, not plain assignment, so
// this never returns an lvalue.
func (b *bodyCtx) emitListIndex(m *ast.Member, target fragment.Expr) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	if target.Type.Kind != types.List {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, m.Pos(), "index access requires a list, got %s", target.Type)
	}
	idx, _, err := b.emitExpr(m.Index)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	if idx.Type.Kind != types.Int {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, m.Pos(), "list index must be Int, got %s", idx.Type)
	}
	n, nerr := nodefactory.GetFromList(b.g, *target.Type.Elem)
	if nerr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, m.Pos(), "%s", nerr.Error())
	}
	wireOperand(target, n, 0)
	wireOperand(idx, n, 1)
	nodes := append(append([]graph.Node{}, target.Nodes...), idx.Nodes...)
	nodes = append(nodes, n)
	return fragment.Expr{Nodes: nodes, Type: *target.Type.Elem, Start: n, StartPin: 2}, nil, nil
}

// NKCallGlobalFunction is the compiler's own node kind for invoking a
// global function's composite graph from a call site: the retrieved node
// catalog has no built-in "call a subgraph" primitive (global functions
// are a language feature, not a runtime event/built-in), so this package
// defines one. Its target composite is identified by name on a dedicated
// string pin rather than by an in-graph reference, since graph.Node has
// no notion of pointing at another Graph.
const NKCallGlobalFunction graph.NodeKind = "CallGlobalFunction"

const callTargetNamePin = 98

func (b *bodyCtx) emitCall(call *ast.Call) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	id, ok := call.Callee.(*ast.Identifier)
	if !ok {
		return fragment.Expr{}, nil, b.fail(cerrors.SyntaxError, call.Pos(), "call target must be a function name")
	}

	args := make([]fragment.Expr, len(call.Args))
	argTypes := make([]types.Type, len(call.Args))
	var nodes []graph.Node
	for i, a := range call.Args {
		v, _, err := b.emitExpr(a)
		if err != nil {
			return fragment.Expr{}, nil, err
		}
		args[i] = v
		argTypes[i] = v.Type
		nodes = append(nodes, v.Nodes...)
	}

	if lf, ok := b.locals[id.Name]; ok {
		return b.emitLocalCall(lf, args, nodes, call.Pos())
	}
	if gf, ok := b.globals[id.Name]; ok {
		return b.emitGlobalCall(gf, args, nodes, call.Pos())
	}

	proto, rerr := registry.ResolveFunction(id.Name, argTypes)
	if rerr != nil {
		switch rerr.(type) {
		case *registry.UnknownFunctionError:
			return fragment.Expr{}, nil, b.fail(cerrors.UnknownFunction, call.Pos(), "%s", rerr.Error())
		default:
			return fragment.Expr{}, nil, b.fail(cerrors.NoMatchingFunctionOverload, call.Pos(), "%s", rerr.Error())
		}
	}

	n := b.g.AddNode(proto.Node)
	for i, a := range args {
		n.SetPin(i, toDataType(proto.Params[i]), false)
		wireArgInto(n, i, a)
	}
	result := fragment.Expr{Nodes: append(append([]graph.Node{}, nodes...), n), Type: types.TNull()}
	if proto.Return != nil {
		outPin := len(args)
		n.SetPin(outPin, toDataType(*proto.Return), true)
		result.Type = *proto.Return
		result.Start = n
		result.StartPin = outPin
	}
	start, tail, startPin, tailPin, argsHaveFlow := chainArgFlows(args)
	switch {
	case !proto.Pure && argsHaveFlow:
		tail.Connect(n, tailPin, flowInPin, true)
		result.FlowStart, result.FlowStartPin = start, startPin
		result.FlowEnd, result.FlowEndPin = n, flowOutPin
	case !proto.Pure:
		result.FlowStart, result.FlowStartPin = n, flowInPin
		result.FlowEnd, result.FlowEndPin = n, flowOutPin
	case argsHaveFlow:
		// A pure call has no flow pins of its own, but an impure argument
		// still needs its side effects sequenced into the statement; the
		// chain's own tail becomes this fragment's flow exit.
		result.FlowStart, result.FlowStartPin = start, startPin
		result.FlowEnd, result.FlowEndPin = tail, tailPin
	}
	return result, nil, nil
}

// emitLocalCall lowers a call to a same-module local function: per-param
// Set Local nodes feeding the argument values, chained in sequence and
// finally jumping into the function's shared dummy entrypoint. This is a
// one-way jump, not a call/return pair — the function's dummy entrypoint
// is reachable from every call site, but nothing in the graph resumes the
// caller afterward, so this expression's flow tail is a dead end.
func (b *bodyCtx) emitLocalCall(lf *localFunc, args []fragment.Expr, argNodes []graph.Node, pos token.Position) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	if len(args) != len(lf.paramTypes) {
		return fragment.Expr{}, nil, b.fail(cerrors.NoMatchingFunctionOverload, pos, "function %s expects %d arguments, got %d", lf.name, len(lf.paramTypes), len(args))
	}
	nodes := append([]graph.Node{}, argNodes...)
	var chainHead graph.Node
	var chainHeadPin int
	var prev graph.Node
	var prevPin int
	for i, a := range args {
		if !a.Type.Equals(lf.paramTypes[i]) {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "argument %d to %s: expected %s, got %s", i, lf.name, lf.paramTypes[i], a.Type)
		}
		set, serr := nodefactory.SetLocalVariable(b.g, lf.paramTypes[i])
		if serr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "%s", serr.Error())
		}
		wireArgInto(set, 1, a)
		nodes = append(nodes, set)
		entry, entryPin := appendFlow(a, set, flowInPin)
		if prev == nil {
			chainHead, chainHeadPin = entry, entryPin
		} else {
			prev.Connect(entry, prevPin, entryPin, true)
		}
		prev, prevPin = set, flowOutPin
	}
	if prev != nil {
		prev.Connect(lf.entry, prevPin, flowInPin, true)
	}

	result := fragment.Expr{Nodes: nodes, Type: types.TNull()}
	if chainHead != nil {
		result.FlowStart, result.FlowStartPin = chainHead, chainHeadPin
	} else {
		result.FlowStart, result.FlowStartPin = lf.entry, flowInPin
	}
	if lf.retType != nil {
		result.Type = *lf.retType
		result.Start = lf.retVar
		result.StartPin = 1
	}
	return result, nil, nil
}

// emitGlobalCall lowers a call to a global function: a single
// CallGlobalFunction node wiring each argument into a positional input
// pin and, if the function returns a value, reading it off the output
// pin — a proper call/return, unlike the local-function jump above.
func (b *bodyCtx) emitGlobalCall(gf *GlobalFunc, args []fragment.Expr, argNodes []graph.Node, pos token.Position) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	if len(args) != len(gf.Params) {
		return fragment.Expr{}, nil, b.fail(cerrors.NoMatchingFunctionOverload, pos, "function %s expects %d arguments, got %d", gf.Name, len(gf.Params), len(args))
	}
	n := b.g.AddNode(NKCallGlobalFunction)
	n.SetValue(callTargetNamePin, gf.Graph.Name(), graph.String)
	for i, a := range args {
		if !a.Type.Equals(gf.Params[i]) {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "argument %d to %s: expected %s, got %s", i, gf.Name, gf.Params[i], a.Type)
		}
		n.SetPin(i, toDataType(gf.Params[i]), false)
		wireArgInto(n, i, a)
	}
	start, tail, startPin, tailPin, argsHaveFlow := chainArgFlows(args)
	if argsHaveFlow {
		tail.Connect(n, tailPin, flowInPin, true)
	} else {
		start, startPin = n, flowInPin
	}
	result := fragment.Expr{
		Nodes:        append(append([]graph.Node{}, argNodes...), n),
		Type:         types.TNull(),
		FlowStart:    start,
		FlowStartPin: startPin,
		FlowEnd:      n,
		FlowEndPin:   flowOutPin,
	}
	if gf.ReturnType != nil {
		outPin := len(args)
		n.SetPin(outPin, toDataType(*gf.ReturnType), true)
		result.Type = *gf.ReturnType
		result.Start = n
		result.StartPin = outPin
	}
	return result, nil, nil
}

func (b *bodyCtx) emitAssignment(a *ast.Assignment) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	_, lv, err := b.emitExpr(a.Left)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	if lv == nil {
		return fragment.Expr{}, nil, b.fail(cerrors.InvalidLValue, a.Pos(), "cannot assign to rvalue")
	}

	var rhs fragment.Expr
	if il, ok := a.Right.(*ast.InitializerList); ok {
		v, _, ierr := b.emitInitializerList(lv.typ, il.Items, il.Pos())
		if ierr != nil {
			return fragment.Expr{}, nil, ierr
		}
		rhs = v
	} else {
		v, _, rerr := b.emitExpr(a.Right)
		if rerr != nil {
			return fragment.Expr{}, nil, rerr
		}
		rhs = v
	}

	if a.Op != "=" {
		cur := fragment.Expr{Type: lv.typ, Start: lv.getter, StartPin: lv.getterPin}
		var n graph.Node
		var nerr error
		switch a.Op {
		case "+=":
			n, nerr = nodefactory.Add(b.g, cur, rhs)
		case "-=":
			n, nerr = nodefactory.Sub(b.g, cur, rhs)
		case "*=":
			n, nerr = nodefactory.Mul(b.g, cur, rhs)
		case "/=":
			n, nerr = nodefactory.Div(b.g, cur, rhs)
		default:
			return fragment.Expr{}, nil, b.fail(cerrors.SyntaxError, a.Pos(), "unknown compound assignment operator %q", a.Op)
		}
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, a.Pos(), "%s", nerr.Error())
		}
		rhs = b.wireBinaryResult(n, cur, rhs, lv.typ)
	}

	return b.emitStore(lv, rhs, a.Pos())
}

// emitStore commits rhs into lv: a Set Local/Set Custom Variable node,
// sequenced in flow, with the assignment expression itself evaluating to
// the stored value (matching C-style assignment-as-expression).
func (b *bodyCtx) emitStore(lv *lvalue, rhs fragment.Expr, pos token.Position) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	if rhs.Type.Kind != types.Null && !rhs.Type.Equals(lv.typ) {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "cannot assign %s to %s", rhs.Type, lv.typ)
	}

	switch lv.kind {
	case lvLocal:
		n, nerr := nodefactory.SetLocalVariable(b.g, lv.typ)
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "%s", nerr.Error())
		}
		wireArgInto(n, 1, rhs)
		flowStart, flowStartPin := appendFlow(rhs, n, flowInPin)
		result := fragment.Expr{
			Nodes:        append(append([]graph.Node{}, rhs.Nodes...), n),
			Type:         lv.typ,
			FlowStart:    flowStart,
			FlowStartPin: flowStartPin,
			FlowEnd:      n,
			FlowEndPin:   flowOutPin,
		}
		if rhs.IsLiteral() {
			result.Start, result.StartPin = lv.getter, lv.getterPin
			result.Literal = rhs.Literal
		} else if rhs.Start != nil {
			result.Start, result.StartPin = rhs.Start, rhs.StartPin
		} else {
			result.Start, result.StartPin = lv.getter, lv.getterPin
		}
		return result, &lvalue{kind: lvLocal, getter: lv.getter, getterPin: lv.getterPin, typ: lv.typ}, nil
	case lvCustom:
		n, nerr := nodefactory.SetCustomVariable(b.g, lv.typ)
		if nerr != nil {
			return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, pos, "%s", nerr.Error())
		}
		n.SetPin(customVarSetEntityPin, graph.EntityType, false)
		wireArgInto(n, customVarSetEntityPin, lv.entity)
		n.SetPin(customVarSetNamePin, graph.String, false)
		n.Fill(customVarSetNamePin, lv.name)
		wireArgInto(n, customVarSetValuePin, rhs)
		nodes := append(append([]graph.Node{}, lv.entity.Nodes...), rhs.Nodes...)
		nodes = append(nodes, n)
		start, tail, startPin, tailPin, haveFlow := chainArgFlows([]fragment.Expr{lv.entity, rhs})
		if haveFlow {
			tail.Connect(n, tailPin, flowInPin, true)
		} else {
			start, startPin = n, flowInPin
		}
		result := fragment.Expr{
			Nodes:        nodes,
			Type:         lv.typ,
			FlowStart:    start,
			FlowStartPin: startPin,
			FlowEnd:      n,
			FlowEndPin:   flowOutPin,
		}
		if rhs.IsLiteral() {
			result.Literal = rhs.Literal
		} else {
			result.Start, result.StartPin = rhs.Start, rhs.StartPin
		}
		return result, &lvalue{kind: lvCustom, getter: lv.getter, getterPin: lv.getterPin, entity: lv.entity, name: lv.name, typ: lv.typ}, nil
	default:
		return fragment.Expr{}, nil, b.fail(cerrors.InvalidLValue, pos, "cannot assign to rvalue")
	}
}

// emitIncrement lowers ++/--: pre-form stores and returns the new value;
// post-form first saves the current value into a fresh temp local, then
// stores the new value, and returns the saved temp.
func (b *bodyCtx) emitIncrement(inc *ast.Increment) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	cur, lv, err := b.emitExpr(inc.Expr)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	if lv == nil {
		return fragment.Expr{}, nil, b.fail(cerrors.InvalidLValue, inc.Pos(), "cannot increment an rvalue")
	}
	if cur.Type.Kind != types.Int && cur.Type.Kind != types.Float {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, inc.Pos(), "++/-- requires Int or Float, got %s", cur.Type)
	}

	one := fragment.Expr{Type: lv.typ}
	if lv.typ.Kind == types.Int {
		one.Literal = fragment.Literal{Kind: fragment.LiteralInt, Int: 1}
	} else {
		one.Literal = fragment.Literal{Kind: fragment.LiteralFloat, Float: 1}
	}
	curVal := fragment.Expr{Type: lv.typ, Start: lv.getter, StartPin: lv.getterPin}

	var n graph.Node
	var nerr error
	if inc.Dec {
		n, nerr = nodefactory.Sub(b.g, curVal, one)
	} else {
		n, nerr = nodefactory.Add(b.g, curVal, one)
	}
	if nerr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, inc.Pos(), "%s", nerr.Error())
	}
	updated := b.wireBinaryResult(n, curVal, one, lv.typ)

	if inc.Pre {
		return b.emitStore(lv, updated, inc.Pos())
	}

	tmp, terr := nodefactory.GetLocalVariable(b.g, lv.typ)
	if terr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, inc.Pos(), "%s", terr.Error())
	}
	save, serr := nodefactory.SetLocalVariable(b.g, lv.typ)
	if serr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, inc.Pos(), "%s", serr.Error())
	}
	wireArgInto(save, 1, curVal)

	stored, _, serr2 := b.emitStore(lv, updated, inc.Pos())
	if serr2 != nil {
		return fragment.Expr{}, nil, serr2
	}
	save.Connect(stored.FlowStart, flowOutPin, flowInPin, true)

	result := fragment.Expr{
		Nodes:        append(append([]graph.Node{}, stored.Nodes...), tmp, save),
		Type:         lv.typ,
		Start:        tmp,
		StartPin:     1,
		FlowStart:    save,
		FlowStartPin: flowInPin,
		FlowEnd:      stored.FlowEnd,
		FlowEndPin:   stored.FlowEndPin,
	}
	return result, nil, nil
}

// emitTernary lowers `cond ? then : else`: a temp local read through
// Get Local, a DoubleBranch on the condition, and each arm assigning the
// temp from its own expression. Both arms' Set nodes are left as
// divergent flow tails (fragment.Branches) for the enclosing statement
// to reconverge once it knows what follows.
func (b *bodyCtx) emitTernary(t *ast.Ternary) (fragment.Expr, *lvalue, *cerrors.CompilerError) {
	cond, _, err := b.emitExpr(t.Cond)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	if cond.Type.Kind != types.Bool {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, t.Pos(), "ternary condition must be Bool, got %s", cond.Type)
	}
	thenVal, _, err := b.emitExpr(t.Then)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	elseVal, _, err := b.emitExpr(t.Else)
	if err != nil {
		return fragment.Expr{}, nil, err
	}
	if !thenVal.Type.Equals(elseVal.Type) {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, t.Pos(), "ternary arms disagree in type: %s vs %s", thenVal.Type, elseVal.Type)
	}
	resultType := thenVal.Type

	branch := nodefactory.DoubleBranch(b.g)
	wireOperand(cond, branch, 0)

	tmp, terr := nodefactory.GetLocalVariable(b.g, resultType)
	if terr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, t.Pos(), "%s", terr.Error())
	}

	setThen, serr := nodefactory.SetLocalVariable(b.g, resultType)
	if serr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, t.Pos(), "%s", serr.Error())
	}
	wireArgInto(setThen, 1, thenVal)
	branch.Connect(setThen, flowTrueOutPin, flowInPin, true)

	setElse, eerr := nodefactory.SetLocalVariable(b.g, resultType)
	if eerr != nil {
		return fragment.Expr{}, nil, b.fail(cerrors.TypeMismatch, t.Pos(), "%s", eerr.Error())
	}
	wireArgInto(setElse, 1, elseVal)
	branch.Connect(setElse, flowFalseOutPin, flowInPin, true)

	nodes := append(append([]graph.Node{}, cond.Nodes...), branch)
	nodes = append(nodes, thenVal.Nodes...)
	nodes = append(nodes, setThen)
	nodes = append(nodes, elseVal.Nodes...)
	nodes = append(nodes, setElse, tmp)

	return fragment.Expr{
		Nodes:        nodes,
		Type:         resultType,
		Start:        tmp,
		StartPin:     1,
		FlowStart:    branch,
		FlowStartPin: flowInPin,
		Branches:     []fragment.Branch{{Node: setThen, Pin: flowOutPin}, {Node: setElse, Pin: flowOutPin}},
	}, nil, nil
}
