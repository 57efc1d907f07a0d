package emitter

import (
	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/fragment"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/nodefactory"
	"github.com/hackermdch/giscript/internal/scope"
	"github.com/hackermdch/giscript/internal/types"
)

// emitBlock compiles stmts in a fresh scope frame, threading the control-
// flow tails still awaiting a successor (pending) through each statement
// in turn. The returned slice is the block's own open tails, handed back
// to the caller to connect into whatever follows the block.
func (b *bodyCtx) emitBlock(block *ast.Block, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	b.scope.Enter()
	defer b.scope.Exit()

	for _, s := range block.Stmts {
		var cerr *cerrors.CompilerError
		pending, cerr = b.emitStmt(s, pending)
		if cerr != nil {
			return nil, cerr
		}
	}
	return pending, nil
}

func (b *bodyCtx) emitStmt(s ast.Statement, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	switch st := s.(type) {
	case *ast.Nop:
		return pending, nil
	case *ast.Block:
		return b.emitBlock(st, pending)
	case *ast.VarDef:
		return b.emitVarDef(st, pending)
	case *ast.ExprStatement:
		return b.emitExprStatement(st, pending)
	case *ast.If:
		return b.emitIf(st, pending)
	case *ast.Switch:
		return b.emitSwitch(st, pending)
	case *ast.While:
		return b.emitWhile(st, pending)
	case *ast.For:
		return b.emitFor(st, pending)
	case *ast.ForEach:
		return b.emitForEach(st, pending)
	case *ast.Return:
		return b.emitReturn(st, pending)
	case *ast.Break:
		return b.emitBreak(st, pending)
	default:
		return nil, b.fail(cerrors.SyntaxError, s.Pos(), "unsupported statement")
	}
}

func (b *bodyCtx) emitExprStatement(es *ast.ExprStatement, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	v, _, err := b.emitExpr(es.Expr)
	if err != nil {
		return nil, err
	}
	return spliceExpr(pending, v), nil
}

// spliceExpr wires a value-producing fragment's own side effects into the
// block's pending control-flow tails and reports the new tails: the
// fragment's divergent branches if it has any, its single flow exit
// otherwise, or the incoming pending unchanged if the fragment carried no
// side effects at all (a bare identifier, a pure expression statement).
func spliceExpr(pending []fragment.Branch, e fragment.Expr) []fragment.Branch {
	if e.FlowStart == nil {
		return pending
	}
	connectPending(pending, e.FlowStart, e.FlowStartPin)
	if len(e.Branches) > 0 {
		return e.Branches
	}
	if e.FlowEnd != nil {
		return []fragment.Branch{{Node: e.FlowEnd, Pin: e.FlowEndPin}}
	}
	return nil
}

// emitVarDef declares one or more locals sharing a type. Per variable, it
// creates exactly one canonical GetLocalVariable node that every later
// read of that name reuses; a literal initializer folds directly onto
// the getter's own inline slot rather than emitting a Set node at all.
func (b *bodyCtx) emitVarDef(v *ast.VarDef, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	isInferred := v.Type.Name == "var"
	var declType types.Type
	if !isInferred {
		t, terr := resolveTypeExpr(v.Type)
		if terr != nil {
			return nil, b.fail(cerrors.UnknownType, v.Pos(), "%s", terr.Error())
		}
		declType = t
	}

	for _, vr := range v.Vars {
		t := declType
		var rhs *fragment.Expr

		switch {
		case vr.Init == nil && isInferred:
			return nil, b.fail(cerrors.TypeMismatch, v.Pos(), "inferred declaration requires an initializer: %s", vr.Name)
		case vr.Init == nil:
			// no initializer; getter keeps its factory default.
		default:
			if il, ok := vr.Init.(*ast.InitializerList); ok {
				if isInferred {
					return nil, b.fail(cerrors.TypeMismatch, v.Pos(), "cannot infer type of an initializer list: %s", vr.Name)
				}
				val, _, ierr := b.emitInitializerList(t, il.Items, il.Pos())
				if ierr != nil {
					return nil, ierr
				}
				rhs = &val
			} else {
				val, _, ierr := b.emitExpr(vr.Init)
				if ierr != nil {
					return nil, ierr
				}
				if isInferred {
					t = val.Type
				} else if !val.Type.Equals(t) {
					return nil, b.fail(cerrors.TypeMismatch, v.Pos(), "cannot initialize %s with %s", t, val.Type)
				}
				rhs = &val
			}
		}

		get, gerr := nodefactory.GetLocalVariable(b.g, t)
		if gerr != nil {
			return nil, b.fail(cerrors.TypeMismatch, v.Pos(), "%s", gerr.Error())
		}

		if rhs != nil {
			if rhs.IsLiteral() {
				fillLiteral(get, 0, rhs.Literal)
			} else {
				pending = spliceExpr(pending, *rhs)
				set, serr := nodefactory.SetLocalVariable(b.g, t)
				if serr != nil {
					return nil, b.fail(cerrors.TypeMismatch, v.Pos(), "%s", serr.Error())
				}
				wireArgInto(set, 1, *rhs)
				connectPending(pending, set, flowInPin)
				pending = []fragment.Branch{{Node: set, Pin: flowOutPin}}
			}
		}

		if !b.scope.Add(vr.Name, &scope.LocalVar{Type: t, Content: localSlot{Node: get, Pin: 1}}) {
			return nil, b.fail(cerrors.Redefinition, v.Pos(), "already declared in this scope: %s", vr.Name)
		}
	}
	return pending, nil
}

// emitIf lowers if/else onto a DoubleBranch: each arm compiles in its own
// scope frame, and the two arms' open tails (or the branch's own false
// exit, when there is no else) become the statement's combined tails.
func (b *bodyCtx) emitIf(i *ast.If, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	cond, _, err := b.emitExpr(i.Cond)
	if err != nil {
		return nil, err
	}
	if cond.Type.Kind != types.Bool {
		return nil, b.fail(cerrors.TypeMismatch, i.Pos(), "if condition must be Bool, got %s", cond.Type)
	}
	pending = spliceExpr(pending, cond)

	branch := nodefactory.DoubleBranch(b.g)
	wireOperand(cond, branch, 0)
	connectPending(pending, branch, flowInPin)

	thenTails, terr := b.emitStmt(i.Then, []fragment.Branch{{Node: branch, Pin: flowTrueOutPin}})
	if terr != nil {
		return nil, terr
	}

	var elseTails []fragment.Branch
	if i.Else != nil {
		var eerr *cerrors.CompilerError
		elseTails, eerr = b.emitStmt(i.Else, []fragment.Branch{{Node: branch, Pin: flowFalseOutPin}})
		if eerr != nil {
			return nil, eerr
		}
	} else {
		elseTails = []fragment.Branch{{Node: branch, Pin: flowFalseOutPin}}
	}

	return append(thenTails, elseTails...), nil
}

// NKMultiBranch is a switch dispatch node: pin 0 takes the discriminant
// (Int or String), output 0 is the default arm, outputs 1..n are the
// case arms in declaration order. There is no multi-way branch primitive
// in the retrieved node catalog (only the two-way DoubleBranch), so this
// package defines its own; the case literals themselves are recorded as
// an inline constant slice on a dedicated "values" pin, per this
// language's switch semantics.
const NKMultiBranch graph.NodeKind = "MultiBranch"

const multiBranchValuesPin = 97

// emitSwitch lowers a switch statement onto a single MultiBranch node.
// Every case body (and the default, if present) compiles in its own
// scope frame against its own output pin; none of them fall through to
// the next case, matching this language's statement-level switch rather
// than C's fallthrough semantics.
func (b *bodyCtx) emitSwitch(sw *ast.Switch, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	disc, _, err := b.emitExpr(sw.Expr)
	if err != nil {
		return nil, err
	}
	if disc.Type.Kind != types.Int && disc.Type.Kind != types.String {
		return nil, b.fail(cerrors.TypeMismatch, sw.Pos(), "switch requires Int or String, got %s", disc.Type)
	}
	pending = spliceExpr(pending, disc)

	n := b.g.AddNode(NKMultiBranch)
	n.SetPin(0, toDataType(disc.Type), false)
	wireOperand(disc, n, 0)
	connectPending(pending, n, flowInPin)

	values := make([]interface{}, len(sw.Cases))
	var tails []fragment.Branch
	for i, c := range sw.Cases {
		lit, ok := literalValue(c.Literal)
		if !ok {
			return nil, b.fail(cerrors.SyntaxError, sw.Pos(), "case label must be a literal constant")
		}
		// Duplicate case labels are accepted here, same as the source
		// compiler: the node just records them in declaration order and
		// leaves first-match-wins dispatch to the runtime.
		values[i] = lit
		caseTails, cerr := b.emitStmtList(c.Body, []fragment.Branch{{Node: n, Pin: i + 1}})
		if cerr != nil {
			return nil, cerr
		}
		tails = append(tails, caseTails...)
	}
	n.SetValue(multiBranchValuesPin, values, toDataType(disc.Type))

	if sw.Default != nil {
		defTails, cerr := b.emitStmtList(sw.Default, []fragment.Branch{{Node: n, Pin: 0}})
		if cerr != nil {
			return nil, cerr
		}
		tails = append(tails, defTails...)
	} else {
		tails = append(tails, fragment.Branch{Node: n, Pin: 0})
	}

	return tails, nil
}

// emitStmtList compiles a bare statement list (a switch arm's body, which
// is not itself a Block) in its own scope frame.
func (b *bodyCtx) emitStmtList(stmts []ast.Statement, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	b.scope.Enter()
	defer b.scope.Exit()
	for _, s := range stmts {
		var cerr *cerrors.CompilerError
		pending, cerr = b.emitStmt(s, pending)
		if cerr != nil {
			return nil, cerr
		}
	}
	return pending, nil
}

// literalValue extracts a case label's constant value, or reports that
// it wasn't a literal at all.
func literalValue(e ast.Expression) (interface{}, bool) {
	switch lit := e.(type) {
	case *ast.IntLiteral:
		return lit.Value, true
	case *ast.StringLiteral:
		return lit.Value, true
	default:
		return nil, false
	}
}

// emitWhile lowers a pre-condition loop onto FiniteLoop, whose condition
// pin is re-evaluated as the loop body itself: the node catalog has no
// unbounded-loop primitive, so FiniteLoop's own iteration cap stands in
// for "until the condition goes false", with the condition's DoubleBranch
// guarding entry/continuation of the body each pass.
func (b *bodyCtx) emitWhile(w *ast.While, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	loop := nodefactory.FiniteLoop(b.g)
	connectPending(pending, loop, flowInPin)

	b.loopBreaks = append(b.loopBreaks, nil)

	cond, _, err := b.emitExpr(w.Cond)
	if err != nil {
		return nil, err
	}
	if cond.Type.Kind != types.Bool {
		return nil, b.fail(cerrors.TypeMismatch, w.Pos(), "while condition must be Bool, got %s", cond.Type)
	}
	guard := nodefactory.DoubleBranch(b.g)
	wireOperand(cond, guard, 0)
	bodyPending := spliceExpr([]fragment.Branch{{Node: loop, Pin: flowTrueOutPin}}, cond)
	connectPending(bodyPending, guard, flowInPin)

	bodyTails, berr := b.emitStmt(w.Body, []fragment.Branch{{Node: guard, Pin: flowTrueOutPin}})
	if berr != nil {
		return nil, berr
	}
	connectPending(bodyTails, loop, flowInPin)

	breaks := b.loopBreaks[len(b.loopBreaks)-1]
	b.loopBreaks = b.loopBreaks[:len(b.loopBreaks)-1]

	tails := append([]fragment.Branch{{Node: loop, Pin: flowFalseOutPin}, {Node: guard, Pin: flowFalseOutPin}}, breaks...)
	return tails, nil
}

// emitFor lowers a classic C-style loop: init runs once ahead of the
// FiniteLoop, the condition (if any) gates each pass with a DoubleBranch,
// and post re-runs at the end of every body iteration before looping.
func (b *bodyCtx) emitFor(f *ast.For, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	b.scope.Enter()
	defer b.scope.Exit()

	if f.Init != nil {
		var ierr *cerrors.CompilerError
		pending, ierr = b.emitStmt(f.Init, pending)
		if ierr != nil {
			return nil, ierr
		}
	}

	loop := nodefactory.FiniteLoop(b.g)
	connectPending(pending, loop, flowInPin)

	b.loopBreaks = append(b.loopBreaks, nil)

	entry := []fragment.Branch{{Node: loop, Pin: flowTrueOutPin}}
	var guard graph.Node
	if f.Cond != nil {
		cond, _, cerr := b.emitExpr(f.Cond)
		if cerr != nil {
			return nil, cerr
		}
		if cond.Type.Kind != types.Bool {
			return nil, b.fail(cerrors.TypeMismatch, f.Pos(), "for condition must be Bool, got %s", cond.Type)
		}
		guard = nodefactory.DoubleBranch(b.g)
		wireOperand(cond, guard, 0)
		entry = spliceExpr(entry, cond)
		connectPending(entry, guard, flowInPin)
		entry = []fragment.Branch{{Node: guard, Pin: flowTrueOutPin}}
	}

	bodyTails, berr := b.emitStmt(f.Body, entry)
	if berr != nil {
		return nil, berr
	}

	if f.Post != nil {
		post, _, perr := b.emitExpr(f.Post)
		if perr != nil {
			return nil, perr
		}
		bodyTails = spliceExpr(bodyTails, post)
	}
	connectPending(bodyTails, loop, flowInPin)

	breaks := b.loopBreaks[len(b.loopBreaks)-1]
	b.loopBreaks = b.loopBreaks[:len(b.loopBreaks)-1]

	tails := []fragment.Branch{{Node: loop, Pin: flowFalseOutPin}}
	if guard != nil {
		tails = append(tails, fragment.Branch{Node: guard, Pin: flowFalseOutPin})
	}
	tails = append(tails, breaks...)
	return tails, nil
}

// emitForEach lowers iteration over a List<elem> onto ListIterationLoop:
// the element is bound to name for the duration of the body and read
// straight from the loop node's iterator output pin (no GetLocalVariable
// and no Set per pass — the loop's own semantics supply a new value each
// iteration).
func (b *bodyCtx) emitForEach(f *ast.ForEach, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	iterable, _, err := b.emitExpr(f.Iterable)
	if err != nil {
		return nil, err
	}
	if iterable.Type.Kind != types.List {
		return nil, b.fail(cerrors.TypeMismatch, f.Pos(), "foreach requires a list, got %s", iterable.Type)
	}
	elem := *iterable.Type.Elem
	if f.ElemType != nil {
		declared, terr := resolveTypeExpr(f.ElemType)
		if terr != nil {
			return nil, b.fail(cerrors.UnknownType, f.Pos(), "%s", terr.Error())
		}
		if !declared.Equals(elem) {
			return nil, b.fail(cerrors.TypeMismatch, f.Pos(), "foreach element type mismatch: declared %s, list holds %s", declared, elem)
		}
	}

	pending = spliceExpr(pending, iterable)
	loop, lerr := nodefactory.ListIterationLoop(b.g, elem)
	if lerr != nil {
		return nil, b.fail(cerrors.TypeMismatch, f.Pos(), "%s", lerr.Error())
	}
	wireOperand(iterable, loop, 0)
	connectPending(pending, loop, flowInPin)

	b.scope.Enter()
	defer b.scope.Exit()
	b.loopBreaks = append(b.loopBreaks, nil)

	// ListIterationLoop exposes its per-pass element on unaryOutPin (1),
	// the same result-pin convention internal/nodefactory's unary
	// operator nodes use.
	if !b.scope.Add(f.Name, &scope.LocalVar{Type: elem, Content: localSlot{Node: loop, Pin: 1}}) {
		return nil, b.fail(cerrors.Redefinition, f.Pos(), "already declared in this scope: %s", f.Name)
	}

	bodyTails, berr := b.emitStmt(f.Body, []fragment.Branch{{Node: loop, Pin: flowTrueOutPin}})
	if berr != nil {
		return nil, berr
	}
	connectPending(bodyTails, loop, flowInPin)

	breaks := b.loopBreaks[len(b.loopBreaks)-1]
	b.loopBreaks = b.loopBreaks[:len(b.loopBreaks)-1]

	tails := append([]fragment.Branch{{Node: loop, Pin: flowFalseOutPin}}, breaks...)
	return tails, nil
}

// emitReturn stores the returned value (if any) into the enclosing
// function's return-variable node. A bare `return;` in a function with a
// declared return type, or `return x;` in a void function, is rejected.
func (b *bodyCtx) emitReturn(r *ast.Return, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	if r.Value == nil {
		if b.retVar != nil {
			return nil, b.fail(cerrors.TypeMismatch, r.Pos(), "missing return value for %s", b.retType)
		}
		return nil, nil
	}
	if b.retVar == nil {
		return nil, b.fail(cerrors.TypeMismatch, r.Pos(), "void function cannot return a value")
	}

	val, _, err := b.emitExpr(r.Value)
	if err != nil {
		return nil, err
	}
	if !val.Type.Equals(*b.retType) {
		return nil, b.fail(cerrors.TypeMismatch, r.Pos(), "cannot return %s, expected %s", val.Type, b.retType)
	}
	pending = spliceExpr(pending, val)

	if val.IsLiteral() {
		fillLiteral(b.retVar, 0, val.Literal)
		return nil, nil
	}

	set, serr := nodefactory.SetLocalVariable(b.g, *b.retType)
	if serr != nil {
		return nil, b.fail(cerrors.TypeMismatch, r.Pos(), "%s", serr.Error())
	}
	wireArgInto(set, 1, val)
	connectPending(pending, set, flowInPin)
	return nil, nil
}

// emitBreak jumps out of the innermost enclosing loop: its tail is
// recorded against that loop rather than connected anywhere yet, since
// the loop's own emit function is still assembling the body.
func (b *bodyCtx) emitBreak(br *ast.Break, pending []fragment.Branch) ([]fragment.Branch, *cerrors.CompilerError) {
	if len(b.loopBreaks) == 0 {
		return nil, b.fail(cerrors.KeywordMisuse, br.Pos(), "break outside a loop")
	}
	n := nodefactory.BreakLoop(b.g)
	connectPending(pending, n, flowInPin)
	top := len(b.loopBreaks) - 1
	b.loopBreaks[top] = append(b.loopBreaks[top], fragment.Branch{Node: n, Pin: flowOutPin})
	return nil, nil
}
