package emitter

import (
	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/fragment"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/nodefactory"
	"github.com/hackermdch/giscript/internal/registry"
	"github.com/hackermdch/giscript/internal/scope"
	"github.com/hackermdch/giscript/internal/token"
	"github.com/hackermdch/giscript/internal/types"
)

// flowInPin/flowOutPin are the emitter's own convention for sequencing
// side-effecting nodes: a fixed pin index reserved for control-flow edges,
// distinct from the small data-pin indices internal/nodefactory declares
// on every node (pins are keyed per-node, so a single shared index never
// collides with an operand or result pin).
const (
	flowInPin       = 90
	flowOutPin      = 91 // single-exit nodes (Set*, Call, function entry)
	flowTrueOutPin  = 91 // DoubleBranch true-arm / FiniteLoop body-arm
	flowFalseOutPin = 92 // DoubleBranch false-arm / FiniteLoop done-arm
)

// localSlot is the shape scope.LocalVar.Content takes throughout this
// package: the node a variable's current value reads from, plus the
// out-pin that value lives on (GetLocalVariable nodes always expose it at
// pin 1, but an event entrypoint's declared parameters each get their own
// pin index on the shared entry node, so the pin can't be assumed fixed).
type localSlot struct {
	Node graph.Node
	Pin  int
}

// bodyCtx carries the state threaded through compiling one event, local
// function, or global function body.
type bodyCtx struct {
	m       *moduleCtx
	g       graph.Graph
	scope   *scope.Stack
	locals  map[string]*localFunc
	globals map[string]*GlobalFunc
	retVar  graph.Node  // nil if void
	retType *types.Type
	loopBreaks [][]fragment.Branch // one slice per enclosing loop, innermost last
}

func (b *bodyCtx) fail(kind cerrors.Kind, pos token.Position, format string, args ...interface{}) *cerrors.CompilerError {
	return b.m.fail(kind, pos, format, args...)
}

// connectPending wires every pending control-flow tail onto target's
// flow-in pin. It is a no-op for an empty list (the first statement of a
// body has no predecessor to connect).
func connectPending(pending []fragment.Branch, target graph.Node, targetPin int) {
	for _, p := range pending {
		p.Node.Connect(target, p.Pin, targetPin, true)
	}
}

// emitEvent resolves decl's built-in event overload, binds its declared
// parameters into scope, and compiles its body.
func (m *moduleCtx) emitEvent(decl *ast.EventDecl) *cerrors.CompilerError {
	declared, err := registryEventParams(decl.Params)
	if err != nil {
		return m.fail(cerrors.UnknownType, decl.Pos(), "%s", err.Error())
	}
	proto, rerr := registry.ResolveEvent(decl.Name, declared)
	if rerr != nil {
		switch rerr.(type) {
		case *registry.UnknownEventError:
			return m.fail(cerrors.UnknownEvent, decl.Pos(), "%s", rerr.Error())
		default:
			return m.fail(cerrors.NoMatchingEventOverload, decl.Pos(), "%s", rerr.Error())
		}
	}

	entry := m.g.AddNode(proto.Node)
	b := &bodyCtx{m: m, g: m.g, scope: scope.New(), locals: m.locals, globals: m.e.Globals}

	for i, p := range decl.Params {
		t, terr := resolveTypeExpr(p.Type)
		if terr != nil {
			return m.fail(cerrors.UnknownType, p.Tok.Pos, "%s", terr.Error())
		}
		entry.SetPin(i, toDataType(t), true)
		if !b.scope.Add(p.Name, &scope.LocalVar{Type: t, Content: localSlot{Node: entry, Pin: i}}) {
			return m.fail(cerrors.Redefinition, p.Tok.Pos, "parameter already declared: %s", p.Name)
		}
	}

	pending := []fragment.Branch{{Node: entry, Pin: flowOutPin}}
	_, cerr := b.emitBlock(decl.Body, pending)
	return cerr
}

// emitLocalBody compiles a local function's body, binding its parameters
// to the GetLocalVariable nodes declareLocal already created.
func (m *moduleCtx) emitLocalBody(lf *localFunc, decl *ast.FunctionDecl) *cerrors.CompilerError {
	b := &bodyCtx{m: m, g: m.g, scope: scope.New(), locals: m.locals, globals: m.e.Globals, retVar: lf.retVar, retType: lf.retType}
	for i, p := range decl.Params {
		if !b.scope.Add(p.Name, &scope.LocalVar{Type: lf.paramTypes[i], Content: localSlot{Node: lf.paramVars[i], Pin: 1}}) {
			return m.fail(cerrors.Redefinition, p.Tok.Pos, "parameter already declared: %s", p.Name)
		}
	}
	pending := []fragment.Branch{{Node: lf.entry, Pin: flowTrueOutPin}}
	_, cerr := b.emitBlock(decl.Body, pending)
	return cerr
}

// emitGlobalBody compiles a global function's body directly into its
// pre-declared composite graph, binding each FunctionParameter node
// already wired as a composite input pin.
func (m *moduleCtx) emitGlobalBody(gf *GlobalFunc, decl *ast.FunctionDecl) *cerrors.CompilerError {
	paramGetters := make([]graph.Node, len(decl.Params))
	for i, p := range decl.Params {
		n, ferr := nodefactory.GetLocalVariable(gf.Graph, gf.Params[i])
		if ferr != nil {
			return m.fail(cerrors.TypeMismatch, p.Tok.Pos, "%s", ferr.Error())
		}
		paramGetters[i] = n
	}

	b := &bodyCtx{m: m, g: gf.Graph, scope: scope.New(), locals: m.locals, globals: m.e.Globals, retType: gf.ReturnType}
	if gf.ReturnType != nil {
		n, ferr := nodefactory.GetLocalVariable(gf.Graph, *gf.ReturnType)
		if ferr != nil {
			return m.fail(cerrors.TypeMismatch, decl.Pos(), "%s", ferr.Error())
		}
		b.retVar = n
	}
	for i, p := range decl.Params {
		if !b.scope.Add(p.Name, &scope.LocalVar{Type: gf.Params[i], Content: localSlot{Node: paramGetters[i], Pin: 1}}) {
			return m.fail(cerrors.Redefinition, p.Tok.Pos, "parameter already declared: %s", p.Name)
		}
	}

	entry := gf.Graph.AddNode(graph.NodeKind("FunctionEntry"))
	pending := []fragment.Branch{{Node: entry, Pin: flowOutPin}}
	_, cerr := b.emitBlock(decl.Body, pending)
	return cerr
}
