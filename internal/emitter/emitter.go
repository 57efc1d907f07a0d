// Package emitter walks a parsed module's AST and lowers it onto a
// graph.Graph: one Entity graph per module holding every event and local
// function body, plus one Composite graph per global function. It is the
// single-pass AST walker described as the compiler's core: statement
// emission threads a list of pending control-flow tails rather than one
// "current" node, so branches, loops and breaks can converge naturally
// once their successor is known.
package emitter

import (
	"fmt"

	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/nodefactory"
	"github.com/hackermdch/giscript/internal/registry"
	"github.com/hackermdch/giscript/internal/token"
	"github.com/hackermdch/giscript/internal/types"
)

// GlobalFunc is a global function's composite-graph signature, registered
// in the driver's first pass so call-sites anywhere in the batch can
// reference it before its body is compiled.
type GlobalFunc struct {
	Name       string
	Graph      graph.Graph
	ReturnType *types.Type // nil = void
	Params     []types.Type
	ParamNames []string
	Decl       *ast.FunctionDecl
}

// localFunc is a local (non-global) function's dummy entrypoint plus its
// parameter/return local-variable nodes, all living in the same Entity
// graph as the module's events.
type localFunc struct {
	name       string
	entry      graph.Node // DoubleBranch(true) dummy entrypoint
	paramVars  []graph.Node
	paramTypes []types.Type
	retVar     graph.Node // nil if void
	retType    *types.Type
	decl       *ast.FunctionDecl
}

// Emitter holds the state shared across every module compiled in one
// batch: the global-function table built during the driver's first pass.
type Emitter struct {
	Globals map[string]*GlobalFunc
}

// New creates an Emitter with an empty global-function table.
func New() *Emitter {
	return &Emitter{Globals: map[string]*GlobalFunc{}}
}

// moduleCtx carries per-module state across both the local-function
// pre-pass and the event/function body pass.
type moduleCtx struct {
	e        *Emitter
	g        graph.Graph
	source   string
	file     string
	locals   map[string]*localFunc
}

func (m *moduleCtx) fail(kind cerrors.Kind, pos token.Position, format string, args ...interface{}) *cerrors.CompilerError {
	return cerrors.New(kind, pos, fmt.Sprintf(format, args...), m.source, m.file)
}

// DeclareGlobal runs the driver's first pass for one global function
// declaration: it creates the function's composite graph, declares its
// input/output pins, and registers the signature so later call-sites (in
// any module) can resolve it. Calling this twice for the same name is a
// Redefinition error.
func (e *Emitter) DeclareGlobal(proj graph.Project, modName string, fn *ast.FunctionDecl, source, file string) (*GlobalFunc, *cerrors.CompilerError) {
	if _, exists := e.Globals[fn.Name]; exists {
		return nil, cerrors.New(cerrors.Redefinition, fn.Pos(), "global function already declared: "+fn.Name, source, file)
	}

	g := proj.CreateGraph(modName+"."+fn.Name, graph.Composite)

	params := make([]types.Type, len(fn.Params))
	names := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		t, err := resolveTypeExpr(p.Type)
		if err != nil {
			return nil, cerrors.New(cerrors.UnknownType, p.Tok.Pos, err.Error(), source, file)
		}
		params[i] = t
		names[i] = p.Name
		n := g.AddNode(graph.NodeKind("FunctionParameter"))
		n.SetPin(0, toDataType(t), true)
		g.SetCompositePin(n, graph.Input, 0, i)
	}

	var ret *types.Type
	if fn.ReturnType != nil {
		t, err := resolveTypeExpr(fn.ReturnType)
		if err != nil {
			return nil, cerrors.New(cerrors.UnknownType, fn.ReturnType.Pos(), err.Error(), source, file)
		}
		ret = &t
		n := g.AddNode(graph.NodeKind("FunctionReturn"))
		n.SetPin(0, toDataType(t), false)
		g.SetCompositePin(n, graph.Output, 0, 0)
	}

	gf := &GlobalFunc{Name: fn.Name, Graph: g, ReturnType: ret, Params: params, ParamNames: names, Decl: fn}
	e.Globals[fn.Name] = gf
	proj.Define(g)
	return gf, nil
}

// EmitModule runs the driver's second pass for one module: it creates the
// module's single Entity graph, pre-declares every local function's
// dummy entrypoint (so local functions can call each other regardless of
// declaration order), then emits every event, local-function, and
// (for functions declared in this module) global-function body.
func (e *Emitter) EmitModule(proj graph.Project, modName string, prog *ast.Program, source, file string) *cerrors.CompilerError {
	g := proj.CreateGraph(modName, graph.Entity)
	m := &moduleCtx{e: e, g: g, source: source, file: file, locals: map[string]*localFunc{}}

	for _, d := range prog.Decls {
		fn, ok := d.(*ast.FunctionDecl)
		if !ok || fn.Global {
			continue
		}
		if _, exists := m.locals[fn.Name]; exists {
			return m.fail(cerrors.Redefinition, fn.Pos(), "local function already declared: %s", fn.Name)
		}
		lf, cerr := m.declareLocal(fn)
		if cerr != nil {
			return cerr
		}
		m.locals[fn.Name] = lf
	}

	for _, d := range prog.Decls {
		switch decl := d.(type) {
		case *ast.EventDecl:
			if cerr := m.emitEvent(decl); cerr != nil {
				return cerr
			}
		case *ast.FunctionDecl:
			if decl.Global {
				gf, ok := e.Globals[decl.Name]
				if !ok {
					return m.fail(cerrors.UnknownFunction, decl.Pos(), "global function not declared: %s", decl.Name)
				}
				if cerr := m.emitGlobalBody(gf, decl); cerr != nil {
					return cerr
				}
				proj.Add(gf.Graph)
			} else {
				lf := m.locals[decl.Name]
				if cerr := m.emitLocalBody(lf, decl); cerr != nil {
					return cerr
				}
			}
		}
	}

	proj.Add(g)
	return nil
}

// declareLocal creates a local function's dummy entrypoint plus its
// parameter and return-value local-variable nodes, without compiling its
// body yet.
func (m *moduleCtx) declareLocal(fn *ast.FunctionDecl) (*localFunc, *cerrors.CompilerError) {
	entry := nodefactory.DoubleBranch(m.g)
	entry.SetValue(0, true, graph.Boolean)

	paramVars := make([]graph.Node, len(fn.Params))
	paramTypes := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		t, err := resolveTypeExpr(p.Type)
		if err != nil {
			return nil, m.fail(cerrors.UnknownType, p.Tok.Pos, "%s", err.Error())
		}
		n, ferr := nodefactory.GetLocalVariable(m.g, t)
		if ferr != nil {
			return nil, m.fail(cerrors.TypeMismatch, p.Tok.Pos, "%s", ferr.Error())
		}
		paramVars[i] = n
		paramTypes[i] = t
	}

	var retVar graph.Node
	var retType *types.Type
	if fn.ReturnType != nil {
		t, err := resolveTypeExpr(fn.ReturnType)
		if err != nil {
			return nil, m.fail(cerrors.UnknownType, fn.ReturnType.Pos(), "%s", err.Error())
		}
		n, ferr := nodefactory.GetLocalVariable(m.g, t)
		if ferr != nil {
			return nil, m.fail(cerrors.TypeMismatch, fn.Pos(), "%s", ferr.Error())
		}
		retVar = n
		retType = &t
	}

	return &localFunc{
		name:       fn.Name,
		entry:      entry,
		paramVars:  paramVars,
		paramTypes: paramTypes,
		retVar:     retVar,
		retType:    retType,
		decl:       fn,
	}, nil
}

// resolveTypeExpr resolves a parsed type annotation to a types.Type. It
// never resolves the inferred `var` placeholder to Unknown silently for
// callers that require a concrete type; those callers reject Unknown
// themselves (see VarDef handling).
func resolveTypeExpr(t *ast.TypeExpr) (types.Type, error) {
	if t == nil {
		return types.Type{}, fmt.Errorf("expected a type, got none")
	}
	switch t.Name {
	case "int":
		return types.TInt(), nil
	case "float":
		return types.TFloat(), nil
	case "bool":
		return types.TBool(), nil
	case "string":
		return types.TString(), nil
	case "entity":
		return types.TEntity(), nil
	case "vec":
		return types.TVec(), nil
	case "var":
		return types.TUnknown(), nil
	case "guid":
		kind, err := resolveGuidKind(t.GuidKind)
		if err != nil {
			return types.Type{}, err
		}
		return types.TGuid(kind), nil
	case "list":
		elem, err := resolveTypeExpr(t.Elem)
		if err != nil {
			return types.Type{}, err
		}
		return types.TList(elem), nil
	case "map":
		key, err := resolveTypeExpr(t.Key)
		if err != nil {
			return types.Type{}, err
		}
		val, err := resolveTypeExpr(t.Value)
		if err != nil {
			return types.Type{}, err
		}
		return types.TMap(key, val), nil
	case "":
		if len(t.Tuple) > 0 {
			members := make([]types.Type, len(t.Tuple))
			for i, mt := range t.Tuple {
				mv, err := resolveTypeExpr(mt)
				if err != nil {
					return types.Type{}, err
				}
				members[i] = mv
			}
			return types.TTuple(members...), nil
		}
	}
	return types.Type{}, fmt.Errorf("unknown type: %s", t.String())
}

func resolveGuidKind(name string) (types.GuidKind, error) {
	switch name {
	case "entity":
		return types.GuidEntity, nil
	case "prefab":
		return types.GuidPrefab, nil
	case "cfg":
		return types.GuidConfiguration, nil
	case "faction":
		return types.GuidFaction, nil
	default:
		return 0, fmt.Errorf("unknown guid kind: %s", name)
	}
}

// toDataType maps a resolved value type to the graph.DataType its pin
// uses, mirroring the table internal/nodefactory keys its node kinds by.
func toDataType(t types.Type) graph.DataType {
	if t.Kind == types.List {
		switch t.Elem.Kind {
		case types.Int:
			return graph.ListInteger
		case types.Float:
			return graph.ListFloat
		case types.String:
			return graph.ListString
		case types.Bool:
			return graph.ListBoolean
		case types.Entity:
			return graph.ListEntity
		case types.Vec:
			return graph.ListVector
		case types.Guid:
			switch t.Elem.GuidKind {
			case types.GuidPrefab:
				return graph.ListPrefab
			case types.GuidConfiguration:
				return graph.ListConfiguration
			case types.GuidFaction:
				return graph.ListFaction
			default:
				return graph.ListGUID
			}
		}
	}
	switch t.Kind {
	case types.Int:
		return graph.Integer
	case types.Float:
		return graph.Float
	case types.String:
		return graph.String
	case types.Bool:
		return graph.Boolean
	case types.Entity:
		return graph.EntityType
	case types.Vec:
		return graph.Vector
	case types.Guid:
		switch t.GuidKind {
		case types.GuidPrefab:
			return graph.Prefab
		case types.GuidConfiguration:
			return graph.Configuration
		case types.GuidFaction:
			return graph.Faction
		default:
			return graph.GUID
		}
	default:
		return graph.Integer
	}
}

// registryEventParams converts an event's declared parameter list to the
// shape registry.ResolveEvent matches against.
func registryEventParams(params []ast.Param) ([]registry.EventParam, error) {
	out := make([]registry.EventParam, len(params))
	for i, p := range params {
		t, err := resolveTypeExpr(p.Type)
		if err != nil {
			return nil, err
		}
		out[i] = registry.EventParam{Name: p.Name, Type: t}
	}
	return out, nil
}
