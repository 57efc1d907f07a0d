// Package compiler drives a batch compilation: it parses every module
// added to it, declares every global function's composite-graph signature
// up front (so call-sites in any module can resolve it regardless of
// declaration order across modules), then emits every module's events,
// local functions, and global function bodies into a graph.Project.
//
// Compilation aborts synchronously at the first error, mirroring the
// teacher's single-CompilerError-in-flight model (internal/cerrors).
package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/hackermdch/giscript/internal/ast"
	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/emitter"
	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/parser"
	"github.com/hackermdch/giscript/internal/token"
)

// moduleSource is one module added to the driver: its parsed program plus
// the source text and display name needed to render diagnostics.
type moduleSource struct {
	name   string
	file   string
	source string
	prog   *ast.Program
}

// DriverOption configures a Driver at construction, mirroring the
// teacher's LexerOption/CompilerOption functional-option pattern.
type DriverOption func(*Driver)

// WithDiagnostics directs verbose compile-progress output to w. The zero
// Driver discards it.
func WithDiagnostics(w io.Writer) DriverOption {
	return func(d *Driver) { d.diag = w }
}

// WithSearchPaths records additional include search paths. Reserved for a
// future `uses`-style include directive; v1 has no cross-file includes, so
// this only affects what DriverConfig.SearchPaths reports back to callers.
func WithSearchPaths(paths []string) DriverOption {
	return func(d *Driver) { d.searchPaths = append(d.searchPaths, paths...) }
}

// Driver is a compile batch: a set of modules compiled together so their
// global functions can call each other regardless of module order.
type Driver struct {
	proj        *stampingProject
	e           *emitter.Emitter
	modules     []*moduleSource
	searchPaths []string
	diag        io.Writer
	BuildID     uuid.UUID
}

// New creates a Driver writing into proj.
func New(proj graph.Project, opts ...DriverOption) *Driver {
	d := &Driver{
		proj: &stampingProject{Project: proj},
		e:    emitter.New(),
		diag: io.Discard,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddModule parses source and registers it as a module named name. Module
// names must be unique within a batch; the emitter qualifies global
// function graph names with their declaring module's name.
func (d *Driver) AddModule(name, source string) *cerrors.CompilerError {
	file := name + ".gis"
	prog, err := parser.Parse(source, file)
	if err != nil {
		return err
	}
	d.modules = append(d.modules, &moduleSource{name: name, file: file, source: source, prog: prog})
	fmt.Fprintf(d.diag, "parsed module %s (%d declarations)\n", name, len(prog.Decls))
	return nil
}

// AddModuleFile reads path and registers it as a module using its base
// name (without extension) as the module name.
func (d *Driver) AddModuleFile(path string) *cerrors.CompilerError {
	content, err := os.ReadFile(path)
	if err != nil {
		return cerrors.New(cerrors.IOError, token.Position{}, err.Error(), "", path)
	}
	return d.AddModule(moduleNameOf(path), string(content))
}

// Compile runs both driver passes across every added module: first
// declaring every global function's signature, then emitting every
// event, local-function, and global-function body. It stamps a fresh
// BuildID across every graph created during this run.
func (d *Driver) Compile() *cerrors.CompilerError {
	for _, m := range d.modules {
		for _, decl := range m.prog.Decls {
			fn, ok := decl.(*ast.FunctionDecl)
			if !ok || !fn.Global {
				continue
			}
			if _, cerr := d.e.DeclareGlobal(d.proj, m.name, fn, m.source, m.file); cerr != nil {
				return cerr
			}
		}
	}

	for _, m := range d.modules {
		fmt.Fprintf(d.diag, "emitting module %s\n", m.name)
		if cerr := d.e.EmitModule(d.proj, m.name, m.prog, m.source, m.file); cerr != nil {
			return cerr
		}
	}

	d.BuildID = uuid.New()
	stamp := fmt.Sprintf("giscriptc build %s", d.BuildID)
	for _, g := range d.proj.created {
		g.AddComment(stamp, 0, 0)
	}
	fmt.Fprintf(d.diag, "compiled %d module(s), build %s\n", len(d.modules), d.BuildID)
	return nil
}

// Write persists the compiled project to path via the underlying sink.
func (d *Driver) Write(path string) error {
	return d.proj.Save(path)
}

// stampingProject decorates a graph.Project to remember every graph it
// creates, purely so Compile can stamp a build comment on each one
// afterwards without the Project interface needing to expose enumeration.
type stampingProject struct {
	graph.Project
	created []graph.Graph
}

func (p *stampingProject) CreateGraph(name string, kind graph.Kind) graph.Graph {
	g := p.Project.CreateGraph(name, kind)
	p.created = append(p.created, g)
	return g
}

func moduleNameOf(path string) string {
	base := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			base = path[i+1:]
			break
		}
	}
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}
