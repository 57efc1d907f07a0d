// Package giscript is the embeddable facade over the compiler: a small
// API for host programs that want to compile giscript source without
// shelling out to giscriptc, mirroring the teacher's pkg/dwscript
// embeddable-engine surface.
package giscript

import (
	"github.com/google/uuid"

	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/compiler"
	"github.com/hackermdch/giscript/internal/graph"
)

// Option configures a Compiler at construction.
type Option func(*Compiler)

// WithProject supplies the graph.Project sink to compile into. Without
// it, New creates a fresh in-memory graph.MemProject, suitable for dry
// runs and tests that only inspect the produced graphs.
func WithProject(proj graph.Project) Option {
	return func(c *Compiler) { c.proj = proj }
}

// WithDriverOptions passes through additional compiler.DriverOption
// values (diagnostics writer, search paths) to the underlying driver.
func WithDriverOptions(opts ...compiler.DriverOption) Option {
	return func(c *Compiler) { c.driverOpts = append(c.driverOpts, opts...) }
}

// Compiler is a ready-to-use batch compiler: add one or more modules,
// then Compile. It wraps internal/compiler.Driver behind a facade that
// doesn't leak internal package types callers shouldn't depend on.
type Compiler struct {
	proj       graph.Project
	driverOpts []compiler.DriverOption
	driver     *compiler.Driver
}

// New creates a Compiler ready to accept modules.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	if c.proj == nil {
		c.proj = graph.NewMemProject()
	}
	c.driver = compiler.New(c.proj, c.driverOpts...)
	return c
}

// AddModule parses source and registers it as a module named name.
func (c *Compiler) AddModule(name, source string) *cerrors.CompilerError {
	return c.driver.AddModule(name, source)
}

// AddModuleFile reads and registers the module at path.
func (c *Compiler) AddModuleFile(path string) *cerrors.CompilerError {
	return c.driver.AddModuleFile(path)
}

// Compile runs both driver passes across every added module and returns
// the resulting build id. Compilation aborts at the first error; there is
// no partial result.
func (c *Compiler) Compile() (uuid.UUID, *cerrors.CompilerError) {
	if err := c.driver.Compile(); err != nil {
		return uuid.UUID{}, err
	}
	return c.driver.BuildID, nil
}

// Write persists the compiled project to path via the underlying sink.
func (c *Compiler) Write(path string) error {
	return c.driver.Write(path)
}

// Project returns the graph.Project the compiler is writing into, so
// callers using the default in-memory sink can inspect produced graphs
// directly (e.g. via a type assertion to *graph.MemProject in tests).
func (c *Compiler) Project() graph.Project {
	return c.proj
}

// CompileSource is a convenience one-shot: compile a single module's
// source and return its build id.
func CompileSource(name, source string) (uuid.UUID, *cerrors.CompilerError) {
	c := New()
	if err := c.AddModule(name, source); err != nil {
		return uuid.UUID{}, err
	}
	return c.Compile()
}
