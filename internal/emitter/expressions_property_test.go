package emitter

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hackermdch/giscript/internal/graph"
	"github.com/hackermdch/giscript/internal/parser"
)

// Property: adding two arbitrary Int literals always emits exactly one
// AdditionInt node, independent of the operand values.
func TestPropertyIntAdditionEmitsOneNode(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("a + b lowers to exactly one AdditionInt node", prop.ForAll(
		func(a, b int32) bool {
			src := fmt.Sprintf(`event OnEntityCreated() { int x = %d + %d; }`, a, b)
			prog, perr := parser.Parse(src, "prop.gis")
			if perr != nil {
				return false
			}
			proj := graph.NewMemProject()
			e := New()
			if cerr := e.EmitModule(proj, "m1", prog, "", "prop.gis"); cerr != nil {
				return false
			}
			g := proj.Graphs()[0]
			return countKind(g, "AdditionInt") == 1
		},
		gen.Int32Range(-1000, 1000),
		gen.Int32Range(-1000, 1000),
	))

	properties.TestingRun(t)
}

// Property: the arithmetic right-shift synthesis never produces a raw
// RightShiftOperation count other than 2, across any shift amount in the
// valid 1..31 range, since the formula always uses exactly two logical
// shifts regardless of the operand or shift width.
func TestPropertyRightShiftSynthesisIsStable(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("x >> n always synthesizes 2 RightShiftOperation nodes", prop.ForAll(
		func(x int32, n int) bool {
			if n < 1 {
				n = 1
			}
			if n > 31 {
				n = 31
			}
			src := fmt.Sprintf(`event OnEntityCreated() { int x = %d; int y = x >> %d; }`, x, n)
			prog, perr := parser.Parse(src, "prop.gis")
			if perr != nil {
				return false
			}
			proj := graph.NewMemProject()
			e := New()
			if cerr := e.EmitModule(proj, "m1", prog, "", "prop.gis"); cerr != nil {
				return false
			}
			g := proj.Graphs()[0]
			return countKind(g, "RightShiftOperation") == 2
		},
		gen.Int32Range(-1000, 1000),
		gen.IntRange(1, 31),
	))

	properties.TestingRun(t)
}
