package cerrors

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/hackermdch/giscript/internal/token"
)

// TestFormatSnapshot pins the caret-pointing diagnostic layout so a
// refactor of Format can't silently change what a user sees on a
// compile error.
func TestFormatSnapshot(t *testing.T) {
	err := New(TypeMismatch, token.Position{Line: 1, Column: 9, Offset: 8},
		"cannot assign String to Int", "int x = \"oops\";", "entity.gis")
	snaps.MatchSnapshot(t, "type_mismatch_plain", err.Format(false))
}
