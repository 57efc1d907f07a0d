// Package cerrors formats compiler errors with source context, line/column
// information, and a caret pointing to the offending position. Compilation
// aborts synchronously at the first error (see internal/compiler); there is
// never more than one CompilerError in flight at a time.
package cerrors

import (
	"fmt"
	"strings"

	"github.com/hackermdch/giscript/internal/token"
)

// Kind classifies a CompilerError for callers that want to branch on error
// category (tests use it to assert on the right failure mode; the CLI
// exits with code 1 for every Kind).
type Kind int

const (
	SyntaxError Kind = iota
	UnexpectedTokenAfterProgram
	UnknownType
	UnknownEvent
	NoMatchingEventOverload
	UnknownFunction
	NoMatchingFunctionOverload
	UndefinedSymbol
	Redefinition
	KeywordMisuse
	TypeMismatch
	InvalidLValue
	IOError
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case UnexpectedTokenAfterProgram:
		return "unexpected token after program"
	case UnknownType:
		return "unknown type"
	case UnknownEvent:
		return "unknown event"
	case NoMatchingEventOverload:
		return "no matching overload for event"
	case UnknownFunction:
		return "unknown function"
	case NoMatchingFunctionOverload:
		return "no matching overload for function"
	case UndefinedSymbol:
		return "undefined symbol"
	case Redefinition:
		return "redefinition"
	case KeywordMisuse:
		return "keyword misuse"
	case TypeMismatch:
		return "type mismatch"
	case InvalidLValue:
		return "invalid lvalue"
	case IOError:
		return "I/O error"
	default:
		return "error"
	}
}

// CompilerError is a single compilation failure with enough context to
// render a caret-pointing diagnostic.
type CompilerError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a CompilerError of the given kind.
func New(kind Kind, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

func (e *CompilerError) Error() string { return e.Format(false) }

// Format renders the error with a file:line:col header, the offending
// source line, and a caret under the column. If color is true, ANSI codes
// highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s: %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
