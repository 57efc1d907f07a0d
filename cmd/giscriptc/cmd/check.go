package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hackermdch/giscript/internal/compiler"
	"github.com/hackermdch/giscript/internal/graph"
)

var checkEvalExpr string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse and emit a giscript file without writing a project",
	Long: `check runs the full compile pipeline (parse + emit) into a throwaway
in-memory project and discards the result, reporting only errors. It is
the semantic-analysis-only counterpart to compile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkEvalExpr, "eval", "e", "", "check inline code instead of reading from file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(checkEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	var opts []compiler.DriverOption
	if verbose {
		opts = append(opts, compiler.WithDiagnostics(os.Stderr))
	}

	d := compiler.New(graph.NewMemProject(), opts...)
	if cerr := d.AddModule(moduleName(filename), input); cerr != nil {
		fmt.Fprint(os.Stderr, cerr.Format(true))
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
	if cerr := d.Compile(); cerr != nil {
		fmt.Fprint(os.Stderr, cerr.Format(true))
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}

	fmt.Printf("%s: OK\n", filename)
	return nil
}

func moduleName(filename string) string {
	if filename == "<eval>" || filename == "" {
		return "eval"
	}
	base := filename
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '/' || filename[i] == '\\' {
			base = filename[i+1:]
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
