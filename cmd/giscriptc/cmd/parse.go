package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hackermdch/giscript/internal/parser"
)

var (
	parseEvalExpr string
	dumpAST       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a giscript file and optionally dump its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	prog, cerr := parser.Parse(input, filename)
	if cerr != nil {
		fmt.Fprint(os.Stderr, cerr.Format(true))
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}

	if dumpAST {
		for _, d := range prog.Decls {
			fmt.Println(d.String())
		}
	} else {
		fmt.Printf("parsed %d declaration(s)\n", len(prog.Decls))
	}
	return nil
}
