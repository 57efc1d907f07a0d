package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackermdch/giscript/internal/lexer"
	"github.com/hackermdch/giscript/internal/token"
)

var (
	lexEvalExpr string
	lexShowPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a giscript file or expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		if lexShowPos {
			fmt.Printf("%-20s %-20q %s\n", tok.Type, tok.Literal, tok.Pos)
		} else {
			fmt.Printf("%-20s %q\n", tok.Type, tok.Literal)
		}
		if tok.Type == token.EOF {
			break
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e.Error())
		}
		return fmt.Errorf("lexing %s produced %d error(s)", filename, len(errs))
	}
	return nil
}
