package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hackermdch/giscript/internal/cerrors"
	"github.com/hackermdch/giscript/internal/compiler"
	"github.com/hackermdch/giscript/internal/graph"
)

var (
	outputFile    string
	configFile    string
	compileModule string
)

var compileCmd = &cobra.Command{
	Use:   "compile <file.gis>",
	Short: "Compile a giscript file to a project file",
	Long: `compile runs the full pipeline (parse, declare globals, emit) and
writes the resulting graph.Project to an output file.

Exit codes: 0 success, 1 compile error, 2 I/O error.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output project file (default: <input>.gil)")
	compileCmd.Flags().StringVarP(&configFile, "config", "c", "", "giscript.yaml driver config file")
	compileCmd.Flags().StringVar(&compileModule, "module", "", "module name (default: input file's base name)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	var opts []compiler.DriverOption
	if configFile != "" {
		cfg, cerr := compiler.LoadConfig(configFile)
		if cerr != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read config %s: %v\n", configFile, cerr)
			os.Exit(2)
		}
		opts = append(opts, cfg.Options()...)
	}
	if verbose {
		opts = append(opts, compiler.WithDiagnostics(os.Stderr))
	}

	modName := compileModule
	if modName == "" {
		modName = moduleName(filename)
	}

	d := compiler.New(graph.NewMemProject(), opts...)
	if perr := d.AddModule(modName, string(content)); perr != nil {
		reportCompileError(perr)
	}
	if cerr := d.Compile(); cerr != nil {
		reportCompileError(cerr)
	}

	outFile := outputFile
	if outFile == "" {
		outFile = outputPath(filename)
	}
	if err := d.Write(outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write %s: %v\n", outFile, err)
		os.Exit(2)
	}

	fmt.Printf("Compiled %s -> %s (build %s)\n", filename, outFile, d.BuildID)
	return nil
}

func reportCompileError(err *cerrors.CompilerError) {
	fmt.Fprint(os.Stderr, err.Format(true))
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func outputPath(filename string) string {
	if ext := strings.LastIndex(filename, "."); ext >= 0 {
		return filename[:ext] + ".gil"
	}
	return filename + ".gil"
}
