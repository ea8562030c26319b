// Package cli implements the evalmath command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/evalmath/ui/termui"
	"github.com/cpiber/EvalMath/evaluator"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// Version is the version of the evalmath tool.
const Version = "1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "evalmath [expression ...]",
	Short: "Evaluate arithmetic expressions",
	Long: `Welcome to EvalMath V1.0

EvalMath evaluates arithmetic expressions with variables and user defined
functions. Statements are separated by ';'.

If called with arguments, EvalMath joins them into a single line, evaluates
it and prints the result. Otherwise (or with flag -i) it prompts for
input in a terminal REPL.

`,
	Run: runEvalCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		evalmath.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().Int("precision", defaultPrecision, "Number of decimal places to print")
}

func runEvalCmd(cmd *cobra.Command, args []string) {
	intp := evaluator.NewInterpreter()
	interactive, _ := cmd.Flags().GetBool("interactive")
	if len(args) > 0 {
		line := strings.Join(args, " ")
		tracing.Infof("evalmath called for %q", line)
		ok := printResult(intp, line, os.Stdout, os.Stderr)
		if !interactive {
			if !ok {
				evalmath.Exit(1)
			}
			evalmath.Exit(0)
		}
	}
	runEvalCmdIntpr(intp)
}

// printResult evaluates line and prints the outcome. It returns false if
// the last statement of line failed.
func printResult(intp *evaluator.Interpreter, line string, stdout, stderr io.Writer) bool {
	r := intp.Evaluate(line)
	f := Formatter{Precision: evalmath.Precision(defaultPrecision)}
	if r.Err != nil {
		f.Format(SyntaxError{Input: line, Err: r.Err}, stderr)
	}
	if r.Valid {
		f.Format(r.Value, stdout)
	}
	return r.Valid
}

func runEvalCmdIntpr(intp *evaluator.Interpreter) {
	tracing.Infof("evalmath interpreter called")
	repl, err := termui.NewBaseREPL("evalmath", Version)
	if err != nil {
		tracing.Errorf("cannot start REPL: %v", err)
		evalmath.Exit(3)
	}
	ecmd := &evalCmdIntpr{BaseREPL: repl, intp: intp}
	ecmd.Interpreter = ecmd
	ecmd.Helper = func(w io.Writer) {
		io.WriteString(w, `
evalmath will interpret the following statements:

  <expr>                          : evaluate an expression, e.g. 2(3+4)^2
  <name> = <expr>                 : define a variable
  <name>(<param>, …) = <expr>     : define a function
  <stmt>; <stmt>; …               : evaluate statements in order

Operators are + - * / % \ (integer division) ^ and unary -.
Built-in functions are sin cos tan asin acos atan sqrt ln log(x, base).

`)
	}
	ecmd.Prompt(true)
}

type evalCmdIntpr struct {
	*termui.BaseREPL
	intp *evaluator.Interpreter
}

// InterpretCommand evaluates a line of input.
func (ecmd *evalCmdIntpr) InterpretCommand(command string) {
	tracer().Debugf("interpreter: %q", command)
	command = strings.Trim(command, "\x00")
	stdout, stderr := ecmd.Outputs()
	printResult(ecmd.intp, command, stdout, stderr)
}

// ListSymbols returns a table of the user's variables or functions.
//
// Interface termui.SymbolLister.
func (ecmd *evalCmdIntpr) ListSymbols(which termui.SymbolListing) table.Writer {
	switch which {
	case termui.ListVariables:
		return variablesTable(ecmd.intp.Symbols())
	case termui.ListFunctions:
		return functionsTable(ecmd.intp.Symbols())
	}
	return nil
}
