package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mstep"
	"github.com/npillmayer/mstep/engine"
	"github.com/npillmayer/mstep/mstep/ui/termui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mstep",
	Short: "Step through the analysis of matrix expressions",
	Long: `Welcome to MSTEP V0.1 (experimental)

MSTEP simulates the lexical and syntactic analysis of matrix expressions
like '[[1,2],[3,4]] * [[5,6],[7,8]]', one atomic transition at a time.
Numbers are recognized by an NFA construction pass and verified by a DFA.
Tokens are derived by a predictive parser, which checks matrix shapes along
the way.

MSTEP is able to run in interactive mode or analyze an expression in
batch-mode.  If run in interactive mode, it will prompt for user input in a
terminal REPL.

`,
	Args: cobra.NoArgs,
	Run:  runMstepCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by mstep.main().
func Execute() {
	if rootCmd.Execute() != nil {
		mstep.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().String("tracelevel", "", "Trace level for all packages (Debug, Info, Error)")
	rootCmd.PersistentFlags().StringP("expr", "e", "", "Expression to analyze")
	rootCmd.PersistentFlags().Int("steps", engine.DefaultMaxSteps, "Maximum number of steps per run")
	rootCmd.PersistentFlags().String("format", "table", "Output format of batch-mode: table | yaml")
}

func runMstepCmd(cmd *cobra.Command, args []string) {
	conf := mstep.Configuration
	expr := conf.String("expr")
	steps := conf.Int("steps")
	if expr == "" || conf.Bool("interactive") {
		runMstepIntpr(expr, steps)
		return
	}
	format, err := ParseFormat(conf.String("format"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mstep: %v\n", err)
		mstep.Exit(2)
	}
	if err := runBatch(expr, steps, format, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "mstep: %v\n", err)
		mstep.Exit(1)
	}
}

// runBatch analyzes expr to completion and writes the outcome to w. It
// returns the error which stopped the run, if any.
func runBatch(expr string, steps int, format Format, w io.Writer) error {
	tracer().Infof("batch run for %q", expr)
	e := engine.New(expr, engine.WithMaxSteps(steps))
	_, runErr := e.Run(mstep.SignalContext)
	snap := e.Inspect()
	var err error
	switch format {
	case FormatYAML:
		err = ExportYAML(snap, w)
	default:
		err = termui.Print(snap.History, Formatter{}, w)
		if err == nil {
			fmt.Fprintf(w, "%s after %d steps\n", snap.Status, snap.Steps)
		}
	}
	if err != nil {
		return err
	}
	return runErr
}

func runMstepIntpr(expr string, steps int) {
	tracing.Infof("mstep interpreter called")
	intp := &mstepIntpr{session: newSession(mstep.SignalContext, steps)}
	repl, err := termui.NewBaseREPL("mstep", version, sessionCompletions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mstep: cannot start REPL: %v\n", err)
		mstep.Exit(3)
	}
	intp.BaseREPL = repl
	intp.Interpreter = intp
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, sessionHelp)
	}
	if expr != "" {
		intp.InterpretCommand("load " + expr)
	}
	intp.Prompt(true)
}

type mstepIntpr struct {
	*termui.BaseREPL
	session *session
}

// InterpretCommand is part of interface termui.REPLCommandInterpreter.
func (intp *mstepIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	tracer().Debugf("mstep interpreter: %q", command)
	stdout, stderr := intp.Outputs()
	item, err := intp.session.Eval(command)
	if err != nil {
		fmt.Fprintf(stderr, "interpreter error: %s\n", err.Error())
		return
	}
	if err = termui.Print(item, Formatter{}, stdout); err != nil {
		fmt.Fprintf(stderr, "output error: %s\n", err.Error())
	}
}
