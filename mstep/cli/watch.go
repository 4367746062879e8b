package cli

import (
	"github.com/npillmayer/mstep"
	"github.com/npillmayer/mstep/mstep/ui/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the analysis of an expression in a full-screen view",
	Long: `Watch shows lexer, token stream, parse stack and execution trace of a
run in a full-screen terminal view.

Navigation:
  space, n  - advance one step
  p         - start or pause playback
  +, -      - faster or slower playback
  r         - restart the run
  e         - edit the expression, enter loads it
  q         - quit`,
	Args: cobra.NoArgs,
	RunE: runWatchCmd,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Duration("interval", watch.DefaultConfig().Interval, "Pause between steps during playback")
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	cfg := watch.DefaultConfig()
	if expr := mstep.Configuration.String("expr"); expr != "" {
		cfg.Expression = expr
	}
	cfg.MaxSteps = mstep.Configuration.Int("steps")
	if interval, err := cmd.Flags().GetDuration("interval"); err == nil {
		cfg.Interval = interval
	}
	tracer().Infof("watch: %q, interval %v", cfg.Expression, cfg.Interval)
	return watch.Run(mstep.SignalContext, cfg)
}
