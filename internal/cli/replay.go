package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thruflo/statewindow/internal/config"
	"github.com/thruflo/statewindow/internal/logging"
	"github.com/thruflo/statewindow/internal/tracker"
	"github.com/thruflo/statewindow/internal/verdict"
	"golang.org/x/term"
)

var (
	replayMode  string
	replayLong  int
	replayShort int
)

var replayCmd = &cobra.Command{
	Use:   "replay [observation...]",
	Short: "Feed an observation stream through the long/short windows",
	Long: `Feeds observations one at a time through a long and a short window and
prints the verdict after each step. Observations are taken from the
arguments, or read whitespace-separated from stdin when none are given.

Window sizes and mode come from the config file unless overridden.

Example:
  statewindow replay 0 0 1 1 1 1 0 0 --long 4 --short 2
  seq-source | statewindow replay --mode ratio`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayMode, "mode", "", "Threshold mode (ratio, count, tally)")
	replayCmd.Flags().IntVar(&replayLong, "long", 0, "Long window size")
	replayCmd.Flags().IntVar(&replayShort, "short", 0, "Short window size")
	rootCmd.AddCommand(replayCmd)
}

// replaySummary counts what a replay produced.
type replaySummary struct {
	Steps  int
	Starts int
	Ends   int
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	if cmd.Flags().Changed("mode") {
		cfg.Mode = config.Mode(replayMode)
	}
	if cmd.Flags().Changed("long") {
		cfg.Windows.Long = replayLong
	}
	if cmd.Flags().Changed("short") {
		cfg.Windows.Short = replayShort
	}

	tr, err := tracker.New(cfg)
	if err != nil {
		return err
	}

	var in io.Reader = strings.NewReader(strings.Join(args, " "))
	if len(args) == 0 {
		in = cmd.InOrStdin()
	}

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprintf(out, "%5s  %-3s %s\n", "STEP", "OBS", "VERDICT")
	}

	summary, err := replay(out, in, tr)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "steps=%d starts=%d ends=%d\n", summary.Steps, summary.Starts, summary.Ends)
	return nil
}

// replay reads observation tokens from in and writes one line per step.
func replay(w io.Writer, in io.Reader, tr *tracker.Tracker) (replaySummary, error) {
	var summary replaySummary

	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := scanner.Text()
		obs, err := verdict.ParseObservation(tok)
		if err != nil {
			return summary, fmt.Errorf("observation %d: %w", summary.Steps+1, err)
		}

		r, err := tr.Observe(obs)
		summary.Steps++

		var status string
		switch {
		case verdict.IsInsufficientHistory(err):
			status = "filling"
		case err != nil:
			return summary, fmt.Errorf("observation %d: %w", summary.Steps, err)
		case tr.Mode() == config.ModeCount && !tr.Ready():
			status = "filling"
		default:
			status = describe(r)
		}

		if r.StartJudgment {
			summary.Starts++
		}
		if r.EndJudgment {
			summary.Ends++
		}

		if _, err := fmt.Fprintf(w, "%5d  %-3s %s\n", summary.Steps, verdict.History{obs}, status); err != nil {
			return summary, err
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read observations: %w", err)
	}

	logging.Debug("replay finished", "steps", summary.Steps, "starts", summary.Starts, "ends", summary.Ends)
	return summary, nil
}

// describe renders the set flags, or "-" when none are set.
func describe(r verdict.Result) string {
	var parts []string
	if r.InProgress {
		parts = append(parts, "in_progress")
	}
	if r.StartJudgment {
		parts = append(parts, "start")
	}
	if r.EndJudgment {
		parts = append(parts, "end")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
