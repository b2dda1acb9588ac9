package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thruflo/statewindow/internal/logging"
	"github.com/thruflo/statewindow/internal/verdict"
	"gopkg.in/yaml.v3"
)

var (
	judgeLongMax  int
	judgeShortMax int
	judgeTally    bool
	judgeOutput   string
)

var judgeCmd = &cobra.Command{
	Use:   "judge <long-history> <short-history>",
	Short: "Evaluate one pair of histories",
	Long: `Evaluates a single long/short history pair and prints the three
judgment flags. Histories are written oldest first using 1/0 or T/F.

Without --long-max/--short-max the ratio thresholds are used. With both,
the count thresholds are used and incomplete histories yield all-false.
--tally applies the count thresholds without the completeness check.

Example:
  statewindow judge TTTF TT
  statewindow judge FFTT TT --long-max 4 --short-max 2
  statewindow judge 0011 11 --tally -o yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runJudge,
}

func init() {
	judgeCmd.Flags().IntVar(&judgeLongMax, "long-max", 0, "Expected long history length")
	judgeCmd.Flags().IntVar(&judgeShortMax, "short-max", 0, "Expected short history length")
	judgeCmd.Flags().BoolVar(&judgeTally, "tally", false, "Use count thresholds without the completeness check")
	judgeCmd.Flags().StringVarP(&judgeOutput, "output", "o", "text", "Output format (text, yaml)")
	rootCmd.AddCommand(judgeCmd)
}

// judgeRequest is one parsed invocation of the judge command.
type judgeRequest struct {
	long   verdict.History
	short  verdict.History
	opts   []verdict.Option
	tally  bool
	output string
}

func runJudge(cmd *cobra.Command, args []string) error {
	req, err := parseJudgeArgs(args[0], args[1])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("long-max") {
		req.opts = append(req.opts, verdict.WithLongMaxLength(judgeLongMax))
	}
	if cmd.Flags().Changed("short-max") {
		req.opts = append(req.opts, verdict.WithShortMaxLength(judgeShortMax))
	}
	req.tally = judgeTally
	req.output = judgeOutput

	return judge(cmd.OutOrStdout(), req)
}

func parseJudgeArgs(longArg, shortArg string) (judgeRequest, error) {
	long, err := verdict.ParseHistory(longArg)
	if err != nil {
		return judgeRequest{}, fmt.Errorf("long history: %w", err)
	}
	short, err := verdict.ParseHistory(shortArg)
	if err != nil {
		return judgeRequest{}, fmt.Errorf("short history: %w", err)
	}
	return judgeRequest{long: long, short: short, output: "text"}, nil
}

func judge(w io.Writer, req judgeRequest) error {
	if req.tally && len(req.opts) > 0 {
		return errors.New("--tally cannot be combined with --long-max/--short-max")
	}

	var (
		r   verdict.Result
		err error
	)
	if req.tally {
		r = verdict.Tally(req.long, req.short)
	} else {
		r, err = verdict.Judge(req.long, req.short, req.opts...)
	}
	if err != nil {
		logging.Debug("judge rejected input", "long", req.long, "short", req.short, "error", err)
		return err
	}

	return writeResult(w, r, req.output)
}

func writeResult(w io.Writer, r verdict.Result, format string) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprintf(w, "in_progress: %t\nstart:       %t\nend:         %t\n",
			r.InProgress, r.StartJudgment, r.EndJudgment)
		return err
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
