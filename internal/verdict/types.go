// Package verdict classifies a pair of observation windows into an
// in-progress / started / ended state judgment.
//
// Two threshold conventions are supported. Ratio compares the share of
// true observations against fixed ratios and rejects short histories.
// Count compares true counts against floor(N/2) and M-1, and returns an
// all-false Result until both windows have filled to their expected size.
// Tally applies the Count formulas without the fill check.
package verdict

// History is an ordered sequence of observations, oldest first.
type History []bool

// CountTrue returns the number of true observations in h.
func (h History) CountTrue() int {
	n := 0
	for _, v := range h {
		if v {
			n++
		}
	}
	return n
}

// Result holds the three judgment flags computed for one evaluation.
type Result struct {
	InProgress    bool `yaml:"state_in_progress" json:"state_in_progress"`
	StartJudgment bool `yaml:"state_start_judgment" json:"state_start_judgment"`
	EndJudgment   bool `yaml:"state_end_judgment" json:"state_end_judgment"`
}

// Any reports whether at least one flag is set.
func (r Result) Any() bool {
	return r.InProgress || r.StartJudgment || r.EndJudgment
}
