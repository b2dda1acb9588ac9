package config

// Windows sizes the long and short observation windows.
type Windows struct {
	Long  int `yaml:"long"`
	Short int `yaml:"short"`
}

// Config represents a statewindow config.yaml file.
type Config struct {
	Windows  Windows `yaml:"windows"`
	Mode     Mode    `yaml:"mode"`
	LogLevel string  `yaml:"log_level"`
}

// Mode selects the threshold convention used by the tracker.
type Mode string

// Mode values.
const (
	// ModeRatio compares true ratios and rejects histories shorter than two.
	ModeRatio Mode = "ratio"
	// ModeCount compares true counts once both windows are full.
	ModeCount Mode = "count"
	// ModeTally compares true counts from the first observation on.
	ModeTally Mode = "tally"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeRatio, ModeCount, ModeTally:
		return true
	}
	return false
}
