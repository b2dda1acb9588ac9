package verdict

// Option configures Judge.
type Option func(*options)

type options struct {
	longMax  int
	shortMax int
	longSet  bool
	shortSet bool
}

// WithLongMaxLength sets the expected long window length.
func WithLongMaxLength(n int) Option {
	return func(o *options) {
		o.longMax = n
		o.longSet = true
	}
}

// WithShortMaxLength sets the expected short window length.
func WithShortMaxLength(n int) Option {
	return func(o *options) {
		o.shortMax = n
		o.shortSet = true
	}
}

// WithMaxLengths sets both expected window lengths.
func WithMaxLengths(long, short int) Option {
	return func(o *options) {
		WithLongMaxLength(long)(o)
		WithShortMaxLength(short)(o)
	}
}

// Judge dispatches to Ratio when no expected lengths are given and to
// Count when both are. Supplying only one of them is an invalid argument.
func Judge(long, short History, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case !o.longSet && !o.shortSet:
		return Ratio(long, short)
	case o.longSet != o.shortSet:
		return Result{}, ArgumentError{
			Param:   "longMaxLength/shortMaxLength",
			Message: "both must be provided together",
		}
	default:
		return Count(long, short, o.longMax, o.shortMax)
	}
}
