package verdict

// Window names used in error messages.
const (
	longWindow  = "longHistory"
	shortWindow = "shortHistory"
)

const minRatioHistory = 2

// Ratio evaluates the histories in strict ratio mode.
//
// Empty histories are an invalid argument and single-observation histories
// fail with an InsufficientHistoryError. Ratios are compared exactly by
// cross-multiplying the counts.
func Ratio(long, short History) (Result, error) {
	if len(long) == 0 {
		return Result{}, ArgumentError{Param: longWindow, Message: "must not be empty"}
	}
	if len(short) == 0 {
		return Result{}, ArgumentError{Param: shortWindow, Message: "must not be empty"}
	}
	if len(long) < minRatioHistory {
		return Result{}, InsufficientHistoryError{Window: longWindow, Length: len(long)}
	}
	if len(short) < minRatioHistory {
		return Result{}, InsufficientHistoryError{Window: shortWindow, Length: len(short)}
	}

	n, lt := len(long), long.CountTrue()
	m, st := len(short), short.CountTrue()

	// longRatio vs 0.5, shortRatio vs 0.9 and 0.1
	longAbove := 2*lt > n
	longHalf := 2*lt == n
	shortHigh := 10*st >= 9*m
	shortLow := 10*st <= m

	return Result{
		InProgress:    longAbove && shortHigh,
		StartJudgment: longHalf && shortHigh,
		EndJudgment:   longHalf && shortLow,
	}, nil
}

// Count evaluates the histories in count-threshold mode.
//
// Both expected lengths must be positive. Until each history has reached
// its expected length (including when either is empty) the result is all
// false with a nil error.
func Count(long, short History, longMaxLength, shortMaxLength int) (Result, error) {
	if longMaxLength <= 0 {
		return Result{}, ArgumentError{Param: "longMaxLength", Message: "must be positive"}
	}
	if shortMaxLength <= 0 {
		return Result{}, ArgumentError{Param: "shortMaxLength", Message: "must be positive"}
	}
	if len(long) < longMaxLength || len(short) < shortMaxLength {
		return Result{}, nil
	}
	return Tally(long, short), nil
}

// Tally applies the count-threshold formulas to the histories as given,
// without checking that they have reached any expected length. Empty
// histories yield an all-false result.
//
// InProgress and StartJudgment are both set when the long window holds
// exactly floor(N/2) true observations and the short window is saturated.
func Tally(long, short History) Result {
	if len(long) == 0 || len(short) == 0 {
		return Result{}
	}

	half := len(long) / 2
	lt := long.CountTrue()
	st := short.CountTrue()
	shortHigh := st >= len(short)-1

	return Result{
		InProgress:    lt >= half && shortHigh,
		StartJudgment: lt == half && shortHigh,
		EndJudgment:   lt == half && st <= 1,
	}
}
