package verdict

import (
	"fmt"
	"reflect"
)

// AsHistory converts an arbitrary slice or array into a History.
//
// Only elements holding the boolean value true count as true; nil,
// non-boolean and false elements count as false. Any value that is not a
// slice or array is an invalid argument.
func AsHistory(v any) (History, error) {
	switch h := v.(type) {
	case History:
		return h, nil
	case []bool:
		return History(h), nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, ArgumentError{Param: "history", Message: fmt.Sprintf("expected a sequence, got %T", v)}
	}

	out := make(History, rv.Len())
	for i := range out {
		out[i] = isTrue(rv.Index(i))
	}
	return out, nil
}

func isTrue(v reflect.Value) bool {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Bool && v.Bool()
}

// JudgeValues converts both inputs with AsHistory and calls Judge.
func JudgeValues(long, short any, opts ...Option) (Result, error) {
	lh, err := AsHistory(long)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", longWindow, err)
	}
	sh, err := AsHistory(short)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", shortWindow, err)
	}
	return Judge(lh, sh, opts...)
}
