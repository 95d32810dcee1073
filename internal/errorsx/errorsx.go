package errorsx

import "errors"

// String is a useful wrapper for string constants as errors.
type String string

func (t String) Error() string {
	return string(t)
}

func Must[T any](v T, err error) T {
	if err == nil {
		return v
	}

	panic(err)
}

// Compact returns the first error in the set, if any.
func Compact(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// returns true if the error matches any of the targets.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
