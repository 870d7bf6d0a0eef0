package cli

import "fmt"

type validationError struct {
	field string
	msg   string
}

func (e validationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.field, e.msg)
}

func errValidation(field, msg string) error {
	return validationError{field: field, msg: msg}
}

type tooLongError struct {
	field string
	max   int
	got   int
}

func (e tooLongError) Error() string {
	return fmt.Sprintf("%s exceeds %d characters (got %d)", e.field, e.max, e.got)
}

func errTooLong(field string, max, got int) error {
	return tooLongError{field: field, max: max, got: got}
}
