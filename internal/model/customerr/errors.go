package customerr

import "fmt"

// FormatError is returned when a record date does not match the expected layout.
type FormatError struct {
	Layout string
	Input  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("wrong date format. Expected %s. Provided: %s", e.Layout, e.Input)
}

type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unexpected currency name: %s", e.Code)
}
