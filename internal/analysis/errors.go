package analysis

import "fmt"

// AggregationError signals a contract violation from the cleaning stage: an
// aggregate was handed input that cannot satisfy its preconditions. It is
// fatal and indicates schema drift upstream, not bad data values.
type AggregationError struct {
	Op  string
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregate %s: %v", e.Op, e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

func contractViolation(op, msg string) error {
	return &AggregationError{Op: op, Err: fmt.Errorf("%s", msg)}
}
