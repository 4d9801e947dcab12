package extractor

import "fmt"

// StructuralError reports a selector that was required to proceed but
// matched nothing in the document. Optional field misses never produce it.
type StructuralError struct {
	Selector string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("selector %q matched no elements", e.Selector)
}

// recoverExtract converts an unexpected panic inside an extractor into a
// plain error so a malformed document can never crash the caller.
func recoverExtract(what string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s extraction failed: %v", what, r)
	}
}
