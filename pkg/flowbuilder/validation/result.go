// Package validation decides whether a workflow graph is a valid, executable
// program. Every function here is pure: inputs are never mutated, nothing is
// logged, and an invalid graph is an ordinary return value, not an error.
package validation

// ValidationError is one failed rule. ID names the rule (stable across runs
// of an unchanged graph) and NodeID is set when the failure belongs to a node.
type ValidationError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	NodeID  string `json:"nodeId,omitempty"`
}

// ValidationResult always satisfies IsValid == (len(Errors) == 0).
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors"`
}

func newResult(errs []ValidationError) ValidationResult {
	if errs == nil {
		errs = []ValidationError{}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// Valid is the result with no errors.
func Valid() ValidationResult {
	return newResult(nil)
}

// Merge concatenates results in order.
func Merge(results ...ValidationResult) ValidationResult {
	var errs []ValidationError
	for _, r := range results {
		errs = append(errs, r.Errors...)
	}
	return newResult(errs)
}

// IDs lists the rule ids of r in order.
func (r ValidationResult) IDs() []string {
	ids := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		ids = append(ids, e.ID)
	}
	return ids
}
