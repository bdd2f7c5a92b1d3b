package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

const (
	minCustomNameLen = 3
	minFieldNameLen  = 2
	minFieldLabelLen = 2
)

var (
	alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	httpURL      = regexp.MustCompile(`^https?://.+`)
)

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func trimmedLen(s string) int { return utf8.RuneCountInString(strings.TrimSpace(s)) }

func checkCustomName(customName string) []ValidationError {
	if trimmedLen(customName) < minCustomNameLen {
		return []ValidationError{{
			ID:      "customName",
			Message: fmt.Sprintf("Custom name is required & must be at least %d characters long", minCustomNameLen),
		}}
	}
	return nil
}

func ValidateFormNode(d domain.FormData) ValidationResult {
	errs := checkCustomName(d.CustomName)

	for _, f := range d.Fields {
		nameID := "field-name-" + f.ID
		if blank(f.Name) {
			errs = append(errs, ValidationError{ID: nameID, Message: "Field name is required"})
		} else {
			name := strings.TrimSpace(f.Name)
			if !alphanumeric.MatchString(name) || len(name) < minFieldNameLen {
				errs = append(errs, ValidationError{
					ID:      nameID,
					Message: fmt.Sprintf("Field name must be alphanumeric, min %d characters", minFieldNameLen),
				})
			}
		}

		labelID := "field-label-" + f.ID
		if blank(f.Label) {
			errs = append(errs, ValidationError{ID: labelID, Message: "Field label is required"})
		} else if trimmedLen(f.Label) < minFieldLabelLen {
			errs = append(errs, ValidationError{
				ID:      labelID,
				Message: fmt.Sprintf("Field label must be at least %d characters long", minFieldLabelLen),
			})
		}
		// Options of dropdown fields are not checked.
	}

	return newResult(errs)
}

func ValidateConditionalNode(d domain.ConditionalData) ValidationResult {
	errs := checkCustomName(d.CustomName)

	if blank(d.FieldToEvaluate) {
		errs = append(errs, ValidationError{ID: "fieldToEvaluate", Message: "Field to evaluate is required"})
	}
	if d.Operator == "" {
		errs = append(errs, ValidationError{ID: "operator", Message: "Operator is required"})
	}
	// is_empty compares against nothing, so it takes no value.
	if d.Operator != "" && d.Operator != domain.OpIsEmpty && blank(d.Value) {
		errs = append(errs, ValidationError{ID: "value", Message: "Value is required for this operator"})
	}

	return newResult(errs)
}

func ValidateApiNode(d domain.ApiData) ValidationResult {
	var errs []ValidationError

	if blank(d.URL) {
		errs = append(errs, ValidationError{ID: "url", Message: "URL is required"})
	} else if !httpURL.MatchString(strings.TrimSpace(d.URL)) {
		errs = append(errs, ValidationError{ID: "url", Message: "URL must start with http:// or https://"})
	}
	if d.Method == "" {
		errs = append(errs, ValidationError{ID: "method", Message: "HTTP method is required"})
	}

	return newResult(errs)
}

// ValidateNode checks a node's own payload. Kinds without configuration,
// including kinds this build does not know, are always valid.
func ValidateNode(data domain.NodeData) ValidationResult {
	switch d := data.(type) {
	case domain.FormData:
		return ValidateFormNode(d)
	case domain.ConditionalData:
		return ValidateConditionalNode(d)
	case domain.ApiData:
		return ValidateApiNode(d)
	case domain.StartData, domain.EndData, domain.UnknownData:
		return Valid()
	default:
		return Valid()
	}
}

// ValidateNodeKind is ValidateNode for callers holding a kind string and a
// raw JSON payload. The error reports a payload that could not be decoded.
func ValidateNodeKind(kind string, payload []byte) (ValidationResult, error) {
	data, err := domain.DecodeNodeData(domain.NodeKind(kind), payload)
	if err != nil {
		return ValidationResult{}, err
	}
	return ValidateNode(data), nil
}
