package catalog

// validation.go provides field-level validation for draft games before
// submission.
//
// Per-field rules (required, max length, enum membership, date validity)
// are declared as validator/v10 struct tags on DraftGame. UPC uniqueness
// needs knowledge of the console's existing games and is checked
// explicitly, as is the batch-level minimum-count rule.
//
// Consumers branch on the violation Kind, never on the message text; the
// message is templated for end-user display only.

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ViolationKind classifies a validation failure. The set is closed.
type ViolationKind string

const (
	KindRequired    ViolationKind = "required"     // empty or whitespace-only
	KindMaxLength   ViolationKind = "max-length"   // exceeds the field's character ceiling
	KindEnum        ViolationKind = "enum"         // value not in the fixed allowed set
	KindInvalidDate ViolationKind = "invalid-date" // does not parse as a calendar date
	KindDuplicate   ViolationKind = "duplicate"    // UPC already exists for this console
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// BatchViolations collects every violation found in one submission
// attempt: batch-level rules plus per-record field violations keyed by
// record index.
type BatchViolations struct {
	Batch   []Violation         `json:"batch,omitempty"`
	Records map[int][]Violation `json:"records,omitempty"`
}

// OK reports whether the batch passed validation entirely.
func (b BatchViolations) OK() bool {
	return len(b.Batch) == 0 && len(b.Records) == 0
}

// First returns the index and field of the first offending record, for
// input focus. Returns (-1, "") when there are no record violations.
func (b BatchViolations) First() (int, string) {
	first := -1
	for i := range b.Records {
		if first == -1 || i < first {
			first = i
		}
	}
	if first == -1 {
		return -1, ""
	}
	return first, b.Records[first][0].Field
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Report fields by their json (form/CSV) names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		if i := strings.IndexByte(name, ','); i >= 0 {
			return name[:i]
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("gamedate", func(fl validator.FieldLevel) bool {
		_, ok := ParseDate(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}

	return v
}

// ValidateDraft checks a single draft against every field rule plus UPC
// uniqueness against the console's existing games. An empty result means
// the draft may be submitted.
func ValidateDraft(d DraftGame, existingUPCs map[string]bool) []Violation {
	var violations []Violation

	if err := validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			// Non-field error from the validator itself; should not
			// happen for a plain struct, surface it as-is.
			violations = append(violations, Violation{
				Field:   "",
				Kind:    KindRequired,
				Message: err.Error(),
			})
			return violations
		}
		for _, fe := range fieldErrs {
			violations = append(violations, toViolation(fe))
		}
	}

	if upc := strings.TrimSpace(d.UPC); upc != "" && existingUPCs[upc] {
		violations = append(violations, Violation{
			Field:   "upc",
			Kind:    KindDuplicate,
			Message: "There is already a game with this UPC.",
		})
	}

	return violations
}

// ValidateBatch checks every draft plus the batch-level minimum-count
// rule. Validation is all-or-nothing: callers must not submit any record
// while the result is not OK.
func ValidateBatch(drafts []DraftGame, existingUPCs map[string]bool) BatchViolations {
	result := BatchViolations{Records: make(map[int][]Violation)}
	if len(drafts) < 1 {
		result.Batch = append(result.Batch, Violation{
			Kind:    KindRequired,
			Message: "You must have at least one game added.",
		})
	}
	for i, d := range drafts {
		if vs := ValidateDraft(d, existingUPCs); len(vs) > 0 {
			result.Records[i] = vs
		}
	}
	if len(result.Records) == 0 {
		result.Records = nil
	}
	return result
}

// toViolation maps a validator field error to a Violation with a
// templated, user-facing message.
func toViolation(fe validator.FieldError) Violation {
	field := fe.Field()
	label := FieldLabels[field]
	if label == "" {
		label = field
	}

	switch fe.Tag() {
	case "required":
		return Violation{field, KindRequired, fmt.Sprintf("%s is a required field.", label)}
	case "notblank":
		return Violation{field, KindRequired, fmt.Sprintf("%s cannot be empty.", label)}
	case "max":
		return Violation{field, KindMaxLength, fmt.Sprintf("%s cannot be longer than %s characters.", label, fe.Param())}
	case "oneof":
		allowed := strings.Join(strings.Fields(fe.Param()), ", ")
		return Violation{field, KindEnum, fmt.Sprintf("%s must be one of %s.", label, allowed)}
	case "gamedate":
		return Violation{field, KindInvalidDate, fmt.Sprintf("%s is not a valid date.", label)}
	default:
		return Violation{field, KindRequired, fmt.Sprintf("%s is invalid.", label)}
	}
}
