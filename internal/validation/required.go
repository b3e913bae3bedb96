package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

var (
	draftValidator = newDraftValidator()
	bulletPart     = regexp.MustCompile(`^(jobs\[\d+\]\.bullets\[\d+\])\.(\w+)$`)
)

func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateRequired reports missing required fields: the student's name, at least
// one contact method, the objective, and every part of each measurable bullet.
func ValidateRequired(draft *types.ResumeDraft) []types.Violation {
	if draft == nil {
		return []types.Violation{{
			Field:    "draft",
			Type:     types.ViolationRequired,
			Severity: types.SeverityError,
			Details:  "no draft to validate",
		}}
	}

	err := draftValidator.Struct(draft)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []types.Violation{{
			Field:    "draft",
			Type:     types.ViolationInvalid,
			Severity: types.SeverityError,
			Details:  err.Error(),
		}}
	}

	var (
		v             []types.Violation
		contactMissed bool
		incomplete    = make(map[string][]string)
	)
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		switch {
		case fe.Tag() == "required_without":
			contactMissed = true
		case fe.Tag() == "email":
			v = append(v, types.Violation{
				Field:    types.FieldEmail,
				Type:     types.ViolationInvalid,
				Severity: types.SeverityError,
				Details:  "email address is not valid",
				Value:    fmt.Sprint(fe.Value()),
			})
		case bulletPart.MatchString(field):
			m := bulletPart.FindStringSubmatch(field)
			incomplete[m[1]] = append(incomplete[m[1]], m[2])
		default:
			v = append(v, types.Violation{
				Field:    field,
				Type:     types.ViolationRequired,
				Severity: types.SeverityError,
				Details:  field + " is required",
			})
		}
	}

	if contactMissed {
		v = append(v, types.Violation{
			Field:    types.FieldContact,
			Type:     types.ViolationRequired,
			Severity: types.SeverityError,
			Details:  "at least one contact method (phone or email) is required",
		})
	}

	bullets := make([]string, 0, len(incomplete))
	for b := range incomplete {
		bullets = append(bullets, b)
	}
	sort.Strings(bullets)
	for _, b := range bullets {
		v = append(v, types.Violation{
			Field:    b,
			Type:     types.ViolationIncomplete,
			Severity: types.SeverityError,
			Details:  "measurable bullet is missing: " + strings.Join(incomplete[b], ", "),
		})
	}
	return v
}

// fieldPath turns "ResumeDraft.header.name" into "header.name".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
