package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Student identifier: e.g. 1JS20IS001
	USNPattern = `^[0-9][A-Z]{2}[0-9]{2}[A-Z]{2}[0-9]{3}$`

	// Subject identifier: e.g. CS857
	SIDPattern = `^[A-Z]{2,4}[0-9]{1,4}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	USN *regexp.Regexp
	SID *regexp.Regexp
}{
	USN: regexp.MustCompile(USNPattern),
	SID: regexp.MustCompile(SIDPattern),
}

// RegisterCustomValidators installs the domain validators on the given
// validator engine. Used with gin's binding engine at bootstrap.
func RegisterCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("usn", validateUSN); err != nil {
		return err
	}
	if err := v.RegisterValidation("classdate", validateClassDate); err != nil {
		return err
	}
	return nil
}

func validateUSN(fl validator.FieldLevel) bool {
	return CompiledPatterns.USN.MatchString(fl.Field().String())
}

// validateClassDate accepts calendar dates in 2006-01-02 form only.
func validateClassDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
