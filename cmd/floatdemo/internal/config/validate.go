package config

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/go-drift/floatlabel/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fieldNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("field_name", func(fl validator.FieldLevel) bool {
			return fieldNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			_, err := time.ParseDuration(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("rules", func(fl validator.FieldLevel) bool {
			return checkRules(v, fl.Field().String()) == nil
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks a form description.
func Validate(cfg *Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
		err = stderrors.New(strings.Join(msgs, "; "))
	}
	return errors.New("config.Validate", errors.KindConfig, err)
}

// checkRules reports whether rules is a usable validator tag string. The
// validator panics on unknown tags.
func checkRules(v *validator.Validate, rules string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid rules %q: %v", rules, r)
		}
	}()
	_ = v.Var("", rules)
	return nil
}

// Validator returns a field validator for rules, producing the message shown
// under the field. Empty rules accept everything.
func Validator(rules string) func(string) string {
	if rules == "" {
		return nil
	}
	v := validatorInstance()
	return func(value string) string {
		err := v.Var(value, rules)
		if err == nil {
			return ""
		}
		var verrs validator.ValidationErrors
		if !stderrors.As(err, &verrs) || len(verrs) == 0 {
			return "is invalid"
		}
		return message(verrs[0])
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Use at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Use at most %s characters", fe.Param())
	case "numeric", "number":
		return "Digits only"
	default:
		return fmt.Sprintf("Failed %s check", fe.Tag())
	}
}
