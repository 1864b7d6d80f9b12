package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a request DTO and returns a message naming the first
// failing field and rule.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			first := vErrs[0]
			return fmt.Errorf("field %q failed on rule %q", first.Field(), first.Tag())
		}
		return err
	}
	return nil
}
