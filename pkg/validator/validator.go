package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	providerIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	keyARNRegex   = regexp.MustCompile(`^arn:aws:kms:[a-z0-9-]*:[0-9]{12}:(key|alias)/.+$`)
	keyAliasRegex = regexp.MustCompile(`^alias/[A-Za-z0-9/_-]+$`)
	keyNameRegex  = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// isProviderID checks that a string is a plausible provider identifier.
// Whether the identifier is recognized is the provider factory's call.
func isProviderID(fl validator.FieldLevel) bool {
	return providerIDRegex.MatchString(fl.Field().String())
}

// isKeyRef checks that a string is shaped like a master-key reference: a key
// or alias ARN, an alias name, or a bare key identifier. It deliberately
// stops at shape; whether the vault resolves the reference is provider-owned.
func isKeyRef(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return keyARNRegex.MatchString(v) || keyAliasRegex.MatchString(v) || keyNameRegex.MatchString(v)
}

// RegisterCustomValidators registers custom validation functions with the validator.
func RegisterCustomValidators(validate *validator.Validate) error {
	if err := validate.RegisterValidation("provider_id", isProviderID); err != nil {
		return err
	}
	return validate.RegisterValidation("keyref", isKeyRef)
}
