package validator_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customvalidator "github.com/spounge-ai/sealbox/pkg/validator"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidators(v))
	return v
}

func TestProviderIDValidation(t *testing.T) {
	v := newValidate(t)

	for _, ok := range []string{"aws", "gcp-kms", "vault2"} {
		assert.NoError(t, v.Var(ok, "provider_id"), ok)
	}

	for _, bad := range []string{"", "AWS", "2aws", "aws kms", "-aws"} {
		assert.Error(t, v.Var(bad, "provider_id"), bad)
	}
}

func TestKeyRefValidation(t *testing.T) {
	v := newValidate(t)

	valid := []string{
		"alias/sealbox",
		"alias/team/payments",
		"arn:aws:kms:us-east-1:123456789012:key/1234abcd-12ab-34cd-56ef-1234567890ab",
		"arn:aws:kms:us-east-1:123456789012:alias/sealbox",
		"1234abcd-12ab-34cd-56ef-1234567890ab",
		"custom-key",
	}
	for _, ok := range valid {
		assert.NoError(t, v.Var(ok, "keyref"), ok)
	}

	invalid := []string{
		"",
		"alias/",
		"not a key reference!!",
		"arn:aws:s3:::sealbox-blobs",
	}
	for _, bad := range invalid {
		assert.Error(t, v.Var(bad, "keyref"), bad)
	}
}
