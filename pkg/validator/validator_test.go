package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	errs := ValidateLogin("a@x.com", "secret123")
	assert.False(t, errs.HasErrors())

	errs = ValidateLogin("", "")
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])

	errs = ValidateLogin("not-an-email", "pw")
	assert.Equal(t, "Please include a valid email", errs["email"])
}

func TestValidateRegister(t *testing.T) {
	t.Parallel()

	errs := ValidateRegister("Ana", "a@x.com", "secret123")
	assert.False(t, errs.HasErrors())

	errs = ValidateRegister("", "a@x.com", "short")
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "password")
	assert.NotContains(t, errs, "email")
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	errs := ValidateProfile("Developer", []string{"go"})
	assert.False(t, errs.HasErrors())

	errs = ValidateProfile("  ", []string{})
	assert.Equal(t, "Status is required", errs["status"])
	assert.Equal(t, "Skills is required", errs["skills"])

	// nil means skills were omitted entirely; an update may do that.
	errs = ValidateProfile("Developer", nil)
	assert.False(t, errs.HasErrors())
}

func TestValidateExperience(t *testing.T) {
	t.Parallel()

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	errs := ValidateExperience("Engineer", "Acme", from)
	assert.False(t, errs.HasErrors())

	errs = ValidateExperience("", "", time.Time{})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "company")
	assert.Contains(t, errs, "from")
}

func TestValidateEducation(t *testing.T) {
	t.Parallel()

	from := time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)

	errs := ValidateEducation("MIT", "BSc", from)
	assert.False(t, errs.HasErrors())

	errs = ValidateEducation("", "", time.Time{})
	assert.Contains(t, errs, "school")
	assert.Contains(t, errs, "degree")
	assert.Contains(t, errs, "from")
}
