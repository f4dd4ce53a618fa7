package validator

import (
	"testing"

	"vhiem/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AwardPointsAcceptsZeroDelta(t *testing.T) {
	v := New()

	// Zero is a legal point delta; only the action is mandatory.
	err := v.Validate(&usecase.AwardPointsInput{Points: 0, Action: "manual_adjust"})

	assert.NoError(t, err)
}

func TestValidate_AwardPointsRequiresAction(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.AwardPointsInput{Points: 10})

	assert.Error(t, err)
}

func TestValidate_RejectsUnknownProfileRole(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateProfileInput{Role: "admin", DisplayName: "x"})

	assert.Error(t, err)
}
