package exceptions

import (
	"cura-booking-service/internal/pkg/utils"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomErrorKeepsCause(t *testing.T) {
	cause := errors.New("Timeout 30000ms exceeded")

	err := ErrFormStep(cause, "select facility", "#combo_facility")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "the appointment could not be booked", err.ClientMessage)
	assert.Equal(t, `form step "select facility" failed on selector #combo_facility: Timeout 30000ms exceeded`, err.DevMessage)
	assert.Contains(t, err.Location.File, "error_test.go", "location should point at the caller of the constructor")
	assert.Contains(t, err.Location.FunctionName, "TestCustomErrorKeepsCause")
}

func TestCustomErrorWithoutCause(t *testing.T) {
	err := BuildNewCustomError(nil, "operator message", "dev message")

	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "dev message", err.DevMessage)
}

type appointmentInput struct {
	VisitDate string `validate:"required,visit_date"`
	Comment   string `validate:"max=5"`
}

func TestFormatFirstValidationError(t *testing.T) {
	t.Run("Custom Tag", func(t *testing.T) {
		err := utils.ValidateStruct(appointmentInput{VisitDate: "31/12/2025"})
		require.Error(t, err)
		assert.Equal(t, "visit_date must be a valid date in MM/DD/YYYY format", FormatFirstValidationError(err))
	})

	t.Run("Tag With Param", func(t *testing.T) {
		err := utils.ValidateStruct(appointmentInput{VisitDate: "12/31/2025", Comment: "too long"})
		require.Error(t, err)
		assert.Equal(t, "comment maximum at 5 characters long", FormatFirstValidationError(err))
	})

	t.Run("Not A Validation Error", func(t *testing.T) {
		assert.Equal(t, "the appointment details are invalid", FormatFirstValidationError(errors.New("boom")))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, "the appointment details are invalid", FormatFirstValidationError(nil))
	})
}

func TestInputValidationUsesFirstError(t *testing.T) {
	err := ErrInputValidation(utils.ValidateStruct(appointmentInput{}))

	assert.Equal(t, "visit_date is required", err.ClientMessage)
}
