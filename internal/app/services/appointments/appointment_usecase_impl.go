package appointments

import (
	"context"
	"cura-booking-service/internal/app/config"
	"cura-booking-service/internal/app/contracts"
	"cura-booking-service/internal/pkg/constvars"
	"cura-booking-service/internal/pkg/dto/requests"
	"cura-booking-service/internal/pkg/dto/responses"
	"cura-booking-service/internal/pkg/exceptions"
	"cura-booking-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	Booking config.AppBooking
	Log     *zap.Logger
}

func NewAppointmentUsecase(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		Booking: internalConfig.Booking,
		Log:     logger,
	}
}

type formStep struct {
	name     string
	selector string
	run      func(page contracts.BrowserPage) error
}

// formSteps lists the interactions in the order the page requires them.
func (uc *appointmentUsecase) formSteps(request *requests.AppointmentRequest) []formStep {
	return []formStep{
		{"open appointment form", constvars.SelectorMakeAppointmentButton, func(p contracts.BrowserPage) error {
			return p.Click(constvars.SelectorMakeAppointmentButton)
		}},
		{"enter username", constvars.SelectorUsernameInput, func(p contracts.BrowserPage) error {
			return p.Fill(constvars.SelectorUsernameInput, uc.Booking.Username)
		}},
		{"enter password", constvars.SelectorPasswordInput, func(p contracts.BrowserPage) error {
			return p.Fill(constvars.SelectorPasswordInput, uc.Booking.Password)
		}},
		{"submit login", constvars.SelectorPasswordInput, func(p contracts.BrowserPage) error {
			return p.Press(constvars.SelectorPasswordInput, constvars.KeyboardEnter)
		}},
		{"select facility", constvars.SelectorFacilitySelect, func(p contracts.BrowserPage) error {
			return p.SelectOption(constvars.SelectorFacilitySelect, uc.Booking.Facility)
		}},
		{"check readmission", constvars.SelectorReadmissionCheckbox, func(p contracts.BrowserPage) error {
			return p.Click(constvars.SelectorReadmissionCheckbox)
		}},
		{"choose program", constvars.SelectorProgramNoneRadio, func(p contracts.BrowserPage) error {
			return p.Click(constvars.SelectorProgramNoneRadio)
		}},
		{"enter visit date", constvars.SelectorVisitDateInput, func(p contracts.BrowserPage) error {
			return p.Fill(constvars.SelectorVisitDateInput, request.VisitDate)
		}},
		{"enter comment", constvars.SelectorCommentInput, func(p contracts.BrowserPage) error {
			return p.Fill(constvars.SelectorCommentInput, request.Comment)
		}},
		{"book appointment", constvars.SelectorBookAppointmentButton, func(p contracts.BrowserPage) error {
			return p.Click(constvars.SelectorBookAppointmentButton)
		}},
	}
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, page contracts.BrowserPage, request *requests.AppointmentRequest) (responses.ConfirmationRecord, error) {
	runID, _ := ctx.Value(constvars.CONTEXT_RUN_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingFacilityKey, uc.Booking.Facility),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error validating request",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
		return responses.ConfirmationRecord{}, exceptions.ErrInputValidation(err)
	}

	for _, step := range uc.formSteps(request) {
		if err := ctx.Err(); err != nil {
			return responses.ConfirmationRecord{}, err
		}

		uc.Log.Debug("appointmentUsecase.BookAppointment running step",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.String(constvars.LoggingStepKey, step.name),
			zap.String(constvars.LoggingSelectorKey, step.selector),
		)

		if err := step.run(page); err != nil {
			uc.Log.Error("appointmentUsecase.BookAppointment error running step",
				zap.String(constvars.LoggingRunIDKey, runID),
				zap.String(constvars.LoggingStepKey, step.name),
				zap.String(constvars.LoggingSelectorKey, step.selector),
				zap.Error(err),
			)
			return responses.ConfirmationRecord{}, exceptions.ErrFormStep(err, step.name, step.selector)
		}
	}

	record, err := uc.readConfirmation(page)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error reading confirmation",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
		return responses.ConfirmationRecord{}, err
	}

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingFacilityKey, record.Facility),
		zap.String(constvars.LoggingVisitDateKey, record.VisitDate),
	)
	return record, nil
}

func (uc *appointmentUsecase) readConfirmation(page contracts.BrowserPage) (responses.ConfirmationRecord, error) {
	var record responses.ConfirmationRecord
	fields := []struct {
		selector string
		target   *string
	}{
		{constvars.SelectorConfirmationFacility, &record.Facility},
		{constvars.SelectorConfirmationReadmission, &record.Readmission},
		{constvars.SelectorConfirmationProgram, &record.Program},
		{constvars.SelectorConfirmationVisitDate, &record.VisitDate},
		{constvars.SelectorConfirmationComment, &record.Comment},
	}

	for _, field := range fields {
		text, err := page.InnerText(field.selector)
		if err != nil {
			return responses.ConfirmationRecord{}, exceptions.ErrConfirmationRead(err, field.selector)
		}
		*field.target = strings.TrimSpace(text)
	}
	return record, nil
}
