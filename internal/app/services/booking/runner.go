package booking

import (
	"context"
	"cura-booking-service/internal/app/contracts"
	"cura-booking-service/internal/pkg/constvars"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner drives one booking from operator input to the two confirmations.
type Runner struct {
	Prompter            contracts.Prompter
	SessionStarter      contracts.SessionStarter
	AppointmentUsecase  contracts.AppointmentUsecase
	NotificationUsecase contracts.NotificationUsecase
	Log                 *zap.Logger
}

func NewRunner(
	prompter contracts.Prompter,
	sessionStarter contracts.SessionStarter,
	appointmentUsecase contracts.AppointmentUsecase,
	notificationUsecase contracts.NotificationUsecase,
	logger *zap.Logger,
) *Runner {
	return &Runner{
		Prompter:            prompter,
		SessionStarter:      sessionStarter,
		AppointmentUsecase:  appointmentUsecase,
		NotificationUsecase: notificationUsecase,
		Log:                 logger,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	ctx = context.WithValue(ctx, constvars.CONTEXT_RUN_ID_KEY, runID)

	r.Log.Info("Runner.Run called",
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	request, err := r.Prompter.PromptAppointment(ctx)
	if err != nil {
		r.Log.Error("Runner.Run error reading operator input",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
		return err
	}

	session, err := r.SessionStarter.StartSession(ctx)
	if err != nil {
		return err
	}

	record, err := r.AppointmentUsecase.BookAppointment(ctx, session, request)
	if closeErr := session.Close(); closeErr != nil {
		r.Log.Warn("Runner.Run error closing browser session",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.Error(closeErr),
		)
	}
	if err != nil {
		return err
	}

	if err := r.NotificationUsecase.SendConfirmation(ctx, record); err != nil {
		return err
	}

	r.Log.Info("Runner.Run succeeded",
		zap.String(constvars.LoggingRunIDKey, runID),
	)
	return nil
}
