package notifications

import (
	"context"
	"cura-booking-service/internal/app/config"
	"cura-booking-service/internal/app/contracts"
	"cura-booking-service/internal/pkg/constvars"
	"cura-booking-service/internal/pkg/dto/requests"
	"cura-booking-service/internal/pkg/dto/responses"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	MailerService contracts.MailerService
	SMSService    contracts.SMSService
	Notification  config.Notification
	Log           *zap.Logger
}

func NewNotificationUsecase(
	mailerService contracts.MailerService,
	smsService contracts.SMSService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	return &notificationUsecase{
		MailerService: mailerService,
		SMSService:    smsService,
		Notification:  internalConfig.Notification,
		Log:           logger,
	}
}

func (uc *notificationUsecase) RenderConfirmation(record responses.ConfirmationRecord) string {
	return fmt.Sprintf(constvars.ConfirmationBodyFormat,
		record.Facility,
		record.Readmission,
		record.Program,
		record.VisitDate,
		record.Comment,
	)
}

// SendConfirmation always attempts both channels, email first. A failure in
// one channel is reported together with the outcome of the other.
func (uc *notificationUsecase) SendConfirmation(ctx context.Context, record responses.ConfirmationRecord) error {
	runID, _ := ctx.Value(constvars.CONTEXT_RUN_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.SendConfirmation called",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.Any(constvars.LoggingConfirmationKey, record.Map()),
	)

	body := uc.RenderConfirmation(record)
	var errs []error

	err := uc.MailerService.SendEmail(ctx, &requests.EmailPayload{
		From:    uc.Notification.EmailSender,
		To:      uc.Notification.EmailReceiver,
		Subject: constvars.EmailConfirmationSubject,
		Body:    body,
	})
	if err != nil {
		uc.Log.Error("notificationUsecase.SendConfirmation error sending email",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.String(constvars.LoggingChannelKey, constvars.ChannelEmail),
			zap.Error(err),
		)
		errs = append(errs, fmt.Errorf("%s channel: %w", constvars.ChannelEmail, err))
	} else {
		uc.Log.Info("notificationUsecase.SendConfirmation sent confirmation email",
			zap.String(constvars.LoggingRunIDKey, runID),
		)
	}

	receipt, err := uc.SMSService.SendMessage(ctx, &requests.SMSMessage{
		From: uc.Notification.SMSFromNumber,
		To:   uc.Notification.SMSToNumber,
		Body: body,
	})
	if err != nil {
		uc.Log.Error("notificationUsecase.SendConfirmation error sending SMS",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.String(constvars.LoggingChannelKey, constvars.ChannelSMS),
			zap.Error(err),
		)
		errs = append(errs, fmt.Errorf("%s channel: %w", constvars.ChannelSMS, err))
	} else {
		uc.Log.Info("notificationUsecase.SendConfirmation message sent after booking",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.String(constvars.LoggingMessageSIDKey, receipt.SID),
		)
	}

	return errors.Join(errs...)
}
