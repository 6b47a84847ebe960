package mailer

import (
	"context"
	"cura-booking-service/internal/app/contracts"
	"cura-booking-service/internal/app/drivers/mailer"
	"cura-booking-service/internal/pkg/constvars"
	"cura-booking-service/internal/pkg/dto/requests"
	"cura-booking-service/internal/pkg/exceptions"
	"fmt"

	"go.uber.org/zap"
)

type mailerService struct {
	Client *mailer.SMTPClient
	Log    *zap.Logger
}

func NewMailerService(client *mailer.SMTPClient, logger *zap.Logger) contracts.MailerService {
	return &mailerService{
		Client: client,
		Log:    logger,
	}
}

// BuildPlainTextMessage renders the RFC 5322 message handed to the SMTP server.
func BuildPlainTextMessage(request *requests.EmailPayload) []byte {
	return []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, request.From, request.To, request.Subject, request.Body))
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	runID, _ := ctx.Value(constvars.CONTEXT_RUN_ID_KEY).(string)

	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingRecipientKey, request.To),
		zap.String(constvars.LoggingSMTPHostKey, s.Client.Host),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.Client.SendMail(s.Client.Addr(), s.Client.Auth, request.From, []string{request.To}, BuildPlainTextMessage(request))
	if err != nil {
		s.Log.Error("mailerService.SendEmail error sending email",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.String(constvars.LoggingSMTPHostKey, s.Client.Host),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	s.Log.Info("mailerService.SendEmail succeeded",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingRecipientKey, request.To),
	)
	return nil
}
