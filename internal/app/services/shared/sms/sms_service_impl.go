package sms

import (
	"context"
	"cura-booking-service/internal/app/contracts"
	"cura-booking-service/internal/pkg/constvars"
	"cura-booking-service/internal/pkg/dto/requests"
	"cura-booking-service/internal/pkg/dto/responses"
	"cura-booking-service/internal/pkg/exceptions"
	"cura-booking-service/internal/pkg/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// MessageCreator is the part of the Twilio v2010 API the service calls.
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type smsService struct {
	Messages MessageCreator
	Log      *zap.Logger
}

func NewSMSService(client *twilio.RestClient, logger *zap.Logger) contracts.SMSService {
	return NewSMSServiceWithCreator(client.Api, logger)
}

func NewSMSServiceWithCreator(messages MessageCreator, logger *zap.Logger) contracts.SMSService {
	return &smsService{
		Messages: messages,
		Log:      logger,
	}
}

func (s *smsService) SendMessage(ctx context.Context, request *requests.SMSMessage) (*responses.SMSReceipt, error) {
	runID, _ := ctx.Value(constvars.CONTEXT_RUN_ID_KEY).(string)

	s.Log.Info("smsService.SendMessage called",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingRecipientKey, request.To),
	)

	for _, number := range []string{request.From, request.To} {
		if err := utils.ValidateVar(number, "required,e164_phone"); err != nil {
			s.Log.Error("smsService.SendMessage error validating number",
				zap.String(constvars.LoggingRunIDKey, runID),
				zap.String("number", number),
				zap.Error(err),
			)
			return nil, exceptions.ErrSMSInvalidNumber(err, number)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(request.From)
	params.SetTo(request.To)
	params.SetBody(request.Body)

	message, err := s.Messages.CreateMessage(params)
	if err != nil {
		s.Log.Error("smsService.SendMessage error creating message",
			zap.String(constvars.LoggingRunIDKey, runID),
			zap.String(constvars.LoggingRecipientKey, request.To),
			zap.Error(err),
		)
		return nil, exceptions.ErrSMSSendMessage(err, request.To)
	}

	receipt := &responses.SMSReceipt{}
	if message != nil {
		if message.Sid != nil {
			receipt.SID = *message.Sid
		}
		if message.Status != nil {
			receipt.Status = *message.Status
		}
	}

	s.Log.Info("smsService.SendMessage succeeded",
		zap.String(constvars.LoggingRunIDKey, runID),
		zap.String(constvars.LoggingRecipientKey, request.To),
		zap.String(constvars.LoggingMessageSIDKey, receipt.SID),
	)
	return receipt, nil
}
