package contracts

import (
	"context"
	"cura-booking-service/internal/pkg/dto/requests"
	"cura-booking-service/internal/pkg/dto/responses"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}

type SMSService interface {
	SendMessage(ctx context.Context, request *requests.SMSMessage) (*responses.SMSReceipt, error)
}

type NotificationUsecase interface {
	RenderConfirmation(record responses.ConfirmationRecord) string
	SendConfirmation(ctx context.Context, record responses.ConfirmationRecord) error
}
