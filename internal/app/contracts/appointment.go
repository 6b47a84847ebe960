package contracts

import (
	"context"
	"cura-booking-service/internal/pkg/dto/requests"
	"cura-booking-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, page BrowserPage, request *requests.AppointmentRequest) (responses.ConfirmationRecord, error)
}

type Prompter interface {
	PromptAppointment(ctx context.Context) (*requests.AppointmentRequest, error)
}
