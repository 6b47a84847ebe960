package cli

import (
	"context"
	"cura-booking-service/internal/app/contracts"
	"cura-booking-service/internal/pkg/constvars"
	"cura-booking-service/internal/pkg/dto/requests"
	"cura-booking-service/internal/pkg/exceptions"
	"cura-booking-service/internal/pkg/utils"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// AskOneFunc matches survey.AskOne so prompts can run without a terminal.
type AskOneFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

type surveyPrompter struct {
	Ask AskOneFunc
}

func NewSurveyPrompter() contracts.Prompter {
	return &surveyPrompter{Ask: survey.AskOne}
}

func NewPrompterWithAsk(ask AskOneFunc) contracts.Prompter {
	return &surveyPrompter{Ask: ask}
}

func validateVisitDate(ans interface{}) error {
	value, ok := ans.(string)
	if !ok {
		return fmt.Errorf("cannot validate %T as a date", ans)
	}
	request := requests.AppointmentRequest{VisitDate: strings.TrimSpace(value)}
	if err := utils.ValidateStruct(request); err != nil {
		return errors.New(exceptions.FormatFirstValidationError(err))
	}
	return nil
}

func (p *surveyPrompter) input(ctx context.Context, field, message string, opts ...survey.AskOpt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := p.Ask(&survey.Input{Message: message}, &out, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", exceptions.ErrPromptInput(context.Canceled, field)
		}
		return "", exceptions.ErrPromptInput(err, field)
	}
	return strings.TrimSpace(out), nil
}

func (p *surveyPrompter) PromptAppointment(ctx context.Context) (*requests.AppointmentRequest, error) {
	visitDate, err := p.input(ctx, constvars.ConfirmationKeyVisitDate, constvars.PromptVisitDateMessage, survey.WithValidator(validateVisitDate))
	if err != nil {
		return nil, err
	}

	comment, err := p.input(ctx, constvars.ConfirmationKeyComment, constvars.PromptCommentMessage)
	if err != nil {
		return nil, err
	}

	return &requests.AppointmentRequest{
		VisitDate: visitDate,
		Comment:   comment,
	}, nil
}
