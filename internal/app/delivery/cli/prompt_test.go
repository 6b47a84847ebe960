package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptedAsk(answers []string, err error) (AskOneFunc, *[]string) {
	var messages []string
	ask := func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		input := p.(*survey.Input)
		messages = append(messages, input.Message)
		if err != nil {
			return err
		}
		*response.(*string) = answers[len(messages)-1]
		return nil
	}
	return ask, &messages
}

func TestPromptAppointment(t *testing.T) {
	t.Run("Reads Date Then Comment", func(t *testing.T) {
		ask, messages := scriptedAsk([]string{" 12/31/2025 ", "test"}, nil)
		prompter := NewPrompterWithAsk(ask)

		request, err := prompter.PromptAppointment(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "12/31/2025", request.VisitDate)
		assert.Equal(t, "test", request.Comment)
		assert.Equal(t, []string{
			"Enter appointment date in MM/DD/YYYY format:",
			"Add comments for the doctor:",
		}, *messages)
	})

	t.Run("Interrupt Cancels", func(t *testing.T) {
		ask, _ := scriptedAsk(nil, terminal.InterruptErr)
		prompter := NewPrompterWithAsk(ask)

		_, err := prompter.PromptAppointment(context.Background())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Terminal Error Propagates", func(t *testing.T) {
		cause := errors.New("not a terminal")
		ask, _ := scriptedAsk(nil, cause)
		prompter := NewPrompterWithAsk(ask)

		_, err := prompter.PromptAppointment(context.Background())
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "failed to read visit_date from terminal")
	})
}

func TestValidateVisitDate(t *testing.T) {
	cases := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{"Valid Date", "12/31/2025", false},
		{"Surrounding Spaces", " 01/15/2026 ", false},
		{"ISO Date", "2025-12-31", true},
		{"Impossible Day", "02/30/2025", true},
		{"Empty", "", true},
		{"Not A String", 42, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateVisitDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
