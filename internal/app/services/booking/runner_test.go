package booking

import (
	"context"
	"cura-booking-service/internal/app/config"
	"cura-booking-service/internal/app/contracts"
	"cura-booking-service/internal/app/services/appointments"
	"cura-booking-service/internal/app/services/notifications"
	"cura-booking-service/internal/pkg/constvars"
	"cura-booking-service/internal/pkg/dto/requests"
	"cura-booking-service/internal/pkg/dto/responses"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPrompter struct {
	request *requests.AppointmentRequest
	err     error
}

func (p *stubPrompter) PromptAppointment(ctx context.Context) (*requests.AppointmentRequest, error) {
	return p.request, p.err
}

type stubSession struct {
	calls  []string
	texts  map[string]string
	failOn string
	closed bool
}

func (s *stubSession) act(call, selector string) error {
	s.calls = append(s.calls, call)
	if selector == s.failOn {
		return errors.New("no element matches " + selector)
	}
	return nil
}

func (s *stubSession) Click(selector string) error { return s.act("click "+selector, selector) }

func (s *stubSession) Fill(selector, value string) error {
	return s.act("fill "+selector+"="+value, selector)
}

func (s *stubSession) Press(selector, key string) error {
	return s.act("press "+selector+" "+key, selector)
}

func (s *stubSession) SelectOption(selector, value string) error {
	return s.act("select "+selector+"="+value, selector)
}

func (s *stubSession) InnerText(selector string) (string, error) {
	return s.texts[selector], nil
}

func (s *stubSession) Close() error {
	s.closed = true
	return nil
}

type stubStarter struct {
	session *stubSession
	runID   string
	err     error
}

func (s *stubStarter) StartSession(ctx context.Context) (contracts.BrowserSession, error) {
	s.runID, _ = ctx.Value(constvars.CONTEXT_RUN_ID_KEY).(string)
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

type spyNotifier struct {
	contracts.NotificationUsecase
	records []responses.ConfirmationRecord
}

func (n *spyNotifier) SendConfirmation(ctx context.Context, record responses.ConfirmationRecord) error {
	n.records = append(n.records, record)
	return n.NotificationUsecase.SendConfirmation(ctx, record)
}

type stubMailer struct{ bodies []string }

func (m *stubMailer) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	m.bodies = append(m.bodies, request.Body)
	return nil
}

type stubSMS struct{ bodies []string }

func (s *stubSMS) SendMessage(ctx context.Context, request *requests.SMSMessage) (*responses.SMSReceipt, error) {
	s.bodies = append(s.bodies, request.Body)
	return &responses.SMSReceipt{SID: "SM0001"}, nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Booking: config.AppBooking{
			Username: constvars.BookingDefaultUsername,
			Password: constvars.BookingDefaultPassword,
			Facility: constvars.BookingDefaultFacility,
		},
		Notification: config.Notification{
			EmailSender:   "sender@example.com",
			EmailReceiver: "receiver@example.com",
			SMSFromNumber: constvars.SMSDefaultFromNumber,
			SMSToNumber:   constvars.SMSDefaultToNumber,
		},
	}
}

func stubPageTexts() map[string]string {
	return map[string]string{
		"#facility":             "Hongkong CURA Healthcare Center",
		"#hospital_readmission": "Yes",
		"#program":              "None",
		"#visit_date":           "12/31/2025",
		"#comment":              "test",
	}
}

func TestRunEndToEnd(t *testing.T) {
	log := zap.NewNop()
	internalConfig := testInternalConfig()
	session := &stubSession{texts: stubPageTexts()}
	starter := &stubStarter{session: session}
	mailer := &stubMailer{}
	sms := &stubSMS{}
	notifier := &spyNotifier{
		NotificationUsecase: notifications.NewNotificationUsecase(mailer, sms, internalConfig, log),
	}

	runner := NewRunner(
		&stubPrompter{request: &requests.AppointmentRequest{VisitDate: "12/31/2025", Comment: "test"}},
		starter,
		appointments.NewAppointmentUsecase(internalConfig, log),
		notifier,
		log,
	)

	require.NoError(t, runner.Run(context.Background()))

	assert.Equal(t, []string{
		"click #btn-make-appointment",
		"fill #txt-username=John Doe",
		"fill #txt-password=ThisIsNotAPassword",
		"press #txt-password Enter",
		"select #combo_facility=Hongkong CURA Healthcare Center",
		"click #chk_hospotal_readmission",
		"click #radio_program_none",
		"fill #txt_visit_date=12/31/2025",
		"fill #txt_comment=test",
		"click #btn-book-appointment",
	}, session.calls)
	assert.True(t, session.closed)
	assert.NotEmpty(t, starter.runID, "run id should be carried in the context")

	require.Len(t, notifier.records, 1)
	assert.Equal(t, map[string]string{
		"facility":    "Hongkong CURA Healthcare Center",
		"readmission": "Yes",
		"program":     "None",
		"visit_date":  "12/31/2025",
		"comment":     "test",
	}, notifier.records[0].Map())

	require.Len(t, mailer.bodies, 1)
	require.Len(t, sms.bodies, 1)
	assert.Equal(t, mailer.bodies[0], sms.bodies[0])
}

func TestRunFailures(t *testing.T) {
	log := zap.NewNop()
	internalConfig := testInternalConfig()

	newRunner := func(prompter contracts.Prompter, starter contracts.SessionStarter, notifier *spyNotifier) *Runner {
		return NewRunner(prompter, starter, appointments.NewAppointmentUsecase(internalConfig, log), notifier, log)
	}
	newNotifier := func() *spyNotifier {
		return &spyNotifier{
			NotificationUsecase: notifications.NewNotificationUsecase(&stubMailer{}, &stubSMS{}, internalConfig, log),
		}
	}
	validRequest := &requests.AppointmentRequest{VisitDate: "12/31/2025", Comment: "test"}

	t.Run("Prompt Error Stops Before Browser", func(t *testing.T) {
		cause := errors.New("stdin closed")
		starter := &stubStarter{session: &stubSession{}}
		notifier := newNotifier()

		err := newRunner(&stubPrompter{err: cause}, starter, notifier).Run(context.Background())
		assert.ErrorIs(t, err, cause)
		assert.Empty(t, starter.runID)
		assert.Empty(t, notifier.records)
	})

	t.Run("Launch Error Propagates", func(t *testing.T) {
		cause := errors.New("chromium not found")
		notifier := newNotifier()

		err := newRunner(&stubPrompter{request: validRequest}, &stubStarter{err: cause}, notifier).Run(context.Background())
		assert.ErrorIs(t, err, cause)
		assert.Empty(t, notifier.records)
	})

	t.Run("Form Error Closes Session And Skips Notifier", func(t *testing.T) {
		session := &stubSession{texts: stubPageTexts(), failOn: "#combo_facility"}
		notifier := newNotifier()

		err := newRunner(&stubPrompter{request: validRequest}, &stubStarter{session: session}, notifier).Run(context.Background())
		require.Error(t, err)
		assert.True(t, session.closed)
		assert.Empty(t, notifier.records)
	})
}
