package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"max":        "maximum at %s characters long",
	"visit_date": "must be a valid date in MM/DD/YYYY format",
	"e164_phone": "must be a phone number in E.164 format, e.g. +18005550100",
}

var TagsWithParams = map[string]bool{
	"max": true,
}

// Error messages for the operator
const (
	ErrClientInvalidInput                  = "the appointment details are invalid"
	ErrClientPromptAborted                 = "the prompt was cancelled"
	ErrClientBrowserUnavailable            = "the browser could not be started"
	ErrClientBookingFailed                 = "the appointment could not be booked"
	ErrClientNotificationFailed            = "the confirmation could not be delivered"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevPromptFailed      = "failed to read %s from terminal"
	ErrDevPlaywrightInstall = "failed to install playwright"
	ErrDevPlaywrightRun     = "failed to start playwright"
	ErrDevBrowserLaunch     = "failed to launch browser"
	ErrDevBrowserContext    = "failed to create browser context"
	ErrDevBrowserPage       = "failed to create page"
	ErrDevBrowserNavigate   = "failed to navigate to %s"
	ErrDevFormStep          = "form step %q failed on selector %s"
	ErrDevConfirmationRead  = "failed to read confirmation field %s"
	ErrDevSMTPSendEmail     = "failed to send email via SMTP client hostname %s"
	ErrDevSMSSendMessage    = "failed to send SMS to %s"
	ErrDevSMSInvalidNumber  = "invalid SMS number %s"
)
