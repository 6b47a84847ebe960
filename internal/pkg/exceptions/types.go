package exceptions

import (
	"cura-booking-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, FormatFirstValidationError(err), constvars.ErrDevInvalidInput)
	}
	ErrPromptInput = func(err error, field string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientPromptAborted, fmt.Sprintf(constvars.ErrDevPromptFailed, field))
	}

	// Browser
	ErrPlaywrightInstall = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBrowserUnavailable, constvars.ErrDevPlaywrightInstall)
	}
	ErrPlaywrightRun = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBrowserUnavailable, constvars.ErrDevPlaywrightRun)
	}
	ErrBrowserLaunch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBrowserUnavailable, constvars.ErrDevBrowserLaunch)
	}
	ErrBrowserContext = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBrowserUnavailable, constvars.ErrDevBrowserContext)
	}
	ErrBrowserPage = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBrowserUnavailable, constvars.ErrDevBrowserPage)
	}
	ErrBrowserNavigate = func(err error, url string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBrowserUnavailable, fmt.Sprintf(constvars.ErrDevBrowserNavigate, url))
	}

	// Booking form
	ErrFormStep = func(err error, step, selector string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBookingFailed, fmt.Sprintf(constvars.ErrDevFormStep, step, selector))
	}
	ErrConfirmationRead = func(err error, selector string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientBookingFailed, fmt.Sprintf(constvars.ErrDevConfirmationRead, selector))
	}

	// SMTP
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientNotificationFailed, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}

	// SMS gateway
	ErrSMSSendMessage = func(err error, recipient string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientNotificationFailed, fmt.Sprintf(constvars.ErrDevSMSSendMessage, recipient))
	}
	ErrSMSInvalidNumber = func(err error, number string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrClientNotificationFailed, fmt.Sprintf(constvars.ErrDevSMSInvalidNumber, number))
	}
)
