package config

import (
	"cura-booking-service/internal/pkg/constvars"
	"cura-booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Browser: Browser{
			Install:          utils.GetEnvBool("BROWSER_INSTALL", true),
			Headless:         utils.GetEnvBool("BROWSER_HEADLESS", false),
			TimeoutInSeconds: utils.GetEnvFloat("BROWSER_TIMEOUT_IN_SECONDS", 30),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", constvars.SMTPDefaultHost),
			Port:     utils.GetEnvInt("SMTP_PORT", constvars.SMTPDefaultPort),
			Username: utils.GetEnvString("FROM_EMAIL", ""),
			Password: utils.GetEnvString("APP_PW", ""),
		},
		Twilio: Twilio{
			AccountSID: utils.GetEnvString("ACCOUNT_SID", ""),
			AuthToken:  utils.GetEnvString("AUTH_TOKEN", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:     utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Version: utils.GetEnvString("APP_VERSION", "v1.0"),
		},
		Booking: AppBooking{
			URL:      utils.GetEnvString("BOOKING_URL", constvars.BookingDefaultURL),
			Username: utils.GetEnvString("BOOKING_USERNAME", constvars.BookingDefaultUsername),
			Password: utils.GetEnvString("BOOKING_PASSWORD", constvars.BookingDefaultPassword),
			Facility: utils.GetEnvString("BOOKING_FACILITY", constvars.BookingDefaultFacility),
		},
		Notification: Notification{
			EmailSender:   utils.GetEnvString("FROM_EMAIL", ""),
			EmailReceiver: utils.GetEnvString("TO_EMAIL", ""),
			SMSFromNumber: utils.GetEnvString("SMS_FROM_NUMBER", constvars.SMSDefaultFromNumber),
			SMSToNumber:   utils.GetEnvString("SMS_TO_NUMBER", constvars.SMSDefaultToNumber),
		},
	}
}
