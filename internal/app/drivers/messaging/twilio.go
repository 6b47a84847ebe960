package messaging

import (
	"cura-booking-service/internal/app/config"

	"github.com/twilio/twilio-go"
	"go.uber.org/zap"
)

func NewTwilioClient(driverConfig *config.DriverConfig, log *zap.Logger) *twilio.RestClient {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: driverConfig.Twilio.AccountSID,
		Password: driverConfig.Twilio.AuthToken,
	})
	log.Debug("messaging.NewTwilioClient configured")
	return client
}
