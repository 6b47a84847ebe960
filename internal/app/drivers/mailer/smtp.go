package mailer

import (
	"cura-booking-service/internal/app/config"
	"cura-booking-service/internal/pkg/constvars"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// SendMailFunc matches smtp.SendMail so the transport can be swapped in tests.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPClient struct {
	Host     string
	Port     int
	Username string
	Auth     smtp.Auth
	SendMail SendMailFunc
}

func NewSMTPClient(driverConfig *config.DriverConfig, log *zap.Logger) *SMTPClient {
	auth := smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	log.Debug("mailer.NewSMTPClient configured",
		zap.String(constvars.LoggingSMTPHostKey, driverConfig.SMTP.Host),
		zap.Int("smtp_port", driverConfig.SMTP.Port),
	)
	return &SMTPClient{
		Host:     driverConfig.SMTP.Host,
		Port:     driverConfig.SMTP.Port,
		Username: driverConfig.SMTP.Username,
		Auth:     auth,
		SendMail: smtp.SendMail,
	}
}

func (c *SMTPClient) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
