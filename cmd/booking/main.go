package main

import (
	"context"
	"cura-booking-service/internal/app/config"
	"cura-booking-service/internal/app/delivery/cli"
	"cura-booking-service/internal/app/drivers/browser"
	"cura-booking-service/internal/app/drivers/logger"
	"cura-booking-service/internal/app/drivers/mailer"
	"cura-booking-service/internal/app/drivers/messaging"
	"cura-booking-service/internal/app/services/appointments"
	"cura-booking-service/internal/app/services/booking"
	"cura-booking-service/internal/app/services/notifications"
	sharedMailer "cura-booking-service/internal/app/services/shared/mailer"
	"cura-booking-service/internal/app/services/shared/sms"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	zapLogger = zapLogger.With(zap.String("build_version", Version), zap.String("build_tag", Tag))

	bootstrap := config.Bootstrap{
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := bootstrapingTheApp(bootstrap).Run(ctx)
	stop()

	if runErr != nil {
		zapLogger.Error("Booking run failed", zap.Error(runErr))
	}
	if err := bootstrap.Shutdown(); err != nil {
		log.Printf("Error while shutting down: %v", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

func bootstrapingTheApp(bootstrap config.Bootstrap) *booking.Runner {
	// Browser
	sessionStarter := browser.NewPlaywrightLauncher(bootstrap.DriverConfig, bootstrap.InternalConfig, bootstrap.Logger)

	// Mailer
	smtpClient := mailer.NewSMTPClient(bootstrap.DriverConfig, bootstrap.Logger)
	mailerService := sharedMailer.NewMailerService(smtpClient, bootstrap.Logger)

	// SMS
	twilioClient := messaging.NewTwilioClient(bootstrap.DriverConfig, bootstrap.Logger)
	smsService := sms.NewSMSService(twilioClient, bootstrap.Logger)

	// Usecases
	appointmentUsecase := appointments.NewAppointmentUsecase(bootstrap.InternalConfig, bootstrap.Logger)
	notificationUsecase := notifications.NewNotificationUsecase(mailerService, smsService, bootstrap.InternalConfig, bootstrap.Logger)

	return booking.NewRunner(
		cli.NewSurveyPrompter(),
		sessionStarter,
		appointmentUsecase,
		notificationUsecase,
		bootstrap.Logger,
	)
}
