package config

type (
	DriverConfig struct {
		Logger  Logger
		Browser Browser
		SMTP    SMTP
		Twilio  Twilio
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	Browser struct {
		// Install downloads the Chromium build playwright expects before launching.
		Install          bool
		Headless         bool
		TimeoutInSeconds float64
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}
	Twilio struct {
		AccountSID string
		AuthToken  string
	}
)
