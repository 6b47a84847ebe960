package constvars

const (
	LoggingRunIDKey        = "run_id"
	LoggingStepKey         = "step"
	LoggingSelectorKey     = "selector"
	LoggingURLKey          = "url"
	LoggingFacilityKey     = "facility"
	LoggingVisitDateKey    = "visit_date"
	LoggingRecipientKey    = "recipient"
	LoggingMessageSIDKey   = "message_sid"
	LoggingSMTPHostKey     = "smtp_host"
	LoggingChannelKey      = "channel"
	LoggingConfirmationKey = "confirmation"
)
