package config

type InternalConfig struct {
	App          App          `mapstructure:"app"`
	Booking      AppBooking   `mapstructure:"booking"`
	Notification Notification `mapstructure:"notification"`
}

type App struct {
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// AppBooking describes the demo page and the fixed values entered into it.
type AppBooking struct {
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Facility string `mapstructure:"facility"`
}

type Notification struct {
	EmailSender   string `mapstructure:"email_sender"`
	EmailReceiver string `mapstructure:"email_receiver"`
	SMSFromNumber string `mapstructure:"sms_from_number"`
	SMSToNumber   string `mapstructure:"sms_to_number"`
}
