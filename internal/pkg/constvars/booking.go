package constvars

const (
	BookingDefaultURL      = "https://katalon-demo-cura.herokuapp.com/"
	BookingDefaultUsername = "John Doe"
	BookingDefaultPassword = "ThisIsNotAPassword"
	BookingDefaultFacility = "Hongkong CURA Healthcare Center"
)

// Appointment form elements, all addressed by id.
const (
	SelectorMakeAppointmentButton = "#btn-make-appointment"
	SelectorUsernameInput         = "#txt-username"
	SelectorPasswordInput         = "#txt-password"
	SelectorFacilitySelect        = "#combo_facility"
	SelectorReadmissionCheckbox   = "#chk_hospotal_readmission"
	SelectorProgramNoneRadio      = "#radio_program_none"
	SelectorVisitDateInput        = "#txt_visit_date"
	SelectorCommentInput          = "#txt_comment"
	SelectorBookAppointmentButton = "#btn-book-appointment"
)

// Confirmation page elements.
const (
	SelectorConfirmationFacility    = "#facility"
	SelectorConfirmationReadmission = "#hospital_readmission"
	SelectorConfirmationProgram     = "#program"
	SelectorConfirmationVisitDate   = "#visit_date"
	SelectorConfirmationComment     = "#comment"
)

const (
	KeyboardEnter = "Enter"
)

// Chromium flags applied on launch.
var BrowserLaunchArgs = []string{
	"--disable-infobars",
	"--start-maximized",
	"--disable-dev-shm-usage",
	"--no-sandbox",
	"--disable-blink-features=AutomationControlled",
}

var BrowserIgnoreDefaultArgs = []string{
	"--enable-automation",
}

const (
	PromptVisitDateMessage = "Enter appointment date in MM/DD/YYYY format:"
	PromptCommentMessage   = "Add comments for the doctor:"
)
