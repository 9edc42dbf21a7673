package domain

// Default booking configuration values
const (
	DefaultGranularityMinutes = 15
	DefaultMinLeadTimeMinutes = 0
	DefaultAdvanceBookingDays = 0 // 0 = unlimited
	DefaultLocale             = "en"
	DefaultTimezone           = "UTC"
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 1
	MaxServiceDurationMinutes   = 480 // 8 hours
	MinGranularityMinutes       = 5
	MaxGranularityMinutes       = 120
	MinRating                   = 1
	MaxRating                   = 5
	MaxNotesLength              = 1000
	MaxClientNameLength         = 255
	MaxClientPhoneLength        = 20
	MaxClientEmailLength        = 255
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, занимающие время мастера
// Используется при проверке пересечений интервалов: отмененные записи слоты не занимают
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
