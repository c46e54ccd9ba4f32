package domain

// Default aggregation values
const (
	DefaultCapacity         = 1
	DefaultOptimalThreshold = 60 // utilization % below this is "optimal"
	DefaultBusyThreshold    = 85 // utilization % below this is "busy", above is "over"
	DefaultBandStartHour    = 8
	DefaultBandEndHour      = 22
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Дни недели нумеруются 0=понедельник .. 6=воскресенье —
// порядок, в котором дашборд рисует недельные графики
const (
	WeekdayCount = 7
	HoursPerDay  = 24
)

// WeekdayLabels подписи дней недели в порядке Mon..Sun
var WeekdayLabels = [WeekdayCount]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DefaultIncludeStatuses статусы бронирований, учитываемые как занятость
// Используется, когда вызывающая сторона не передала свой allow-list
var DefaultIncludeStatuses = []BookingStatus{
	StatusCompleted,
	StatusConfirmed,
	StatusActive,
	StatusUpcoming,
}
