package weekly_trend

import (
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Request модель запроса недельного тренда утилизации
type Request struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Options    domain.UtilizationOptions
}

// Response модель ответа: ровно 7 записей, Mon..Sun
type Response struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Days       []DayPoint
}

// DayPoint точка недельного тренда
type DayPoint struct {
	Weekday     int    // 0=Mon .. 6=Sun
	Label       string // "Mon" ... "Sun"
	Utilization int    // процент утилизации 0-100
	Bookings    int    // количество бронирований, начавшихся в этот день недели
}
