package daily_trend

import (
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Request модель запроса дневного тренда утилизации
type Request struct {
	RangeStart time.Time                 // начало диапазона (включительно)
	RangeEnd   time.Time                 // конец диапазона (исключительно)
	Options    domain.UtilizationOptions // настройки агрегации
}

// Response модель ответа: ровно 24 записи, по одной на час суток
// Пустые входные данные дают нулевые проценты, а не пустой список —
// графикам не нужны проверки на отсутствие корзин
type Response struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Hours      []HourPoint
}

// HourPoint точка дневного тренда
type HourPoint struct {
	Hour        int    // час суток 0-23
	Label       string // 12-часовая подпись: "12 AM" ... "11 PM"
	Utilization int    // процент утилизации 0-100
	Bookings    int    // количество бронирований, начавшихся в этот час
}
