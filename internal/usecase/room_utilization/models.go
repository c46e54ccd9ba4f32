package room_utilization

import (
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Request модель запроса поресурсной утилизации
type Request struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Options    domain.UtilizationOptions
}

// Response модель ответа: рейтинг помещений по убыванию утилизации
type Response struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Bands      []string // подписи колонок heatmap
	Rooms      []RoomRow
}

// RoomRow строка рейтинга: одно помещение с его heatmap-ячейками
type RoomRow struct {
	ResourceID  string
	Name        string
	Type        string
	Utilization int // суммарный процент утилизации 0-100
	Bookings    int // количество учтённых бронирований помещения
	Cells       []Cell
}

// Cell ячейка heatmap помещения: один heat band
type Cell struct {
	Band        string
	Utilization int
}
