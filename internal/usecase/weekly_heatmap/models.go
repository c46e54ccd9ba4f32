package weekly_heatmap

import (
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Request модель запроса недельного heatmap
type Request struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Options    domain.UtilizationOptions
}

// Response модель ответа: матрица 7 x len(Bands), Mon..Sun
type Response struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Bands      []string // подписи колонок
	Days       []DayRow
}

// DayRow строка heatmap: один день недели
type DayRow struct {
	Weekday int    // 0=Mon .. 6=Sun
	Label   string // "Mon" ... "Sun"
	Cells   []Cell
}

// Cell ячейка heatmap: один heat band одного дня недели
type Cell struct {
	Band        string // подпись band, например "8-9"
	Utilization int    // процент утилизации 0-100
}
