package type_distribution

import (
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Request модель запроса распределения ресурсов по статусам загрузки
type Request struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Options    domain.UtilizationOptions
}

// Response модель ответа: по строке на тип ресурса, отсортировано по типу
type Response struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Types      []TypeRow
}

// TypeRow распределение ресурсов одного типа по статусам загрузки
//
// OptimalPct + BusyPct + OverPct всегда ровно 100: проценты optimal и busy
// округляются независимо, а over вычисляется как остаток
type TypeRow struct {
	Type        string
	Resources   int // количество ресурсов типа в scope
	Utilization int // агрегированная утилизация типа, 0-100
	OptimalPct  int // доля ресурсов с загрузкой ниже optimal-порога
	BusyPct     int // доля ресурсов между порогами
	OverPct     int // остаток до 100
}
