package domain

// OperatingHours describes the hour-of-day window [Start, End)
// during which the facility counts as open
type OperatingHours struct {
	Start int
	End   int
}

// Contains returns true if the given hour of day falls inside the window
func (h *OperatingHours) Contains(hour int) bool {
	return hour >= h.Start && hour < h.End
}

// UtilizationOptions настройки агрегации, передаются вызывающей стороной
// Нулевые значения означают "использовать значения по умолчанию"
type UtilizationOptions struct {
	IncludeStatuses        []BookingStatus // статусы, учитываемые как занятость
	OnlyAvailableResources bool            // исключать ресурсы со статусом != available
	ResourceType           string          // ограничить одним типом ресурса
	OperatingHours         *OperatingHours // nil = круглосуточно
	Bands                  []HeatBand      // раскладка heatmap, nil = DefaultBands()
	OptimalThreshold       int             // 0 = DefaultOptimalThreshold
	BusyThreshold          int             // 0 = DefaultBusyThreshold
}

// Statuses returns the effective booking status allow-list
func (o *UtilizationOptions) Statuses() []BookingStatus {
	if len(o.IncludeStatuses) == 0 {
		return DefaultIncludeStatuses
	}
	return o.IncludeStatuses
}

// EffectiveBands returns the effective heatmap band layout
func (o *UtilizationOptions) EffectiveBands() []HeatBand {
	if len(o.Bands) == 0 {
		return DefaultBands()
	}
	return o.Bands
}

// Thresholds returns the effective optimal/busy utilization thresholds
func (o *UtilizationOptions) Thresholds() (optimal, busy int) {
	optimal = o.OptimalThreshold
	if optimal <= 0 {
		optimal = DefaultOptimalThreshold
	}
	busy = o.BusyThreshold
	if busy <= 0 {
		busy = DefaultBusyThreshold
	}
	return optimal, busy
}
