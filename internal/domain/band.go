package domain

import "fmt"

// HeatBand represents a labeled sub-range of a day [StartHour, EndHour)
// used as a heatmap display column
type HeatBand struct {
	Label     string
	StartHour int
	EndHour   int
}

// Minutes returns the width of the band in minutes
func (b *HeatBand) Minutes() float64 {
	if b.EndHour <= b.StartHour {
		return 0
	}
	return float64(b.EndHour-b.StartHour) * 60
}

// BandRange returns one-hour bands covering [startHour, endHour),
// labeled "8-9", "9-10", ...
func BandRange(startHour, endHour int) []HeatBand {
	if endHour <= startHour {
		return nil
	}
	bands := make([]HeatBand, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		bands = append(bands, HeatBand{
			Label:     fmt.Sprintf("%d-%d", h, h+1),
			StartHour: h,
			EndHour:   h + 1,
		})
	}
	return bands
}

// DefaultBands returns the standard heatmap layout:
// fourteen one-hour bands covering 8:00-22:00, labeled "8-9" ... "21-22"
func DefaultBands() []HeatBand {
	return BandRange(DefaultBandStartHour, DefaultBandEndHour)
}
