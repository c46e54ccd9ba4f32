package get_room_utilization

import (
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
	roomUtilization "github.com/m04kA/CRB-AnalyticsService/internal/usecase/room_utilization"
)

// RoomUtilizationResponse HTTP response model
type RoomUtilizationResponse struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Bands []string  `json:"bands"`
	Rooms []RoomRow `json:"rooms"`
}

// RoomRow строка рейтинга помещений
type RoomRow struct {
	ResourceID  string `json:"resourceId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Utilization int    `json:"utilization"`
	Bookings    int    `json:"bookings"`
	Cells       []Cell `json:"cells"`
}

// Cell ячейка heatmap помещения
type Cell struct {
	Band        string `json:"band"`
	Utilization int    `json:"utilization"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *roomUtilization.Response) *RoomUtilizationResponse {
	rooms := make([]RoomRow, len(resp.Rooms))
	for i, room := range resp.Rooms {
		cells := make([]Cell, len(room.Cells))
		for j, c := range room.Cells {
			cells[j] = Cell{Band: c.Band, Utilization: c.Utilization}
		}
		rooms[i] = RoomRow{
			ResourceID:  room.ResourceID,
			Name:        room.Name,
			Type:        room.Type,
			Utilization: room.Utilization,
			Bookings:    room.Bookings,
			Cells:       cells,
		}
	}

	return &RoomUtilizationResponse{
		From:  resp.RangeStart.Format(domain.DateFormat),
		To:    resp.RangeEnd.AddDate(0, 0, -1).Format(domain.DateFormat),
		Bands: resp.Bands,
		Rooms: rooms,
	}
}
