package get_room_utilization

import (
	"context"

	roomUtilization "github.com/m04kA/CRB-AnalyticsService/internal/usecase/room_utilization"
)

type RoomUtilizationUseCase interface {
	Execute(ctx context.Context, req *roomUtilization.Request) (*roomUtilization.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
