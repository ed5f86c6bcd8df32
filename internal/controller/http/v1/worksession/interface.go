package worksession

import (
	"context"

	"garage/backend/internal/entity"
	"garage/backend/internal/repository/postgres/worksession"
)

type WorkSession interface {
	GetById(ctx context.Context, id int) (entity.WorkSession, error)
	GetList(ctx context.Context, filter worksession.Filter) ([]worksession.GetListResponse, int, error)
	GetActiveByMechanic(ctx context.Context, mechanicName string) (worksession.GetActiveResponse, error)
	MechanicTotals(ctx context.Context, mechanicName string, filter worksession.TotalsFilter) (worksession.MechanicTotalsResponse, error)
	MechanicSessions(ctx context.Context, mechanicName string, filter worksession.Filter) ([]worksession.GetListResponse, int, error)

	Start(ctx context.Context, request worksession.StartRequest) (worksession.SessionResponse, error)
	End(ctx context.Context, request worksession.EndRequest) (worksession.SessionResponse, error)
	EditHours(ctx context.Context, request worksession.EditHoursRequest) (worksession.SessionResponse, error)
	ResetVehicleHours(ctx context.Context, request worksession.ResetVehicleHoursRequest) (int, error)
	AdjustVehicleHours(ctx context.Context, request worksession.AdjustVehicleHoursRequest) (float64, error)
}
