package get_eligible_groups

import (
	"context"

	getEligibleGroups "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_eligible_groups"
)

type GetEligibleGroupsUseCase interface {
	Execute(ctx context.Context, req *getEligibleGroups.Request) (*getEligibleGroups.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
