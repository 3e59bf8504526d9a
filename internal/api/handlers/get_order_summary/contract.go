package get_order_summary

import (
	"context"

	getOrderSummary "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_order_summary"
)

type GetOrderSummaryUseCase interface {
	Execute(ctx context.Context, req *getOrderSummary.Request) (*getOrderSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
