package weekly_report

import (
	"context"

	weeklyReport "github.com/salonworks/booking-service/internal/usecase/weekly_report"
)

type WeeklyReportUseCase interface {
	Execute(ctx context.Context, req *weeklyReport.Request) (*weeklyReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
