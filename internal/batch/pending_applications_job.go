package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loan-processing-api/internal/domain/loan"
	"loan-processing-api/internal/infrastructure/monitoring"
)

// PendingApplicationsJob counts loan applications still in the pending status
// and exports the figure as a gauge. Applications are append-only, so the job
// only reads; the gauge is the report.
type PendingApplicationsJob struct {
	loanService loan.LoanService
	logger      *slog.Logger
}

func NewPendingApplicationsJob(loanSvc loan.LoanService, logger *slog.Logger) *PendingApplicationsJob {
	if loanSvc == nil || logger == nil {
		panic("PendingApplicationsJob dependencies cannot be nil")
	}
	return &PendingApplicationsJob{
		loanService: loanSvc,
		logger:      logger.With("job", "PendingApplicationsReport"),
	}
}

func (j *PendingApplicationsJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting pending loan applications report job.")

	count, err := j.loanService.CountPendingApplications(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count pending applications, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to count pending applications: %w", err)
	}

	monitoring.Business.PendingLoanApplications.Set(float64(count))

	j.logger.InfoContext(ctx, "Pending loan applications report job finished.",
		slog.Int64("pending_applications", count),
		slog.Duration("duration", time.Since(startTime)))
	return nil
}
