package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/app/repositories"
)

const defaultReconcileWorkers = 4

// SeatReconciler rewrites each course's enrolled counter from the ACTIVE enrollment count.
// It repairs drift left behind by failed best-effort seat updates.
type SeatReconciler struct {
	enrollmentRepo repositories.EnrollmentStore
	courses        CourseDirectory
	workers        int
	logger         zerolog.Logger
}

// NewSeatReconciler creates a SeatReconciler. workers bounds concurrent catalog calls.
func NewSeatReconciler(
	enrollmentRepo repositories.EnrollmentStore,
	courses CourseDirectory,
	workers int,
	logger zerolog.Logger,
) *SeatReconciler {
	if workers <= 0 {
		workers = defaultReconcileWorkers
	}
	return &SeatReconciler{
		enrollmentRepo: enrollmentRepo,
		courses:        courses,
		workers:        workers,
		logger:         logger,
	}
}

// ReconcileAll pushes the ACTIVE count of every course that has enrollment rows.
// Per-course failures are counted and logged, not returned.
func (r *SeatReconciler) ReconcileAll(ctx context.Context) (*dto.ReconcileResponse, error) {
	counts, err := r.enrollmentRepo.CountActiveByCourseAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting active enrollments: %w", err)
	}

	var updated, failed atomic.Int64
	p := pool.New().WithContext(ctx).WithMaxGoroutines(r.workers)
	for courseID, active := range counts {
		p.Go(func(ctx context.Context) error {
			if err := r.courses.SetEnrolled(ctx, courseID, int(active)); err != nil {
				failed.Add(1)
				r.logger.Warn().Err(err).
					Str("courseId", courseID).
					Int64("active", active).
					Msg("Failed to reconcile course enrolled count")
				return nil
			}
			updated.Add(1)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	result := &dto.ReconcileResponse{
		Courses: len(counts),
		Updated: int(updated.Load()),
		Failed:  int(failed.Load()),
	}
	r.logger.Info().
		Int("courses", result.Courses).
		Int("updated", result.Updated).
		Int("failed", result.Failed).
		Msg("Seat reconciliation finished")
	return result, nil
}

// Run reconciles every interval until ctx is cancelled.
func (r *SeatReconciler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", interval).Msg("Seat reconciler started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("Seat reconciler stopped")
			return
		case <-ticker.C:
			if _, err := r.ReconcileAll(ctx); err != nil {
				r.logger.Error().Err(err).Msg("Seat reconciliation failed")
			}
		}
	}
}
