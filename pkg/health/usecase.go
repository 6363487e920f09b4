package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Result is the outcome of one checker. Err is nil when the dependency is healthy.
type Result struct {
	Name string
	Err  error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
	// Results runs every checker and returns their outcomes in registration order.
	Results(ctx context.Context) []Result
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

func (s *service) Results(ctx context.Context) []Result {
	out := make([]Result, 0, len(s.checkers))
	for _, ch := range s.checkers {
		out = append(out, Result{Name: ch.Name(), Err: ch.Check(ctx)})
	}
	return out
}

// Ready runs every checker and reports all failures, each prefixed with the checker name.
func (s *service) Ready(ctx context.Context) error {
	return Join(s.Results(ctx))
}

// Join folds failed results into one error; nil when all passed.
func Join(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}
	return errors.Join(errs...)
}
