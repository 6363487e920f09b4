package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string { return s.name }

func (s stubChecker) Check(context.Context) error { return s.err }

func TestReady_AllHealthy(t *testing.T) {
	svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "uploads"})
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReady_ReportsEveryFailure(t *testing.T) {
	pgErr := errors.New("connection refused")
	dirErr := errors.New("read-only file system")
	svc := NewService(
		stubChecker{name: "postgres", err: pgErr},
		stubChecker{name: "redis"},
		stubChecker{name: "uploads", err: dirErr},
	)

	err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, pgErr)
	assert.ErrorIs(t, err, dirErr)
	assert.Contains(t, err.Error(), "postgres: connection refused")
	assert.Contains(t, err.Error(), "uploads: read-only file system")
	assert.NotContains(t, err.Error(), "redis")
}

func TestNewService_SkipsNilCheckers(t *testing.T) {
	svc := NewService(nil, stubChecker{name: "postgres"})
	assert.NoError(t, svc.Ready(context.Background()))
}

func TestResults_KeepsOrderAndNames(t *testing.T) {
	down := errors.New("connection refused")
	svc := NewService(stubChecker{name: "postgres", err: down}, stubChecker{name: "uploads"})

	res := svc.Results(context.Background())

	require.Len(t, res, 2)
	assert.Equal(t, "postgres", res[0].Name)
	assert.ErrorIs(t, res[0].Err, down)
	assert.Equal(t, "uploads", res[1].Name)
	assert.NoError(t, res[1].Err)
}
