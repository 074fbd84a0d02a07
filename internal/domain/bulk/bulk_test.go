package bulk

import (
	"context"
	"errors"
	"strings"
	"testing"

	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestRunBestEffort(t *testing.T) {
	var calls []string
	res := Run(context.Background(), ActionDelete, []string{"a", "b", "a", "c", "d"}, func(_ context.Context, id string) error {
		calls = append(calls, id)
		switch id {
		case "b":
			return xerrors.ErrNotFound
		case "d":
			return errors.New("connection reset by peer")
		}
		return nil
	})

	assert.Equal(t, []string{"a", "b", "c", "d"}, calls)
	assert.Equal(t, ActionDelete, res.Action)
	assert.Equal(t, 4, res.Requested)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, []Failure{
		{ID: "b", Error: "resource not found"},
		{ID: "d", Error: "internal server error"},
	}, res.Failed)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	res := Run(ctx, ActionUpdate, []string{"a", "b"}, func(context.Context, string) error {
		called = true
		return nil
	})

	assert.False(t, called)
	assert.Equal(t, 2, res.Requested)
	assert.Equal(t, 0, res.Succeeded)
	assert.Len(t, res.Failed, 2)
}

func TestRunTreatsIDCaseAsOneID(t *testing.T) {
	id := "01J0ZQ4Y8M3T6W2N5R7S9V1X3Z"
	var calls []string
	res := Run(context.Background(), ActionDelete, []string{id, strings.ToLower(id)}, func(_ context.Context, got string) error {
		calls = append(calls, got)
		return nil
	})

	assert.Equal(t, []string{id}, calls)
	assert.Equal(t, 1, res.Requested)
	assert.Equal(t, 1, res.Succeeded)
}
