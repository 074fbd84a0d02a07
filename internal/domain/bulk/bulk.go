// Package bulk holds the request and result shapes shared by every bulk
// endpoint. Bulk actions are best-effort: each id is processed on its own and
// failures are reported per id.
package bulk

import (
	"context"
	"errors"

	xerrors "mehndi-service/internal/pkg/errors"
	"mehndi-service/internal/pkg/ids"
)

const (
	ActionDelete     = "delete"
	ActionUpdate     = "update"
	ActionActivate   = "activate"
	ActionDeactivate = "deactivate"
)

// MaxIDs caps the ids accepted by one bulk request.
const MaxIDs = 100

type Failure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type Result struct {
	Action    string    `json:"action"`
	Requested int       `json:"requested"`
	Succeeded int       `json:"succeeded"`
	Failed    []Failure `json:"failed"`
}

// Run applies fn to every distinct id and collects the outcome. Ids are
// compared in canonical form. It stops early only when ctx is cancelled; the
// remaining ids are reported failed.
func Run(ctx context.Context, action string, idList []string, fn func(ctx context.Context, id string) error) Result {
	res := Result{Action: action, Failed: []Failure{}}
	seen := make(map[string]bool, len(idList))

	for _, raw := range idList {
		id := ids.Normalize(raw)
		if seen[id] {
			continue
		}
		seen[id] = true
		res.Requested++

		if err := ctx.Err(); err != nil {
			res.Failed = append(res.Failed, Failure{ID: id, Error: err.Error()})
			continue
		}
		if err := fn(ctx, id); err != nil {
			res.Failed = append(res.Failed, Failure{ID: id, Error: failureMessage(err)})
			continue
		}
		res.Succeeded++
	}
	return res
}

// failureMessage keeps internal error detail out of responses.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		return xerrors.ErrNotFound.Error()
	case errors.Is(err, xerrors.ErrInvalidInput), errors.Is(err, xerrors.ErrConflict):
		return err.Error()
	default:
		return xerrors.ErrInternal.Error()
	}
}
