// internal/repository/postgres/query.go
package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	xerrors "mehndi-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conditions []string
	args       []interface{}
}

// arg binds v and returns its placeholder.
func (w *where) arg(v interface{}) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *where) and(cond string) {
	w.conditions = append(w.conditions, cond)
}

func (w *where) clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conditions, " AND ")
}

// search adds a case-insensitive substring match over columns, OR-ed with
// exact membership in tagColumn when given.
func (w *where) search(term string, tagColumn string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	p := w.arg(likePattern(term))
	parts := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE %s ESCAPE '\\'", c, p))
	}
	if tagColumn != "" {
		parts = append(parts, fmt.Sprintf("%s = ANY(%s)", w.arg(strings.ToLower(term)), tagColumn))
	}
	w.and("(" + strings.Join(parts, " OR ") + ")")
}

// onDay restricts column to the half-open interval [day, day+24h).
func (w *where) onDay(column string, day time.Time) {
	start, end := dayRange(day)
	w.and(fmt.Sprintf("%s >= %s AND %s < %s", column, w.arg(start), column, w.arg(end)))
}

func (w *where) paginate(limit, offset int) string {
	return fmt.Sprintf("LIMIT %s OFFSET %s", w.arg(limit), w.arg(offset))
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func likePattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

func dayRange(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// sortSpec whitelists the sortable columns of a table by API name.
type sortSpec struct {
	columns  map[string]string
	defaults string
}

// orderBy builds an ORDER BY that always ends with created_at and id so page
// boundaries are stable.
func (s sortSpec) orderBy(sortBy, order string) string {
	col, ok := s.columns[sortBy]
	if !ok {
		if s.defaults == "" {
			return "ORDER BY created_at DESC, id DESC"
		}
		return "ORDER BY " + s.defaults + ", created_at DESC, id DESC"
	}

	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	if col == "created_at" {
		return fmt.Sprintf("ORDER BY created_at %s, id %s", dir, dir)
	}
	return fmt.Sprintf("ORDER BY %s %s, created_at DESC, id DESC", col, dir)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// notFound maps pgx.ErrNoRows to xerrors.ErrNotFound and wraps the rest.
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.ErrNotFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// textArray converts a tags column value for writing; NULL is never stored.
func textArray(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return a
}
