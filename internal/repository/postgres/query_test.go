package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% \_real\_ c:\\path`, escapeLike(`100% _real_ c:\path`))
	assert.Equal(t, `%henna%`, likePattern("henna"))
}

func TestWhereBuildsPositionalArgs(t *testing.T) {
	var w where
	assert.Equal(t, "", w.clause())

	w.and("status = " + w.arg("Pending"))
	w.search("bride", "tags", "title", "description")
	w.onDay("date", time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC))

	assert.Equal(t,
		`WHERE status = $1 AND (title ILIKE $2 ESCAPE '\' OR description ILIKE $2 ESCAPE '\' OR $3 = ANY(tags)) AND date >= $4 AND date < $5`,
		w.clause())
	assert.Equal(t, []interface{}{
		"Pending", "%bride%", "bride",
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
	}, w.args)

	assert.Equal(t, "LIMIT $6 OFFSET $7", w.paginate(10, 20))
}

func TestWhereSearchIgnoresBlank(t *testing.T) {
	var w where
	w.search("   ", "", "name")
	assert.Empty(t, w.conditions)
	assert.Empty(t, w.args)
}

func TestOrderByWhitelist(t *testing.T) {
	spec := sortSpec{
		columns:  map[string]string{"createdAt": "created_at", "amount": "amount"},
		defaults: "featured DESC, sort_order ASC",
	}

	assert.Equal(t, "ORDER BY featured DESC, sort_order ASC, created_at DESC, id DESC", spec.orderBy("", ""))
	assert.Equal(t, "ORDER BY featured DESC, sort_order ASC, created_at DESC, id DESC", spec.orderBy("amount; DROP TABLE bookings", "asc"))
	assert.Equal(t, "ORDER BY amount ASC, created_at DESC, id DESC", spec.orderBy("amount", "asc"))
	assert.Equal(t, "ORDER BY amount DESC, created_at DESC, id DESC", spec.orderBy("amount", "sideways"))
	assert.Equal(t, "ORDER BY created_at ASC, id ASC", spec.orderBy("createdAt", "ASC"))

	assert.Equal(t, "ORDER BY created_at DESC, id DESC", sortSpec{}.orderBy("", ""))
}

func TestDayRangeIsHalfOpenDay(t *testing.T) {
	start, end := dayRange(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestTextArrayNeverNil(t *testing.T) {
	assert.NotNil(t, textArray(nil))
	assert.Equal(t, []string{"a"}, textArray([]string{"a"}))
}
