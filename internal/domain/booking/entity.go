// internal/domain/booking/entity.go
package booking

import "time"

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

var Statuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

var Services = []string{
	"Bridal Mehndi",
	"Engagement Mehndi",
	"Party Mehndi",
	"Arabic Mehndi",
	"Indo-Western Mehndi",
	"Baby Shower Mehndi",
	"Festival Mehndi",
	"Corporate Event",
	"Other",
}

type Booking struct {
	ID        string    `json:"id" db:"id"`
	BookingID string    `json:"bookingId" db:"booking_id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	Service   string    `json:"service" db:"service"`
	Date      time.Time `json:"date" db:"date"`
	Time      string    `json:"time" db:"time"`
	Guests    int       `json:"guests" db:"guests"`
	Location  string    `json:"location" db:"location"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	Amount    float64   `json:"amount" db:"amount"`
	Advance   float64   `json:"advance" db:"advance"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Balance is the amount still owed after the advance.
func (b *Booking) Balance() float64 {
	if d := b.Amount - b.Advance; d > 0 {
		return d
	}
	return 0
}

type ServiceCount struct {
	Service string `json:"service"`
	Count   int64  `json:"count"`
}

type Stats struct {
	Total         int64          `json:"total"`
	Pending       int64          `json:"pending"`
	Confirmed     int64          `json:"confirmed"`
	Completed     int64          `json:"completed"`
	Cancelled     int64          `json:"cancelled"`
	Upcoming      int64          `json:"upcoming"`
	Today         int64          `json:"today"`
	Revenue       float64        `json:"revenue"`
	Advance       float64        `json:"advance"`
	AverageAmount float64        `json:"averageAmount"`
	ByService     []ServiceCount `json:"byService"`
}

// MonthCount is one point of the monthly booking trend.
type MonthCount struct {
	Month    string  `json:"month"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}
