// internal/domain/contact/entity.go
package contact

import "time"

const (
	StatusNew     = "New"
	StatusRead    = "Read"
	StatusReplied = "Replied"
	StatusClosed  = "Closed"
)

// Persisted service vocabulary. Client values are normalized onto it.
var Services = []string{"bridal", "party", "festival", "corporate", "other"}

type Contact struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	Phone        string     `json:"phone" db:"phone"`
	Service      string     `json:"service" db:"service"`
	Message      string     `json:"message" db:"message"`
	Status       string     `json:"status" db:"status"`
	Replied      bool       `json:"replied" db:"replied"`
	ReplyMessage string     `json:"replyMessage" db:"reply_message"`
	RepliedAt    *time.Time `json:"repliedAt" db:"replied_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

type Stats struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Read      int64 `json:"read"`
	Replied   int64 `json:"replied"`
	Closed    int64 `json:"closed"`
	Unreplied int64 `json:"unreplied"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"thisWeek"`
}
