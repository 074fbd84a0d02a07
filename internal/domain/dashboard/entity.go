// internal/domain/dashboard/entity.go
package dashboard

import (
	"mehndi-service/internal/domain/booking"
	"mehndi-service/internal/domain/contact"
)

type BookingSummary struct {
	Total     int64   `json:"total"`
	Pending   int64   `json:"pending"`
	Confirmed int64   `json:"confirmed"`
	Completed int64   `json:"completed"`
	Cancelled int64   `json:"cancelled"`
	Today     int64   `json:"today"`
	Upcoming  int64   `json:"upcoming"`
	Revenue   float64 `json:"revenue"`
	Advance   float64 `json:"advance"`
}

type ContactSummary struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Unreplied int64 `json:"unreplied"`
}

type ContentSummary struct {
	Services        int64 `json:"services"`
	ActiveServices  int64 `json:"activeServices"`
	GalleryItems    int64 `json:"galleryItems"`
	FeaturedGallery int64 `json:"featuredGallery"`
	BlogPosts       int64 `json:"blogPosts"`
	PublishedPosts  int64 `json:"publishedPosts"`
	BlogViews       int64 `json:"blogViews"`
}

type Overview struct {
	Bookings       BookingSummary       `json:"bookings"`
	Contacts       ContactSummary       `json:"contacts"`
	Content        ContentSummary       `json:"content"`
	BookingTrend   []booking.MonthCount `json:"bookingTrend"`
	RecentBookings []booking.Booking    `json:"recentBookings"`
	RecentContacts []contact.Contact    `json:"recentContacts"`
}
