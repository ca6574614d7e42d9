package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the admin-controlled booking state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus rejects anything outside the three recognized values.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return s, nil
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// Booking is a customer inquiry, possibly tied to a package.
type Booking struct {
	ID              int64     `json:"id"`
	PackageID       *int64    `json:"package_id"`
	CustomerName    string    `json:"customer_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	TravelDate      string    `json:"travel_date"`
	NumAdults       int       `json:"num_adults"`
	NumChildren     int       `json:"num_children"`
	SpecialRequests string    `json:"special_requests"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`

	// Join fields, empty when the package or destination no longer resolves.
	PackageTitle    string `json:"package_title"`
	DestinationName string `json:"destination_name"`
}

// BookingInput carries the customer submission before validation.
// NumAdults is a pointer so "absent" and "zero" stay distinguishable.
type BookingInput struct {
	PackageID       *int64 `json:"package_id"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	TravelDate      string `json:"travel_date"`
	NumAdults       *int   `json:"num_adults"`
	NumChildren     *int   `json:"num_children"`
	SpecialRequests string `json:"special_requests"`
}
