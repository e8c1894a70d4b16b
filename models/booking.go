package models

import "homey/store"

// Booking status values clients conventionally send. Status is stored
// as a free-form string and the API never validates transitions; these
// exist for the reminder job and for documentation.
const (
	StatusRequested = "requested"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// ScheduleList is both sides of a user's calendar: bookings they made
// as a customer and bookings made against them as a provider. A booking
// where both emails match the user appears in both lists.
type ScheduleList struct {
	Bookings []store.Document `json:"bookings"`
	MyWork   []store.Document `json:"myWork"`
}
