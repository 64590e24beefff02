package models

// ReminderPayload is the queued payload for an appointment reminder
// email, serialized into the task body.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	Email       string `json:"email"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	StartsAt    string `json:"startsAt"` // RFC 3339
}
