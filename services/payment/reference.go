package payment

import (
	"fmt"
	"strings"
	"time"
)

// shortID is the last six characters of a booking id, upper-cased. It is
// what clients write in the transfer concept and what invoices embed.
func shortID(bookingID string) string {
	if len(bookingID) > 6 {
		bookingID = bookingID[len(bookingID)-6:]
	}
	return strings.ToUpper(bookingID)
}

// TransferReference builds the bank reference for a transfer order,
// e.g. "RES-A1B2C3".
func TransferReference(bookingID string) string {
	return "RES-" + shortID(bookingID)
}

// InvoiceNumber builds the invoice identifier for a booking,
// e.g. "FCT-20240610-A1B2C3".
func InvoiceNumber(bookingID string, now time.Time) string {
	return fmt.Sprintf("FCT-%s-%s", now.Format("20060102"), shortID(bookingID))
}
