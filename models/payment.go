package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER_PICHINCHA"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Payment records one charge attempt against a booking.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID      primitive.ObjectID `bson:"bookingId" json:"bookingId"`
	Amount         float64            `bson:"amount" json:"amount"`
	Currency       string             `bson:"currency" json:"currency"`
	Method         PaymentMethod      `bson:"method" json:"method"`
	Status         PaymentStatus      `bson:"status" json:"status"`
	TransactionRef string             `bson:"transactionRef,omitempty" json:"transactionRef,omitempty"`
	CardBrand      string             `bson:"cardBrand,omitempty" json:"cardBrand,omitempty"`
	CardLast4      string             `bson:"cardLast4,omitempty" json:"cardLast4,omitempty"`
	CreatedBy      primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BankInfo is what a client needs to pay a transfer order.
type BankInfo struct {
	Bank          string `json:"bank"`
	AccountType   string `json:"accountType"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	Reference     string `json:"reference"`
}
