// File: services/payment/service.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonapi/config"
	bookingRepo "salonapi/database/repository/booking"
	paymentRepo "salonapi/database/repository/payment"
	serviceRepo "salonapi/database/repository/service"
	userRepo "salonapi/database/repository/user"
	"salonapi/models"
	"salonapi/services/invoice"
	"salonapi/services/notification"
)

// TransferOrder is the response to a transfer payment request: what the
// client needs to execute the transfer.
type TransferOrder struct {
	BookingID string          `json:"bookingId"`
	PaymentID string          `json:"paymentId"`
	Amount    float64         `json:"amount"`
	BankInfo  models.BankInfo `json:"bankInfo"`
}

// Confirmation is the response to a confirmed transfer.
type Confirmation struct {
	BookingID     string `json:"bookingId"`
	PaymentID     string `json:"paymentId"`
	InvoiceNumber string `json:"invoiceNumber"`
}

// CardIntent carries the client secret the frontend needs to complete a
// card payment.
type CardIntent struct {
	BookingID    string  `json:"bookingId"`
	PaymentID    string  `json:"paymentId"`
	Amount       float64 `json:"amount"`
	ClientSecret string  `json:"clientSecret"`
}

// Service handles booking payments: transfer orders, their confirmation
// and card payment intents.
type Service interface {
	RequestTransfer(ctx context.Context, bookingID string, actor models.AuthUser) (*TransferOrder, error)
	ConfirmTransfer(ctx context.Context, bookingID string, actor models.AuthUser) (*Confirmation, error)
	CreateCardIntent(ctx context.Context, bookingID string, actor models.AuthUser) (*CardIntent, error)

	// ConfirmCard settles the card payment carrying the given provider
	// reference. Driven by the payment provider's webhook, not by users.
	ConfirmCard(ctx context.Context, transactionRef string) error
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Bookings bookingRepo.Repository
	Payments paymentRepo.Repository
	Users    userRepo.Repository
	Services serviceRepo.Repository
	Mailer   notification.Mailer
	Logger   *zap.Logger
}

func (s *DefaultPaymentService) RequestTransfer(ctx context.Context, bookingID string, actor models.AuthUser) (*TransferOrder, error) {
	booking, service, err := s.loadPayableBooking(ctx, bookingID, actor, true)
	if err != nil {
		return nil, err
	}

	amount := service.Price
	reference := TransferReference(booking.ID.Hex())

	pay, err := s.Payments.GetPendingByMethod(ctx, booking.ID, models.PaymentMethodTransfer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		createdBy, _ := primitive.ObjectIDFromHex(actor.ID)
		pay, err = s.Payments.Create(ctx, &models.Payment{
			BookingID:      booking.ID,
			Amount:         amount,
			Currency:       "USD",
			Method:         models.PaymentMethodTransfer,
			Status:         models.PaymentPending,
			TransactionRef: reference,
			CreatedBy:      createdBy,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to prepare transfer payment: %w", err)
	}

	cfg := config.AppConfig
	bankInfo := models.BankInfo{
		Bank:          "Banco Pichincha",
		AccountType:   "Cuenta corriente",
		AccountNumber: cfg.BankAccountNumber,
		AccountHolder: cfg.BankAccountHolder,
		Reference:     reference,
	}

	if cfg.AdminEmail != "" {
		if err := s.emailOrderToAdmin(ctx, booking, service, pay, amount, bankInfo); err != nil {
			// The order itself stands; the admin can still find it in the
			// back office.
			s.Logger.Error("failed to email transfer order to admin", zap.Error(err))
		}
	}

	return &TransferOrder{
		BookingID: booking.ID.Hex(),
		PaymentID: pay.ID.Hex(),
		Amount:    amount,
		BankInfo:  bankInfo,
	}, nil
}

func (s *DefaultPaymentService) ConfirmTransfer(ctx context.Context, bookingID string, actor models.AuthUser) (*Confirmation, error) {
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleManager {
		return nil, ErrNotAllowed
	}

	booking, service, err := s.loadPayableBooking(ctx, bookingID, actor, false)
	if err != nil {
		return nil, err
	}

	pay, err := s.Payments.GetPendingByMethod(ctx, booking.ID, models.PaymentMethodTransfer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoPendingTransfer
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pending transfer: %w", err)
	}

	amount := service.Price
	paidAt := time.Now()
	invoiceNumber := InvoiceNumber(booking.ID.Hex(), paidAt)

	if err := s.Payments.MarkPaid(ctx, pay.ID, amount); err != nil {
		return nil, err
	}
	updatedBy, _ := primitive.ObjectIDFromHex(actor.ID)
	if err := s.Bookings.MarkPaid(ctx, booking.ID, amount, models.PaymentMethodTransfer, paidAt, invoiceNumber, updatedBy); err != nil {
		return nil, err
	}

	client, _ := s.Users.GetByID(ctx, booking.ClientID)
	stylist, _ := s.Users.GetByID(ctx, booking.StylistID)

	if client != nil && client.Email != "" {
		pdfBytes, err := invoice.Render(invoice.Data{
			InvoiceNumber: invoiceNumber,
			Method:        models.PaymentMethodTransfer,
			IssuedAt:      paidAt,
			Amount:        amount,
			BookingID:     booking.ID.Hex(),
			StartsAt:      booking.Start,
			Client:        client,
			Stylist:       stylist,
			ServiceName:   service.Name,
			DurationMin:   service.DurationMin,
			Price:         amount,
		})
		if err != nil {
			s.Logger.Error("failed to render invoice pdf", zap.Error(err))
		} else {
			html := notification.InvoiceConfirmedHTML(notification.InvoiceConfirmedParams{
				ServiceName:   service.Name,
				StartsAt:      booking.Start,
				Amount:        amount,
				InvoiceNumber: invoiceNumber,
			})
			filename := fmt.Sprintf("factura-%s.pdf", invoiceNumber)
			if err := s.Mailer.SendWithAttachment(client.Email, "Pago confirmado y cita reservada", html, pdfBytes, filename); err != nil {
				s.Logger.Error("failed to email invoice to client", zap.Error(err))
			}
		}
	}

	return &Confirmation{
		BookingID:     booking.ID.Hex(),
		PaymentID:     pay.ID.Hex(),
		InvoiceNumber: invoiceNumber,
	}, nil
}

func (s *DefaultPaymentService) CreateCardIntent(ctx context.Context, bookingID string, actor models.AuthUser) (*CardIntent, error) {
	booking, service, err := s.loadPayableBooking(ctx, bookingID, actor, true)
	if err != nil {
		return nil, err
	}

	amount := service.Price

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", booking.ID.Hex())

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	createdBy, _ := primitive.ObjectIDFromHex(actor.ID)
	pay, err := s.Payments.Create(ctx, &models.Payment{
		BookingID:      booking.ID,
		Amount:         amount,
		Currency:       "USD",
		Method:         models.PaymentMethodCard,
		Status:         models.PaymentPending,
		TransactionRef: intent.ID,
		CreatedBy:      createdBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record card payment: %w", err)
	}

	return &CardIntent{
		BookingID:    booking.ID.Hex(),
		PaymentID:    pay.ID.Hex(),
		Amount:       amount,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (s *DefaultPaymentService) ConfirmCard(ctx context.Context, transactionRef string) error {
	pay, err := s.Payments.GetPendingByRef(ctx, transactionRef)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Already settled or unknown intent. Webhooks redeliver; not an error.
		s.Logger.Info("card confirmation ignored, no pending payment", zap.String("ref", transactionRef))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load card payment: %w", err)
	}

	booking, err := s.Bookings.GetByID(ctx, pay.BookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking for card payment: %w", err)
	}

	paidAt := time.Now()
	invoiceNumber := InvoiceNumber(booking.ID.Hex(), paidAt)

	if err := s.Payments.MarkPaid(ctx, pay.ID, pay.Amount); err != nil {
		return err
	}
	if err := s.Bookings.MarkPaid(ctx, booking.ID, pay.Amount, models.PaymentMethodCard, paidAt, invoiceNumber, booking.ClientID); err != nil {
		return err
	}

	s.Logger.Info("card payment confirmed",
		zap.String("bookingId", booking.ID.Hex()),
		zap.String("invoice", invoiceNumber))

	client, _ := s.Users.GetByID(ctx, booking.ClientID)
	stylist, _ := s.Users.GetByID(ctx, booking.StylistID)
	service, svcErr := s.Services.GetByID(ctx, booking.ServiceID)

	if client != nil && client.Email != "" && svcErr == nil {
		pdfBytes, err := invoice.Render(invoice.Data{
			InvoiceNumber: invoiceNumber,
			Method:        models.PaymentMethodCard,
			IssuedAt:      paidAt,
			Amount:        pay.Amount,
			BookingID:     booking.ID.Hex(),
			StartsAt:      booking.Start,
			Client:        client,
			Stylist:       stylist,
			ServiceName:   service.Name,
			DurationMin:   service.DurationMin,
			Price:         pay.Amount,
		})
		if err != nil {
			s.Logger.Error("failed to render invoice pdf", zap.Error(err))
			return nil
		}
		html := notification.InvoiceConfirmedHTML(notification.InvoiceConfirmedParams{
			ServiceName:   service.Name,
			StartsAt:      booking.Start,
			Amount:        pay.Amount,
			InvoiceNumber: invoiceNumber,
		})
		filename := fmt.Sprintf("factura-%s.pdf", invoiceNumber)
		if err := s.Mailer.SendWithAttachment(client.Email, "Pago confirmado y cita reservada", html, pdfBytes, filename); err != nil {
			s.Logger.Error("failed to email invoice to client", zap.Error(err))
		}
	}
	return nil
}

// loadPayableBooking validates the booking id, the actor's rights and
// the booking/service state shared by every payment operation.
func (s *DefaultPaymentService) loadPayableBooking(ctx context.Context, bookingID string, actor models.AuthUser, clientAllowed bool) (*models.Booking, *models.Service, error) {
	oid, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, nil, ErrInvalidBookingID
	}

	booking, err := s.Bookings.GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load booking: %w", err)
	}

	switch actor.Role {
	case models.RoleClient:
		if !clientAllowed || booking.ClientID.Hex() != actor.ID {
			return nil, nil, ErrNotAllowed
		}
	case models.RoleAdmin, models.RoleManager:
		// always allowed
	default:
		return nil, nil, ErrNotAllowed
	}

	if booking.PaymentStatus == models.PaymentPaid {
		return nil, nil, ErrAlreadyPaid
	}
	if booking.Status == models.BookingCancelled || booking.Status == models.BookingNoShow {
		return nil, nil, ErrBookingClosed
	}

	service, err := s.Services.GetByID(ctx, booking.ServiceID)
	if err != nil || service.Price <= 0 {
		return nil, nil, ErrInvalidService
	}
	return booking, service, nil
}

func (s *DefaultPaymentService) emailOrderToAdmin(ctx context.Context, booking *models.Booking, service *models.Service, pay *models.Payment, amount float64, bankInfo models.BankInfo) error {
	client, _ := s.Users.GetByID(ctx, booking.ClientID)
	stylist, _ := s.Users.GetByID(ctx, booking.StylistID)

	issuedAt := time.Now()
	pdfBytes, err := invoice.Render(invoice.Data{
		InvoiceNumber: InvoiceNumber(booking.ID.Hex(), issuedAt),
		Method:        models.PaymentMethodTransfer,
		IssuedAt:      issuedAt,
		Amount:        amount,
		BookingID:     booking.ID.Hex(),
		StartsAt:      booking.Start,
		Client:        client,
		Stylist:       stylist,
		ServiceName:   service.Name,
		DurationMin:   service.DurationMin,
		Price:         amount,
	})
	if err != nil {
		return err
	}

	clientName := "Cliente"
	if client != nil {
		clientName = client.FullName()
	}

	confirmURL := fmt.Sprintf("%s?bookingId=%s&paymentId=%s",
		config.AppConfig.AdminConfirmURLBase, booking.ID.Hex(), pay.ID.Hex())

	html := notification.TransferOrderHTML(notification.TransferOrderParams{
		ClientName:  clientName,
		ServiceName: service.Name,
		StartsAt:    booking.Start,
		Amount:      amount,
		Bank:        bankInfo,
		ConfirmURL:  confirmURL,
	})

	filename := fmt.Sprintf("orden-pago-%s.pdf", InvoiceNumber(booking.ID.Hex(), issuedAt))
	return s.Mailer.SendWithAttachment(config.AppConfig.AdminEmail, "Nueva orden de pago por transferencia", html, pdfBytes, filename)
}
