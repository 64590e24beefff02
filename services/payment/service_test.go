package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonapi/models"
)

type fakeBookingRepo struct {
	booking    *models.Booking
	markedPaid bool
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) FindBusyIntervals(ctx context.Context, stylistIDs []primitive.ObjectID, dayStart, dayEnd time.Time, statuses []models.BookingStatus) ([]models.BusyInterval, error) {
	return nil, nil
}

func (f *fakeBookingRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, price float64, method models.PaymentMethod, paidAt time.Time, invoiceNumber string, updatedBy primitive.ObjectID) error {
	f.markedPaid = true
	return nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, start, end *time.Time) ([]models.StatusCount, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindActiveStartingBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	pending    *models.Payment
	created    *models.Payment
	markedPaid bool
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	p.ID = primitive.NewObjectID()
	f.created = p
	return p, nil
}

func (f *fakePaymentRepo) GetPendingByMethod(ctx context.Context, bookingID primitive.ObjectID, method models.PaymentMethod) (*models.Payment, error) {
	if f.pending == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.pending, nil
}

func (f *fakePaymentRepo) GetPendingByRef(ctx context.Context, transactionRef string) (*models.Payment, error) {
	if f.pending == nil || f.pending.TransactionRef != transactionRef {
		return nil, mongo.ErrNoDocuments
	}
	return f.pending, nil
}

func (f *fakePaymentRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, amount float64) error {
	f.markedPaid = true
	return nil
}

func (f *fakePaymentRepo) RevenueByPeriod(ctx context.Context, period models.ReportPeriod, start, end *time.Time) ([]models.RevenueBucket, error) {
	return nil, nil
}

func (f *fakePaymentRepo) RevenueByStylist(ctx context.Context, start, end *time.Time) ([]models.StylistRevenue, error) {
	return nil, nil
}

func (f *fakePaymentRepo) TopServices(ctx context.Context, start, end *time.Time) ([]models.ServiceRevenue, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

type fakeServiceRepo struct {
	service *models.Service
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	if f.service == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.service, nil
}

type fakeMailer struct {
	sent        []string
	attachments []string
}

func (f *fakeMailer) Send(to, subject, html string) error {
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailer) SendWithAttachment(to, subject, html string, attachment []byte, filename string) error {
	f.sent = append(f.sent, to)
	f.attachments = append(f.attachments, filename)
	return nil
}

func (f *fakeMailer) Verify() error { return nil }

func newFixture() (*DefaultPaymentService, *fakeBookingRepo, *fakePaymentRepo, *fakeMailer, *models.Booking) {
	clientID := primitive.NewObjectID()
	stylistID := primitive.NewObjectID()
	serviceID := primitive.NewObjectID()

	booking := &models.Booking{
		ID:        primitive.NewObjectID(),
		ClientID:  clientID,
		StylistID: stylistID,
		ServiceID: serviceID,
		Start:     time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC),
		Status:    models.BookingScheduled,
	}

	bookings := &fakeBookingRepo{booking: booking}
	payments := &fakePaymentRepo{}
	mailer := &fakeMailer{}

	svc := &DefaultPaymentService{
		Bookings: bookings,
		Payments: payments,
		Users: &fakeUserRepo{users: map[primitive.ObjectID]*models.User{
			clientID:  {ID: clientID, FirstName: "Lucía", LastName: "Paredes", Email: "lucia@example.com", Role: models.RoleClient},
			stylistID: {ID: stylistID, FirstName: "Ana", LastName: "Mora", Email: "ana@example.com", Role: models.RoleStylist},
		}},
		Services: &fakeServiceRepo{service: &models.Service{
			ID: serviceID, Name: "Corte de cabello", DurationMin: 60, Price: 25, Active: true,
		}},
		Mailer: mailer,
		Logger: zap.NewNop(),
	}
	return svc, bookings, payments, mailer, booking
}

func asClient(b *models.Booking) models.AuthUser {
	return models.AuthUser{ID: b.ClientID.Hex(), Role: models.RoleClient}
}

func TestRequestTransfer_CreatesPendingPayment(t *testing.T) {
	svc, _, payments, _, booking := newFixture()

	order, err := svc.RequestTransfer(context.Background(), booking.ID.Hex(), asClient(booking))

	require.NoError(t, err)
	assert.Equal(t, booking.ID.Hex(), order.BookingID)
	assert.Equal(t, 25.0, order.Amount)
	assert.Equal(t, TransferReference(booking.ID.Hex()), order.BankInfo.Reference)

	require.NotNil(t, payments.created)
	assert.Equal(t, models.PaymentPending, payments.created.Status)
	assert.Equal(t, models.PaymentMethodTransfer, payments.created.Method)
}

func TestRequestTransfer_ReusesExistingPendingPayment(t *testing.T) {
	svc, _, payments, _, booking := newFixture()
	payments.pending = &models.Payment{
		ID:        primitive.NewObjectID(),
		BookingID: booking.ID,
		Method:    models.PaymentMethodTransfer,
		Status:    models.PaymentPending,
	}

	order, err := svc.RequestTransfer(context.Background(), booking.ID.Hex(), asClient(booking))

	require.NoError(t, err)
	assert.Equal(t, payments.pending.ID.Hex(), order.PaymentID)
	assert.Nil(t, payments.created)
}

func TestRequestTransfer_InvalidID(t *testing.T) {
	svc, _, _, _, _ := newFixture()

	_, err := svc.RequestTransfer(context.Background(), "not-an-id", models.AuthUser{Role: models.RoleAdmin})

	assert.ErrorIs(t, err, ErrInvalidBookingID)
}

func TestRequestTransfer_NotFound(t *testing.T) {
	svc, _, _, _, _ := newFixture()

	_, err := svc.RequestTransfer(context.Background(), primitive.NewObjectID().Hex(), models.AuthUser{Role: models.RoleAdmin})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRequestTransfer_OtherClientForbidden(t *testing.T) {
	svc, _, _, _, booking := newFixture()
	other := models.AuthUser{ID: primitive.NewObjectID().Hex(), Role: models.RoleClient}

	_, err := svc.RequestTransfer(context.Background(), booking.ID.Hex(), other)

	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestRequestTransfer_AlreadyPaid(t *testing.T) {
	svc, bookings, _, _, booking := newFixture()
	bookings.booking.PaymentStatus = models.PaymentPaid

	_, err := svc.RequestTransfer(context.Background(), booking.ID.Hex(), asClient(booking))

	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestRequestTransfer_CancelledBooking(t *testing.T) {
	svc, bookings, _, _, booking := newFixture()
	bookings.booking.Status = models.BookingCancelled

	_, err := svc.RequestTransfer(context.Background(), booking.ID.Hex(), asClient(booking))

	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestConfirmTransfer_RequiresBackOfficeRole(t *testing.T) {
	svc, _, _, _, booking := newFixture()

	_, err := svc.ConfirmTransfer(context.Background(), booking.ID.Hex(), asClient(booking))

	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestConfirmTransfer_NoPendingTransfer(t *testing.T) {
	svc, _, _, _, booking := newFixture()

	_, err := svc.ConfirmTransfer(context.Background(), booking.ID.Hex(), models.AuthUser{ID: primitive.NewObjectID().Hex(), Role: models.RoleAdmin})

	assert.ErrorIs(t, err, ErrNoPendingTransfer)
}

func TestConfirmCard_SettlesPendingPayment(t *testing.T) {
	svc, bookings, payments, mailer, booking := newFixture()
	payments.pending = &models.Payment{
		ID:             primitive.NewObjectID(),
		BookingID:      booking.ID,
		Amount:         25,
		Method:         models.PaymentMethodCard,
		Status:         models.PaymentPending,
		TransactionRef: "pi_test_123",
	}

	err := svc.ConfirmCard(context.Background(), "pi_test_123")

	require.NoError(t, err)
	assert.True(t, payments.markedPaid)
	assert.True(t, bookings.markedPaid)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "lucia@example.com", mailer.sent[0])
}

func TestConfirmCard_UnknownRefIgnored(t *testing.T) {
	svc, bookings, payments, _, _ := newFixture()

	err := svc.ConfirmCard(context.Background(), "pi_unknown")

	require.NoError(t, err)
	assert.False(t, payments.markedPaid)
	assert.False(t, bookings.markedPaid)
}

func TestConfirmTransfer_MarksBothRecordsAndEmailsClient(t *testing.T) {
	svc, bookings, payments, mailer, booking := newFixture()
	payments.pending = &models.Payment{
		ID:        primitive.NewObjectID(),
		BookingID: booking.ID,
		Method:    models.PaymentMethodTransfer,
		Status:    models.PaymentPending,
	}
	admin := models.AuthUser{ID: primitive.NewObjectID().Hex(), Role: models.RoleAdmin}

	confirmation, err := svc.ConfirmTransfer(context.Background(), booking.ID.Hex(), admin)

	require.NoError(t, err)
	assert.True(t, payments.markedPaid)
	assert.True(t, bookings.markedPaid)
	assert.Contains(t, confirmation.InvoiceNumber, "FCT-")
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "lucia@example.com", mailer.sent[0])
	require.Len(t, mailer.attachments, 1)
	assert.Contains(t, mailer.attachments[0], confirmation.InvoiceNumber)
}
