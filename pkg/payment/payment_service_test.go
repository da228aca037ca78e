package payment

import (
	"context"
	"testing"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePaymentRepository struct {
	payments map[string]*entities.Payment
	updates  int
}

func newFakePaymentRepository() *fakePaymentRepository {
	return &fakePaymentRepository{payments: map[string]*entities.Payment{}}
}

func (f *fakePaymentRepository) CreatePayment(_ context.Context, payment *entities.Payment) error {
	f.payments[payment.OrderID] = payment
	return nil
}

func (f *fakePaymentRepository) GetPaymentByOrderID(_ context.Context, orderID string) (*entities.Payment, error) {
	payment, ok := f.payments[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return payment, nil
}

func (f *fakePaymentRepository) UpdatePaymentStatus(_ context.Context, id string, status string) error {
	f.updates++
	for _, payment := range f.payments {
		if payment.ID.String() == id {
			payment.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func seedPayment(repo *fakePaymentRepository, status string) *entities.Payment {
	payment := &entities.Payment{
		ID:            uuid.New(),
		TransactionID: uuid.New(),
		OrderID:       "foodhero-test-1",
		GrossAmount:   150,
		Status:        status,
	}
	repo.payments[payment.OrderID] = payment
	return payment
}

func TestHandleNotification_StatusMapping(t *testing.T) {
	cases := []struct {
		name         string
		notification domain.MidtransNotification
		expected     string
	}{
		{
			name:         "settlement settles",
			notification: domain.MidtransNotification{OrderID: "foodhero-test-1", TransactionStatus: "settlement"},
			expected:     domain.PaymentStatusSettled,
		},
		{
			name:         "accepted capture settles",
			notification: domain.MidtransNotification{OrderID: "foodhero-test-1", TransactionStatus: "capture", FraudStatus: "accept"},
			expected:     domain.PaymentStatusSettled,
		},
		{
			name:         "challenged capture stays pending",
			notification: domain.MidtransNotification{OrderID: "foodhero-test-1", TransactionStatus: "capture", FraudStatus: "challenge"},
			expected:     domain.PaymentStatusPending,
		},
		{
			name:         "expire fails",
			notification: domain.MidtransNotification{OrderID: "foodhero-test-1", TransactionStatus: "expire"},
			expected:     domain.PaymentStatusFailed,
		},
		{
			name:         "unknown status ignored",
			notification: domain.MidtransNotification{OrderID: "foodhero-test-1", TransactionStatus: "pending"},
			expected:     domain.PaymentStatusPending,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakePaymentRepository()
			payment := seedPayment(repo, domain.PaymentStatusPending)
			service := &paymentService{paymentRepository: repo}

			require.NoError(t, service.HandleNotification(context.Background(), tc.notification))
			assert.Equal(t, tc.expected, payment.Status)
		})
	}
}

func TestHandleNotification_UnknownOrder(t *testing.T) {
	service := &paymentService{paymentRepository: newFakePaymentRepository()}

	err := service.HandleNotification(context.Background(), domain.MidtransNotification{OrderID: "missing"})
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestHandleNotification_NoChangeSkipsUpdate(t *testing.T) {
	repo := newFakePaymentRepository()
	seedPayment(repo, domain.PaymentStatusSettled)
	service := &paymentService{paymentRepository: repo}

	require.NoError(t, service.HandleNotification(context.Background(), domain.MidtransNotification{
		OrderID:           "foodhero-test-1",
		TransactionStatus: "settlement",
	}))
	assert.Zero(t, repo.updates)
}
