package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/utils"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CreateForTransaction(ctx context.Context, transactionID uuid.UUID, payerEmail string, grossAmount float64) (*domain.PaymentResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	paymentService struct {
		paymentRepository PaymentRepository
		snapClient        snap.Client
	}
)

func NewPaymentService(paymentRepository PaymentRepository) PaymentService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{
		paymentRepository: paymentRepository,
		snapClient:        client,
	}
}

func (s *paymentService) CreateForTransaction(ctx context.Context, transactionID uuid.UUID, payerEmail string, grossAmount float64) (*domain.PaymentResponse, error) {
	orderID := fmt.Sprintf("foodhero-%s-%d", transactionID.String(), time.Now().Unix())

	snapRequest := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(grossAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: payerEmail,
		},
	}

	snapResponse, snapErr := s.snapClient.CreateTransaction(snapRequest)
	if snapErr != nil {
		return nil, snapErr
	}

	payment := &entities.Payment{
		ID:            uuid.New(),
		TransactionID: transactionID,
		OrderID:       orderID,
		GrossAmount:   grossAmount,
		SnapURL:       snapResponse.RedirectURL,
		Status:        domain.PaymentStatusPending,
	}
	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return &domain.PaymentResponse{
		ID:            payment.ID.String(),
		TransactionID: transactionID.String(),
		OrderID:       orderID,
		GrossAmount:   grossAmount,
		SnapURL:       payment.SnapURL,
		Status:        payment.Status,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	payment, err := s.paymentRepository.GetPaymentByOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPaymentNotFound
		}
		return err
	}

	status := payment.Status
	switch notification.TransactionStatus {
	case "settlement":
		status = domain.PaymentStatusSettled
	case "capture":
		if notification.FraudStatus == "accept" {
			status = domain.PaymentStatusSettled
		}
	case "deny", "cancel", "expire":
		status = domain.PaymentStatusFailed
	}

	if status == payment.Status {
		return nil
	}
	return s.paymentRepository.UpdatePaymentStatus(ctx, payment.ID.String(), status)
}
