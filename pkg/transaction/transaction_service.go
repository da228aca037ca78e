package transaction

import (
	"context"
	"errors"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/listing"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/party"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/payment"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TransactionService interface {
		Create(ctx context.Context, req domain.CreateTransactionRequest, requesterID string, requesterKind string) (*domain.Transaction, error)
		GetByID(ctx context.Context, id string) (*domain.Transaction, error)
		Confirm(ctx context.Context, transactionID string, partyID string) (*domain.Transaction, error)
	}

	transactionService struct {
		transactionRepository TransactionRepository
		listingRepository     listing.ListingRepository
		partyRepository       party.PartyRepository
		paymentService        payment.PaymentService
	}
)

func NewTransactionService(
	transactionRepository TransactionRepository,
	listingRepository listing.ListingRepository,
	partyRepository party.PartyRepository,
	paymentService payment.PaymentService,
) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		listingRepository:     listingRepository,
		partyRepository:       partyRepository,
		paymentService:        paymentService,
	}
}

func (s *transactionService) Create(ctx context.Context, req domain.CreateTransactionRequest, requesterID string, requesterKind string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(req.ListingID); err != nil {
		return nil, domain.ErrInvalidListingID
	}

	listed, err := s.listingRepository.GetListingByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}

	if listed.ListerID.String() == requesterID {
		return nil, domain.ErrSelfTransaction
	}

	// The listing's creator serves; the requester receives.
	server, err := s.partyRepository.FindByIDAndKind(ctx, listed.ListerID.String(), listed.ListerKind)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}

	receiver, err := s.partyRepository.FindByIDAndKind(ctx, requesterID, requesterKind)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}

	transactionType := domain.TransactionTypeOrder
	if listed.ListingKind == domain.ListingKindDonation {
		transactionType = domain.TransactionTypeDonation
	}

	receiverUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return nil, domain.ErrPartyNotFound
	}

	transaction := &entities.Transaction{
		ID:               uuid.New(),
		ServerUserID:     listed.ListerID,
		ServerUserKind:   listed.ListerKind,
		ServerUserName:   server.Name,
		ReceiverUserID:   receiverUUID,
		ReceiverUserKind: requesterKind,
		ReceiverUserName: receiver.Name,
		ListingID:        listed.ID,
		Type:             transactionType,
		Status:           domain.TransactionStatusPending,
	}

	if err := s.transactionRepository.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	result := toDomainTransaction(transaction)

	// Marketplace orders get a payment link. The ledger entry stands even if
	// the payment gateway is down; the link can be recreated later.
	if transactionType == domain.TransactionTypeOrder && listed.Price > 0 {
		gross := listed.Price * float64(listed.Quantity)
		paymentResponse, err := s.paymentService.CreateForTransaction(ctx, transaction.ID, receiver.Email, gross)
		if err != nil {
			log.Warnf("failed to create payment for transaction %s: %v", transaction.ID, err)
		} else {
			result.PaymentURL = paymentResponse.SnapURL
		}
	}

	return result, nil
}

func (s *transactionService) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidTransactionID
	}

	transaction, err := s.transactionRepository.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return toDomainTransaction(transaction), nil
}

func (s *transactionService) Confirm(ctx context.Context, transactionID string, partyID string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, domain.ErrInvalidTransactionID
	}

	transaction, err := s.transactionRepository.Confirm(ctx, transactionID, partyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return toDomainTransaction(transaction), nil
}

func toDomainTransaction(transaction *entities.Transaction) *domain.Transaction {
	result := &domain.Transaction{
		ID:                transaction.ID.String(),
		ServerUserID:      transaction.ServerUserID.String(),
		ServerUserKind:    transaction.ServerUserKind,
		ServerUserName:    transaction.ServerUserName,
		ReceiverUserID:    transaction.ReceiverUserID.String(),
		ReceiverUserKind:  transaction.ReceiverUserKind,
		ReceiverUserName:  transaction.ReceiverUserName,
		ListingID:         transaction.ListingID.String(),
		Type:              transaction.Type,
		Status:            transaction.Status,
		ServerConfirmed:   transaction.ServerConfirmed,
		ReceiverConfirmed: transaction.ReceiverConfirmed,
		CompletedAt:       transaction.CompletedAt,
		CreatedAt:         transaction.CreatedAt,
	}
	if transaction.Listing != nil {
		result.Listing = toDomainListing(transaction.Listing)
	}
	return result
}

func toDomainListing(listed *entities.Listing) *domain.Listing {
	return &domain.Listing{
		ID:             listed.ID.String(),
		ListingKind:    listed.ListingKind,
		ItemName:       listed.ItemName,
		ItemCategory:   listed.ItemCategory,
		Description:    listed.Description,
		Quantity:       listed.Quantity,
		Price:          listed.Price,
		Feeds:          listed.Feeds,
		Status:         listed.Status,
		ListerID:       listed.ListerID.String(),
		ListerKind:     listed.ListerKind,
		ListerName:     listed.ListerName,
		ListerContact:  listed.ListerContact,
		ListerLocation: listed.ListerLocation,
		Rating:         listed.Rating,
		ImageURL:       listed.ImageURL,
		ExpiryDate:     listed.ExpiryDate,
		CreatedAt:      listed.CreatedAt,
		UpdatedAt:      listed.UpdatedAt,
	}
}
