package transaction

import (
	"context"
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/party"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	TransactionRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.Transaction) error
		GetTransactionByID(ctx context.Context, id string) (*entities.Transaction, error)
		Confirm(ctx context.Context, transactionID string, partyID string) (*entities.Transaction, error)
	}

	transactionRepository struct {
		db              *gorm.DB
		partyRepository party.PartyRepository
	}
)

func NewTransactionRepository(db *gorm.DB, partyRepository party.PartyRepository) TransactionRepository {
	return &transactionRepository{
		db:              db,
		partyRepository: partyRepository,
	}
}

// CreateTransaction persists the ledger entry and moves the listing to
// Pending in one database transaction.
func (r *transactionRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Listing{}).
			Where("id = ?", transaction.ListingID).
			Update("status", domain.ListingStatusPending).Error
	})
}

func (r *transactionRepository) GetTransactionByID(ctx context.Context, id string) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Listing").
		Where("id = ?", id).
		First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Confirm applies one party's confirmation. The row is locked for the whole
// read-modify-write, and the dual-confirmation side effects (listing status,
// both parties' counters, history entries, the server's reward) commit in the
// same database transaction as the status flip, so a partial update can never
// be observed.
func (r *transactionRepository) Confirm(ctx context.Context, transactionID string, partyID string) (*entities.Transaction, error) {
	var transaction entities.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", transactionID).
			First(&transaction).Error; err != nil {
			return err
		}

		now := time.Now()
		outcome, err := applyConfirmation(&transaction, partyID, now)
		if err != nil {
			return err
		}

		if outcome.alreadyConfirmed && !outcome.becameDelivered {
			// Re-confirmation by the same role; nothing to write.
			return nil
		}

		if err := tx.Model(&entities.Transaction{}).
			Where("id = ?", transaction.ID).
			Updates(map[string]interface{}{
				"server_confirmed":   transaction.ServerConfirmed,
				"receiver_confirmed": transaction.ReceiverConfirmed,
				"status":             transaction.Status,
				"completed_at":       transaction.CompletedAt,
			}).Error; err != nil {
			return err
		}

		if !outcome.becameDelivered {
			return nil
		}

		// The listing may already be gone if the sweeper removed it
		// mid-flight; the ledger stays authoritative regardless.
		if err := tx.Model(&entities.Listing{}).
			Where("id = ?", transaction.ListingID).
			Update("status", domain.ListingStatusDelivered).Error; err != nil {
			return err
		}

		for _, change := range deliveryStatChanges(&transaction, now) {
			if err := r.partyRepository.IncrementStat(ctx, tx, change.partyID, change.partyKind, change.field, change.delta, change.history); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &transaction, nil
}
