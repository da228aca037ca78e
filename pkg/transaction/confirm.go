package transaction

import (
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
)

type confirmOutcome struct {
	// roleServer is true when the confirming party is the serving side.
	roleServer bool
	// alreadyConfirmed means this role had confirmed before; the call is a
	// no-op for that flag.
	alreadyConfirmed bool
	// becameDelivered is true only on the Pending -> Delivered edge. The
	// dual-confirmation side effects run exactly when this is set, never
	// again for the same transaction.
	becameDelivered bool
}

// applyConfirmation records one party's confirmation on the transaction and
// reports what changed. Status flips to Delivered only when both flags are
// set while the status is still observed Pending; deriving the edge from the
// observed status rather than the flags alone is what keeps the side effects
// from firing twice.
func applyConfirmation(transaction *entities.Transaction, partyID string, now time.Time) (confirmOutcome, error) {
	var outcome confirmOutcome

	switch partyID {
	case transaction.ServerUserID.String():
		outcome.roleServer = true
		outcome.alreadyConfirmed = transaction.ServerConfirmed
		transaction.ServerConfirmed = true
	case transaction.ReceiverUserID.String():
		outcome.alreadyConfirmed = transaction.ReceiverConfirmed
		transaction.ReceiverConfirmed = true
	default:
		return outcome, domain.ErrNotTransactionParty
	}

	if transaction.ServerConfirmed && transaction.ReceiverConfirmed &&
		transaction.Status == domain.TransactionStatusPending {
		transaction.Status = domain.TransactionStatusDelivered
		completedAt := now
		transaction.CompletedAt = &completedAt
		outcome.becameDelivered = true
	}

	return outcome, nil
}

// statFields returns the counter columns credited to the server and receiver
// when a transaction of the given type completes.
func statFields(transactionType string) (serverField, receiverField string) {
	if transactionType == domain.TransactionTypeDonation {
		return "donations_served", "donations_served"
	}
	return "orders_served", "orders_received"
}

// serverReward is the point grant for the serving party on completion.
func serverReward(transactionType string) int {
	if transactionType == domain.TransactionTypeDonation {
		return domain.RewardDonationServed
	}
	return domain.RewardOrderServed
}

// statChange is one counter bump, optionally paired with the history entry
// recorded alongside it.
type statChange struct {
	partyID   string
	partyKind string
	field     string
	delta     int
	history   *entities.TransactionHistory
}

// deliveryStatChanges is the write plan for the moment a transaction reaches
// Delivered: the serving and receiving parties' counters, one history row for
// each party referencing the counterparty, and the server's reward grant.
func deliveryStatChanges(transaction *entities.Transaction, now time.Time) []statChange {
	serverField, receiverField := statFields(transaction.Type)

	return []statChange{
		{
			partyID:   transaction.ServerUserID.String(),
			partyKind: transaction.ServerUserKind,
			field:     serverField,
			delta:     1,
			history: &entities.TransactionHistory{
				PartyID:       transaction.ServerUserID,
				PartyKind:     transaction.ServerUserKind,
				TransactionID: transaction.ID,
				Type:          transaction.Type,
				Status:        transaction.Status,
				PartnerID:     transaction.ReceiverUserID,
				PartnerKind:   transaction.ReceiverUserKind,
				RecordedAt:    now,
			},
		},
		{
			partyID:   transaction.ReceiverUserID.String(),
			partyKind: transaction.ReceiverUserKind,
			field:     receiverField,
			delta:     1,
			history: &entities.TransactionHistory{
				PartyID:       transaction.ReceiverUserID,
				PartyKind:     transaction.ReceiverUserKind,
				TransactionID: transaction.ID,
				Type:          transaction.Type,
				Status:        transaction.Status,
				PartnerID:     transaction.ServerUserID,
				PartnerKind:   transaction.ServerUserKind,
				RecordedAt:    now,
			},
		},
		{
			partyID:   transaction.ServerUserID.String(),
			partyKind: transaction.ServerUserKind,
			field:     "rewards",
			delta:     serverReward(transaction.Type),
		},
	}
}
