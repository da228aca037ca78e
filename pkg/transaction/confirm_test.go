package transaction

import (
	"testing"
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingTransaction(transactionType string) *entities.Transaction {
	return &entities.Transaction{
		ID:               uuid.New(),
		ServerUserID:     uuid.New(),
		ServerUserKind:   domain.RoleKitchen,
		ReceiverUserID:   uuid.New(),
		ReceiverUserKind: domain.RoleNgo,
		ListingID:        uuid.New(),
		Type:             transactionType,
		Status:           domain.TransactionStatusPending,
	}
}

func TestApplyConfirmation_ServerFirst(t *testing.T) {
	tr := pendingTransaction(domain.TransactionTypeDonation)
	now := time.Now()

	outcome, err := applyConfirmation(tr, tr.ServerUserID.String(), now)
	require.NoError(t, err)

	assert.True(t, outcome.roleServer)
	assert.False(t, outcome.alreadyConfirmed)
	assert.False(t, outcome.becameDelivered)
	assert.True(t, tr.ServerConfirmed)
	assert.False(t, tr.ReceiverConfirmed)
	assert.Equal(t, domain.TransactionStatusPending, tr.Status)
	assert.Nil(t, tr.CompletedAt)
}

func TestApplyConfirmation_SecondConfirmationDelivers(t *testing.T) {
	tr := pendingTransaction(domain.TransactionTypeDonation)
	now := time.Now()

	_, err := applyConfirmation(tr, tr.ServerUserID.String(), now)
	require.NoError(t, err)

	outcome, err := applyConfirmation(tr, tr.ReceiverUserID.String(), now)
	require.NoError(t, err)

	assert.False(t, outcome.roleServer)
	assert.True(t, outcome.becameDelivered)
	assert.Equal(t, domain.TransactionStatusDelivered, tr.Status)
	require.NotNil(t, tr.CompletedAt)
	assert.Equal(t, now, *tr.CompletedAt)
}

func TestApplyConfirmation_ReceiverFirstThenServer(t *testing.T) {
	tr := pendingTransaction(domain.TransactionTypeOrder)
	now := time.Now()

	outcome, err := applyConfirmation(tr, tr.ReceiverUserID.String(), now)
	require.NoError(t, err)
	assert.False(t, outcome.becameDelivered)
	assert.Equal(t, domain.TransactionStatusPending, tr.Status)

	outcome, err = applyConfirmation(tr, tr.ServerUserID.String(), now)
	require.NoError(t, err)
	assert.True(t, outcome.becameDelivered)
	assert.Equal(t, domain.TransactionStatusDelivered, tr.Status)
}

func TestApplyConfirmation_RepeatBySameRoleIsNoOp(t *testing.T) {
	tr := pendingTransaction(domain.TransactionTypeDonation)
	now := time.Now()

	_, err := applyConfirmation(tr, tr.ServerUserID.String(), now)
	require.NoError(t, err)

	outcome, err := applyConfirmation(tr, tr.ServerUserID.String(), now)
	require.NoError(t, err)
	assert.True(t, outcome.alreadyConfirmed)
	assert.False(t, outcome.becameDelivered)
	assert.Equal(t, domain.TransactionStatusPending, tr.Status)
}

func TestApplyConfirmation_NeverDeliversTwice(t *testing.T) {
	tr := pendingTransaction(domain.TransactionTypeOrder)
	now := time.Now()

	_, err := applyConfirmation(tr, tr.ServerUserID.String(), now)
	require.NoError(t, err)
	outcome, err := applyConfirmation(tr, tr.ReceiverUserID.String(), now)
	require.NoError(t, err)
	require.True(t, outcome.becameDelivered)
	completedAt := *tr.CompletedAt

	// A confirmation replayed after delivery must not fire the edge again
	// or move the completion time.
	later := now.Add(time.Hour)
	outcome, err = applyConfirmation(tr, tr.ReceiverUserID.String(), later)
	require.NoError(t, err)
	assert.True(t, outcome.alreadyConfirmed)
	assert.False(t, outcome.becameDelivered)
	assert.Equal(t, domain.TransactionStatusDelivered, tr.Status)
	assert.Equal(t, completedAt, *tr.CompletedAt)
}

func TestApplyConfirmation_StrangerIsRejected(t *testing.T) {
	tr := pendingTransaction(domain.TransactionTypeDonation)

	_, err := applyConfirmation(tr, uuid.New().String(), time.Now())
	assert.ErrorIs(t, err, domain.ErrNotTransactionParty)
	assert.False(t, tr.ServerConfirmed)
	assert.False(t, tr.ReceiverConfirmed)
	assert.Equal(t, domain.TransactionStatusPending, tr.Status)
}

func TestStatFields(t *testing.T) {
	serverField, receiverField := statFields(domain.TransactionTypeDonation)
	assert.Equal(t, "donations_served", serverField)
	assert.Equal(t, "donations_served", receiverField)

	serverField, receiverField = statFields(domain.TransactionTypeOrder)
	assert.Equal(t, "orders_served", serverField)
	assert.Equal(t, "orders_received", receiverField)
}

func TestDeliveryStatChanges(t *testing.T) {
	cases := []struct {
		name            string
		transactionType string
		serverField     string
		receiverField   string
		reward          int
	}{
		{
			name:            "donation credits both sides and grants 10",
			transactionType: domain.TransactionTypeDonation,
			serverField:     "donations_served",
			receiverField:   "donations_served",
			reward:          domain.RewardDonationServed,
		},
		{
			name:            "order splits served and received and grants 5",
			transactionType: domain.TransactionTypeOrder,
			serverField:     "orders_served",
			receiverField:   "orders_received",
			reward:          domain.RewardOrderServed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := pendingTransaction(tc.transactionType)
			now := time.Now()
			_, err := applyConfirmation(tr, tr.ServerUserID.String(), now)
			require.NoError(t, err)
			_, err = applyConfirmation(tr, tr.ReceiverUserID.String(), now)
			require.NoError(t, err)

			changes := deliveryStatChanges(tr, now)
			require.Len(t, changes, 3)

			serverChange, receiverChange, rewardChange := changes[0], changes[1], changes[2]

			assert.Equal(t, tr.ServerUserID.String(), serverChange.partyID)
			assert.Equal(t, tr.ServerUserKind, serverChange.partyKind)
			assert.Equal(t, tc.serverField, serverChange.field)
			assert.Equal(t, 1, serverChange.delta)
			require.NotNil(t, serverChange.history)
			assert.Equal(t, tr.ServerUserID, serverChange.history.PartyID)
			assert.Equal(t, tr.ReceiverUserID, serverChange.history.PartnerID)
			assert.Equal(t, tr.ReceiverUserKind, serverChange.history.PartnerKind)

			assert.Equal(t, tr.ReceiverUserID.String(), receiverChange.partyID)
			assert.Equal(t, tc.receiverField, receiverChange.field)
			assert.Equal(t, 1, receiverChange.delta)
			require.NotNil(t, receiverChange.history)
			assert.Equal(t, tr.ReceiverUserID, receiverChange.history.PartyID)
			assert.Equal(t, tr.ServerUserID, receiverChange.history.PartnerID)
			assert.Equal(t, tr.ServerUserKind, receiverChange.history.PartnerKind)

			assert.Equal(t, tr.ServerUserID.String(), rewardChange.partyID)
			assert.Equal(t, "rewards", rewardChange.field)
			assert.Equal(t, tc.reward, rewardChange.delta)
			assert.Nil(t, rewardChange.history)

			for _, change := range changes[:2] {
				assert.Equal(t, tr.ID, change.history.TransactionID)
				assert.Equal(t, tc.transactionType, change.history.Type)
				assert.Equal(t, domain.TransactionStatusDelivered, change.history.Status)
				assert.Equal(t, now, change.history.RecordedAt)
			}
		})
	}
}

func TestServerReward(t *testing.T) {
	assert.Equal(t, domain.RewardDonationServed, serverReward(domain.TransactionTypeDonation))
	assert.Equal(t, domain.RewardOrderServed, serverReward(domain.TransactionTypeOrder))
}
