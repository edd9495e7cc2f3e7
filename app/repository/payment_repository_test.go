package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telecloudhq/telecloud/app/models"
)

func TestCreatePaymentDuplicateTxRefFails(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	user := seedUser(t, db, "payer")

	first := &models.Payment{
		UserID: user.ID, Amount: "49.99", Currency: "USD",
		TxRef: "tx-dup", Plan: models.PLAN_ANNUAL,
	}
	require.NoError(t, repo.Create(first))

	replay := &models.Payment{
		UserID: user.ID, Amount: "49.99", Currency: "USD",
		TxRef: "tx-dup", Plan: models.PLAN_ANNUAL,
	}
	assert.ErrorIs(t, repo.Create(replay), ErrConstraintViolation)
}

func TestCreatePaymentValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	user := seedUser(t, db, "validator")

	// plan outside the enum
	err := repo.Create(&models.Payment{
		UserID: user.ID, Amount: "1.00", Currency: "USD",
		TxRef: "tx-badplan", Plan: "WEEKLY",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// missing currency
	err = repo.Create(&models.Payment{
		UserID: user.ID, Amount: "1.00", TxRef: "tx-nocur",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMarkPaymentDone(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	user := seedUser(t, db, "finisher")

	require.NoError(t, repo.Create(&models.Payment{
		UserID: user.ID, Amount: "9.99", Currency: "EUR",
		TxRef: "tx-done", Plan: models.PLAN_MONTHLY,
	}))

	require.NoError(t, repo.MarkDone("tx-done"))
	assert.ErrorIs(t, repo.MarkDone("tx-unknown"), ErrNotFound)

	got, err := repo.GetByTxRef("tx-done")
	require.NoError(t, err)
	assert.True(t, got.IsPaymentDone)
}

func TestListPaymentsByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	user := seedUser(t, db, "history")
	other := seedUser(t, db, "otherpayer")

	require.NoError(t, repo.Create(&models.Payment{
		UserID: user.ID, Amount: "1", Currency: "USD", TxRef: "tx-h1",
	}))
	require.NoError(t, repo.Create(&models.Payment{
		UserID: user.ID, Amount: "2", Currency: "USD", TxRef: "tx-h2",
	}))
	require.NoError(t, repo.Create(&models.Payment{
		UserID: other.ID, Amount: "3", Currency: "USD", TxRef: "tx-o1",
	}))

	payments, err := repo.ListByUserID(user.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
