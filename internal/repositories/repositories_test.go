package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"socialgrowth/internal/models"
	"socialgrowth/internal/repositories"
)

// openTestDB opens a private in-memory SQLite database per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repositories.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func orderRepositories(t *testing.T) map[string]repositories.OrderRepository {
	return map[string]repositories.OrderRepository{
		"memory": repositories.NewMemoryOrderRepository(),
		"gorm":   repositories.NewGORMOrderRepository(openTestDB(t)),
	}
}

func TestOrderRepository(t *testing.T) {
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	for name, repo := range orderRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first := &models.Order{UserID: "u1", ServiceID: "2", Quantity: 5000, Charge: dec("4"), Status: models.OrderStatusPending, CreatedAt: base}
			second := &models.Order{UserID: "u1", ServiceID: "1", Quantity: 100, Charge: dec("0.25"), Status: models.OrderStatusPending, CreatedAt: base.Add(time.Hour)}
			other := &models.Order{UserID: "u2", ServiceID: "3", Quantity: 1000, Charge: dec("0.15"), Status: models.OrderStatusPending, CreatedAt: base.Add(2 * time.Hour)}
			for _, o := range []*models.Order{first, second, other} {
				require.NoError(t, repo.Create(ctx, o))
				assert.NotEmpty(t, o.ID)
			}

			got, err := repo.GetByID(ctx, first.ID)
			require.NoError(t, err)
			assert.Equal(t, 5000, got.Quantity)
			assert.True(t, dec("4").Equal(got.Charge), got.Charge.String())

			_, err = repo.GetByID(ctx, "missing")
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			mine, err := repo.ListByUser(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, mine, 2)
			assert.Equal(t, second.ID, mine[0].ID)
			assert.Equal(t, first.ID, mine[1].ID)

			none, err := repo.ListByUser(ctx, "nobody")
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)

			all, err := repo.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, other.ID, all[0].ID)

			require.NoError(t, repo.UpdateStatus(ctx, second.ID, models.OrderStatusCancelled))
			got, err = repo.GetByID(ctx, second.ID)
			require.NoError(t, err)
			assert.Equal(t, models.OrderStatusCancelled, got.Status)

			err = repo.UpdateStatus(ctx, "missing", models.OrderStatusCompleted)
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			stats, err := repo.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(3), stats.Total)
			assert.Equal(t, int64(2), stats.Pending)
			assert.True(t, dec("4.15").Equal(stats.Revenue), stats.Revenue.String())
		})
	}
}

func TestGORMUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMUserRepository(openTestDB(t))

	user := &models.User{
		Email:      "jane@example.com",
		Name:       "Jane",
		Role:       models.RoleUser,
		Balance:    dec("0"),
		TotalSpent: dec("0"),
		JoinedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	byEmail, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Save overwrites the full snapshot, zero values included.
	user.Balance = dec("12.5")
	user.TotalSpent = dec("3.75")
	user.TotalOrders = 2
	user.Niche = ""
	require.NoError(t, repo.Save(ctx, user))

	user.Niche = "Fitness"
	require.NoError(t, repo.Save(ctx, user))
	user.Niche = ""
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, dec("12.5").Equal(got.Balance), got.Balance.String())
	assert.True(t, dec("3.75").Equal(got.TotalSpent), got.TotalSpent.String())
	assert.Equal(t, 2, got.TotalOrders)
	assert.Empty(t, got.Niche)

	err = repo.Save(ctx, &models.User{ID: "missing"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGORMTransactionRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMTransactionRepository(openTestDB(t))

	older := &models.Transaction{UserID: "u1", Amount: dec("10"), Method: "UPI", Status: models.TransactionSuccess, UTR: "123456789012", CreatedAt: time.Now().Add(-time.Minute)}
	newer := &models.Transaction{UserID: "u1", Amount: dec("50"), Method: "UPI", Status: models.TransactionSuccess, UTR: "210987654321", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, "210987654321", list[0].UTR)
}

func TestStaticServiceRepository(t *testing.T) {
	repo := repositories.NewStaticServiceRepository()

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 11)
	assert.Equal(t, "1", all[0].ID)

	s, err := repo.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, models.PlatformInstagram, s.Platform)

	_, err = repo.GetByID("99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := repositories.Open("mysql", "dsn")
	assert.Error(t, err)
}

func TestGORMTransactionRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMTransactionRepository(openTestDB(t))

	tx := &models.Transaction{UserID: "u1", Amount: dec("10"), Method: "UPI", Status: models.TransactionSuccess, UTR: "123456789012", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, tx))
	require.NoError(t, repo.UpdateStatus(ctx, tx.ID, models.TransactionFailed))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.TransactionFailed, list[0].Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", models.TransactionFailed), repositories.ErrNotFound)
}
