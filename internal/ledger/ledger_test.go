package ledger

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialgrowth/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyOrder(t *testing.T) {
	user := &models.User{
		ID:          "u1",
		Balance:     dec("10"),
		TotalSpent:  dec("2.5"),
		TotalOrders: 3,
	}

	next := ApplyOrder(user, models.Order{Charge: dec("4")})
	require.NotNil(t, next)

	assert.True(t, dec("6").Equal(next.Balance))
	assert.True(t, dec("6.5").Equal(next.TotalSpent))
	assert.Equal(t, 4, next.TotalOrders)

	// input snapshot is untouched
	assert.True(t, dec("10").Equal(user.Balance))
	assert.Equal(t, 3, user.TotalOrders)
}

func TestApplyDeposit(t *testing.T) {
	user := &models.User{
		ID:          "u1",
		Balance:     dec("1.25"),
		TotalSpent:  dec("7"),
		TotalOrders: 2,
	}

	next := ApplyDeposit(user, dec("50"))
	require.NotNil(t, next)

	assert.True(t, dec("51.25").Equal(next.Balance))
	assert.True(t, dec("7").Equal(next.TotalSpent))
	assert.Equal(t, 2, next.TotalOrders)
	assert.True(t, dec("1.25").Equal(user.Balance))
}

func TestApply_NoActiveUser(t *testing.T) {
	assert.Nil(t, ApplyOrder(nil, models.Order{Charge: dec("1")}))
	assert.Nil(t, ApplyDeposit(nil, dec("1")))
}

func TestGuard_SerializesPerUser(t *testing.T) {
	g := NewGuard()
	user := &models.User{ID: "u1", Balance: dec("0")}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := g.Lock("u1")
			defer unlock()
			user = ApplyDeposit(user, dec("1"))
		}()
	}
	wg.Wait()

	assert.True(t, dec("100").Equal(user.Balance), user.Balance.String())
}
