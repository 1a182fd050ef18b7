package loyalty

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccrue(t *testing.T) {
	l := NewLedger()

	earned := l.Accrue("a@example.com", decimal.RequireFromString("30.75"))
	assert.Equal(t, int64(30), earned, "points are whole currency units")
	assert.Equal(t, int64(30), l.Balance("a@example.com"))

	l.Accrue("a@example.com", decimal.RequireFromString("20"))
	assert.Equal(t, int64(50), l.Balance("a@example.com"))
	assert.Equal(t, int64(50), l.Lifetime("a@example.com"))
}

func TestAccrue_SubUnitTotalEarnsNothing(t *testing.T) {
	l := NewLedger()

	earned := l.Accrue("a@example.com", decimal.RequireFromString("0.99"))
	assert.Zero(t, earned)
	assert.Zero(t, l.Balance("a@example.com"))
}

func TestRedeem_LifetimeIsNotReduced(t *testing.T) {
	l := NewLedger()
	l.Accrue("a@example.com", decimal.RequireFromString("100"))

	require.NoError(t, l.Redeem("a@example.com", 30))

	assert.Equal(t, int64(70), l.Balance("a@example.com"))
	assert.Equal(t, int64(100), l.Lifetime("a@example.com"))
}

func TestRedeem_InsufficientBalance(t *testing.T) {
	l := NewLedger()
	l.Accrue("a@example.com", decimal.RequireFromString("10"))

	err := l.Redeem("a@example.com", 11)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, int64(10), l.Balance("a@example.com"), "failed redemption must not change the balance")
}
