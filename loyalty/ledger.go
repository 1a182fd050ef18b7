// Package loyalty tracks reward points per customer. One point is
// earned per whole currency unit spent.
package loyalty

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

// ErrInsufficientPoints is returned when a redemption exceeds the
// customer's balance.
var ErrInsufficientPoints = errors.New("insufficient loyalty points")

// Ledger holds point balances keyed by customer email. Lifetime totals
// only ever grow; redemptions reduce the spendable balance only.
type Ledger struct {
	mu       sync.Mutex
	balance  map[string]int64
	lifetime map[string]int64
}

// NewLedger creates an empty loyalty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balance:  make(map[string]int64),
		lifetime: make(map[string]int64),
	}
}

// Accrue credits points for an order total and returns the points
// earned.
func (l *Ledger) Accrue(email string, total decimal.Decimal) int64 {
	points := total.IntPart()
	if points <= 0 {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance[email] += points
	l.lifetime[email] += points
	return points
}

// Redeem spends points from the customer's balance.
func (l *Ledger) Redeem(email string, points int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balance[email] < points {
		return ErrInsufficientPoints
	}
	l.balance[email] -= points
	return nil
}

// Balance returns the customer's spendable points.
func (l *Ledger) Balance(email string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance[email]
}

// Lifetime returns the total points the customer has ever earned.
func (l *Ledger) Lifetime(email string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lifetime[email]
}
