package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrMissingPriceAmount = errors.New("price needs an amount unless marked on request")
)

// Money is an amount in the package currency's minor unit (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

// Price is either a fixed amount or the on-request sentinel. Consumers must
// branch on IsOnRequest before treating the value as numeric.
type Price struct {
	amount    Money
	onRequest bool
}

func NewPrice(amount Money) Price {
	return Price{amount: amount}
}

func OnRequestPrice() Price {
	return Price{onRequest: true}
}

func (p Price) IsOnRequest() bool {
	return p.onRequest
}

// Amount returns the numeric amount. The second return is false for
// on-request prices, which have no numeric value.
func (p Price) Amount() (Money, bool) {
	if p.onRequest {
		return Money{}, false
	}
	return p.amount, true
}

func (p Price) String() string {
	if p.onRequest {
		return "ON_REQUEST"
	}
	return p.amount.stringUnits()
}

func (m Money) stringUnits() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
