// Package allocation splits money across weighted recipients and computes
// contribution suggestions. Everything here is pure and works in whole cents.
package allocation

import (
	"sort"

	"github.com/chris/pooled-savings/pkg/money"
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// Proportional splits total across recipients in proportion to weights.
// The shares always sum to exactly total (truncated to cents). Negative
// weights count as zero. A recipient with zero weight gets nothing unless
// every weight is zero, in which case the first recipient takes it all.
// Cents lost to truncation go one at a time to the heaviest recipients,
// earliest first on ties.
func Proportional(total money.Amount, weights []money.Amount) []money.Amount {
	if len(weights) == 0 {
		return nil
	}
	if total.IsNegative() {
		shares := Proportional(total.Neg(), weights)
		for i := range shares {
			shares[i] = shares[i].Neg()
		}
		return shares
	}

	totalCents := total.Cents()
	shares := make([]money.Amount, len(weights))
	cents := make([]int64, len(weights))

	var sum decimal.Decimal
	clean := make([]decimal.Decimal, len(weights))
	for i, w := range weights {
		if w.IsPositive() {
			clean[i] = w.Decimal()
			sum = sum.Add(clean[i])
		}
	}
	if sum.IsZero() {
		cents[0] = totalCents
		for i := range shares {
			shares[i] = money.FromCents(cents[i])
		}
		return shares
	}

	allocated := int64(0)
	numerator := decimal.NewFromInt(totalCents)
	for i, w := range clean {
		if w.IsZero() {
			continue
		}
		q, _ := numerator.Mul(w).QuoRem(sum, 0)
		cents[i] = q.IntPart()
		allocated += cents[i]
	}

	order := make([]int, 0, len(weights))
	for i, w := range clean {
		if w.IsPositive() {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return clean[order[a]].GreaterThan(clean[order[b]])
	})
	for remainder := totalCents - allocated; remainder > 0; {
		for _, i := range order {
			if remainder == 0 {
				break
			}
			cents[i]++
			remainder--
		}
	}

	for i := range shares {
		shares[i] = money.FromCents(cents[i])
	}
	return shares
}

// Ceiling is the largest amount a contributor may put toward a request:
// the smaller of what the request still needs and half the contributor's
// savings this month.
func Ceiling(remaining, contributorSavings money.Amount) money.Amount {
	c := money.Min(remaining, contributorSavings.MulRatio(half))
	if c.IsNegative() {
		return money.Zero
	}
	return c
}

// Suggest is the advisory contribution: an even share of what remains
// across the pool's active members, capped by Ceiling and truncated to
// cents. It is never negative.
func Suggest(remaining money.Amount, activeMembers int, contributorSavings money.Amount) money.Amount {
	if activeMembers < 1 {
		activeMembers = 1
	}
	perMember := remaining.DivInt(int64(activeMembers))
	s := money.Min(perMember, Ceiling(remaining, contributorSavings)).Truncate()
	if s.IsNegative() {
		return money.Zero
	}
	return s
}
