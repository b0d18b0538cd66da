// Package tier maps a donation amount (whole Naira) to its reward tier.
package tier

import (
	"fmt"
	"math"
)

// Unbounded is the upper bound of the last tier.
const Unbounded int64 = math.MaxInt64

type Tier struct {
	Amount      int64  `json:"amount"`
	Title       string `json:"title"`
	Badge       string `json:"badge"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	MinAmount   int64  `json:"minAmount"`
	MaxAmount   int64  `json:"maxAmount"`
	Hidden      bool   `json:"-"`
}

func (t Tier) Contains(amount int64) bool {
	return amount >= t.MinAmount && amount <= t.MaxAmount
}

// The first tier starts at 0 so the table covers every non-negative amount;
// Amount stays the suggested gift shown on the landing page.
var table = []Tier{
	{Amount: 10000, Title: "Plant a Seed", Badge: "Seed Planter", Description: "Provides basic learning materials for one student", Icon: "🌱", MinAmount: 0, MaxAmount: 19999},
	{Amount: 20000, Title: "Start a Spark", Badge: "Spark Starter", Description: "Provides basic coding materials for one student", Icon: "⚡", MinAmount: 20000, MaxAmount: 49999},
	{Amount: 50000, Title: "Empower a Dream", Badge: "Dream Builder", Description: "Funds one week of intensive training", Icon: "💝", MinAmount: 50000, MaxAmount: 99999},
	{Amount: 100000, Title: "Fuel Innovation", Badge: "Training Catalyst", Description: "Funds two weeks of intensive training", Icon: "🚀", MinAmount: 100000, MaxAmount: 199999},
	{Amount: 200000, Title: "Build a Future", Badge: "Innovation Catalyst", Description: "Provides comprehensive coding bootcamp access", Icon: "👑", MinAmount: 200000, MaxAmount: 499999},
	{Amount: 500000, Title: "Transform Lives", Badge: "Future Architect", Description: "Provides laptop and full program access for one student", Icon: "⭐", MinAmount: 500000, MaxAmount: 999999},
	{Amount: 1000000, Title: "Champion Change", Badge: "Life Transformer", Description: "Sponsors multiple students with equipment", Icon: "🏆", MinAmount: 1000000, MaxAmount: 4999999},
	{Amount: 5000000, Title: "Build Legacy", Badge: "Change Champion", Description: "Funds an entire program cohort", Icon: "💎", MinAmount: 5000000, MaxAmount: 9999999, Hidden: true},
	{Amount: 10000000, Title: "Create Impact", Badge: "Legacy Builder", Description: "Establishes a complete learning center", Icon: "🌟", MinAmount: 10000000, MaxAmount: 99999999, Hidden: true},
	{Amount: 100000000, Title: "Transform Communities", Badge: "Visionary Patron", Description: "Creates a comprehensive and conducive tech education hub for students to learn and collaborate while growing", Icon: "🏛️", MinAmount: 100000000, MaxAmount: Unbounded, Hidden: true},
}

func init() {
	if err := Validate(table); err != nil {
		panic(err)
	}
}

// Tiers returns a copy of the ordered tier table.
func Tiers() []Tier {
	out := make([]Tier, len(table))
	copy(out, table)
	return out
}

// Visible returns the tiers offered on the donation form.
func Visible() []Tier {
	out := make([]Tier, 0, len(table))
	for _, t := range table {
		if !t.Hidden {
			out = append(out, t)
		}
	}
	return out
}

// Classify returns the tier whose range holds amount. Anything outside the
// table, negative amounts included, falls back to the lowest tier.
func Classify(amount int64) Tier {
	for _, t := range table {
		if t.Contains(amount) {
			return t
		}
	}
	return table[0]
}

// Validate checks that ranges start at 0, ascend without gaps or overlaps
// and end unbounded.
func Validate(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("tier: empty table")
	}
	if tiers[0].MinAmount != 0 {
		return fmt.Errorf("tier: first tier %q must start at 0", tiers[0].Badge)
	}
	for i, t := range tiers {
		if t.MinAmount > t.MaxAmount {
			return fmt.Errorf("tier: %q has min %d above max %d", t.Badge, t.MinAmount, t.MaxAmount)
		}
		if i > 0 && tiers[i-1].MaxAmount+1 != t.MinAmount {
			return fmt.Errorf("tier: %q does not start right after %q", t.Badge, tiers[i-1].Badge)
		}
	}
	if last := tiers[len(tiers)-1]; last.MaxAmount != Unbounded {
		return fmt.Errorf("tier: last tier %q must be unbounded", last.Badge)
	}
	return nil
}
