package donation

import (
	"math"
	"sort"
	"time"
)

type RecentDonation struct {
	DonorName string    `json:"donorName"`
	Amount    int64     `json:"amount"`
	Date      time.Time `json:"date"`
}

type Stats struct {
	TotalRaised        int64            `json:"totalRaised"`
	TotalDonors        int              `json:"totalDonors"`
	TotalDonations     int              `json:"totalDonations"`
	GoalAmount         int64            `json:"goalAmount"`
	ProgressPercentage float64          `json:"progressPercentage"`
	RecentDonations    []RecentDonation `json:"recentDonations"`
}

// Aggregate computes campaign statistics over the completed donations in
// donations. The input slice is left untouched. Recent donations carry the
// donor name as stored; anonymity is not applied here.
func Aggregate(donations []*Donation, goalAmount int64, recentLimit int) Stats {
	completed := make([]*Donation, 0, len(donations))
	for _, d := range donations {
		if d != nil && d.PaymentStatus == PaymentCompleted {
			completed = append(completed, d)
		}
	}

	var raised int64
	donors := make(map[string]struct{}, len(completed))
	for _, d := range completed {
		raised = addCapped(raised, d.Total())
		donors[d.DonorEmail] = struct{}{}
	}

	sort.SliceStable(completed, func(i, j int) bool {
		if !completed[i].CreatedAt.Equal(completed[j].CreatedAt) {
			return completed[i].CreatedAt.After(completed[j].CreatedAt)
		}
		return completed[i].Id.Compare(completed[j].Id) > 0
	})

	if recentLimit < 0 {
		recentLimit = 0
	}
	if len(completed) < recentLimit {
		recentLimit = len(completed)
	}
	recent := make([]RecentDonation, 0, recentLimit)
	for _, d := range completed[:recentLimit] {
		recent = append(recent, RecentDonation{
			DonorName: d.DonorName,
			Amount:    d.Amount,
			Date:      d.CreatedAt,
		})
	}

	progress := 0.0
	if goalAmount > 0 {
		progress = float64(raised) / float64(goalAmount) * 100
	}

	return Stats{
		TotalRaised:        raised,
		TotalDonors:        len(donors),
		TotalDonations:     len(completed),
		GoalAmount:         goalAmount,
		ProgressPercentage: progress,
		RecentDonations:    recent,
	}
}

// addCapped adds b to a, pinning the result at math.MaxInt64 instead of
// wrapping.
func addCapped(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
