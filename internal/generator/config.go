package generator

import "time"

// Config drives the sample-data generator.
type Config struct {
	NumPolicyholders int
	NumProducts      int
	NumPayments      int
	// SuspendedChance is the probability that a policyholder or product starts suspended.
	SuspendedChance float64
	PaidChance      float64
	// OrphanChance is the probability that a payment references a policyholder or
	// product that does not exist, so reports have something to drop.
	OrphanChance float64
	// FirstDueDate is the earliest due date handed out; later ones follow monthly.
	FirstDueDate time.Time
	Seed         int64
}

// DefaultConfig returns a small dataset that exercises every report path.
func DefaultConfig() Config {
	return Config{
		NumPolicyholders: 25,
		NumProducts:      5,
		NumPayments:      60,
		SuspendedChance:  0.1,
		PaidChance:       0.4,
		OrphanChance:     0.05,
		FirstDueDate:     time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Seed:             42,
	}
}
