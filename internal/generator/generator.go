package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/vanshika/insuradmin/internal/domain"
)

const dueDateLayout = "2006-01-02"

// Dataset holds one generated copy of the three collections.
type Dataset struct {
	Policyholders []domain.Policyholder `json:"policyholders"`
	Products      []domain.Product      `json:"products"`
	Payments      []domain.Payment      `json:"payments"`
}

// Generator produces sample policyholders, products and payments. The same
// seed always yields the same dataset.
type Generator struct {
	cfg       Config
	rand      *rand.Rand
	fragments nameFragments
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	defaults := DefaultConfig()
	if cfg.NumPolicyholders <= 0 {
		cfg.NumPolicyholders = defaults.NumPolicyholders
	}
	if cfg.NumProducts <= 0 {
		cfg.NumProducts = defaults.NumProducts
	}
	if cfg.NumPayments <= 0 {
		cfg.NumPayments = defaults.NumPayments
	}
	cfg.SuspendedChance = clampProbability(cfg.SuspendedChance)
	cfg.PaidChance = clampProbability(cfg.PaidChance)
	cfg.OrphanChance = clampProbability(cfg.OrphanChance)
	if cfg.FirstDueDate.IsZero() {
		cfg.FirstDueDate = defaults.FirstDueDate
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaults.Seed
	}

	return &Generator{
		cfg:       cfg,
		rand:      rand.New(rand.NewSource(cfg.Seed)),
		fragments: defaultNameFragments(),
	}
}

// Generate synthesises the three collections. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	holders := make([]domain.Policyholder, g.cfg.NumPolicyholders)
	for i := range holders {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		first, last := g.pick(g.fragments.first), g.pick(g.fragments.last)
		holders[i] = domain.NewPolicyholder(
			fmt.Sprintf("PH%04d", i+1),
			first+" "+last,
			fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), i+1, g.pick(g.fragments.domains)),
			fmt.Sprintf("555-%04d", g.rand.Intn(10000)),
		)
		if g.chance(g.cfg.SuspendedChance) {
			holders[i].Suspend()
		}
	}

	products := make([]domain.Product, g.cfg.NumProducts)
	for i := range products {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		tier := g.fragments.tiers[i%len(g.fragments.tiers)]
		products[i] = domain.NewProduct(
			fmt.Sprintf("PR%03d", i+1),
			tier+" "+g.pick(g.fragments.cover),
			roundCents(50+g.rand.Float64()*950),
		)
		if g.chance(g.cfg.SuspendedChance) {
			products[i].Suspend()
		}
	}

	payments := make([]domain.Payment, g.cfg.NumPayments)
	for i := range payments {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		holderID := holders[g.rand.Intn(len(holders))].ID
		product := products[g.rand.Intn(len(products))]
		productID := product.ID
		if g.chance(g.cfg.OrphanChance) {
			if g.rand.Intn(2) == 0 {
				holderID = fmt.Sprintf("PH%04d", len(holders)+1+g.rand.Intn(100))
			} else {
				productID = fmt.Sprintf("PR%03d", len(products)+1+g.rand.Intn(100))
			}
		}

		due := g.cfg.FirstDueDate.AddDate(0, g.rand.Intn(12), g.rand.Intn(28))
		payments[i] = domain.NewPayment(fmt.Sprintf("PM%05d", i+1), holderID, productID, product.Price, due.Format(dueDateLayout))
		if g.chance(g.cfg.PaidChance) {
			payments[i].Process()
		}
	}

	return Dataset{Policyholders: holders, Products: products, Payments: payments}, nil
}

func (g *Generator) pick(options []string) string {
	return options[g.rand.Intn(len(options))]
}

func (g *Generator) chance(p float64) bool {
	return g.rand.Float64() < p
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

type nameFragments struct {
	first   []string
	last    []string
	domains []string
	tiers   []string
	cover   []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		first:   []string{"Jane", "John", "Alex", "Priya", "Liu", "Maria", "Omar", "Sofia", "Noah", "Emma", "Lucas", "Mia", "Ava", "Ethan", "Zara"},
		last:    []string{"Doe", "Smith", "Chen", "Patel", "Garcia", "Khan", "Kim", "Ivanov", "Nguyen", "Silva", "Brown", "Lee"},
		domains: []string{"example.com", "mail.com", "insure.example", "post.example"},
		tiers:   []string{"Basic", "Standard", "Premium", "Gold", "Platinum"},
		cover:   []string{"Health", "Auto", "Home", "Life", "Travel"},
	}
}
