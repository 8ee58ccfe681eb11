// Package catalog holds the purchasable challenge products. A Catalog is
// built once at startup and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

// ErrProductNotFound is returned for an unknown type or account size
var ErrProductNotFound = errors.New("product not found")

// Offer is one purchasable account size of a product
type Offer struct {
	AccountSize int `json:"accountSize"`
	Price       int `json:"price"`
}

// Product describes one challenge type
type Product struct {
	Type        models.ChallengeType  `json:"type"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Offers      []Offer               `json:"accounts"`
	Rules       models.ChallengeRules `json:"rules"`
}

type entry struct {
	product Product
	prices  map[int]int
}

// Catalog maps (type, account size) to a price and a rule set
type Catalog struct {
	order   []models.ChallengeType
	entries map[models.ChallengeType]entry
}

// New validates the products and builds a Catalog from a private copy of them
func New(products []Product) (*Catalog, error) {
	c := &Catalog{entries: make(map[models.ChallengeType]entry, len(products))}
	for _, p := range products {
		if p.Type == "" {
			return nil, errors.New("catalog: product without type")
		}
		if !p.Type.Valid() {
			return nil, fmt.Errorf("catalog: unsupported product type %q", p.Type)
		}
		if _, dup := c.entries[p.Type]; dup {
			return nil, fmt.Errorf("catalog: duplicate product %q", p.Type)
		}
		if len(p.Offers) == 0 {
			return nil, fmt.Errorf("catalog: product %q has no account sizes", p.Type)
		}

		offers := make([]Offer, len(p.Offers))
		copy(offers, p.Offers)
		sort.Slice(offers, func(i, j int) bool { return offers[i].AccountSize < offers[j].AccountSize })

		prices := make(map[int]int, len(offers))
		for _, o := range offers {
			if o.AccountSize <= 0 || o.Price <= 0 {
				return nil, fmt.Errorf("catalog: product %q has invalid offer %+v", p.Type, o)
			}
			if _, dup := prices[o.AccountSize]; dup {
				return nil, fmt.Errorf("catalog: product %q lists account size %d twice", p.Type, o.AccountSize)
			}
			prices[o.AccountSize] = o.Price
		}

		p.Offers = offers
		c.entries[p.Type] = entry{product: p, prices: prices}
		c.order = append(c.order, p.Type)
	}
	return c, nil
}

// PriceOf returns the whole-USD price of a product
func (c *Catalog) PriceOf(t models.ChallengeType, accountSize int) (int, error) {
	e, ok := c.entries[t]
	if !ok {
		return 0, fmt.Errorf("%w: type %q", ErrProductNotFound, t)
	}
	price, ok := e.prices[accountSize]
	if !ok {
		return 0, fmt.Errorf("%w: %s account size %d", ErrProductNotFound, t, accountSize)
	}
	return price, nil
}

// RulesOf returns a copy of the rule set of a challenge type
func (c *Catalog) RulesOf(t models.ChallengeType) (models.ChallengeRules, error) {
	e, ok := c.entries[t]
	if !ok {
		return models.ChallengeRules{}, fmt.Errorf("%w: type %q", ErrProductNotFound, t)
	}
	return e.product.Rules, nil
}

// Products lists every product in catalog order
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.order))
	for _, t := range c.order {
		p := c.entries[t].product
		offers := make([]Offer, len(p.Offers))
		copy(offers, p.Offers)
		p.Offers = offers
		out = append(out, p)
	}
	return out
}

// Default returns the built-in product table
func Default() *Catalog {
	c, err := New(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return c
}

var defaultSizes = []int{1000, 5000, 10000, 25000, 50000, 100000}

func offers(prices ...int) []Offer {
	out := make([]Offer, len(prices))
	for i, p := range prices {
		out[i] = Offer{AccountSize: defaultSizes[i], Price: p}
	}
	return out
}

// DefaultProducts returns the standard, swing and news products
func DefaultProducts() []Product {
	base := models.ChallengeRules{
		ProfitTarget:       8,
		MaxDailyDrawdown:   5,
		MaxOverallDrawdown: 10,
		Phase1Duration:     30,
		Phase2Duration:     60,
	}

	swing := base
	swing.OvernightHolding = true

	news := base
	news.ProfitTarget = 10
	news.NewsTrading = true

	return []Product{
		{
			Type:        models.ChallengeTypeStandard,
			Name:        "Standard Challenge",
			Description: "Perfect for day traders following strict risk management",
			Offers:      offers(49, 99, 199, 299, 499, 999),
			Rules:       base,
		},
		{
			Type:        models.ChallengeTypeSwing,
			Name:        "Swing Challenge",
			Description: "Ideal for swing traders, overnight holding allowed",
			Offers:      offers(59, 119, 229, 349, 579, 999),
			Rules:       swing,
		},
		{
			Type:        models.ChallengeTypeNews,
			Name:        "News Allowed Challenge",
			Description: "For high-volatility traders, no restrictions on news trading",
			Offers:      offers(69, 139, 249, 399, 649, 1099),
			Rules:       news,
		},
	}
}
