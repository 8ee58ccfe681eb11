package catalog

import (
	"fmt"

	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/spf13/viper"
)

type fileOffer struct {
	AccountSize int `mapstructure:"accountSize"`
	Price       int `mapstructure:"price"`
}

type fileRules struct {
	ProfitTarget       float64 `mapstructure:"profitTarget"`
	MaxDailyDrawdown   float64 `mapstructure:"maxDailyDrawdown"`
	MaxOverallDrawdown float64 `mapstructure:"maxOverallDrawdown"`
	Phase1Duration     int     `mapstructure:"phase1Duration"`
	Phase2Duration     int     `mapstructure:"phase2Duration"`
	OvernightHolding   bool    `mapstructure:"overnightHolding"`
	NewsTrading        bool    `mapstructure:"newsTrading"`
}

type fileProduct struct {
	Type        string      `mapstructure:"type"`
	Name        string      `mapstructure:"name"`
	Description string      `mapstructure:"description"`
	Accounts    []fileOffer `mapstructure:"accounts"`
	Rules       fileRules   `mapstructure:"rules"`
}

type fileCatalog struct {
	Products []fileProduct `mapstructure:"products"`
}

// Load builds the catalog. An empty path yields the default table; otherwise
// the file (YAML, JSON or TOML by extension) replaces it entirely.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var fc fileCatalog
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}
	if len(fc.Products) == 0 {
		return nil, fmt.Errorf("catalog file %s lists no products", path)
	}

	products := make([]Product, 0, len(fc.Products))
	for _, fp := range fc.Products {
		p := Product{
			Type:        models.ChallengeType(fp.Type),
			Name:        fp.Name,
			Description: fp.Description,
			Rules: models.ChallengeRules{
				ProfitTarget:       fp.Rules.ProfitTarget,
				MaxDailyDrawdown:   fp.Rules.MaxDailyDrawdown,
				MaxOverallDrawdown: fp.Rules.MaxOverallDrawdown,
				Phase1Duration:     fp.Rules.Phase1Duration,
				Phase2Duration:     fp.Rules.Phase2Duration,
				OvernightHolding:   fp.Rules.OvernightHolding,
				NewsTrading:        fp.Rules.NewsTrading,
			},
		}
		for _, o := range fp.Accounts {
			p.Offers = append(p.Offers, Offer{AccountSize: o.AccountSize, Price: o.Price})
		}
		products = append(products, p)
	}
	return New(products)
}
