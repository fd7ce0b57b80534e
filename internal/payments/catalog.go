package payments

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// Tier is a monthly club subscription level
type Tier struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
}

// TokenPack is a one-off bundle of tokens
type TokenPack struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Tokens int             `json:"tokens"`
	Price  decimal.Decimal `json:"price"`
}

// Catalog holds the prices offered at checkout
type Catalog struct {
	tiers map[string]Tier
	packs map[string]TokenPack
}

// DefaultCatalog returns the published tiers and packs
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]Tier{
			{ID: TierCommunity, Name: "Community", MonthlyPrice: decimal.Zero},
			{ID: TierCore, Name: "Core", MonthlyPrice: decimal.RequireFromString("49.00")},
			{ID: TierPlus, Name: "Plus", MonthlyPrice: decimal.RequireFromString("99.00")},
			{ID: TierPro, Name: "Pro", MonthlyPrice: decimal.RequireFromString("199.00")},
		},
		[]TokenPack{
			{ID: PackStarter, Name: "Starter Pack", Tokens: 100, Price: decimal.RequireFromString("9.99")},
			{ID: PackPlayer, Name: "Player Pack", Tokens: 500, Price: decimal.RequireFromString("39.99")},
			{ID: PackPro, Name: "Pro Pack", Tokens: 1200, Price: decimal.RequireFromString("79.99")},
		},
	)
}

// NewCatalog builds a catalog from explicit tiers and packs
func NewCatalog(tiers []Tier, packs []TokenPack) *Catalog {
	c := &Catalog{tiers: make(map[string]Tier, len(tiers)), packs: make(map[string]TokenPack, len(packs))}
	for _, t := range tiers {
		c.tiers[t.ID] = t
	}
	for _, p := range packs {
		c.packs[p.ID] = p
	}
	return c
}

func (c *Catalog) Tier(id string) (Tier, error) {
	t, ok := c.tiers[id]
	if !ok {
		return Tier{}, fmt.Errorf(ErrMsgUnknownTier, domain.ErrUnknownTier, id)
	}
	return t, nil
}

func (c *Catalog) Pack(id string) (TokenPack, error) {
	p, ok := c.packs[id]
	if !ok {
		return TokenPack{}, fmt.Errorf(ErrMsgUnknownPack, domain.ErrUnknownTokenPack, id)
	}
	return p, nil
}

// Tiers lists tiers from cheapest to most expensive
func (c *Catalog) Tiers() []Tier {
	out := make([]Tier, 0, len(c.tiers))
	for _, t := range c.tiers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonthlyPrice.LessThan(out[j].MonthlyPrice) })
	return out
}

// Packs lists packs from smallest to largest
func (c *Catalog) Packs() []TokenPack {
	out := make([]TokenPack, 0, len(c.packs))
	for _, p := range c.packs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tokens < out[j].Tokens })
	return out
}

// ToCents converts a dollar amount to integer cents, rounding half away from zero
func ToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// FromCents converts integer cents to a dollar amount
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
