package payments

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
)

// Split is a service price divided between tokens and cash
type Split struct {
	TokensUsed int
	TokenValue decimal.Decimal
	Cash       decimal.Decimal
}

// SplitPrice applies tokens at tokenValueCents each against a price. The
// tokens may not be worth more than the price.
func SplitPrice(totalPriceCents int64, tokens int, tokenValueCents int64) (Split, error) {
	if totalPriceCents < 0 || tokens < 0 {
		return Split{}, fmt.Errorf(ErrMsgNegativeAmount, domain.ErrInvalidInput)
	}

	price := FromCents(totalPriceCents)
	value := FromCents(tokenValueCents).Mul(decimal.NewFromInt(int64(tokens)))
	if value.GreaterThan(price) {
		return Split{}, fmt.Errorf(ErrMsgTokensExceedPrice, domain.ErrTokensExceedPrice, tokens, value.StringFixed(2), price.StringFixed(2))
	}

	return Split{TokensUsed: tokens, TokenValue: value, Cash: price.Sub(value)}, nil
}
