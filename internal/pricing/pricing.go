// Package pricing computes order charges and validates order input.
package pricing

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"socialgrowth/internal/models"
)

var (
	ErrInvalidLink         = errors.New("please enter a valid URL")
	ErrQuantityOutOfRange  = errors.New("quantity out of range")
	ErrInsufficientBalance = errors.New("insufficient balance, please add funds")
)

var (
	unit    = decimal.NewFromInt(1000)
	schemes = []string{"http://", "https://"}
)

// Charge returns (quantity / 1000) * rate. The value is exact and unrounded.
func Charge(s models.Service, quantity int) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Div(unit).Mul(s.RatePer1000)
}

// Display formats a charge the way it is shown to customers.
func Display(charge decimal.Decimal) string {
	return charge.StringFixed(2)
}

// ValidateLink checks that link starts with a supported scheme and names a host.
func ValidateLink(link string) error {
	link = strings.TrimSpace(link)
	lower := strings.ToLower(link)

	known := false
	for _, p := range schemes {
		if strings.HasPrefix(lower, p) {
			known = true
			break
		}
	}
	if !known {
		return ErrInvalidLink
	}

	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return ErrInvalidLink
	}
	return nil
}

// ValidateQuantity checks quantity against the service bounds, both inclusive.
func ValidateQuantity(s models.Service, quantity int) error {
	if quantity < s.Min || quantity > s.Max {
		return fmt.Errorf("%w: quantity must be between %d and %d", ErrQuantityOutOfRange, s.Min, s.Max)
	}
	return nil
}

// Validate runs the order checks in order: link, quantity, then balance.
// On success it returns the charge for the order.
func Validate(s models.Service, link string, quantity int, balance decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateLink(link); err != nil {
		return decimal.Zero, err
	}
	if err := ValidateQuantity(s, quantity); err != nil {
		return decimal.Zero, err
	}

	charge := Charge(s, quantity)
	if charge.GreaterThan(balance) {
		return decimal.Zero, fmt.Errorf("%w: charge %s exceeds balance %s",
			ErrInsufficientBalance, Display(charge), Display(balance))
	}
	return charge, nil
}
