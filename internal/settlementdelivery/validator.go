package settlementdelivery

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/gigpay/gigpay/pkg/moneypkg"
)

// ValidMoneyAmount validates that a bound amount is strictly positive.
var ValidMoneyAmount validator.Func = func(fl validator.FieldLevel) bool {
	if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
		return moneypkg.IsPositive(d)
	}

	return false
}
