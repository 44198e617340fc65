package router_test

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decimalOf(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
