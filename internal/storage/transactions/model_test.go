package transactions

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, Type("both").Valid())
	assert.False(t, Type("").Valid())
}

func TestTypeDelta(t *testing.T) {
	amount := decimal.RequireFromString("42.50")
	assert.True(t, amount.Equal(TypeIncome.Delta(amount)))
	assert.True(t, amount.Neg().Equal(TypeExpense.Delta(amount)))
}
