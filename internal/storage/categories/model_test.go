package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-server/internal/storage/transactions"
)

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.True(t, TypeBoth.Valid())
	assert.False(t, Type("savings").Valid())
	assert.False(t, Type("").Valid())
}

func TestTypeMatches(t *testing.T) {
	assert.True(t, TypeIncome.Matches(transactions.TypeIncome))
	assert.False(t, TypeIncome.Matches(transactions.TypeExpense))
	assert.False(t, TypeExpense.Matches(transactions.TypeIncome))
	assert.True(t, TypeExpense.Matches(transactions.TypeExpense))
	assert.True(t, TypeBoth.Matches(transactions.TypeIncome))
	assert.True(t, TypeBoth.Matches(transactions.TypeExpense))
}
