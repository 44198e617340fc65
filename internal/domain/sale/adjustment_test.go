package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/libreria/backoffice/internal/domain/inventory"
)

var day = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func TestPlanCreate(t *testing.T) {
	plan := PlanCreate(Sale{BookID: 1, Quantity: 3, PurchaseDate: day})

	require.Len(t, plan, 1)
	assert.Equal(t, inventory.Adjustment{BookID: 1, Delta: -3, Guarded: true, At: day}, plan[0])
}

func TestPlanUpdate(t *testing.T) {
	next := day.AddDate(0, 0, 1)

	t.Run("同一本书增加数量需要校验", func(t *testing.T) {
		plan := PlanUpdate(Sale{BookID: 1, Quantity: 3}, Sale{BookID: 1, Quantity: 5, PurchaseDate: next})
		require.Len(t, plan, 1)
		assert.Equal(t, inventory.Adjustment{BookID: 1, Delta: -2, Guarded: true, At: next}, plan[0])
	})

	t.Run("同一本书减少数量直接回补", func(t *testing.T) {
		plan := PlanUpdate(Sale{BookID: 1, Quantity: 5}, Sale{BookID: 1, Quantity: 2, PurchaseDate: next})
		require.Len(t, plan, 1)
		assert.Equal(t, 3, plan[0].Delta)
		assert.False(t, plan[0].Guarded)
	})

	t.Run("数量不变仍然刷新时间戳", func(t *testing.T) {
		plan := PlanUpdate(Sale{BookID: 1, Quantity: 4}, Sale{BookID: 1, Quantity: 4, PurchaseDate: next})
		require.Len(t, plan, 1)
		assert.Equal(t, 0, plan[0].Delta)
		assert.Equal(t, next, plan[0].At)
	})

	t.Run("换书先扣新书再回补旧书", func(t *testing.T) {
		plan := PlanUpdate(Sale{BookID: 1, Quantity: 4}, Sale{BookID: 2, Quantity: 3, PurchaseDate: next})
		require.Len(t, plan, 2)
		assert.Equal(t, inventory.Adjustment{BookID: 2, Delta: -3, Guarded: true, At: next}, plan[0])
		assert.Equal(t, inventory.Adjustment{BookID: 1, Delta: 4, Guarded: false, At: next}, plan[1])
	})
}

func TestPlanDelete(t *testing.T) {
	now := time.Now()
	plan := PlanDelete(Sale{BookID: 7, Quantity: 6, PurchaseDate: day}, now)

	require.Len(t, plan, 1)
	assert.Equal(t, inventory.Adjustment{BookID: 7, Delta: 6, Guarded: false, At: now}, plan[0])
}

func TestSale_Validate(t *testing.T) {
	s := Sale{Quantity: 0}
	assert.ErrorIs(t, s.Validate(false), ErrInvalidQuantity)
	assert.NoError(t, s.Validate(true))

	s.Quantity = 1
	assert.NoError(t, s.Validate(false))
}

// 任意创建/修改/删除序列执行后,每本书的调整总和 = -(该书有效销售数量之和)
func TestPlan_DeltasMatchActiveQuantities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var active []Sale
		applied := map[uint]int{}
		apply := func(plan []inventory.Adjustment) {
			for _, adj := range plan {
				applied[adj.BookID] += adj.Delta
			}
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.IntRange(0, 2).Draw(t, "op")
			if len(active) == 0 {
				op = 0
			}

			switch op {
			case 0:
				s := Sale{
					BookID:   uint(rapid.IntRange(1, 4).Draw(t, "book")),
					Quantity: rapid.IntRange(1, 20).Draw(t, "qty"),
				}
				apply(PlanCreate(s))
				active = append(active, s)
			case 1:
				idx := rapid.IntRange(0, len(active)-1).Draw(t, "idx")
				next := Sale{
					BookID:   uint(rapid.IntRange(1, 4).Draw(t, "book")),
					Quantity: rapid.IntRange(1, 20).Draw(t, "qty"),
				}
				apply(PlanUpdate(active[idx], next))
				active[idx] = next
			case 2:
				idx := rapid.IntRange(0, len(active)-1).Draw(t, "idx")
				apply(PlanDelete(active[idx], time.Now()))
				active = append(active[:idx], active[idx+1:]...)
			}
		}

		expected := map[uint]int{}
		for _, s := range active {
			expected[s.BookID] -= s.Quantity
		}
		for book := uint(1); book <= 4; book++ {
			if applied[book] != expected[book] {
				t.Fatalf("book %d: applied %d, expected %d", book, applied[book], expected[book])
			}
		}
	})
}
