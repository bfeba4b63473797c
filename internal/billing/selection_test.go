package billing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectionKeepsInsertionOrder(t *testing.T) {
	sel := NewSelection()
	sel.Add(testProduct(3, "C", "C", "3", "3"))
	sel.Add(testProduct(1, "A", "A", "1", "1"))
	sel.Add(testProduct(2, "B", "B", "2", "2"))

	entries := sel.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, int64(3), entries[0].Product.ID)
	require.Equal(t, int64(1), entries[1].Product.ID)
	require.Equal(t, int64(2), entries[2].Product.ID)
}

func TestSelectionAddIncrementsExisting(t *testing.T) {
	sel := NewSelection()
	p := testProduct(1, "A", "A", "1", "1")
	sel.Add(p)
	sel.Add(p)
	require.Equal(t, 1, sel.Len())
	require.Equal(t, 2, sel.Entries()[0].Quantity)
}

func TestSelectionQuantityBelowOneRemovesEntry(t *testing.T) {
	sel := NewSelection()
	sel.Add(testProduct(1, "A", "A", "1", "1"))
	sel.SetQuantity(1, 5)
	require.Equal(t, 5, sel.Entries()[0].Quantity)

	sel.SetQuantity(1, 0)
	require.Equal(t, 0, sel.Len())
	require.Empty(t, sel.Entries())
}

func TestSelectionRemoveUnknownIsNoop(t *testing.T) {
	sel := NewSelection()
	sel.Add(testProduct(1, "A", "A", "1", "1"))
	sel.Remove(99)
	sel.SetQuantity(99, 4)
	require.Equal(t, 1, sel.Len())
}
