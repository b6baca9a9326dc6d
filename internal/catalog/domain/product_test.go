package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() List {
	return List{
		{ProductID: "p1", ReferenceName: "gold_pack", Name: "Gold", Type: TypeConsumable, Entitled: NotEntitled, Purchasable: Purchasable},
		{ProductID: "p2", ReferenceName: "silver_pack", Name: "Silver", Type: TypeEntitlement, Entitled: Entitled, Purchasable: NotPurchasable},
		{ProductID: "p3", ReferenceName: "premium", Name: "Premium", Type: TypeSubscription, Entitled: Entitled, Purchasable: Purchasable},
	}
}

func TestList_Consumables(t *testing.T) {
	got := sampleList().Consumables()

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProductID)
	for _, p := range got {
		assert.Equal(t, TypeConsumable, p.Type)
	}
}

func TestList_Entitled(t *testing.T) {
	got := sampleList().Entitled()

	require.Len(t, got, 2)
	// Order of the source list is preserved.
	assert.Equal(t, "p2", got[0].ProductID)
	assert.Equal(t, "p3", got[1].ProductID)
	for _, p := range got {
		assert.Equal(t, Entitled, p.Entitled)
	}
}

func TestList_Purchasable(t *testing.T) {
	got := sampleList().Purchasable()

	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, Purchasable, p.Purchasable)
	}
}

func TestList_FiltersDoNotMutate(t *testing.T) {
	list := sampleList()
	_ = list.Consumables()
	_ = list.Entitled()
	_ = list.ByID("p3")

	assert.Equal(t, sampleList(), list)
}

func TestList_ByID(t *testing.T) {
	got := sampleList().ByID("p2")
	require.Len(t, got, 1)
	assert.Equal(t, "silver_pack", got[0].ReferenceName)

	assert.Empty(t, sampleList().ByID("nope"))
}

func TestList_ByReferenceName(t *testing.T) {
	got := sampleList().ByReferenceName("premium")
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ProductID)
}

func TestList_Speakable(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, "", List{}.Speakable())
	})

	t.Run("single product", func(t *testing.T) {
		assert.Equal(t, "Gold", List{{Name: "Gold"}}.Speakable())
	})

	t.Run("two products", func(t *testing.T) {
		list := List{{Name: "Gold"}, {Name: "Silver"}}
		assert.Equal(t, "Gold and Silver", list.Speakable())
	})

	t.Run("three products", func(t *testing.T) {
		list := List{{Name: "A"}, {Name: "B"}, {Name: "C"}}
		assert.Equal(t, "A, B and C", list.Speakable())
	})
}
