package application

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/vocalis/internal/catalog/domain"
	shared "github.com/felixgeelhaar/vocalis/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	list domain.List
	err  error
}

func (f fakeSource) FetchCatalog(ctx context.Context, locale string) (domain.List, error) {
	return f.list, f.err
}

func testCatalog() domain.List {
	return domain.List{
		{ProductID: "p1", ReferenceName: "gold_pack", Name: "Gold", Type: domain.TypeConsumable, Entitled: domain.NotEntitled, Purchasable: domain.Purchasable},
		{ProductID: "p2", ReferenceName: "hint_pack", Name: "Hints", Type: domain.TypeEntitlement, Entitled: domain.Entitled, Purchasable: domain.NotPurchasable},
		{ProductID: "p3", ReferenceName: "premium", Name: "Premium", Type: domain.TypeSubscription, Entitled: domain.Entitled, Purchasable: domain.Purchasable},
	}
}

func TestProducts_FetchFailureBecomesBadRequest(t *testing.T) {
	svc := NewService(fakeSource{err: errors.New("connection refused")}, nil)

	_, err := svc.Products(context.Background(), "en-US")
	require.Error(t, err)
	assert.Equal(t, shared.CodeBadRequest, shared.CodeOf(err))
}

func TestConsumableProducts(t *testing.T) {
	svc := NewService(fakeSource{list: testCatalog()}, nil)

	got, err := svc.ConsumableProducts(context.Background(), "en-US")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ProductID)
}

func TestEntitledProducts(t *testing.T) {
	svc := NewService(fakeSource{list: testCatalog()}, nil)

	got, err := svc.EntitledProducts(context.Background(), "en-US")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestPurchasableProducts(t *testing.T) {
	svc := NewService(fakeSource{list: testCatalog()}, nil)

	got, err := svc.PurchasableProducts(context.Background(), "en-US")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, "p3", got[1].ProductID)
}

func TestSpeakableEntitledProducts(t *testing.T) {
	svc := NewService(fakeSource{list: testCatalog()}, nil)

	speech, err := svc.SpeakableEntitledProducts(context.Background(), "en-US")
	require.NoError(t, err)
	assert.Equal(t, "Hints and Premium", speech)
}

func TestSpeakableEntitledProducts_PropagatesFetchError(t *testing.T) {
	svc := NewService(fakeSource{err: errors.New("boom")}, nil)

	_, err := svc.SpeakableEntitledProducts(context.Background(), "en-US")
	require.Error(t, err)
	assert.Equal(t, shared.CodeBadRequest, shared.CodeOf(err))
}
