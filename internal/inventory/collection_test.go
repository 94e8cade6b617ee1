// ABOUTME: Tests for the merged product collection
// ABOUTME: Validates id uniqueness, ordering, session shadows, and the liveness guard

package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightcart/storefront/internal/catalog"
	"github.com/brightcart/storefront/internal/persist"
)

// stubFetcher returns a fixed baseline, one snapshot per call.
type stubFetcher struct {
	batches [][]catalog.Product
	calls   int
}

func (s *stubFetcher) FetchAll(ctx context.Context) []catalog.Product {
	if s.calls >= len(s.batches) {
		return []catalog.Product{}
	}
	batch := s.batches[s.calls]
	s.calls++
	return batch
}

func remoteProduct(id, title string, price float64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    title,
		Price:    price,
		Category: "remote goods",
		Origin:   catalog.OriginRemote,
	}
}

func newTestCollection(t *testing.T, baseline ...catalog.Product) *Collection {
	t.Helper()
	overlay := NewOverlay(persist.NewMemoryGateway())
	c := NewCollection(overlay, &stubFetcher{batches: [][]catalog.Product{baseline}})
	c.Refresh(context.Background())
	return c
}

func TestCollection_LocalBeforeRemote(t *testing.T) {
	c := newTestCollection(t, remoteProduct("1", "Backpack", 100))

	added := c.Add(AddPayload{Title: "Handmade Mug", Price: 14})

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, added.ID, all[0].ID, "overlay entries come before the baseline")
	assert.Equal(t, "1", all[1].ID)
}

func TestCollection_IdentityUniqueness(t *testing.T) {
	c := newTestCollection(t,
		remoteProduct("1", "Backpack", 100),
		remoteProduct("1", "Duplicate Backpack", 90),
		remoteProduct("2", "T-Shirt", 20),
	)
	c.Add(AddPayload{Title: "Mug"})

	all := c.All()
	seen := make(map[string]bool)
	for _, p := range all {
		assert.False(t, seen[p.ID], "duplicate id %s in merged collection", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, all, 3)
}

func TestCollection_LocalWinsIDCollision(t *testing.T) {
	overlay := NewOverlay(persist.NewMemoryGateway())
	local := overlay.Add(AddPayload{Title: "Local Winner", Price: 1})

	// A hostile baseline reusing the local id
	c := NewCollection(overlay, &stubFetcher{batches: [][]catalog.Product{{
		remoteProduct(local.ID, "Remote Impostor", 999),
	}}})
	c.Refresh(context.Background())

	all := c.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Local Winner", all[0].Title)
	assert.Equal(t, catalog.OriginLocal, all[0].Origin)
}

func TestCollection_UpdateLocal(t *testing.T) {
	c := newTestCollection(t)
	p := c.Add(AddPayload{Title: "old", Price: 10})

	title := "new"
	c.Update(p.ID, Patch{Title: &title})

	got, ok := c.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "new", got.Title)
}

func TestCollection_UpdateRemote_SessionShadow(t *testing.T) {
	c := newTestCollection(t, remoteProduct("1", "Backpack", 100))

	price := 89.0
	c.Update("1", Patch{Price: &price})

	got, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, 89.0, got.Price)
	assert.Equal(t, catalog.OriginRemote, got.Origin)
}

func TestCollection_RemoteShadowNotPersisted(t *testing.T) {
	gateway := persist.NewMemoryGateway()
	overlay := NewOverlay(gateway)
	c := NewCollection(overlay, &stubFetcher{batches: [][]catalog.Product{{
		remoteProduct("1", "Backpack", 100),
	}}})
	c.Refresh(context.Background())

	title := "Renamed"
	c.Update("1", Patch{Title: &title})

	// The overlay journal stays empty; the shadow lives only in this session.
	_, stored := gateway.Read(persist.KeyProducts)
	assert.False(t, stored)
	assert.Empty(t, NewOverlay(gateway).Products())
}

func TestCollection_DeleteLocal(t *testing.T) {
	c := newTestCollection(t, remoteProduct("1", "Backpack", 100))
	p := c.Add(AddPayload{Title: "doomed"})

	c.Delete(p.ID)

	_, ok := c.Get(p.ID)
	assert.False(t, ok)
	assert.Len(t, c.All(), 1)
}

func TestCollection_DeleteRemote_HidesForSession(t *testing.T) {
	c := newTestCollection(t,
		remoteProduct("1", "Backpack", 100),
		remoteProduct("2", "T-Shirt", 20),
	)

	c.Delete("1")

	all := c.All()
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)

	// The hide survives a baseline refresh within the session
	c.source.(*stubFetcher).batches = append(c.source.(*stubFetcher).batches, []catalog.Product{
		remoteProduct("1", "Backpack", 100),
		remoteProduct("2", "T-Shirt", 20),
	})
	c.Refresh(context.Background())
	all = c.All()
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)
}

func TestCollection_RefreshAfterClose_Discarded(t *testing.T) {
	overlay := NewOverlay(persist.NewMemoryGateway())
	fetcher := &stubFetcher{batches: [][]catalog.Product{{
		remoteProduct("1", "Backpack", 100),
	}}}
	c := NewCollection(overlay, fetcher)

	c.Close()
	c.Refresh(context.Background())

	assert.Empty(t, c.All(), "a fetch settling after close must not revive state")
}

func TestCollection_FailedRefreshKeepsBaseline(t *testing.T) {
	c := newTestCollection(t, remoteProduct("1", "Backpack", 100))

	// Second refresh fails (stub returns empty); cached baseline survives
	c.Refresh(context.Background())

	assert.Len(t, c.All(), 1)
}
