// ABOUTME: Tests for the local product overlay journal
// ABOUTME: Validates id namespacing, input coercion, and write-through persistence

package inventory

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightcart/storefront/internal/catalog"
	"github.com/brightcart/storefront/internal/persist"
)

func TestOverlay_Add(t *testing.T) {
	o := NewOverlay(persist.NewMemoryGateway())

	p := o.Add(AddPayload{Title: "Handmade Mug", Price: 14.5, Category: "kitchen"})

	assert.True(t, strings.HasPrefix(p.ID, "local-"), "local ids carry the namespace prefix")
	assert.Equal(t, catalog.OriginLocal, p.Origin)
	assert.Equal(t, 14.5, p.Price)
	assert.Equal(t, "kitchen", p.Category)
}

func TestOverlay_Add_Defaults(t *testing.T) {
	o := NewOverlay(persist.NewMemoryGateway())

	p := o.Add(AddPayload{Title: "Mystery Item", Price: math.NaN()})

	assert.Equal(t, 0.0, p.Price, "invalid price coerces to 0")
	assert.Equal(t, "uncategorized", p.Category)
}

func TestOverlay_Add_NegativePrice(t *testing.T) {
	o := NewOverlay(persist.NewMemoryGateway())

	p := o.Add(AddPayload{Title: "Freebie", Price: -3})
	assert.Equal(t, 0.0, p.Price)
}

func TestOverlay_Add_NewestFirst(t *testing.T) {
	o := NewOverlay(persist.NewMemoryGateway())

	o.Add(AddPayload{Title: "first"})
	o.Add(AddPayload{Title: "second"})

	products := o.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "second", products[0].Title)
	assert.Equal(t, "first", products[1].Title)
}

func TestOverlay_UniqueIDs(t *testing.T) {
	o := NewOverlay(persist.NewMemoryGateway())

	a := o.Add(AddPayload{Title: "a"})
	b := o.Add(AddPayload{Title: "b"})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestOverlay_Update(t *testing.T) {
	o := NewOverlay(persist.NewMemoryGateway())
	p := o.Add(AddPayload{Title: "old title", Price: 10})

	title := "new title"
	o.Update(p.ID, Patch{Title: &title})

	products := o.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "new title", products[0].Title)
	assert.Equal(t, 10.0, products[0].Price, "unpatched fields stay")
}

func TestOverlay_Update_UnknownID(t *testing.T) {
	gateway := persist.NewMemoryGateway()
	o := NewOverlay(gateway)
	o.Add(AddPayload{Title: "kept"})

	title := "ignored"
	o.Update("local-nope", Patch{Title: &title})

	reloaded := NewOverlay(gateway)
	products := reloaded.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "kept", products[0].Title)
}

func TestOverlay_Remove(t *testing.T) {
	o := NewOverlay(persist.NewMemoryGateway())
	p := o.Add(AddPayload{Title: "doomed"})

	o.Remove(p.ID)

	assert.Empty(t, o.Products())
	assert.False(t, o.Has(p.ID))
}

func TestOverlay_SurvivesReload(t *testing.T) {
	gateway := persist.NewMemoryGateway()

	o := NewOverlay(gateway)
	p := o.Add(AddPayload{Title: "durable", Price: 5})

	reloaded := NewOverlay(gateway)
	products := reloaded.Products()
	require.Len(t, products, 1)
	assert.Equal(t, p.ID, products[0].ID)
	assert.Equal(t, "durable", products[0].Title)
}

func TestOverlay_CorruptJournalStartsEmpty(t *testing.T) {
	gateway := persist.NewMemoryGateway()
	gateway.Write(persist.KeyProducts, []byte("not json at all"))

	o := NewOverlay(gateway)
	assert.Empty(t, o.Products())
}
