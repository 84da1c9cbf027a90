//go:build unit

package registry_test

import (
	"testing"

	"library-lending/internal/domain/patron"
	"library-lending/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatronRegistryInsert(t *testing.T) {
	t.Run("inserts and round-trips", func(t *testing.T) {
		e := newEngine()
		require.NoError(t, e.patrons.Insert(patron.Patron{
			ID:      "P-1",
			Name:    strPtr("Ada"),
			Surname: strPtr("Lovelace"),
			Address: &patron.Address{Street: "Main", Number: "12", PostCode: "1000"},
		}))

		p, err := e.patrons.Get("P-1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", *p.Name)
		assert.Equal(t, "Main", p.Address.Street)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		e := newEngine()
		e.mustPatron(t, "P-1")
		err := e.patrons.Insert(patron.Patron{ID: "P-1"})
		requireKind(t, err, registry.KindDuplicateKey, registry.ErrDuplicatePatronID)
	})

	t.Run("stored patron is detached from the caller's value", func(t *testing.T) {
		e := newEngine()
		address := &patron.Address{Street: "Main", Number: "12", PostCode: "1000"}
		require.NoError(t, e.patrons.Insert(patron.Patron{ID: "P-1", Address: address}))

		address.Street = "mutated"
		p, err := e.patrons.Get("P-1")
		require.NoError(t, err)
		assert.Equal(t, "Main", p.Address.Street)
	})
}

func TestPatronRegistryGet(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		e := newEngine()
		_, err := e.patrons.Get("P-1")
		requireKind(t, err, registry.KindEmptyStore, registry.ErrEmptyStore)
	})

	t.Run("missing id", func(t *testing.T) {
		e := newEngine()
		e.mustPatron(t, "P-1")
		_, err := e.patrons.Get("P-2")
		requireKind(t, err, registry.KindNotFound, registry.ErrPatronNotFound)
	})

	t.Run("get all", func(t *testing.T) {
		e := newEngine()
		e.mustPatron(t, "P-1")
		e.mustPatron(t, "P-2")

		patrons, err := e.patrons.GetAll()
		require.NoError(t, err)
		assert.Len(t, patrons, 2)
	})
}

func TestPatronRegistryUpdateAddress(t *testing.T) {
	t.Run("replaces the address", func(t *testing.T) {
		e := newEngine()
		e.mustPatron(t, "P-1")

		require.NoError(t, e.patrons.UpdateAddress("P-1", patron.Address{Street: "New", Number: "1", PostCode: "2000"}))
		p, err := e.patrons.Get("P-1")
		require.NoError(t, err)
		assert.Equal(t, "New", p.Address.Street)
	})

	t.Run("missing id", func(t *testing.T) {
		e := newEngine()
		e.mustPatron(t, "P-1")
		err := e.patrons.UpdateAddress("P-2", patron.Address{})
		requireKind(t, err, registry.KindNotFound, registry.ErrPatronNotFound)
	})
}

func TestPatronRegistryDeleteAll(t *testing.T) {
	e := newEngine()
	e.mustPatron(t, "P-1")
	e.mustPatron(t, "P-2")

	e.patrons.DeleteAll()
	_, err := e.patrons.GetAll()
	requireKind(t, err, registry.KindEmptyStore, registry.ErrEmptyStore)

	// Clearing an already empty registry is fine.
	e.patrons.DeleteAll()
}
