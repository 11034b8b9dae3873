package tinydb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// person is the record type used across the package tests.
type person struct {
	Name string
	Age  int
}

func TestAdd(t *testing.T) {
	t.Run("strict add rejects duplicate and keeps len", func(t *testing.T) {
		db := New[person]("add-test", "", true)

		require.NoError(t, db.Add(person{Name: "John", Age: 16}))
		assert.Equal(t, 1, db.Len())

		err := db.Add(person{Name: "John", Age: 16})
		assert.ErrorIs(t, err, ErrDupeFound)
		assert.Equal(t, 1, db.Len())
	})

	t.Run("non-strict add of duplicate succeeds without growth", func(t *testing.T) {
		db := New[person]("add-test", "", false)

		require.NoError(t, db.Add(person{Name: "John", Age: 16}))
		require.NoError(t, db.Add(person{Name: "John", Age: 16}))
		assert.Equal(t, 1, db.Len())
		assert.True(t, db.Contains(person{Name: "John", Age: 16}))
	})

	t.Run("set never holds two equal records", func(t *testing.T) {
		for _, strict := range []bool{true, false} {
			db := New[person]("uniqueness", "", strict)
			for range 5 {
				_ = db.Add(person{Name: "Xander", Age: 33})
			}
			assert.Equal(t, 1, db.Len())
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("removes existing record", func(t *testing.T) {
		db := New[person]("removal-test", "", true)
		p := person{Name: "Xander", Age: 33}

		require.NoError(t, db.Add(p))
		require.NoError(t, db.Remove(p))
		assert.Equal(t, 0, db.Len())
		assert.False(t, db.Contains(p))
	})

	t.Run("absent record returns ErrItemNotFound and keeps len", func(t *testing.T) {
		db := New[person]("removal-test", "", true)
		require.NoError(t, db.Add(person{Name: "Cat", Age: 10}))

		err := db.Remove(person{Name: "Rimmer", Age: 5})
		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.Equal(t, 1, db.Len())
	})
}

func TestUpdate(t *testing.T) {
	t.Run("replaces record keeping len", func(t *testing.T) {
		db := New[person]("update-test", "", true)
		old := person{Name: "Lister", Age: 62}
		require.NoError(t, db.Add(old))

		replacement := person{Name: "Lister", Age: 63}
		require.NoError(t, db.Update(old, replacement))

		assert.Equal(t, 1, db.Len())
		assert.True(t, db.Contains(replacement))
		assert.False(t, db.Contains(old))
	})

	t.Run("absent old fails before inserting replacement", func(t *testing.T) {
		db := New[person]("update-test", "", true)

		err := db.Update(person{Name: "Kryten", Age: 3000}, person{Name: "Kryten", Age: 3001})
		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.Equal(t, 0, db.Len())
		assert.False(t, db.Contains(person{Name: "Kryten", Age: 3001}))
	})

	t.Run("strict collision after removal loses old without adding new", func(t *testing.T) {
		// Update is documented as non-atomic: the removal is not rolled
		// back when the subsequent add collides.
		db := New[person]("update-test", "", true)
		a := person{Name: "Rimmer", Age: 5}
		b := person{Name: "Cat", Age: 10}
		require.NoError(t, db.Add(a))
		require.NoError(t, db.Add(b))

		err := db.Update(a, b)
		assert.ErrorIs(t, err, ErrDupeFound)
		assert.Equal(t, 1, db.Len())
		assert.False(t, db.Contains(a))
		assert.True(t, db.Contains(b))
	})
}

func TestContains(t *testing.T) {
	db := New[person]("contains-test", "", false)
	p := person{Name: "Xander", Age: 33}

	assert.False(t, db.Contains(p))
	require.NoError(t, db.Add(p))
	assert.True(t, db.Contains(p))
}

func TestLen(t *testing.T) {
	db := New[person]("len-test", "", true)
	assert.Equal(t, 0, db.Len())

	require.NoError(t, db.Add(person{Name: "Xander", Age: 33}))
	require.NoError(t, db.Add(person{Name: "John", Age: 54}))
	assert.Equal(t, 2, db.Len())
}

func TestAll(t *testing.T) {
	db := New[person]("all-test", "", true)
	want := map[person]bool{
		{Name: "Rimmer", Age: 5}:  true,
		{Name: "Cat", Age: 10}:    true,
		{Name: "Lister", Age: 62}: true,
	}
	for p := range want {
		require.NoError(t, db.Add(p))
	}

	got := map[person]bool{}
	for p := range db.All() {
		got[p] = true
	}
	assert.Equal(t, want, got)
}

// TestLifecycleScenario walks a full strict-policy session: add,
// duplicate rejection, query, removal, and removal of an absent record.
func TestLifecycleScenario(t *testing.T) {
	db := New[person]("scenario", "", true)
	john := person{Name: "John", Age: 16}

	require.NoError(t, db.Add(john))
	assert.Equal(t, 1, db.Len())

	assert.ErrorIs(t, db.Add(john), ErrDupeFound)
	assert.Equal(t, 1, db.Len())

	matches, err := Query(db, func(p person) int { return p.Age }, 16)
	require.NoError(t, err)
	assert.Equal(t, []person{john}, matches)

	require.NoError(t, db.Remove(john))
	assert.Equal(t, 0, db.Len())

	assert.ErrorIs(t, db.Remove(john), ErrItemNotFound)
}
