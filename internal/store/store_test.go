package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGet(t *testing.T) {
	s := New[string]()

	_, ok := s.Get("a")
	assert.False(t, ok)

	s.Put("a", "first")
	value, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "first", value)

	// Overwrite on the same key replaces the value.
	s.Put("a", "second")
	value, _ = s.Get("a")
	assert.Equal(t, "second", value)
	assert.Equal(t, 1, s.Len())
}

func TestStoreValuesKeepInsertionOrder(t *testing.T) {
	s := New[int]()
	s.Put("c", 3)
	s.Put("a", 1)
	s.Put("b", 2)

	assert.Equal(t, []int{3, 1, 2}, s.Values())

	// Overwriting does not move the key to the back.
	s.Put("c", 30)
	assert.Equal(t, []int{30, 1, 2}, s.Values())
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NotNil(t, reg.Students)
	require.NotNil(t, reg.Courses)
	require.NotNil(t, reg.Instructors)
	assert.Zero(t, reg.Students.Len())
}
