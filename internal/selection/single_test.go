package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleModelLastWriteWins(t *testing.T) {
	m := NewSingleModel(adapter)
	assert.False(t, m.IsComplete())
	assert.False(t, m.IsValid())

	m.Add(day(time.January, 3))
	m.Add(day(time.January, 1))

	require.NotNil(t, m.Selection())
	assert.Equal(t, *day(time.January, 1), *m.Selection())
	assert.True(t, m.IsComplete())
	assert.True(t, m.IsValid())
}

func TestSingleModelStoresInvalidDates(t *testing.T) {
	m := NewSingleModel(adapter)
	m.Add(invalid)

	assert.True(t, m.IsComplete())
	assert.False(t, m.IsValid())

	m.Add(nil)
	assert.Nil(t, m.Selection())
	assert.False(t, m.IsComplete())
}

func TestSingleModelNotifiesChanges(t *testing.T) {
	m := NewSingleModel(adapter)
	var changes []Change[*time.Time]
	m.Subscribe(func(c Change[*time.Time]) { changes = append(changes, c) })

	first, second := day(time.March, 1), day(time.March, 2)
	m.Add(first)
	m.UpdateSelection(second, "picker")

	require.Len(t, changes, 2)
	assert.Same(t, m, changes[0].Source)
	assert.Nil(t, changes[0].OldValue)
	assert.Same(t, first, changes[0].Selection)

	assert.Equal(t, "picker", changes[1].Source)
	assert.Same(t, first, changes[1].OldValue)
	assert.Same(t, second, changes[1].Selection)
}

func TestSingleModelClone(t *testing.T) {
	a := NewSingleModel(adapter)
	a.Add(day(time.June, 10))

	b := a.Clone()
	assert.Same(t, a.Selection(), b.Selection())

	var notified bool
	b.Subscribe(func(Change[*time.Time]) { notified = true })
	a.UpdateSelection(day(time.June, 11), nil)

	assert.Equal(t, *day(time.June, 10), *b.Selection())
	assert.False(t, notified)
}

func TestCloseStopsNotification(t *testing.T) {
	m := NewSingleModel(adapter)
	calls := 0
	m.Subscribe(func(Change[*time.Time]) { calls++ })

	m.Close()
	m.Close()
	m.Add(day(time.May, 5))

	assert.Zero(t, calls)
	assert.Equal(t, *day(time.May, 5), *m.Selection())
}
