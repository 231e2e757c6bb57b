package queue

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, risk RiskLevel) Entry {
	return Entry{ID: id, Name: "Patient " + id, RiskLevel: risk, AppointmentType: InPerson}
}

func newQueue(t *testing.T, ids ...string) *Queue {
	t.Helper()
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, entry(id, RiskLow))
	}
	q, err := New(entries...)
	require.NoError(t, err)
	return q
}

func order(q *Queue) []string {
	var ids []string
	for _, e := range q.Entries() {
		ids = append(ids, e.ID)
	}
	return ids
}

func assertContiguous(t *testing.T, q *Queue) {
	t.Helper()
	for i, e := range q.Entries() {
		assert.Equal(t, i+1, e.Position, "entry %s", e.ID)
	}
}

func TestNewAssignsPositions(t *testing.T) {
	q := newQueue(t, "A", "B", "C")

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"A", "B", "C"}, order(q))
	assertContiguous(t, q)
	for _, e := range q.Entries() {
		assert.Equal(t, StatusWaiting, e.Status)
	}
}

func TestMoveDown(t *testing.T) {
	q := newQueue(t, "A", "B", "C")

	require.NoError(t, q.MoveDown("A"))

	assert.Equal(t, []string{"B", "A", "C"}, order(q))
	assertContiguous(t, q)
}

func TestMoveUpThenDownRestoresOrder(t *testing.T) {
	q := newQueue(t, "A", "B", "C", "D")

	require.NoError(t, q.MoveUp("C"))
	assert.Equal(t, []string{"A", "C", "B", "D"}, order(q))
	require.NoError(t, q.MoveDown("C"))

	assert.Equal(t, []string{"A", "B", "C", "D"}, order(q))
	assertContiguous(t, q)
}

func TestMovesAtBoundariesAreNoOps(t *testing.T) {
	q := newQueue(t, "A", "B", "C")

	require.NoError(t, q.MoveUp("A"))
	require.NoError(t, q.MoveDown("C"))

	assert.Equal(t, []string{"A", "B", "C"}, order(q))
	assertContiguous(t, q)
}

func TestPrioritize(t *testing.T) {
	q, err := New(
		Entry{ID: "robert", Name: "Robert", RiskLevel: RiskHigh, AppointmentType: InPerson},
		Entry{ID: "maria", Name: "Maria", RiskLevel: RiskLow, AppointmentType: InPerson},
		Entry{ID: "james", Name: "James", RiskLevel: RiskHigh, AppointmentType: InPerson},
	)
	require.NoError(t, err)

	require.NoError(t, q.Prioritize("james"))

	entries := q.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "james", entries[0].ID)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "robert", entries[1].ID)
	assert.Equal(t, 2, entries[1].Position)
	assert.Equal(t, "maria", entries[2].ID)
	assert.Equal(t, 3, entries[2].Position)
}

func TestPrioritizeKeepsRelativeOrderOfEntriesAhead(t *testing.T) {
	q := newQueue(t, "A", "B", "C", "D", "E")

	require.NoError(t, q.Prioritize("D"))

	assert.Equal(t, []string{"D", "A", "B", "C", "E"}, order(q))
	assertContiguous(t, q)
}

func TestPrioritizeFirstIsNoOp(t *testing.T) {
	q := newQueue(t, "A", "B", "C")
	before := q.Entries()

	require.NoError(t, q.Prioritize("A"))

	assert.Equal(t, before, q.Entries())
}

func TestCompleteClosesGap(t *testing.T) {
	q := newQueue(t, "A", "B", "C", "D")

	removed, err := q.Complete("B")
	require.NoError(t, err)

	assert.Equal(t, "B", removed.ID)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"A", "C", "D"}, order(q))
	assertContiguous(t, q)

	_, err = q.Get("B")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompletedIDCannotBeReused(t *testing.T) {
	q := newQueue(t, "A", "B")
	_, err := q.Complete("A")
	require.NoError(t, err)

	_, err = q.Add(entry("A", RiskLow))

	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, []string{"B"}, order(q))
}

func TestUnknownIDFailsWithNotFound(t *testing.T) {
	q := newQueue(t, "A", "B")

	assert.ErrorIs(t, q.MoveUp("X"), ErrNotFound)
	assert.ErrorIs(t, q.MoveDown("X"), ErrNotFound)
	assert.ErrorIs(t, q.Prioritize("X"), ErrNotFound)
	_, err := q.Complete("X")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, q.SetArrived("X", true), ErrNotFound)
	assert.ErrorIs(t, q.Start("X"), ErrNotFound)

	assert.Equal(t, []string{"A", "B"}, order(q))
}

func TestAddValidates(t *testing.T) {
	q := newQueue(t)

	tests := []struct {
		name  string
		entry Entry
		err   error
	}{
		{"missing id", Entry{Name: "x", RiskLevel: RiskLow, AppointmentType: InPerson}, ErrInvalidEntry},
		{"missing name", Entry{ID: "1", RiskLevel: RiskLow, AppointmentType: InPerson}, ErrInvalidEntry},
		{"bad risk", Entry{ID: "2", Name: "x", RiskLevel: "severe", AppointmentType: InPerson}, ErrInvalidEntry},
		{"bad type", Entry{ID: "3", Name: "x", RiskLevel: RiskLow, AppointmentType: "phone"}, ErrInvalidEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := q.Add(tt.entry)
			assert.ErrorIs(t, err, tt.err)
		})
	}
	assert.Equal(t, 0, q.Len())
}

func TestStartAndArrive(t *testing.T) {
	q := newQueue(t, "A", "B")

	require.NoError(t, q.SetArrived("B", true))
	require.NoError(t, q.Start("A"))
	assert.ErrorIs(t, q.Start("A"), ErrInvalidTransition)

	a, _ := q.Get("A")
	b, _ := q.Get("B")
	assert.Equal(t, StatusInProgress, a.Status)
	assert.True(t, b.Arrived)
	assert.Equal(t, []string{"A", "B"}, order(q))
}

func TestEntriesReturnsCopy(t *testing.T) {
	q := newQueue(t, "A", "B")

	entries := q.Entries()
	entries[0].ID = "mutated"

	assert.Equal(t, []string{"A", "B"}, order(q))
}

func TestPositionsStayContiguousUnderRandomReorders(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 8; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%d", i)
		}
		q := newQueue(t, ids...)

		for step := 0; step < 200; step++ {
			id := ids[rng.Intn(n)]
			switch rng.Intn(3) {
			case 0:
				require.NoError(t, q.MoveUp(id))
			case 1:
				require.NoError(t, q.MoveDown(id))
			case 2:
				require.NoError(t, q.Prioritize(id))
			}
		}

		assert.Equal(t, n, q.Len())
		assert.ElementsMatch(t, ids, order(q))
		assertContiguous(t, q)
	}
}

func TestEstimatedWait(t *testing.T) {
	tests := []struct {
		position int
		want     string
	}{
		{1, "Now"},
		{2, "~15 min"},
		{4, "~45 min"},
		{5, "~1 hr"},
		{7, "~1 hr 30 min"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Entry{Position: tt.position}.EstimatedWait())
	}
}

func TestActionsFor(t *testing.T) {
	high := Entry{RiskLevel: RiskHigh, Position: 3}
	assert.Equal(t, Actions{CanMoveUp: true, CanMoveDown: false, CanPrioritize: true}, ActionsFor(high, 3))

	first := Entry{RiskLevel: RiskHigh, Position: 1}
	assert.Equal(t, Actions{CanMoveUp: false, CanMoveDown: true, CanPrioritize: false}, ActionsFor(first, 3))

	low := Entry{RiskLevel: RiskLow, Position: 2}
	assert.Equal(t, Actions{CanMoveUp: true, CanMoveDown: true, CanPrioritize: false}, ActionsFor(low, 3))
}

func TestAppointmentQueuedOnlyOnce(t *testing.T) {
	q, err := New(Entry{ID: "a", AppointmentID: 7, Name: "Ann", RiskLevel: RiskLow, AppointmentType: InPerson})
	require.NoError(t, err)

	_, err = q.Add(Entry{ID: "b", AppointmentID: 7, Name: "Ann", RiskLevel: RiskLow, AppointmentType: InPerson})
	assert.ErrorIs(t, err, ErrAlreadyQueued)
	assert.Equal(t, 1, q.Len())

	// walk-ins carry no appointment and never collide
	_, err = q.Add(Entry{ID: "c", Name: "Walk-in", RiskLevel: RiskLow, AppointmentType: InPerson})
	require.NoError(t, err)
	_, err = q.Add(Entry{ID: "d", Name: "Walk-in", RiskLevel: RiskLow, AppointmentType: InPerson})
	require.NoError(t, err)

	_, err = q.Complete("a")
	require.NoError(t, err)
	_, err = q.Add(Entry{ID: "e", AppointmentID: 7, Name: "Ann", RiskLevel: RiskLow, AppointmentType: InPerson})
	assert.NoError(t, err)
}
