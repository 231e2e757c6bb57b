// Package queue holds a doctor's ordered patient queue and the operations
// that reorder it. Positions are always 1..N and are recomputed inside every
// operation that changes order or membership.
package queue

import "fmt"

// Queue is an ordered list of entries. It is not safe for concurrent use;
// Registry serializes access to it.
type Queue struct {
	entries []Entry
	// every id the queue has ever held, so completed ids are never reused
	seen map[string]struct{}
}

// New builds a queue from entries in the given order.
func New(entries ...Entry) (*Queue, error) {
	q := &Queue{seen: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		if _, err := q.Add(e); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (q *Queue) Len() int { return len(q.entries) }

// Entries returns a copy of the queue in order.
func (q *Queue) Entries() []Entry {
	out := make([]Entry, len(q.entries))
	copy(out, q.entries)
	return out
}

func (q *Queue) Get(id string) (Entry, error) {
	i, err := q.find(id)
	if err != nil {
		return Entry{}, err
	}
	return q.entries[i], nil
}

// Add appends an entry at the tail of the queue.
func (q *Queue) Add(e Entry) (Entry, error) {
	if e.ID == "" {
		return Entry{}, fmt.Errorf("%w: id is required", ErrInvalidEntry)
	}
	if _, ok := q.seen[e.ID]; ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	if e.AppointmentID != 0 {
		for _, other := range q.entries {
			if other.AppointmentID == e.AppointmentID {
				return Entry{}, fmt.Errorf("%w: appointment %d is entry %s", ErrAlreadyQueued, e.AppointmentID, other.ID)
			}
		}
	}
	if e.Status == "" {
		e.Status = StatusWaiting
	}
	if err := e.validate(); err != nil {
		return Entry{}, err
	}
	q.seen[e.ID] = struct{}{}
	q.entries = append(q.entries, e)
	q.renumber()
	return q.entries[len(q.entries)-1], nil
}

// MoveUp swaps the entry with the one ahead of it. It does nothing for the
// first entry.
func (q *Queue) MoveUp(id string) error {
	i, err := q.find(id)
	if err != nil {
		return err
	}
	if i == 0 {
		return nil
	}
	q.entries[i-1], q.entries[i] = q.entries[i], q.entries[i-1]
	q.renumber()
	return nil
}

// MoveDown swaps the entry with the one behind it. It does nothing for the
// last entry.
func (q *Queue) MoveDown(id string) error {
	i, err := q.find(id)
	if err != nil {
		return err
	}
	if i == len(q.entries)-1 {
		return nil
	}
	q.entries[i], q.entries[i+1] = q.entries[i+1], q.entries[i]
	q.renumber()
	return nil
}

// Prioritize moves the entry to the front. Entries that were ahead of it
// each shift back one slot and keep their relative order.
func (q *Queue) Prioritize(id string) error {
	i, err := q.find(id)
	if err != nil {
		return err
	}
	if i == 0 {
		return nil
	}
	e := q.entries[i]
	copy(q.entries[1:i+1], q.entries[:i])
	q.entries[0] = e
	q.renumber()
	return nil
}

// Complete removes the entry for good and closes the gap it leaves.
func (q *Queue) Complete(id string) (Entry, error) {
	i, err := q.find(id)
	if err != nil {
		return Entry{}, err
	}
	e := q.entries[i]
	q.entries = append(q.entries[:i], q.entries[i+1:]...)
	q.renumber()
	return e, nil
}

func (q *Queue) SetArrived(id string, arrived bool) error {
	i, err := q.find(id)
	if err != nil {
		return err
	}
	q.entries[i].Arrived = arrived
	return nil
}

// Start marks a waiting entry as in progress.
func (q *Queue) Start(id string) error {
	i, err := q.find(id)
	if err != nil {
		return err
	}
	if q.entries[i].Status != StatusWaiting {
		return fmt.Errorf("%w: %s is %s", ErrInvalidTransition, id, q.entries[i].Status)
	}
	q.entries[i].Status = StatusInProgress
	return nil
}

func (q *Queue) find(id string) (int, error) {
	for i := range q.entries {
		if q.entries[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (q *Queue) renumber() {
	for i := range q.entries {
		q.entries[i].Position = i + 1
	}
}
