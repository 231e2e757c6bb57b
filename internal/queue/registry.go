package queue

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository mirrors queue snapshots to a backing store. Load reports found
// as false when no snapshot was ever saved for the doctor; an empty saved
// queue is found with no entries. Clear drops every snapshot.
type Repository interface {
	Load(ctx context.Context, doctorID uint) (entries []Entry, found bool, err error)
	Save(ctx context.Context, doctorID uint, entries []Entry) error
	Clear(ctx context.Context) error
}

// Registry owns one queue per doctor. Every read and write goes through its
// mutex, so it is the single writer for all queues it holds.
type Registry struct {
	mu     sync.Mutex
	queues map[uint]*Queue
	repo   Repository
	seed   func() []Entry
	newID  func() string
	log    zerolog.Logger
}

type Option func(*Registry)

// WithSeed fills a doctor's queue from seed when the repository never saved
// a snapshot for that doctor.
func WithSeed(seed func() []Entry) Option {
	return func(r *Registry) { r.seed = seed }
}

// WithIDGenerator replaces the UUID generator used for new entries.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) { r.newID = gen }
}

func NewRegistry(repo Repository, log zerolog.Logger, opts ...Option) *Registry {
	r := &Registry{
		queues: make(map[uint]*Queue),
		repo:   repo,
		newID:  uuid.NewString,
		log:    log.With().Str("component", "queue").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Snapshot returns the doctor's queue in order.
func (r *Registry) Snapshot(ctx context.Context, doctorID uint) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, err := r.queueFor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return q.Entries(), nil
}

func (r *Registry) Get(ctx context.Context, doctorID uint, id string) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, err := r.queueFor(ctx, doctorID)
	if err != nil {
		return Entry{}, err
	}
	return q.Get(id)
}

// Enqueue assigns a fresh id to e and appends it to the doctor's queue.
func (r *Registry) Enqueue(ctx context.Context, doctorID uint, e Entry) (Entry, error) {
	var added Entry
	_, err := r.mutate(ctx, doctorID, func(q *Queue) error {
		e.ID = r.newID()
		var err error
		added, err = q.Add(e)
		return err
	})
	return added, err
}

func (r *Registry) MoveUp(ctx context.Context, doctorID uint, id string) ([]Entry, error) {
	return r.mutate(ctx, doctorID, func(q *Queue) error { return q.MoveUp(id) })
}

func (r *Registry) MoveDown(ctx context.Context, doctorID uint, id string) ([]Entry, error) {
	return r.mutate(ctx, doctorID, func(q *Queue) error { return q.MoveDown(id) })
}

func (r *Registry) Prioritize(ctx context.Context, doctorID uint, id string) ([]Entry, error) {
	return r.mutate(ctx, doctorID, func(q *Queue) error { return q.Prioritize(id) })
}

// Complete removes the entry and returns it along with the remaining queue.
func (r *Registry) Complete(ctx context.Context, doctorID uint, id string) (Entry, []Entry, error) {
	var removed Entry
	entries, err := r.mutate(ctx, doctorID, func(q *Queue) error {
		var err error
		removed, err = q.Complete(id)
		return err
	})
	return removed, entries, err
}

func (r *Registry) SetArrived(ctx context.Context, doctorID uint, id string, arrived bool) ([]Entry, error) {
	return r.mutate(ctx, doctorID, func(q *Queue) error { return q.SetArrived(id, arrived) })
}

func (r *Registry) Start(ctx context.Context, doctorID uint, id string) ([]Entry, error) {
	return r.mutate(ctx, doctorID, func(q *Queue) error { return q.Start(id) })
}

// Reset empties every queue held in memory and in the repository. Queues are
// rebuilt lazily on next access.
func (r *Registry) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.repo.Clear(ctx); err != nil {
		r.log.Error().Err(err).Msg("failed to clear queue snapshots")
	}
	r.log.Info().Int("queues", len(r.queues)).Msg("queues reset")
	r.queues = make(map[uint]*Queue)
}

func (r *Registry) mutate(ctx context.Context, doctorID uint, fn func(*Queue) error) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, err := r.queueFor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if err := fn(q); err != nil {
		return nil, err
	}
	entries := q.Entries()
	// The in-memory queue stays authoritative when the mirror write fails.
	if err := r.repo.Save(ctx, doctorID, entries); err != nil {
		r.log.Error().Err(err).Uint("doctor_id", doctorID).Msg("failed to save queue snapshot")
	}
	return entries, nil
}

// queueFor must be called with r.mu held.
func (r *Registry) queueFor(ctx context.Context, doctorID uint) (*Queue, error) {
	if q, ok := r.queues[doctorID]; ok {
		return q, nil
	}

	stored, found, err := r.repo.Load(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !found && r.seed != nil {
		stored = r.seed()
		for i := range stored {
			stored[i].ID = r.newID()
		}
		r.log.Info().Uint("doctor_id", doctorID).Int("entries", len(stored)).Msg("seeded sample queue")
	}

	q, err := New(stored...)
	if err != nil {
		return nil, err
	}
	r.queues[doctorID] = q
	return q, nil
}
