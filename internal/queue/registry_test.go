package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepository struct {
	*MemoryRepository
	saveErr error
	loadErr error
}

func (f *failingRepository) Load(ctx context.Context, doctorID uint) ([]Entry, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	return f.MemoryRepository.Load(ctx, doctorID)
}

func (f *failingRepository) Save(context.Context, uint, []Entry) error {
	return f.saveErr
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestRegistrySeedsEmptyQueue(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(NewMemoryRepository(), zerolog.Nop(), WithSeed(SampleEntries), WithIDGenerator(sequentialIDs()))

	entries, err := reg.Snapshot(ctx, 7)
	require.NoError(t, err)

	require.Len(t, entries, 5)
	assert.Equal(t, "Robert Johnson", entries[0].Name)
	assert.Equal(t, "id-1", entries[0].ID)
	assert.Equal(t, 5, entries[4].Position)
}

func TestRegistryQueuesArePerDoctor(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(NewMemoryRepository(), zerolog.Nop())

	_, err := reg.Enqueue(ctx, 1, Entry{Name: "Ann", RiskLevel: RiskLow, AppointmentType: InPerson})
	require.NoError(t, err)

	first, err := reg.Snapshot(ctx, 1)
	require.NoError(t, err)
	second, err := reg.Snapshot(ctx, 2)
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Empty(t, second)
}

func TestRegistryEnqueueAssignsIDAndTailPosition(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(NewMemoryRepository(), zerolog.Nop(), WithIDGenerator(sequentialIDs()))

	a, err := reg.Enqueue(ctx, 1, Entry{ID: "ignored", Name: "Ann", RiskLevel: RiskLow, AppointmentType: InPerson})
	require.NoError(t, err)
	b, err := reg.Enqueue(ctx, 1, Entry{Name: "Bob", RiskLevel: RiskHigh, AppointmentType: TeleConsult})
	require.NoError(t, err)

	assert.Equal(t, "id-1", a.ID)
	assert.Equal(t, 1, a.Position)
	assert.Equal(t, "id-2", b.ID)
	assert.Equal(t, 2, b.Position)
}

func TestRegistryPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	reg := NewRegistry(repo, zerolog.Nop(), WithIDGenerator(sequentialIDs()))

	for _, name := range []string{"Ann", "Bob", "Cid"} {
		_, err := reg.Enqueue(ctx, 1, Entry{Name: name, RiskLevel: RiskLow, AppointmentType: InPerson})
		require.NoError(t, err)
	}
	_, err := reg.Prioritize(ctx, 1, "id-3")
	require.NoError(t, err)

	reloaded := NewRegistry(repo, zerolog.Nop())
	entries, err := reloaded.Snapshot(ctx, 1)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "Cid", entries[0].Name)
	assert.Equal(t, "Ann", entries[1].Name)
	assert.Equal(t, "Bob", entries[2].Name)
}

func TestRegistryCompleteReturnsRemovedEntry(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(NewMemoryRepository(), zerolog.Nop(), WithSeed(SampleEntries), WithIDGenerator(sequentialIDs()))

	removed, remaining, err := reg.Complete(ctx, 1, "id-2")
	require.NoError(t, err)

	assert.Equal(t, "Maria Garcia", removed.Name)
	require.Len(t, remaining, 4)
	assert.Equal(t, "James Wilson", remaining[1].Name)
	assert.Equal(t, 2, remaining[1].Position)

	_, _, err = reg.Complete(ctx, 1, "id-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistrySaveFailureDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	repo := &failingRepository{MemoryRepository: NewMemoryRepository(), saveErr: errors.New("db down")}
	reg := NewRegistry(repo, zerolog.Nop(), WithSeed(SampleEntries), WithIDGenerator(sequentialIDs()))

	entries, err := reg.MoveDown(ctx, 1, "id-1")
	require.NoError(t, err)

	assert.Equal(t, "Maria Garcia", entries[0].Name)
	assert.Equal(t, "Robert Johnson", entries[1].Name)
}

func TestRegistryLoadFailureIsReturned(t *testing.T) {
	repo := &failingRepository{MemoryRepository: NewMemoryRepository(), loadErr: errors.New("db down")}
	reg := NewRegistry(repo, zerolog.Nop())

	_, err := reg.Snapshot(context.Background(), 1)

	assert.EqualError(t, err, "db down")
}

func TestRegistryReset(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	reg := NewRegistry(repo, zerolog.Nop())

	_, err := reg.Enqueue(ctx, 1, Entry{Name: "Ann", RiskLevel: RiskLow, AppointmentType: InPerson})
	require.NoError(t, err)
	// stored by an earlier process, never loaded by this registry
	require.NoError(t, repo.Save(ctx, 9, []Entry{{ID: "old", Position: 1, Name: "Bob", RiskLevel: RiskLow, AppointmentType: InPerson}}))

	reg.Reset(ctx)

	entries, err := reg.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
	stored, _, _ := repo.Load(ctx, 1)
	assert.Empty(t, stored)
	stored, found, _ := repo.Load(ctx, 9)
	assert.Empty(t, stored)
	assert.False(t, found)
}

func TestRegistryDrainedQueueStaysEmptyAfterRestart(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	reg := NewRegistry(repo, zerolog.Nop(), WithSeed(SampleEntries), WithIDGenerator(sequentialIDs()))

	entries, err := reg.Snapshot(ctx, 1)
	require.NoError(t, err)
	for _, e := range entries {
		_, _, err := reg.Complete(ctx, 1, e.ID)
		require.NoError(t, err)
	}

	restarted := NewRegistry(repo, zerolog.Nop(), WithSeed(SampleEntries), WithIDGenerator(sequentialIDs()))
	entries, err = restarted.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// a doctor with no saved snapshot still gets the sample queue
	entries, err = restarted.Snapshot(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestRegistryConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(NewMemoryRepository(), zerolog.Nop(), WithSeed(SampleEntries), WithIDGenerator(sequentialIDs()))
	ids := []string{"id-1", "id-2", "id-3", "id-4", "id-5"}
	_, err := reg.Snapshot(ctx, 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				id := ids[(w+i)%len(ids)]
				switch i % 3 {
				case 0:
					_, _ = reg.MoveUp(ctx, 1, id)
				case 1:
					_, _ = reg.MoveDown(ctx, 1, id)
				default:
					_, _ = reg.Prioritize(ctx, 1, id)
				}
			}
		}(w)
	}
	wg.Wait()

	entries, err := reg.Snapshot(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
	}
}
