package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueues struct{ resets int }

func (f *fakeQueues) Reset(context.Context) { f.resets++ }

type fakeAppointments struct {
	before string
	n      int64
	err    error
}

func (f *fakeAppointments) MarkNoShows(_ context.Context, before string) (int64, error) {
	f.before = before
	return f.n, f.err
}

func TestResetDailyQueues(t *testing.T) {
	queues := &fakeQueues{}
	s := NewScheduler(queues, &fakeAppointments{}, zerolog.Nop())

	s.ResetDailyQueues()

	assert.Equal(t, 1, queues.resets)
}

func TestMarkNoShowsUsesToday(t *testing.T) {
	appts := &fakeAppointments{n: 3}
	s := NewScheduler(&fakeQueues{}, appts, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2026, time.October, 18, 14, 30, 0, 0, time.UTC) }

	s.MarkNoShows()

	assert.Equal(t, "2026-10-18", appts.before)
}

func TestMarkNoShowsSurvivesStoreError(t *testing.T) {
	appts := &fakeAppointments{err: errors.New("db down")}
	s := NewScheduler(&fakeQueues{}, appts, zerolog.Nop())

	assert.NotPanics(t, s.MarkNoShows)
}

func TestStartRegistersJobs(t *testing.T) {
	s := NewScheduler(&fakeQueues{}, &fakeAppointments{}, zerolog.Nop())

	require.NoError(t, s.Start())
	defer s.Stop()

	entries := s.cron.Entries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.False(t, e.Next.IsZero())
	}
}
