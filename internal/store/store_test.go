package store

import (
	"sync"
	"testing"
	"time"

	"fnctl/internal/functionapp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDispatchAndSnapshot(t *testing.T) {
	st := New()
	s := st.Dispatch(FetchStarted{Project: "acme"}, AppsLoaded{Project: "acme", Apps: apps("b", "a")})

	assert.Equal(t, StatusLoaded, s.Status)
	assert.Equal(t, s, st.Snapshot())
	assert.Equal(t, []string{"a", "b"}, functionapp.Names(st.All()))

	_, ok := st.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int64(2), st.Metrics().Dispatched)
}

func TestStoreSubscription(t *testing.T) {
	st := New()
	sub := st.Subscribe()
	assert.Equal(t, 1, st.Metrics().ActiveSubscriptions)

	st.Dispatch(CreateStarted{})

	select {
	case s := <-sub.C:
		assert.True(t, s.Creating)
	case <-time.After(time.Second):
		t.Fatal("expected snapshot")
	}

	st.Unsubscribe(sub)
	assert.True(t, sub.IsClosed())
	assert.Equal(t, 0, st.Metrics().ActiveSubscriptions)

	_, open := <-sub.C
	assert.False(t, open)

	// Dispatch after unsubscribe must not panic.
	st.Dispatch(CreateFinished{})
}

func TestStoreDropsWhenSubscriberIsSlow(t *testing.T) {
	st := New()
	sub := st.Subscribe()
	defer st.Unsubscribe(sub)

	for i := 0; i < subscriptionBuffer+5; i++ {
		st.Dispatch(CreateStarted{})
	}

	m := st.Metrics()
	assert.Equal(t, int64(subscriptionBuffer), m.DeliveredSnapshots)
	assert.Equal(t, int64(5), m.DroppedSnapshots)
}

func TestStoreConcurrentDispatch(t *testing.T) {
	st := New()
	st.Dispatch(FetchStarted{Project: "acme"}, AppsLoaded{Project: "acme"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.Dispatch(AppAdded{App: functionapp.FunctionApp{Name: string(rune('a' + i%26))}})
		}(i)
	}
	wg.Wait()

	s := st.Snapshot()
	require.Equal(t, 26, s.Len())
	assert.IsIncreasing(t, s.IDs)
}
