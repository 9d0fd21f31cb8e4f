package impl

import (
	"sync"
	"testing"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionEvents_DeliversInSubscriptionOrder(t *testing.T) {
	hub := NewSessionEvents()
	var got []string

	hub.Subscribe(func(entity.SessionChange) { got = append(got, "first") })
	hub.Subscribe(func(entity.SessionChange) { got = append(got, "second") })

	hub.Publish(entity.SessionChange{Event: entity.SessionSignedIn, UserID: uuid.New()})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestSessionEvents_Unsubscribe(t *testing.T) {
	hub := NewSessionEvents()
	var calls int

	unsubscribe := hub.Subscribe(func(entity.SessionChange) { calls++ })
	hub.Publish(entity.SessionChange{Event: entity.SessionSignedIn})
	unsubscribe()
	unsubscribe()
	hub.Publish(entity.SessionChange{Event: entity.SessionSignedOut})

	assert.Equal(t, 1, calls)
}

func TestSessionEvents_UnsubscribeDuringPublish(t *testing.T) {
	hub := NewSessionEvents()
	var calls int

	var unsubscribe func()
	unsubscribe = hub.Subscribe(func(entity.SessionChange) {
		calls++
		unsubscribe()
	})

	hub.Publish(entity.SessionChange{Event: entity.SessionUserUpdated})
	hub.Publish(entity.SessionChange{Event: entity.SessionUserUpdated})

	assert.Equal(t, 1, calls)
}

func TestSessionEvents_ConcurrentUse(t *testing.T) {
	hub := NewSessionEvents()
	var mu sync.Mutex
	var received int

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe := hub.Subscribe(func(entity.SessionChange) {
				mu.Lock()
				received++
				mu.Unlock()
			})
			hub.Publish(entity.SessionChange{Event: entity.SessionTokenRefreshed})
			unsubscribe()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, received, 8)
}
