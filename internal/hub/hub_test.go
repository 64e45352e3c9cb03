package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe(1)
	b := h.Subscribe(1)

	h.Publish(Event{Type: EventGameDeleted, Payload: map[string]string{"id": "1"}})

	want := `{"type":"game.deleted","payload":{"id":"1"}}`
	assert.JSONEq(t, want, string(<-a))
	assert.JSONEq(t, want, string(<-b))
}

func TestPublishDropsWhenClientIsFull(t *testing.T) {
	h := NewHub()
	c := h.Subscribe(1)

	h.Publish(Event{Type: EventGameAdded, Payload: 1})
	h.Publish(Event{Type: EventGameAdded, Payload: 2})

	assert.JSONEq(t, `{"type":"game.added","payload":1}`, string(<-c))
	assert.Empty(t, c)
}

func TestUnsubscribeClosesClient(t *testing.T) {
	h := NewHub()
	c := h.Subscribe(1)
	require.Equal(t, 1, h.Len())

	h.Unsubscribe(c)
	assert.Equal(t, 0, h.Len())

	_, open := <-c
	assert.False(t, open)

	// second unsubscribe is a no-op
	h.Unsubscribe(c)
	h.Publish(Event{Type: EventGameUpdated})
}
