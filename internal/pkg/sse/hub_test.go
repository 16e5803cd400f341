package sse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyTheAddressee(t *testing.T) {
	hub := NewHub()

	charlie, closeCharlie := hub.Subscribe("EMP003")
	ethan, closeEthan := hub.Subscribe("EMP005")
	defer closeEthan()

	hub.Publish("EMP003", Event{Name: "regularization.decided", Data: map[string]string{"id": "REG001"}})

	require.Len(t, charlie, 1)
	assert.Equal(t, "regularization.decided", (<-charlie).Name)
	assert.Empty(t, ethan)

	assert.Equal(t, 1, hub.SubscriberCount("EMP003"))
	closeCharlie()
	assert.Equal(t, 0, hub.SubscriberCount("EMP003"))

	_, open := <-charlie
	assert.False(t, open)

	// Publishing with no subscribers is a no-op.
	hub.Publish("EMP003", Event{Name: "ignored"})
}

func TestHub_FullBufferDropsEvents(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("EMP003")
	defer cleanup()

	for i := 0; i < hub.bufferSize+5; i++ {
		hub.Publish("EMP003", Event{Name: "tick", Data: i})
	}
	assert.Len(t, ch, hub.bufferSize)
}

func TestEvent_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	_, err := Event{Name: "regularization.decided", Data: map[string]string{"status": "Approved"}}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "event: regularization.decided\ndata: {\"status\":\"Approved\"}\n\n", buf.String())

	_, err = Event{Name: "bad", Data: func() {}}.WriteTo(&buf)
	assert.Error(t, err)
}

func TestHub_CloseEndsStreams(t *testing.T) {
	hub := NewHub()
	first, cleanupFirst := hub.Subscribe("EMP003")
	second, cleanupSecond := hub.Subscribe("EMP005")

	hub.Close()

	_, open := <-first
	assert.False(t, open)
	_, open = <-second
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount("EMP003"))

	assert.NotPanics(t, func() {
		cleanupFirst()
		cleanupSecond()
	})
}
