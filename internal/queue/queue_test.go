package queue

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(4)
	msg := Message{ID: "abc", Body: []byte(`{"action":"LEAVE"}`)}
	require.NoError(t, q.Publish(ctx, msg))

	out, err := q.Consume(ctx)
	require.NoError(t, err)

	select {
	case got := <-out:
		assert.Equal(t, msg, got)
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
}

func TestPublishCountsEnqueued(t *testing.T) {
	ctx := context.Background()
	q := NewInMemory(4)

	before := testutil.ToFloat64(submissionsEnqueuedTotal)
	require.NoError(t, q.Publish(ctx, Message{ID: "a"}))
	require.NoError(t, q.Publish(ctx, Message{ID: "b"}))
	assert.Equal(t, before+2, testutil.ToFloat64(submissionsEnqueuedTotal))
}

func TestInMemoryPublishCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := NewInMemory(0)
	err := q.Publish(ctx, Message{ID: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSerializeRoundTrip(t *testing.T) {
	msg := Message{ID: "id-1", Body: []byte(`{"a":"b|c"}`)}
	got := deserialize(serialize(msg))
	assert.Equal(t, msg, got)
}

func TestDeserializeWithoutID(t *testing.T) {
	got := deserialize("raw-body")
	assert.Empty(t, got.ID)
	assert.Equal(t, []byte("raw-body"), got.Body)
}
