package wsrpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTracker(t *testing.T) {
	t.Run("starts disconnected with no reason", func(t *testing.T) {
		tracker := newStatusTracker(4)

		status := tracker.status()
		assert.False(t, status.Connected)
		assert.Nil(t, status.Reason)
		assert.NoError(t, status.Err)
	})

	t.Run("a new subscriber immediately receives the latest status", func(t *testing.T) {
		tracker := newStatusTracker(4)
		tracker.set(statusConnected())

		ch, cancel := tracker.subscribe()
		defer cancel()

		status := <-ch
		assert.True(t, status.Connected)
	})

	t.Run("transitions reach existing subscribers in order", func(t *testing.T) {
		tracker := newStatusTracker(4)

		ch, cancel := tracker.subscribe()
		defer cancel()

		<-ch // replayed initial state

		tracker.set(statusConnected())
		tracker.set(statusClosed(1000, "going away"))

		assert.True(t, (<-ch).Connected)

		closed := <-ch
		assert.False(t, closed.Connected)
		require.NotNil(t, closed.Reason)
		assert.Equal(t, 1000, closed.Reason.Code)
		assert.Equal(t, "going away", closed.Reason.Text)
	})

	t.Run("a transport failure carries the error", func(t *testing.T) {
		tracker := newStatusTracker(4)

		cause := errors.New("connection reset")
		tracker.set(statusFailed(cause))

		status := tracker.status()
		assert.False(t, status.Connected)
		assert.ErrorIs(t, status.Err, cause)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "connected", statusConnected().String())
	assert.Equal(t, "disconnected", Status{}.String())
	assert.Equal(t, "disconnected (code 1006: abnormal closure)", statusClosed(1006, "abnormal closure").String())
	assert.Equal(t, "disconnected (boom)", statusFailed(errors.New("boom")).String())
}
