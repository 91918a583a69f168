package wsrpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_Publish(t *testing.T) {
	t.Run("every subscriber sees every value", func(t *testing.T) {
		s := newStream[int](4)

		first, cancelFirst := s.subscribe()
		defer cancelFirst()

		second, cancelSecond := s.subscribe()
		defer cancelSecond()

		s.publish(1)
		s.publish(2)

		assert.Equal(t, 1, <-first)
		assert.Equal(t, 2, <-first)
		assert.Equal(t, 1, <-second)
		assert.Equal(t, 2, <-second)
	})

	t.Run("a full subscriber drops its oldest value instead of blocking", func(t *testing.T) {
		s := newStream[int](2)

		ch, cancel := s.subscribe()
		defer cancel()

		s.publish(1)
		s.publish(2)
		s.publish(3) // evicts 1

		assert.Equal(t, 2, <-ch)
		assert.Equal(t, 3, <-ch)
	})

	t.Run("publishing with no subscribers is a no-op", func(t *testing.T) {
		s := newStream[int](2)

		assert.NotPanics(t, func() { s.publish(1) })
	})
}

func TestStream_Subscribe(t *testing.T) {
	t.Run("cancel stops further delivery", func(t *testing.T) {
		s := newStream[int](2)

		ch, cancel := s.subscribe()

		s.publish(1)
		cancel()
		s.publish(2)

		assert.Equal(t, 1, <-ch)

		select {
		case v := <-ch:
			t.Fatalf("received %d after cancel", v)
		default:
		}
	})

	t.Run("replay values arrive before anything published later", func(t *testing.T) {
		s := newStream[int](2)

		ch, cancel := s.subscribeWith(10, 20)
		defer cancel()

		s.publish(30)

		assert.Equal(t, 10, <-ch)
		assert.Equal(t, 20, <-ch)
		assert.Equal(t, 30, <-ch)
	})

	t.Run("a zero buffer falls back to the default", func(t *testing.T) {
		s := newStream[int](0)

		require.Equal(t, defaultStreamBuffer, s.buffer)
	})
}
