package chflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("successful receive", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42

		value, ok := Receive(t.Context(), ch)

		assert.True(t, ok)
		assert.Equal(t, 42, value)
	})

	t.Run("context canceled before receive", func(t *testing.T) {
		ch := make(chan int)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		value, ok := Receive(ctx, ch)

		assert.False(t, ok)
		assert.Equal(t, 0, value)
	})

	t.Run("channel closed", func(t *testing.T) {
		ch := make(chan string)
		close(ch)

		value, ok := Receive(t.Context(), ch)

		assert.False(t, ok)
		assert.Equal(t, "", value)
	})
}

func TestSend(t *testing.T) {
	t.Run("successful send", func(t *testing.T) {
		ch := make(chan int, 1)

		ok := Send(t.Context(), ch, 42)

		assert.True(t, ok)
		assert.Equal(t, 42, <-ch)
	})

	t.Run("context canceled before send", func(t *testing.T) {
		ch := make(chan int) // No buffer, will block
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		ok := Send(ctx, ch, 42)

		assert.False(t, ok)

		select {
		case <-ch:
			t.Fatal("Expected no value to be sent")
		default:
		}
	})

	t.Run("concurrent send and receive", func(t *testing.T) {
		ch := make(chan int)
		ctx := t.Context()

		receiveDone := make(chan struct{})
		var receivedValue int
		var receiveOk bool

		go func() {
			receivedValue, receiveOk = Receive(ctx, ch)
			close(receiveDone)
		}()

		sendOk := Send(ctx, ch, 99)
		<-receiveDone

		assert.True(t, sendOk)
		assert.True(t, receiveOk)
		assert.Equal(t, 99, receivedValue)
	})
}
