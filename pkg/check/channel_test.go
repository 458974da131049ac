package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReady(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 42

	v, err := Ready(ch)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// Drained channel blocks again.
	_, err = Ready(ch)
	require.Error(t, err)
	assert.Contains(
		t, err.Error(), " cause: `receive would block`",
	)
}

func TestReadyClosedChannel(t *testing.T) {
	ch := make(chan int)
	close(ch)

	v, err := Ready(ch)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestPending(t *testing.T) {
	empty := make(chan string)
	assert.NoError(t, Pending(empty))

	buffered := make(chan string, 1)
	buffered <- "surprise"
	err := Pending(buffered)
	require.Error(t, err)
	assert.Contains(
		t, err.Error(), " received debug: `\"surprise\"`",
	)
}

func TestPendingClosedChannel(t *testing.T) {
	ch := make(chan int)
	close(ch)

	err := Pending(ch)
	require.Error(t, err)
	assert.Contains(
		t, err.Error(), " cause: `channel is closed`",
	)
}
