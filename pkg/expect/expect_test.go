package expect

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchedStartsPass(t *testing.T) {
	tr := New()
	tr.Start("a")
	tr.Start("a")
	tr.Start("b")
	tr.Finish("a")
	tr.Finish("b")
	tr.Finish("a")

	assert.Empty(t, tr.Outstanding())
	require.NoError(t, tr.CheckFulfilled())
}

func TestUnmatchedStartsAreNamed(t *testing.T) {
	tr := New()
	tr.Start("sendTransaction")
	tr.Start("ping")
	tr.Start("ping")
	tr.Finish("ping")
	tr.Start("done")
	tr.Finish("done")

	err := tr.CheckFulfilled()
	require.Error(t, err)

	var unfulfilled *UnfulfilledError
	require.True(t, errors.As(err, &unfulfilled))
	assert.Equal(t, []string{"ping", "sendTransaction"}, unfulfilled.Keys)
	assert.Contains(t, err.Error(), "ping, sendTransaction")

	// State is reset after the check.
	assert.Empty(t, tr.Outstanding())
	require.NoError(t, tr.CheckFulfilled())
}

func TestFinishUnknownKey(t *testing.T) {
	tr := New()
	tr.Finish("never-started")
	require.NoError(t, tr.CheckFulfilled())
}

func TestShouldFulfill(t *testing.T) {
	tr := New()

	out, err := ShouldFulfill(tr, "answer", func() (int, error) {
		assert.Equal(t, []string{"answer"}, tr.Outstanding())
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	boom := errors.New("boom")
	_, err = ShouldFulfill(tr, "failing", func() (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)

	err = tr.CheckFulfilled()
	var unfulfilled *UnfulfilledError
	require.True(t, errors.As(err, &unfulfilled))
	assert.Equal(t, []string{"failing"}, unfulfilled.Keys)

	// CheckFulfilled reset the tracker.
	require.NoError(t, tr.CheckFulfilled())
}

func TestPanicLeavesKeyOutstanding(t *testing.T) {
	tr := New()

	assert.Panics(t, func() {
		_, _ = ShouldFulfill(tr, "panics", func() (int, error) {
			panic("lost")
		})
	})

	err := tr.CheckFulfilled()
	var unfulfilled *UnfulfilledError
	require.True(t, errors.As(err, &unfulfilled))
	assert.Equal(t, []string{"panics"}, unfulfilled.Keys)
}

func TestConcurrentUse(t *testing.T) {
	tr := New()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = ShouldFulfill(tr, "worker", func() (struct{}, error) {
				return struct{}{}, nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, tr.CheckFulfilled())
}
