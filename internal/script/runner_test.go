package script

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/slink/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelError,
		Output: io.Discard,
	})
}

func TestRunner_Run(t *testing.T) {
	s := &Script{
		Name:    "walkthrough",
		Initial: []int{10, 20, 30, 40, 50},
		Steps: []Step{
			{Op: OpRemoveValue, Value: 30},
			{Op: OpRemoveValue, Value: 10},
			{Op: OpRemoveValue, Value: 50},
			{Op: OpLength},
		},
	}

	result, err := NewRunner(testLogger()).Run(context.Background(), s)
	require.NoError(t, err)

	require.Len(t, result.Steps, 4)
	assert.Equal(t, OutcomeOK, result.Steps[0].Outcome)
	assert.Equal(t, "10 -> 20 -> 40 -> 50 -> nil", result.Steps[0].List)
	assert.Equal(t, "20 -> 40 -> 50 -> nil", result.Steps[1].List)
	assert.Equal(t, "20 -> 40 -> nil", result.Steps[2].List)
	assert.Equal(t, "length 2", result.Steps[3].Outcome)

	assert.Equal(t, []int{20, 40}, result.Final.Values())
	assert.Empty(t, result.Errors)
}

func TestRunner_Inserts(t *testing.T) {
	s := &Script{
		Steps: []Step{
			{Op: OpInsertHead, Value: 10},
			{Op: OpInsertHead, Value: 5},
			{Op: OpInsertTail, Value: 20},
			{Op: OpInsertAfter, After: 10, Value: 15},
			{Op: OpInsertAt, Position: 1, Value: 7},
			{Op: OpInsertSorted, Value: 1},
		},
	}

	result, err := NewRunner(testLogger()).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 5, 7, 10, 15, 20}, result.Final.Values())
	assert.Empty(t, result.Errors)
}

func TestRunner_FailedStepsAreOutcomesNotFatal(t *testing.T) {
	s := &Script{
		Initial: []int{1, 2, 3},
		Steps: []Step{
			{Op: OpRemoveValue, Value: 99},
			{Op: OpInsertAt, Position: 42, Value: 0},
			{Op: OpInsertAfter, After: 99, Value: 0},
			{Op: OpRemoveAt, Position: 9},
			{Op: OpFind, Value: 2},
		},
	}

	result, err := NewRunner(testLogger()).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNotFound, result.Steps[0].Outcome)
	assert.Equal(t, OutcomeOutOfBounds, result.Steps[1].Outcome)
	assert.Equal(t, OutcomeNotFound, result.Steps[2].Outcome)
	assert.Equal(t, OutcomeOutOfBounds, result.Steps[3].Outcome)
	assert.Equal(t, OutcomeOK, result.Steps[4].Outcome)

	// The list never changed
	assert.Equal(t, []int{1, 2, 3}, result.Final.Values())
	assert.Len(t, result.Errors, 4)
}

func TestRunner_RemoveAt(t *testing.T) {
	t.Run("non-tail", func(t *testing.T) {
		s := &Script{
			Initial: []int{0, 1, 2, 3, 4},
			Steps:   []Step{{Op: OpRemoveAt, Position: 2}},
		}

		result, err := NewRunner(testLogger()).Run(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 3, 4}, result.Final.Values())
	})

	t.Run("tail", func(t *testing.T) {
		s := &Script{
			Initial: []int{0, 1, 2, 3, 4},
			Steps:   []Step{{Op: OpRemoveAt, Position: 4}},
		}

		result, err := NewRunner(testLogger()).Run(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, result.Final.Values())
	})
}

func TestRunner_FirstCommon(t *testing.T) {
	s := &Script{
		Initial: []int{1, 3, 4, 6, 7},
		Steps: []Step{
			{Op: OpFirstCommon, Values: []int{2, 4, 5, 6}},
			{Op: OpFirstCommon, Values: []int{100}},
		},
	}

	result, err := NewRunner(testLogger()).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, "common value 4", result.Steps[0].Outcome)
	assert.Equal(t, OutcomeNotFound, result.Steps[1].Outcome)
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Script{Steps: []Step{{Op: OpPrint}}}

	_, err := NewRunner(testLogger()).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender(t *testing.T) {
	s := &Script{
		Name:    "render",
		Initial: []int{1, 2},
		Steps:   []Step{{Op: OpRemoveValue, Value: 2}},
	}

	result, err := NewRunner(testLogger()).Run(context.Background(), s)
	require.NoError(t, err)

	t.Run("plain", func(t *testing.T) {
		var b strings.Builder
		RenderPlain(&b, result)

		out := b.String()
		assert.Contains(t, out, "Script: render")
		assert.Contains(t, out, "remove-value")
		assert.Contains(t, out, "1 -> nil")
		assert.Contains(t, out, "final: 1 -> nil (length 1, 0 failed steps)")
	})

	t.Run("table", func(t *testing.T) {
		var b strings.Builder
		RenderTable(&b, result)

		out := b.String()
		assert.Contains(t, out, "OUTCOME")
		assert.Contains(t, out, "remove-value")
		assert.Contains(t, out, "final: 1 -> nil")
	})
}
