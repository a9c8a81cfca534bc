package invoicegen

// Notes:
// - The browser itself is exercised via the fake engine elsewhere; here we
//   cover the time budget applied to the whole page interaction.

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRenderTimeout(t *testing.T) {
	t.Parallel()

	t.Run("no deadline uses engine fallback", func(t *testing.T) {
		t.Parallel()

		got, err := renderTimeout(context.Background(), 30*time.Second)
		if err != nil {
			t.Fatalf("renderTimeout() error = %v", err)
		}
		if got != 30*time.Second {
			t.Errorf("renderTimeout() = %v, want 30s", got)
		}
	})

	t.Run("deadline bounds the budget", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		got, err := renderTimeout(ctx, 30*time.Second)
		if err != nil {
			t.Fatalf("renderTimeout() error = %v", err)
		}
		if got <= 0 || got > 5*time.Second {
			t.Errorf("renderTimeout() = %v, want within (0, 5s]", got)
		}
	})

	t.Run("expired deadline short-circuits", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		_, err := renderTimeout(ctx, 30*time.Second)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("renderTimeout() error = %v, want context.DeadlineExceeded", err)
		}
	})
}
