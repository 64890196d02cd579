package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/citylib/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("book and member ids", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithMember(logging.WithBook(ctx, 101), 201)

		logging.FromContext(ctx).Info().Msg("issued")
		tl.AssertContains(t, `"book_id":101`)
		tl.AssertContains(t, `"member_id":201`)
	})

	t.Run("operation", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithOperation(logging.WithLogger(context.Background(), tl.Logger), "return")

		logging.FromContext(ctx).Info().Msg("returned")
		tl.AssertContains(t, `"operation":"return"`)
	})

	t.Run("tags do not leak into the parent context", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		parent := logging.WithLogger(context.Background(), tl.Logger)
		_ = logging.WithBook(parent, 101)

		logging.FromContext(parent).Info().Msg("plain")
		assert.NotContains(t, tl.Output(), "book_id")
	})

	t.Run("nil logger and missing logger fall back to default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Equal(t, logging.Default(), logging.FromContext(ctx))
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is part of the contract
		assert.Equal(t, logging.Default(), logging.FromContext(nil))
	})
}
