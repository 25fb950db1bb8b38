//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"lesson-booking/internal/pkg/errs"
	"lesson-booking/internal/usecase/queries"
	"lesson-booking/tests/common/builder"
	queriesmock "lesson-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: passes store order through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		newer := builder.NewOrderBuilder().WithLine("x", 1).BuildView()
		older := builder.NewOrderBuilder().WithLine("y", 2).BuildView()
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().ListNewestFirst(ctx).Return([]*queries.OrderView{newer, older}, nil)

		got, err := queries.NewOrderQueries(store).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []*queries.OrderView{newer, older}, got)
	})

	t.Run("success: empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().ListNewestFirst(ctx).Return(nil, nil)

		got, err := queries.NewOrderQueries(store).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().ListNewestFirst(ctx).Return(nil, errors.New("timeout"))

		_, err := queries.NewOrderQueries(store).List(ctx)
		assert.ErrorIs(t, err, errs.ErrStore)
	})
}
