//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"lesson-booking/internal/infra"
	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/infra/readstore"
	"lesson-booking/internal/pkg/pgconv"
	"lesson-booking/internal/usecase/queries"
	"lesson-booking/tests/common/builder"
	readstoremock "lesson-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func lessonRow(id, topic string, price float64, space int) pgq.Lesson {
	return builder.NewLessonBuilder().With(func(b *builder.LessonBuilder) {
		b.ID, b.Topic, b.Price, b.Space = id, topic, price, space
	}).BuildInfra()
}

func TestLessonReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows mapped in store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockLessonReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListLessons(ctx, mockDB).Return([]pgq.Lesson{
			lessonRow("e", "English", 45.5, 100),
			lessonRow("m", "Maths", 100, 5),
		}, nil)

		views, err := readstore.NewLessonReadStore(mockQueries, mockDB).List(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, &queries.LessonView{ID: "e", Topic: "English", Location: "Hendon", Price: 45.5, Space: 100}, views[0])
		assert.Equal(t, "m", views[1].ID)
	})

	t.Run("success: empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockLessonReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListLessons(ctx, mockDB).Return(nil, nil)

		views, err := readstore.NewLessonReadStore(mockQueries, mockDB).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("error: db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockLessonReadQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListLessons(ctx, mockDB).Return(nil, errors.New("connection refused"))

		_, err := readstore.NewLessonReadStore(mockQueries, mockDB).List(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestLessonReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        pgq.Lesson
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", row: lessonRow("m", "Maths", 100, 5)},
		{name: "error: not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: db failure", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockLessonReadQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().GetLessonByID(ctx, mockDB, "m").Return(tc.row, tc.queryErr)

			view, err := readstore.NewLessonReadStore(mockQueries, mockDB).FindByID(ctx, "m")

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Maths", view.Topic)
		})
	}
}

func TestLessonReadStore_Search(t *testing.T) {
	ctx := context.Background()
	ninety := 90.0

	testCases := []struct {
		name        string
		criteria    queries.SearchCriteria
		wantPattern string
		wantNumber  *float64
	}{
		{name: "text only", criteria: queries.SearchCriteria{Text: "Hendon"}, wantPattern: "%Hendon%"},
		{name: "numeric", criteria: queries.SearchCriteria{Text: "90", Number: &ninety}, wantPattern: "%90%", wantNumber: &ninety},
		{name: "wildcards are escaped", criteria: queries.SearchCriteria{Text: `100%_\`}, wantPattern: `%100\%\_\\%`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockLessonReadQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().SearchLessons(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgq.DBTX, arg pgq.SearchLessonsParams) ([]pgq.Lesson, error) {
					assert.Equal(t, tc.wantPattern, arg.Pattern)
					if tc.wantNumber == nil {
						assert.False(t, arg.Number.Valid, "number must be NULL")
					} else {
						got, err := pgconv.Float64FromNumeric(arg.Number)
						require.NoError(t, err)
						assert.InDelta(t, *tc.wantNumber, got, 0)
					}
					return []pgq.Lesson{lessonRow("s", "Science", 90, 3)}, nil
				})

			views, err := readstore.NewLessonReadStore(mockQueries, mockDB).Search(ctx, tc.criteria)
			require.NoError(t, err)
			assert.Len(t, views, 1)
		})
	}
}

func TestLessonReadStore_LessonsByIDs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockLessonReadQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().GetLessonsByIDs(ctx, mockDB, []string{"a", "b"}).
		Return([]pgq.Lesson{lessonRow("a", "Art", 10, 2)}, nil)

	snaps, err := readstore.NewLessonReadStore(mockQueries, mockDB).LessonsByIDs(ctx, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "a", snaps[0].ID)
	assert.Equal(t, 2, snaps[0].Space)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
