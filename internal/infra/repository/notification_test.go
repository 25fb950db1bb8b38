//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lesson-booking/internal/infra"
	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/infra/repository"
	"lesson-booking/internal/usecase/shared"
	repositorymock "lesson-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	payload := []byte(`{"orderId":"o1"}`)

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: job queued"},
		{name: "error: db failure", queryErr: errors.New("disk full"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries, mockDB)

			want := pgq.CreateNotificationJobParams{
				Kind:    shared.NotificationKindOrder,
				Topic:   shared.NotificationTopicPlaced,
				Payload: payload,
				RunAt:   runAt,
				Status:  shared.NotificationStatusQueued,
			}
			mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, want).Return(tc.queryErr)

			err := repo.CreateJob(ctx, shared.NotificationKindOrder, shared.NotificationTopicPlaced, payload, runAt)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNotificationRepository_UpdateJobStatus(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()
	lastErr := "smtp down"

	testCases := []struct {
		name       string
		status     string
		lastError  *string
		wantText   pgtype.Text
		affected   int64
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: sent clears the error", status: shared.NotificationStatusSent, affected: 1},
		{
			name:      "success: requeued keeps the error",
			status:    shared.NotificationStatusQueued,
			lastError: &lastErr,
			wantText:  pgtype.Text{String: lastErr, Valid: true},
			affected:  1,
		},
		{name: "error: job vanished", status: shared.NotificationStatusSent, affected: 0, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().
				UpdateNotificationJobStatus(ctx, mockDB, pgq.UpdateNotificationJobStatusParams{ID: jobID, Status: tc.status, LastError: tc.wantText}).
				Return(tc.affected, nil)

			err := repo.UpdateJobStatus(ctx, jobID, tc.status, tc.lastError)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			assert.NoError(t, err)
		})
	}
}
