//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationWriteQueries struct {
	mock.Mock
}

func (m *MockNotificationWriteQueries) CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockNotificationWriteQueries) ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.NotificationJobs), args.Error(1)
}

func (m *MockNotificationWriteQueries) MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockNotificationWriteQueries) MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	runAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	payload := []byte(`{"booking_id":"x"}`)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockNotificationWriteQueries)
			repo := NewNotificationRepository(mockQueries, nil)
			ctx := context.Background()
			mockQueries.On("CreateNotificationJob", ctx, nil, sqlc.CreateNotificationJobParams{
				Kind:    "booking.created",
				Topic:   "booking.created",
				Payload: payload,
				RunAt:   pgconv.TimeToPgtype(runAt),
				Status:  "pending",
			}).Return(tt.mockError)

			err := repo.CreateJob(ctx, nil, "booking.created", "booking.created", payload, runAt)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	row := sqlc.NotificationJobs{
		ID:       uuid.New(),
		Kind:     "booking.cancelled",
		Topic:    "booking.cancelled",
		Payload:  []byte(`{}`),
		RunAt:    pgconv.TimeToPgtype(now.Add(-time.Minute)),
		Attempts: 2,
		Status:   "pending",
	}

	mockQueries := new(MockNotificationWriteQueries)
	repo := NewNotificationRepository(mockQueries, nil)
	ctx := context.Background()
	mockQueries.On("ClaimDueNotificationJobs", ctx, nil, sqlc.ClaimDueNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: 50,
	}).Return([]sqlc.NotificationJobs{row}, nil)

	jobs, err := repo.ClaimDue(ctx, nil, now, 50)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, row.ID, jobs[0].ID)
	assert.Equal(t, int32(2), jobs[0].Attempts)
	assert.Equal(t, now.Add(-time.Minute), jobs[0].RunAt)
}

func TestNotificationRepository_MarkFailed(t *testing.T) {
	id := uuid.New()
	retryAt := time.Date(2025, 6, 1, 10, 5, 0, 0, time.UTC)

	mockQueries := new(MockNotificationWriteQueries)
	repo := NewNotificationRepository(mockQueries, nil)
	ctx := context.Background()
	mockQueries.On("MarkNotificationJobFailed", ctx, nil, sqlc.MarkNotificationJobFailedParams{
		LastError:   pgconv.StringToPgtype("broker unavailable"),
		MaxAttempts: 5,
		RetryAt:     pgconv.TimeToPgtype(retryAt),
		ID:          id,
	}).Return(nil)
	mockQueries.On("MarkNotificationJobSent", ctx, nil, id).Return(assert.AnError)

	require.NoError(t, repo.MarkFailed(ctx, nil, id, "broker unavailable", 5, retryAt))
	assert.Error(t, repo.MarkSent(ctx, nil, id))
	mockQueries.AssertExpectations(t)
}
