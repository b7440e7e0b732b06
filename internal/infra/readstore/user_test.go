//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestUserReadStore_FindByID(t *testing.T) {
	ub := builder.NewUserBuilder()
	testUser := ub.BuildInfra()

	tests := []struct {
		name       string
		mockReturn sqlc.Users
		mockError  error
		wantUser   bool
		wantKind   infra.RepositoryErrorKind
		wantError  bool
	}{
		{
			name:       "success",
			mockReturn: testUser,
			wantUser:   true,
		},
		{
			name:       "user not found",
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantKind:   infra.KindNotFound,
			wantError:  true,
		},
		{
			name:       "database error",
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			store := NewUserReadStore(mockQueries)
			ctx := context.Background()

			mockQueries.On("GetUserByID", ctx, nil, testUser.ID).Return(tt.mockReturn, tt.mockError)

			user, err := store.FindByID(ctx, nil, testUser.ID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, ub.BuildSnapshot(), user)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
