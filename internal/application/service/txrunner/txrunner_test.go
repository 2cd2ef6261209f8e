package txrunner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogsite-service/internal/custom_errors"
	ports "blogsite-service/internal/domain/ports/output"
	"blogsite-service/internal/infrastructure/logger"
	uow_mock "blogsite-service/mocks/uow"
)

func TestRun(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name    string
		mocks   func(uow *uow_mock.UnitOfWork, tx *uow_mock.Transaction)
		fnErr   error
		want    int
		wantErr error
	}{
		{
			name: "commits on success",
			mocks: func(uow *uow_mock.UnitOfWork, tx *uow_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			want: 42,
		},
		{
			name: "rolls back when fn fails",
			mocks: func(uow *uow_mock.UnitOfWork, tx *uow_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			fnErr:   custom_errors.ErrPostNotFound,
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name: "begin failure",
			mocks: func(uow *uow_mock.UnitOfWork, tx *uow_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(nil, errors.New("pool exhausted"))
			},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "commit failure rolls back",
			mocks: func(uow *uow_mock.UnitOfWork, tx *uow_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("Commit", mock.Anything).Return(errors.New("serialization failure"))
				tx.On("Rollback", mock.Anything).Return(errors.New("tx is closed"))
			},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := uow_mock.NewUnitOfWork(t)
			tx := uow_mock.NewTransaction(t)
			tt.mocks(uow, tx)

			got, err := Run(context.Background(), uow, log, func(ports.Transaction) (int, error) {
				if tt.fnErr != nil {
					return 0, tt.fnErr
				}
				return 42, nil
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
