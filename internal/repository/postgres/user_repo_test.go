package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"eventledger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			user: domain.NewUser("alice", "hunter2", "Alice"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "hunter2", "Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		{
			name: "unique violation returns ErrDuplicateUsername",
			user: domain.NewUser("alice", "hunter2", "Alice"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateUsername,
		},
		{
			name: "db error",
			user: domain.NewUser("alice", "hunter2", "Alice"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.Create(ctx, tt.user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, tt.user.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.User
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			id:   3,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, username, password, name`).
					WithArgs(int64(3)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "name"}).
						AddRow(int64(3), "bob", "secret", "Bob"))
			},
			want: &domain.User{ID: 3, Username: "bob", Password: "secret", Name: "Bob"},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, username, password, name`).
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, username, password, name`).
			WithArgs("carol").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "name"}).
				AddRow(int64(4), "carol", "pw", "Carol"))

		repo := NewUserRepository(db)
		got, err := repo.GetByUsername(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, username, password, name`).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByUsername(ctx, "ghost")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
