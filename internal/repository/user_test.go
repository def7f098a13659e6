package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"fitlog/internal/cache"
	"fitlog/internal/models"
	"fitlog/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func ptr(v float64) *float64 { return &v }

func newUser(email string) *models.User {
	return &models.User{Name: "Ada", Email: email, PasswordHash: "$2a$12$hash"}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newUser("ada@example.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)
	assert.False(t, byID.ProfileCompleted())

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "$2a$12$hash", byEmail.PasswordHash)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("dup@example.com")))
	err := repo.Create(ctx, newUser("dup@example.com"))

	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeDuplicateEmail))
	assert.Equal(t, "Email already registered.", err.Error())
}

func TestUserRepository_UpdateMetrics(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newUser("metrics@example.com")
	require.NoError(t, repo.Create(ctx, user))

	updated, err := repo.UpdateMetrics(ctx, user.ID, models.BodyMetrics{
		BodyWeightKg:   ptr(82.5),
		HeightCm:       ptr(180),
		MuscleWeightKg: ptr(36),
		FatPercentage:  ptr(18.2),
	})
	require.NoError(t, err)
	assert.True(t, updated.ProfileCompleted())
	assert.InDelta(t, 82.5, *updated.BodyWeightKg, 0.001)
	assert.InDelta(t, 18.2, *updated.FatPercentage, 0.001)

	// Same values again still succeed.
	_, err = repo.UpdateMetrics(ctx, user.ID, models.BodyMetrics{
		BodyWeightKg:   ptr(82.5),
		HeightCm:       ptr(180),
		MuscleWeightKg: ptr(36),
		FatPercentage:  ptr(18.2),
	})
	require.NoError(t, err)

	_, err = repo.UpdateMetrics(ctx, 9999, models.BodyMetrics{})
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestUserRepository_GetByIDUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newUser("cached@example.com")
	require.NoError(t, repo.Create(ctx, user))

	_, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, mr.Exists(cache.UserKey(user.ID)))

	cachedJSON, err := mr.Get(cache.UserKey(user.ID))
	require.NoError(t, err)
	assert.NotContains(t, cachedJSON, "$2a$12$hash")

	// A profile update drops the cached copy so the next read sees new metrics.
	_, err = repo.UpdateMetrics(ctx, user.ID, models.BodyMetrics{
		BodyWeightKg: ptr(70), HeightCm: ptr(170), MuscleWeightKg: ptr(30), FatPercentage: ptr(20),
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.UserKey(user.ID)))

	fresh, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, fresh.ProfileCompleted())
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	users := NewUserRepository(db)
	workouts := NewWorkoutRepository(db)
	ctx := context.Background()

	user := newUser("gone@example.com")
	require.NoError(t, users.Create(ctx, user))
	_, err := workouts.Save(ctx, sampleWorkout(user.ID))
	require.NoError(t, err)
	require.EqualValues(t, 3, testutil.CountRows(t, db, "strength_sets"))

	require.NoError(t, users.Delete(ctx, user.ID))

	assert.Zero(t, testutil.CountRows(t, db, "users"))
	assert.Zero(t, testutil.CountRows(t, db, "workout_sessions"))
	assert.Zero(t, testutil.CountRows(t, db, "strength_sets"))
	assert.Zero(t, testutil.CountRows(t, db, "cardio_entries"))

	err = users.Delete(ctx, user.ID)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestUserRepository_GetByEmail_StorageError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`)).
		WithArgs("a@example.com", 1).
		WillReturnError(errors.New("connection reset"))

	user, err := repo.GetByEmail(context.Background(), "a@example.com")
	assert.Nil(t, user)
	assert.True(t, models.HasCode(err, models.CodeStorage))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_PostgresUniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), newUser("a@example.com"))
	assert.True(t, models.HasCode(err, models.CodeDuplicateEmail))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil", nil, false},
		{"Translated", gorm.ErrDuplicatedKey, true},
		{"Postgres", &pgconn.PgError{Code: "23505"}, true},
		{"Postgres other", &pgconn.PgError{Code: "23503"}, false},
		{"MySQL", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"MySQL other", &mysql.MySQLError{Number: 1213}, false},
		{"SQLite", errors.New("UNIQUE constraint failed: users.email"), true},
		{"Other", errors.New("disk I/O error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintError(tt.err))
		})
	}
}
