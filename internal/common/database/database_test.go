// internal/common/database/database_test.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_Commits(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec("UPDATE wallets SET balance = balance + 1")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = WithTx(context.Background(), db, func(tx *sql.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err = WithTx(context.Background(), db, func(tx *sql.Tx) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

type cachedPricing struct {
	ModuleID string `json:"moduleId"`
	Base     int64  `json:"base"`
}

func TestJSONCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	var got cachedPricing
	found, err := GetJSON(ctx, rdb, "module:pricing:energy_efficiency", &got)
	require.NoError(t, err)
	assert.False(t, found)

	want := cachedPricing{ModuleID: "energy_efficiency", Base: 25000}
	require.NoError(t, SetJSON(ctx, rdb, "module:pricing:energy_efficiency", want, time.Minute))

	found, err = GetJSON(ctx, rdb, "module:pricing:energy_efficiency", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	mr.FastForward(2 * time.Minute)
	found, err = GetJSON(ctx, rdb, "module:pricing:energy_efficiency", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_CorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, mr.Set("module:pricing:bad", "{not json"))

	var got cachedPricing
	found, err := GetJSON(context.Background(), rdb, "module:pricing:bad", &got)

	assert.Error(t, err)
	assert.False(t, found)
}
