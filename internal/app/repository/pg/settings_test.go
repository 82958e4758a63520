package pg

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStore_Get(t *testing.T) {
	t.Run("stored value", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT parameter, value FROM transcription_settings WHERE parameter = \$1`).
			WithArgs("aws_host").
			WillReturnRows(sqlmock.NewRows([]string{"parameter", "value"}).AddRow("aws_host", "10.0.0.5"))

		s, err := NewSettingsStore(db).Get(context.Background(), "aws_host")
		require.NoError(t, err)
		require.NotNil(t, s.Value)
		assert.Equal(t, "10.0.0.5", *s.Value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unset returns nil value", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`FROM transcription_settings`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		s, err := NewSettingsStore(db).Get(context.Background(), "missing")
		require.NoError(t, err)
		assert.Equal(t, "missing", s.Parameter)
		assert.Nil(t, s.Value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingsStore_Put(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`ON CONFLICT \(parameter\) DO UPDATE SET value = EXCLUDED.value`).
		WithArgs("aws_host", "").
		WillReturnRows(sqlmock.NewRows([]string{"parameter", "value"}).AddRow("aws_host", ""))

	empty := ""
	s, err := NewSettingsStore(db).Put(context.Background(), "aws_host", &empty)
	require.NoError(t, err)
	require.NotNil(t, s.Value)
	assert.Equal(t, "", *s.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsStore_Put_Null(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`ON CONFLICT \(parameter\) DO UPDATE SET value = EXCLUDED.value`).
		WithArgs("aws_host", nil).
		WillReturnRows(sqlmock.NewRows([]string{"parameter", "value"}).AddRow("aws_host", nil))

	s, err := NewSettingsStore(db).Put(context.Background(), "aws_host", nil)
	require.NoError(t, err)
	assert.Nil(t, s.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsStore_List(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`ORDER BY parameter`).
		WillReturnRows(sqlmock.NewRows([]string{"parameter", "value"}).
			AddRow("aws_host", "h").
			AddRow("model", nil))

	settings, err := NewSettingsStore(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Nil(t, settings[1].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}
