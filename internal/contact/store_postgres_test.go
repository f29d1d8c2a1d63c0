// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/contact"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

type recordingExecer struct {
	sql       string
	arguments []any
	tag       string
	err       error
}

func (execer *recordingExecer) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	execer.sql = sql
	execer.arguments = arguments
	return pgconn.NewCommandTag(execer.tag), execer.err
}

func TestPostgresMessageRepository_Create(t *testing.T) {
	execer := &recordingExecer{tag: "INSERT 0 1"}
	repository := contact.NewPostgresMessageRepository(execer)
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := repository.Create(context.Background(), &contact.Message{
		ID:        "0190a0f4-0000-7000-8000-000000000001",
		Form:      validForm(),
		Status:    contact.StatusPending,
		CreatedAt: createdAt,
	})

	require.NoError(t, err)
	assert.Contains(t, execer.sql, "INSERT INTO contact.message (id,name,email,message,status,createdat)")
	assert.Contains(t, execer.sql, "VALUES ($1,$2,$3,$4,$5,$6)")
	assert.Equal(t, []any{
		"0190a0f4-0000-7000-8000-000000000001", "Ann Lee", "ann@example.com", "Hello there", "pending", createdAt,
	}, execer.arguments)
}

func TestPostgresMessageRepository_MarkRelayed(t *testing.T) {
	execer := &recordingExecer{tag: "UPDATE 1"}
	repository := contact.NewPostgresMessageRepository(execer)
	status := http.StatusOK
	at := time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC)

	err := repository.MarkRelayed(context.Background(), "id-1", contact.StatusSent, &status, at)

	require.NoError(t, err)
	assert.Contains(t, execer.sql, "UPDATE contact.message SET status = $1, relaystatus = $2, relayedat = $3 WHERE id = $4")
	assert.Equal(t, []any{"sent", &status, at, "id-1"}, execer.arguments)
}

func TestPostgresMessageRepository_MarkRelayedMissingRow(t *testing.T) {
	repository := contact.NewPostgresMessageRepository(&recordingExecer{tag: "UPDATE 0"})

	err := repository.MarkRelayed(context.Background(), "missing", contact.StatusFailed, nil, time.Now())

	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

func TestPostgresMessageRepository_ExecFailure(t *testing.T) {
	repository := contact.NewPostgresMessageRepository(&recordingExecer{err: errors.New("connection reset")})

	err := repository.Create(context.Background(), &contact.Message{ID: "id-1", Form: validForm()})

	assert.Equal(t, http.StatusInternalServerError, apperr.As(err).HTTPStatus)
}
