// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/dberr"
)

// Execer is the subset of [pgxpool.Pool] the archive needs.
type Execer interface {
	Exec(context context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresMessageRepository stores messages in contact.message.
type PostgresMessageRepository struct {
	db      Execer
	builder squirrel.StatementBuilderType
}

func NewPostgresMessageRepository(db Execer) *PostgresMessageRepository {
	return &PostgresMessageRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a pending message.
func (repository *PostgresMessageRepository) Create(context context.Context, message *Message) error {
	table := schema.ContactMessage
	query, arguments, err := repository.builder.Insert(table.Table).
		Columns(table.ID, table.Name, table.Email, table.Message, table.Status, table.CreatedAt).
		Values(message.ID, message.Form.Name, message.Form.Email, message.Form.Message, string(message.Status), message.CreatedAt).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "contact_message_insert_build", "Contact message")
	}

	_, err = repository.db.Exec(context, query, arguments...)
	return dberr.Wrap(err, "contact_message_insert", "Contact message")
}

// MarkRelayed updates status, relay status and relay time.
func (repository *PostgresMessageRepository) MarkRelayed(context context.Context, id string, status Status, relayStatus *int, at time.Time) error {
	table := schema.ContactMessage
	query, arguments, err := repository.builder.Update(table.Table).
		Set(table.Status, string(status)).
		Set(table.RelayStatus, relayStatus).
		Set(table.RelayedAt, at).
		Where(squirrel.Eq{table.ID: id}).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "contact_message_update_build", "Contact message")
	}

	tag, err := repository.db.Exec(context, query, arguments...)
	if err != nil {
		return dberr.Wrap(err, "contact_message_update", "Contact message")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "contact_message_update", "Contact message")
	}
	return nil
}
