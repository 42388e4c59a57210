package store

import (
	"context"
	"fmt"

	"github.com/lumioapp/lumio-site-manager/internal/dependency"
	"github.com/lumioapp/lumio-site-manager/internal/entity"
)

type mailStore struct {
	*MYSQLStore
}

// Mail returns an object implementing the Mail interface
func (ms *MYSQLStore) Mail() dependency.Mail {
	return &mailStore{
		MYSQLStore: ms,
	}
}

// AddMail inserts an outbox row before the first delivery attempt and
// returns its id.
func (ms *MYSQLStore) AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error) {
	query := `INSERT INTO mail_outbox (from_email, from_name, to_email, subject, html)
		VALUES (:fromEmail, :fromName, :toEmail, :subject, :html)`
	params := map[string]any{
		"fromEmail": ser.FromEmail,
		"fromName":  ser.FromName,
		"toEmail":   ser.ToEmail,
		"subject":   ser.Subject,
		"html":      ser.Html,
	}

	id, err := ExecNamedLastId(ctx, ms.db, query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to add mail: %w", err)
	}
	return id, nil
}

// GetAllUnsent returns outbox rows that have not been delivered yet. Rows
// that already recorded a delivery error are included only when withError
// is set.
func (ms *MYSQLStore) GetAllUnsent(ctx context.Context, withError bool) ([]entity.SendEmailRequest, error) {
	query := `SELECT * FROM mail_outbox WHERE sent = 0`
	if !withError {
		query += ` AND error_msg IS NULL`
	}
	query += ` ORDER BY id ASC`

	mails, err := QueryListNamed[entity.SendEmailRequest](ctx, ms.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to get unsent mails: %w", err)
	}
	return mails, nil
}

// UpdateSent marks an outbox row as delivered.
func (ms *MYSQLStore) UpdateSent(ctx context.Context, id int) error {
	query := `UPDATE mail_outbox SET sent = 1, sent_at = NOW(), error_msg = NULL WHERE id = :id`
	if err := ExecNamed(ctx, ms.db, query, map[string]any{"id": id}); err != nil {
		return fmt.Errorf("failed to update sent mail: %w", err)
	}
	return nil
}

// AddError records the last delivery error of an outbox row.
func (ms *MYSQLStore) AddError(ctx context.Context, id int, errMsg string) error {
	query := `UPDATE mail_outbox SET error_msg = :errMsg WHERE id = :id`
	if err := ExecNamed(ctx, ms.db, query, map[string]any{"id": id, "errMsg": errMsg}); err != nil {
		return fmt.Errorf("failed to add mail error: %w", err)
	}
	return nil
}
