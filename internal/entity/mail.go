package entity

import (
	"database/sql"
	"time"
)

// SendEmailRequest is a row in the mail outbox. Rows are written before the
// first delivery attempt so the worker can retry unsent mail.
type SendEmailRequest struct {
	Id        int            `db:"id"`
	FromEmail string         `db:"from_email"`
	FromName  string         `db:"from_name"`
	ToEmail   string         `db:"to_email"`
	Subject   string         `db:"subject"`
	Html      string         `db:"html"`
	Sent      bool           `db:"sent"`
	SentAt    sql.NullTime   `db:"sent_at"`
	ErrMsg    sql.NullString `db:"error_msg"`
	CreatedAt time.Time      `db:"created_at"`
}
