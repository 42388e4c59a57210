package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lumioapp/lumio-site-manager/internal/entity"
)

type (
	// DB is the subset of sqlx used by the store helpers. Both *sqlx.DB and
	// transaction wrappers satisfy it.
	DB interface {
		sqlx.ExtContext
		GetContext(ctx context.Context, dest any, query string, args ...any) error
		SelectContext(ctx context.Context, dest any, query string, args ...any) error
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
	}

	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	// Waitlist persists creator and business signups. Inserts rely on the
	// per-table unique email constraint as the sole duplicate arbiter.
	Waitlist interface {
		// EnsureTables creates the destination tables if they do not exist.
		// Safe to call concurrently and against a fresh database.
		EnsureTables(ctx context.Context) error
		// AddCreator inserts one creator row and returns the generated id.
		AddCreator(ctx context.Context, ins *entity.WaitlistCreatorInsert) (int, error)
		// AddBusiness inserts one business row and returns the generated id.
		AddBusiness(ctx context.Context, ins *entity.WaitlistBusinessInsert) (int, error)
		// GetCreatorByEmail returns one creator row for operator support
		// lookups, gerr.ErrNotFound when the address is not registered.
		GetCreatorByEmail(ctx context.Context, email string) (*entity.WaitlistCreator, error)
		// GetCreatorsPaged returns creator rows newest first for operator export.
		GetCreatorsPaged(ctx context.Context, limit, offset int) ([]entity.WaitlistCreator, error)
		// GetBusinessesPaged returns business rows newest first for operator export.
		GetBusinessesPaged(ctx context.Context, limit, offset int) ([]entity.WaitlistBusiness, error)
	}

	// Mail is the durable outbox used by the mailer worker.
	Mail interface {
		AddMail(ctx context.Context, ser *entity.SendEmailRequest) (int, error)
		GetAllUnsent(ctx context.Context, withError bool) ([]entity.SendEmailRequest, error)
		UpdateSent(ctx context.Context, id int) error
		AddError(ctx context.Context, id int, errMsg string) error
	}

	// Mailer sends transactional mail for the waitlist flow.
	Mailer interface {
		Start(ctx context.Context) error
		Stop() error
		SendCreatorWelcome(ctx context.Context, to, firstName string) error
		SendBusinessWelcome(ctx context.Context, to, businessName string) error
	}

	// Repository groups the store interfaces behind a single dependency
	// passed into request handlers, no ambient singletons.
	Repository interface {
		ContextStore
		Waitlist() Waitlist
		Mail() Mail
		DB() DB
		InTx() bool
		Now() time.Time
		Ping(ctx context.Context) error
		Close()
	}
)
