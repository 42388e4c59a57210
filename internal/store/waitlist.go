package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lumioapp/lumio-site-manager/internal/dependency"
	"github.com/lumioapp/lumio-site-manager/internal/entity"
	gerr "github.com/lumioapp/lumio-site-manager/internal/errors"
)

type waitlistStore struct {
	*MYSQLStore
}

// Waitlist returns an object implementing the Waitlist interface
func (ms *MYSQLStore) Waitlist() dependency.Waitlist {
	return &waitlistStore{
		MYSQLStore: ms,
	}
}

// The waitlist tables are bootstrapped at runtime rather than through
// migrations: the intake endpoint must work against a fresh database with
// zero prior setup. CREATE TABLE IF NOT EXISTS is idempotent and
// concurrency-safe at the DDL level.
var waitlistDDL = []string{
	`CREATE TABLE IF NOT EXISTS waitlist_creator (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		instagram VARCHAR(255) DEFAULT NULL,
		tiktok VARCHAR(255) DEFAULT NULL,
		youtube VARCHAR(255) DEFAULT NULL,
		x VARCHAR(255) DEFAULT NULL,
		about TEXT DEFAULT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY waitlist_creator_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS waitlist_business (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT,
		business_name VARCHAR(255) NOT NULL,
		website_url VARCHAR(2048) NOT NULL,
		email VARCHAR(255) NOT NULL,
		creator_description TEXT DEFAULT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY waitlist_business_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureTables creates both waitlist tables if they do not exist. The result
// is memoized per process, a failed attempt is retried on the next call.
func (ms *MYSQLStore) EnsureTables(ctx context.Context) error {
	ms.bootstrap.mu.Lock()
	defer ms.bootstrap.mu.Unlock()
	if ms.bootstrap.done {
		return nil
	}
	for _, ddl := range waitlistDDL {
		if _, err := ms.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to bootstrap waitlist tables: %w", err)
		}
	}
	ms.bootstrap.done = true
	return nil
}

// AddCreator inserts a creator signup. Unselected optional fields are stored
// as NULL. A duplicate email surfaces the storage-level constraint violation,
// no application-side dedupe.
func (ms *MYSQLStore) AddCreator(ctx context.Context, ins *entity.WaitlistCreatorInsert) (int, error) {
	query := `INSERT INTO waitlist_creator
		(first_name, last_name, email, instagram, tiktok, youtube, x, about)
		VALUES (:firstName, :lastName, :email, :instagram, :tiktok, :youtube, :x, :about)`
	params := map[string]any{
		"firstName": ins.FirstName,
		"lastName":  ins.LastName,
		"email":     ins.Email,
		"instagram": nullable(ins.SocialMediaHandles.Instagram),
		"tiktok":    nullable(ins.SocialMediaHandles.TikTok),
		"youtube":   nullable(ins.SocialMediaHandles.YouTube),
		"x":         nullable(ins.SocialMediaHandles.X),
		"about":     nullable(ins.AboutYourself),
	}

	id, err := ExecNamedLastId(ctx, ms.db, query, params)
	if err != nil {
		if IsErrDuplicateEntry(err) {
			return 0, fmt.Errorf("%w: %v", gerr.ErrEmailTaken, err)
		}
		return 0, fmt.Errorf("failed to add creator to waitlist: %w", err)
	}
	return id, nil
}

// AddBusiness inserts a business signup. The website URL is expected to be
// scheme-normalized by the caller before it reaches storage.
func (ms *MYSQLStore) AddBusiness(ctx context.Context, ins *entity.WaitlistBusinessInsert) (int, error) {
	query := `INSERT INTO waitlist_business
		(business_name, website_url, email, creator_description)
		VALUES (:businessName, :websiteUrl, :email, :creatorDescription)`
	params := map[string]any{
		"businessName":       ins.BusinessName,
		"websiteUrl":         ins.WebsiteURL,
		"email":              ins.Email,
		"creatorDescription": nullable(ins.CreatorDescription),
	}

	id, err := ExecNamedLastId(ctx, ms.db, query, params)
	if err != nil {
		if IsErrDuplicateEntry(err) {
			return 0, fmt.Errorf("%w: %v", gerr.ErrEmailTaken, err)
		}
		return 0, fmt.Errorf("failed to add business to waitlist: %w", err)
	}
	return id, nil
}

// GetCreatorByEmail returns the creator signup with the given address, used
// by operator tooling to answer support requests. Absence is gerr.ErrNotFound.
func (ms *MYSQLStore) GetCreatorByEmail(ctx context.Context, email string) (*entity.WaitlistCreator, error) {
	query := `SELECT * FROM waitlist_creator WHERE email = :email`

	creator, err := QueryNamedOne[entity.WaitlistCreator](ctx, ms.db, query, map[string]any{"email": email})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get waitlist creator by email: %w", err)
	}
	return &creator, nil
}

// GetCreatorsPaged returns creator rows newest first.
func (ms *MYSQLStore) GetCreatorsPaged(ctx context.Context, limit, offset int) ([]entity.WaitlistCreator, error) {
	query := `SELECT * FROM waitlist_creator ORDER BY id DESC LIMIT :limit OFFSET :offset`
	params := map[string]any{
		"limit":  limit,
		"offset": offset,
	}

	creators, err := QueryListNamed[entity.WaitlistCreator](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get waitlist creators: %w", err)
	}
	return creators, nil
}

// GetBusinessesPaged returns business rows newest first.
func (ms *MYSQLStore) GetBusinessesPaged(ctx context.Context, limit, offset int) ([]entity.WaitlistBusiness, error) {
	query := `SELECT * FROM waitlist_business ORDER BY id DESC LIMIT :limit OFFSET :offset`
	params := map[string]any{
		"limit":  limit,
		"offset": offset,
	}

	businesses, err := QueryListNamed[entity.WaitlistBusiness](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get waitlist businesses: %w", err)
	}
	return businesses, nil
}

// nullable maps empty strings to SQL NULL so optional fields are stored as
// the table's null marker, not empty string.
func nullable(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
