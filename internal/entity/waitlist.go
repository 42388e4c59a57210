package entity

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lumioapp/lumio-site-manager/internal/validate"
)

// UserType discriminates the two waitlist submission shapes.
type UserType string

const (
	UserTypeCreator  UserType = "creator"
	UserTypeBusiness UserType = "business"
)

var (
	ErrInvalidUserType = errors.New("invalid user type")
	ErrMissingFields   = errors.New("missing required fields")
)

// SocialMediaHandles holds the optional per-platform handles of a creator.
// UI-level policy requires at least one to be present, the storage layer
// accepts any combination.
type SocialMediaHandles struct {
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	X         string `json:"x,omitempty"`
}

func (h SocialMediaHandles) Empty() bool {
	return h.Instagram == "" && h.TikTok == "" && h.YouTube == "" && h.X == ""
}

// WaitlistCreatorInsert is the payload of a creator signup.
type WaitlistCreatorInsert struct {
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Email              string             `json:"email"`
	SocialMediaHandles SocialMediaHandles `json:"socialMediaHandles"`
	AboutYourself      string             `json:"aboutYourself,omitempty"`
}

func (c *WaitlistCreatorInsert) Validate() error {
	if c.FirstName == "" || c.LastName == "" || c.Email == "" {
		return ErrMissingFields
	}
	if !validate.IsValidEmail(c.Email) {
		return fmt.Errorf("%w: malformed email", ErrMissingFields)
	}
	if c.SocialMediaHandles.Empty() {
		return fmt.Errorf("%w: at least one social handle required", ErrMissingFields)
	}
	return nil
}

// WaitlistCreator is a persisted creator row. Rows are insert-only.
type WaitlistCreator struct {
	Id        int            `db:"id"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Email     string         `db:"email"`
	Instagram sql.NullString `db:"instagram"`
	TikTok    sql.NullString `db:"tiktok"`
	YouTube   sql.NullString `db:"youtube"`
	X         sql.NullString `db:"x"`
	About     sql.NullString `db:"about"`
	CreatedAt time.Time      `db:"created_at"`
}

// WaitlistBusinessInsert is the payload of a business signup.
type WaitlistBusinessInsert struct {
	BusinessName       string `json:"businessName"`
	WebsiteURL         string `json:"websiteUrl"`
	Email              string `json:"email"`
	CreatorDescription string `json:"creatorDescription,omitempty"`
}

// Validate checks required fields and normalizes the website URL so the
// stored value always carries a scheme.
func (b *WaitlistBusinessInsert) Validate() error {
	if b.BusinessName == "" || b.WebsiteURL == "" || b.Email == "" {
		return ErrMissingFields
	}
	if !validate.IsValidEmail(b.Email) {
		return fmt.Errorf("%w: malformed email", ErrMissingFields)
	}
	b.WebsiteURL = validate.NormalizeWebsiteURL(b.WebsiteURL)
	return nil
}

// WaitlistBusiness is a persisted business row. Rows are insert-only.
type WaitlistBusiness struct {
	Id                 int            `db:"id"`
	BusinessName       string         `db:"business_name"`
	WebsiteURL         string         `db:"website_url"`
	Email              string         `db:"email"`
	CreatorDescription sql.NullString `db:"creator_description"`
	CreatedAt          time.Time      `db:"created_at"`
}

// WaitlistSubmission is the tagged union decoded from the submit-waitlist
// request body. Exactly one of Creator or Business is set after a successful
// UnmarshalJSON, matching UserType.
type WaitlistSubmission struct {
	UserType UserType
	Creator  *WaitlistCreatorInsert
	Business *WaitlistBusinessInsert
}

func (s *WaitlistSubmission) UnmarshalJSON(data []byte) error {
	var raw struct {
		Data     json.RawMessage `json:"data"`
		UserType UserType        `json:"userType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		return ErrMissingFields
	}

	switch raw.UserType {
	case UserTypeCreator:
		c := &WaitlistCreatorInsert{}
		if err := json.Unmarshal(raw.Data, c); err != nil {
			return fmt.Errorf("%w: %v", ErrMissingFields, err)
		}
		s.UserType = UserTypeCreator
		s.Creator = c
	case UserTypeBusiness:
		b := &WaitlistBusinessInsert{}
		if err := json.Unmarshal(raw.Data, b); err != nil {
			return fmt.Errorf("%w: %v", ErrMissingFields, err)
		}
		s.UserType = UserTypeBusiness
		s.Business = b
	default:
		return ErrInvalidUserType
	}
	return nil
}

// Validate runs the shape validation of whichever variant is set.
func (s *WaitlistSubmission) Validate() error {
	switch s.UserType {
	case UserTypeCreator:
		if s.Creator == nil {
			return ErrMissingFields
		}
		return s.Creator.Validate()
	case UserTypeBusiness:
		if s.Business == nil {
			return ErrMissingFields
		}
		return s.Business.Validate()
	default:
		return ErrInvalidUserType
	}
}

// Email returns the contact address of whichever variant is set.
func (s *WaitlistSubmission) ContactEmail() string {
	switch s.UserType {
	case UserTypeCreator:
		if s.Creator != nil {
			return s.Creator.Email
		}
	case UserTypeBusiness:
		if s.Business != nil {
			return s.Business.Email
		}
	}
	return ""
}
