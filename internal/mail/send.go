package mail

import (
	"context"
	"fmt"
)

const (
	WaitlistCreator  = "waitlist_creator.gohtml"
	WaitlistBusiness = "waitlist_business.gohtml"
)

var templateSubjects = map[string]string{
	WaitlistCreator:  "You're on the Lumio waitlist",
	WaitlistBusiness: "Lumio: your brand is on the waitlist",
}

type creatorWelcome struct {
	FirstName string
}

type businessWelcome struct {
	BusinessName string
}

// SendCreatorWelcome confirms a creator waitlist signup.
func (m *Mailer) SendCreatorWelcome(ctx context.Context, to, firstName string) error {
	if to == "" {
		return fmt.Errorf("empty recipient")
	}
	ser, err := m.buildRequest(to, WaitlistCreator, creatorWelcome{FirstName: firstName})
	if err != nil {
		return err
	}
	return m.sendWithInsert(ctx, ser)
}

// SendBusinessWelcome confirms a business waitlist signup.
func (m *Mailer) SendBusinessWelcome(ctx context.Context, to, businessName string) error {
	if to == "" {
		return fmt.Errorf("empty recipient")
	}
	ser, err := m.buildRequest(to, WaitlistBusiness, businessWelcome{BusinessName: businessName})
	if err != nil {
		return err
	}
	return m.sendWithInsert(ctx, ser)
}
