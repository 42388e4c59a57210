package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitlistSubmission_UnmarshalCreator(t *testing.T) {
	body := `{
		"userType": "creator",
		"data": {
			"firstName": "Rhea",
			"lastName": "Olsen",
			"email": "rhea@example.com",
			"socialMediaHandles": {"instagram": "@rhea.makes", "youtube": "@rheamakes"},
			"aboutYourself": "Small-space woodworking."
		}
	}`

	var s WaitlistSubmission
	require.NoError(t, json.Unmarshal([]byte(body), &s))
	require.Equal(t, UserTypeCreator, s.UserType)
	require.NotNil(t, s.Creator)
	assert.Nil(t, s.Business)

	assert.Equal(t, "Rhea", s.Creator.FirstName)
	assert.Equal(t, "@rhea.makes", s.Creator.SocialMediaHandles.Instagram)
	assert.NoError(t, s.Validate())
	assert.Equal(t, "rhea@example.com", s.ContactEmail())
}

func TestWaitlistSubmission_UnmarshalBusiness(t *testing.T) {
	body := `{
		"userType": "business",
		"data": {
			"businessName": "Northwind",
			"websiteUrl": "northwind.example",
			"email": "ops@northwind.example"
		}
	}`

	var s WaitlistSubmission
	require.NoError(t, json.Unmarshal([]byte(body), &s))
	require.Equal(t, UserTypeBusiness, s.UserType)
	require.NotNil(t, s.Business)

	require.NoError(t, s.Validate())
	// validation normalizes the stored URL
	assert.Equal(t, "https://northwind.example", s.Business.WebsiteURL)
}

func TestWaitlistSubmission_InvalidUserType(t *testing.T) {
	var s WaitlistSubmission
	err := json.Unmarshal([]byte(`{"userType": "alien", "data": {"x": 1}}`), &s)
	assert.ErrorIs(t, err, ErrInvalidUserType)
}

func TestWaitlistSubmission_MissingData(t *testing.T) {
	for _, body := range []string{
		`{"userType": "creator"}`,
		`{"userType": "creator", "data": null}`,
	} {
		var s WaitlistSubmission
		err := json.Unmarshal([]byte(body), &s)
		assert.ErrorIs(t, err, ErrMissingFields, "body: %s", body)
	}
}

func TestWaitlistCreatorInsert_Validate(t *testing.T) {
	valid := func() *WaitlistCreatorInsert {
		return &WaitlistCreatorInsert{
			FirstName:          "Rhea",
			LastName:           "Olsen",
			Email:              "rhea@example.com",
			SocialMediaHandles: SocialMediaHandles{TikTok: "@rhea"},
		}
	}
	assert.NoError(t, valid().Validate())

	c := valid()
	c.FirstName = ""
	assert.ErrorIs(t, c.Validate(), ErrMissingFields)

	c = valid()
	c.Email = "not-an-email"
	assert.ErrorIs(t, c.Validate(), ErrMissingFields)

	c = valid()
	c.SocialMediaHandles = SocialMediaHandles{}
	assert.ErrorIs(t, c.Validate(), ErrMissingFields)
}

func TestWaitlistBusinessInsert_Validate(t *testing.T) {
	valid := func() *WaitlistBusinessInsert {
		return &WaitlistBusinessInsert{
			BusinessName: "Northwind",
			WebsiteURL:   "https://northwind.example",
			Email:        "ops@northwind.example",
		}
	}
	assert.NoError(t, valid().Validate())

	b := valid()
	b.WebsiteURL = ""
	assert.ErrorIs(t, b.Validate(), ErrMissingFields)

	b = valid()
	b.Email = "nope"
	assert.ErrorIs(t, b.Validate(), ErrMissingFields)
}

func TestSocialMediaHandles_Empty(t *testing.T) {
	assert.True(t, SocialMediaHandles{}.Empty())
	assert.False(t, SocialMediaHandles{X: "@lumio"}.Empty())
}
