package store

import (
	"context"
	"testing"

	"github.com/lumioapp/lumio-site-manager/internal/entity"
	gerr "github.com/lumioapp/lumio-site-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitlist_AddCreator(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ws := db.Waitlist()

	ctx := context.Background()

	ins := &entity.WaitlistCreatorInsert{
		FirstName: "Mira",
		LastName:  "Vale",
		Email:     "mira@vale.studio",
		SocialMediaHandles: entity.SocialMediaHandles{
			Instagram: "@miravale",
		},
	}
	id, err := ws.AddCreator(ctx, ins)
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	creators, err := ws.GetCreatorsPaged(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, creators, 1)

	c := creators[0]
	assert.Equal(t, id, c.Id)
	assert.Equal(t, "Mira", c.FirstName)
	assert.Equal(t, "Vale", c.LastName)
	assert.Equal(t, "mira@vale.studio", c.Email)
	assert.Equal(t, "@miravale", c.Instagram.String)
	// unselected optional fields must be stored as NULL, not empty string
	assert.False(t, c.TikTok.Valid)
	assert.False(t, c.YouTube.Valid)
	assert.False(t, c.X.Valid)
	assert.False(t, c.About.Valid)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestWaitlist_DuplicateCreatorEmail(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ws := db.Waitlist()

	ctx := context.Background()

	ins := &entity.WaitlistCreatorInsert{
		FirstName:          "Mira",
		LastName:           "Vale",
		Email:              "mira@vale.studio",
		SocialMediaHandles: entity.SocialMediaHandles{X: "@mira"},
	}
	_, err := ws.AddCreator(ctx, ins)
	require.NoError(t, err)

	// second insert with the same email must fail at the storage layer
	_, err = ws.AddCreator(ctx, ins)
	require.Error(t, err)
	assert.ErrorIs(t, err, gerr.ErrEmailTaken)

	creators, err := ws.GetCreatorsPaged(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, creators, 1)
}

func TestWaitlist_AddBusiness(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ws := db.Waitlist()

	ctx := context.Background()

	ins := &entity.WaitlistBusinessInsert{
		BusinessName: "Northwind Apparel",
		WebsiteURL:   "northwind.example",
		Email:        "hello@northwind.example",
	}
	// validation normalizes the scheme before the insert
	require.NoError(t, ins.Validate())

	id, err := ws.AddBusiness(ctx, ins)
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	businesses, err := ws.GetBusinessesPaged(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, businesses, 1)

	b := businesses[0]
	assert.Equal(t, "https://northwind.example", b.WebsiteURL)
	assert.False(t, b.CreatorDescription.Valid)
}

func TestWaitlist_GetCreatorByEmail(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ws := db.Waitlist()

	ctx := context.Background()

	id, err := ws.AddCreator(ctx, &entity.WaitlistCreatorInsert{
		FirstName:          "Mira",
		LastName:           "Vale",
		Email:              "mira@vale.studio",
		SocialMediaHandles: entity.SocialMediaHandles{Instagram: "@miravale"},
	})
	require.NoError(t, err)

	c, err := ws.GetCreatorByEmail(ctx, "mira@vale.studio")
	require.NoError(t, err)
	assert.Equal(t, id, c.Id)
	assert.Equal(t, "Mira", c.FirstName)

	_, err = ws.GetCreatorByEmail(ctx, "nobody@vale.studio")
	assert.ErrorIs(t, err, gerr.ErrNotFound)
}

func TestWaitlist_SameEmailAcrossTables(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	ws := db.Waitlist()

	ctx := context.Background()

	// uniqueness is per table, the same address may register as both a
	// creator and a business
	_, err := ws.AddCreator(ctx, &entity.WaitlistCreatorInsert{
		FirstName:          "Sam",
		LastName:           "Ode",
		Email:              "sam@ode.agency",
		SocialMediaHandles: entity.SocialMediaHandles{YouTube: "@samode"},
	})
	require.NoError(t, err)

	_, err = ws.AddBusiness(ctx, &entity.WaitlistBusinessInsert{
		BusinessName: "Ode Agency",
		WebsiteURL:   "https://ode.agency",
		Email:        "sam@ode.agency",
	})
	require.NoError(t, err)
}

func TestWaitlist_EnsureTablesIdempotent(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.EnsureTables(ctx))
	require.NoError(t, db.EnsureTables(ctx))
}
