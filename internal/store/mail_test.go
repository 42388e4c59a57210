package store

import (
	"context"
	"testing"

	"github.com/lumioapp/lumio-site-manager/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMail_OutboxLifecycle(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	mails := db.Mail()

	ctx := context.Background()

	id, err := mails.AddMail(ctx, &entity.SendEmailRequest{
		FromEmail: "hello@lumio.app",
		FromName:  "Lumio",
		ToEmail:   "mira@vale.studio",
		Subject:   "You're on the list",
		Html:      "<p>Welcome</p>",
	})
	require.NoError(t, err)

	unsent, err := mails.GetAllUnsent(ctx, false)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, id, unsent[0].Id)

	// an errored row drops out of the default retry set
	require.NoError(t, mails.AddError(ctx, id, "451 try later"))
	unsent, err = mails.GetAllUnsent(ctx, false)
	require.NoError(t, err)
	assert.Len(t, unsent, 0)

	unsent, err = mails.GetAllUnsent(ctx, true)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, "451 try later", unsent[0].ErrMsg.String)

	require.NoError(t, mails.UpdateSent(ctx, id))
	unsent, err = mails.GetAllUnsent(ctx, true)
	require.NoError(t, err)
	assert.Len(t, unsent, 0)
}
