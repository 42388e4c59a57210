package mail

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		APIKey:         "SG.test",
		FromEmail:      "hello@lumio.app",
		FromName:       "Lumio",
		WorkerInterval: time.Minute,
	}
}

func TestNew_IncompleteConfig(t *testing.T) {
	_, err := New(&Config{FromEmail: "hello@lumio.app"}, nil)
	assert.Error(t, err)
}

func TestNew_ParsesTemplates(t *testing.T) {
	m, err := newMailer(testConfig(), nil)
	require.NoError(t, err)
	assert.Contains(t, m.templates, WaitlistCreator)
	assert.Contains(t, m.templates, WaitlistBusiness)
}

func TestBuildRequest_Creator(t *testing.T) {
	m, err := newMailer(testConfig(), nil)
	require.NoError(t, err)

	ser, err := m.buildRequest("rhea@example.com", WaitlistCreator, creatorWelcome{FirstName: "Rhea"})
	require.NoError(t, err)

	assert.Equal(t, "rhea@example.com", ser.ToEmail)
	assert.Equal(t, "hello@lumio.app", ser.FromEmail)
	assert.Equal(t, templateSubjects[WaitlistCreator], ser.Subject)
	assert.Contains(t, ser.Html, "Hi Rhea,")
}

func TestBuildRequest_CreatorWithoutName(t *testing.T) {
	m, err := newMailer(testConfig(), nil)
	require.NoError(t, err)

	ser, err := m.buildRequest("x@example.com", WaitlistCreator, creatorWelcome{})
	require.NoError(t, err)
	assert.Contains(t, ser.Html, "Hi there,")
}

func TestBuildRequest_Business(t *testing.T) {
	m, err := newMailer(testConfig(), nil)
	require.NoError(t, err)

	ser, err := m.buildRequest("ops@northwind.example", WaitlistBusiness, businessWelcome{BusinessName: "Northwind"})
	require.NoError(t, err)
	assert.Contains(t, ser.Html, "Northwind is on the list")
}

func TestBuildRequest_UnknownTemplate(t *testing.T) {
	m, err := newMailer(testConfig(), nil)
	require.NoError(t, err)

	_, err = m.buildRequest("x@example.com", "nope.gohtml", nil)
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	m, err := newMailer(testConfig(), nil)
	require.NoError(t, err)

	assert.Error(t, m.Stop())
	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Start(context.Background()))
	assert.NoError(t, m.Stop())
}
