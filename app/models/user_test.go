package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidatePlanEnum(t *testing.T) {
	u := &User{Name: "n", Email: "n@x.com"}
	assert.NoError(t, u.Validate())

	u.Plan = PLAN_ANNUAL
	assert.NoError(t, u.Validate())

	u.Plan = "LIFETIME"
	assert.Error(t, u.Validate())
}

func TestUserHasActiveSubscription(t *testing.T) {
	u := &User{}
	assert.False(t, u.HasActiveSubscription())

	u.IsSubscribedToPro = true
	assert.False(t, u.HasActiveSubscription(), "pro flag without a plan is not active")

	u.Plan = PLAN_MONTHLY
	assert.True(t, u.HasActiveSubscription())
}

func TestUserLinkChannel(t *testing.T) {
	u := &User{}
	assert.False(t, u.HasLinkedChannel())

	u.LinkChannel("mychannel", "c-100", "hash", "My Channel", true)
	assert.True(t, u.HasLinkedChannel())
	assert.Equal(t, "mychannel", *u.ChannelUsername)
	assert.True(t, u.HasPublicChannel)
}

func TestSupportTicketValidate(t *testing.T) {
	ticket := &SupportTicket{Name: "visitor", Email: "v@x.com", Message: "help"}
	assert.NoError(t, ticket.Validate())

	assert.Error(t, (&SupportTicket{Name: "visitor", Email: "not-email", Message: "help"}).Validate())
	assert.Error(t, (&SupportTicket{Name: "visitor", Email: "v@x.com"}).Validate())
}
