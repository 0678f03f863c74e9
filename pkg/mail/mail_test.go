package mail

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *service {
	t.Helper()

	s := New(Config{
		SMTPHost:     "localhost",
		SMTPPort:     587,
		SMTPUsername: "noreply@quickcourt.test",
		SMTPPassword: "password",
		FromEmail:    "noreply@quickcourt.test",
		FromName:     "QuickCourt",
		TemplatePath: "../../template",
	})

	return s.(*service)
}

func TestMailService_Templates(t *testing.T) {
	s := newTestService(t)

	require.NotNil(t, s.verificationTemplate)
	require.NotNil(t, s.passwordResetTemplate)
	require.NotNil(t, s.bookingConfirmationTemplate)
}

func TestMailService_BookingConfirmationRendering(t *testing.T) {
	s := newTestService(t)

	data := BookingConfirmationData{
		CustomerName:     "Rohan Mehta",
		BookingID:        "b-42",
		Status:           "confirmed",
		VenueName:        "Smash Arena",
		CourtName:        "Court 2",
		BookingDate:      "2025-07-14",
		StartTime:        "18:00",
		EndTime:          "20:00",
		TotalAmount:      "1000",
		PaymentID:        "pay_XYZ789",
		ConfirmationDate: "2025-07-13",
	}

	var body bytes.Buffer
	require.NoError(t, s.bookingConfirmationTemplate.Execute(&body, data))

	rendered := body.String()
	assert.Contains(t, rendered, "Smash Arena")
	assert.Contains(t, rendered, "Court 2")
	assert.Contains(t, rendered, "18:00")
	assert.Contains(t, rendered, "pay_XYZ789")
}
