// Package notify builds the outbound side-channel artifacts returned to the
// client after a booking: the mailto hand-off for the coach's inbox and the
// calendar-invite link. Everything here is pure string construction.
package notify

import (
	"fmt"
	"net/url"
	"strings"
)

// BookingMail carries the fields shown in the coach notification mail.
type BookingMail struct {
	StudentName string
	Phone       string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	CourtName   string
	CourtNumber string
}

// MailtoURI builds a mailto: link with a prefilled subject and body
// summarizing the booking. Navigation to the link opens the user's mail
// client; whether a mail is actually sent is unobserved.
func MailtoURI(to string, m BookingMail) string {
	subject := fmt.Sprintf("[預約] %s - %s", m.StudentName, m.Date)

	venue := m.CourtName
	if m.CourtNumber != "" {
		venue += fmt.Sprintf(" (%s號場)", m.CourtNumber)
	}

	body := fmt.Sprintf(
		"學員預約通知：\n\n姓名：%s\n電話：%s\n時間：%s %s-%s\n地點：%s",
		m.StudentName, m.Phone, m.Date, m.StartTime, m.EndTime, venue,
	)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		to, encodeComponent(subject), encodeComponent(body))
}

// encodeComponent percent-encodes a mailto header value. QueryEscape's
// form encoding uses '+' for spaces, which mail clients do not decode, so
// spaces are rewritten to %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
