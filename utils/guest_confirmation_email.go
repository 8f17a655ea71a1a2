package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendGuestConfirmationEmail sends the booking confirmation. When SMTP env is
// not configured it logs the payload instead, so local setups work without a
// mail server.
func SendGuestConfirmationEmail(recipientEmail, guestName, roomName, bedType, checkIn, checkOut string, nights int, totalPrice float64, confirmationLink string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] confirmation to:%s room:%s bed:%s %s→%s total:%.2f link:%s",
			recipientEmail, roomName, bedType, checkIn, checkOut, totalPrice, confirmationLink)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}

	guestName = safe(guestName)
	roomName = safe(roomName)
	bedType = safe(bedType)
	confirmationLink = safe(confirmationLink)

	if !(strings.HasPrefix(confirmationLink, "http://") || strings.HasPrefix(confirmationLink, "https://")) {
		confirmationLink = "https://" + strings.TrimLeft(confirmationLink, "/")
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := "Your bed is booked!"
	boundary := "----=_CONFIRMATION_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your reservation is confirmed.\n\n"+
			"Room: %s\n"+
			"Bed: %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Nights: %d\n"+
			"Total: $%.2f\n\n"+
			"View your confirmation: %s\n",
		guestName, roomName, bedType, checkIn, checkOut, nights, totalPrice, confirmationLink,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking confirmed</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.btn { display:inline-block; padding:12px 20px; background:#0b74ff; color:#fff; text-decoration:none; border-radius:6px; margin-top:16px; }
table td { padding:4px 12px 4px 0; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking confirmed</h2>
    <p>Hi %s,</p>
    <p>Your reservation is confirmed. Here are the details:</p>
    <table>
      <tr><td>Room</td><td><strong>%s</strong></td></tr>
      <tr><td>Bed</td><td>%s</td></tr>
      <tr><td>Check-in</td><td>%s</td></tr>
      <tr><td>Check-out</td><td>%s</td></tr>
      <tr><td>Nights</td><td>%d</td></tr>
      <tr><td>Total</td><td><strong>$%.2f</strong></td></tr>
    </table>
    <a class="btn" href="%s" target="_blank">View confirmation</a>
  </div>
</div>
</body>
</html>`,
		guestName, roomName, bedType, checkIn, checkOut, nights, totalPrice, confirmationLink,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("Confirmation email sent to %s", recipientEmail)
	return nil
}
