package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
)

const companyName = "Radha Travels"

// Common header template for all emails
const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #b7410e; margin: 0;">Radha Travels</h2>
		</div>
`

// Common footer template for all emails
const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>© 2025 Radha Travels. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

// SMTPMailer sends notifications through a plain SMTP relay configured
// from the environment.
type SMTPMailer struct {
	from       string
	password   string
	host       string
	port       string
	adminEmail string

	// send overrides the SMTP transport in tests.
	send func(to []string, subject, body string) error
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		from:       os.Getenv("EMAIL_FROM"),
		password:   os.Getenv("EMAIL_PASSWORD"),
		host:       os.Getenv("SMTP_HOST"),
		port:       os.Getenv("SMTP_PORT"),
		adminEmail: os.Getenv("ADMIN_EMAIL"),
	}
}

func (m *SMTPMailer) deliver(to []string, subject, body string) error {
	if m.send != nil {
		return m.send(to, subject, body)
	}
	return m.sendEmail(to, subject, body)
}

func (m *SMTPMailer) sendEmail(to []string, subject, body string) error {
	if m.from == "" || m.password == "" || m.host == "" || m.port == "" {
		return fmt.Errorf("email configuration not set")
	}

	// Headers
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", companyName, m.from)
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"
	headers["X-Mailer"] = "RadhaTravels-Mailer"

	// Build message
	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	// Authentication
	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	// Send email
	err := smtp.SendMail(m.host+":"+m.port, auth, m.from, to, []byte(message))
	if err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	log.Printf("Successfully sent email to recipients: %v", to)
	return nil
}

func (m *SMTPMailer) SendBookingConfirmation(booking *models.Booking) Result {
	subject := fmt.Sprintf("Your Booking - %s", booking.BookingID)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Booking Received</h1>
					<p>Hello %s,</p>
					<p>We have received your booking <strong>%s</strong> (%s, %s).</p>
					<p>Our team will reach out shortly to confirm the details and assign your chauffeur.</p>
					<p>Phone on record: <strong>%s</strong></p>
					<p>Best regards,<br>The Radha Travels Team</p>
				</div>`+emailFooter,
		booking.FullName, booking.BookingID, booking.BookingType, booking.CarType, booking.Phone)

	// Customer first, then an admin copy unless the admin booked for themselves.
	sent := []string{}
	if booking.Email != "" {
		if err := m.deliver([]string{booking.Email}, subject, body); err != nil {
			return failResult(err)
		}
		sent = append(sent, "customer")
	}
	if m.adminEmail != "" && !strings.EqualFold(m.adminEmail, booking.Email) {
		adminSubject := fmt.Sprintf("New Booking Received - %s", booking.BookingID)
		if err := m.deliver([]string{m.adminEmail}, adminSubject, body); err != nil {
			return failResult(err)
		}
		sent = append(sent, "admin")
	}
	if len(sent) == 0 {
		return skipResult("no recipient address")
	}
	return okResult("sent to " + strings.Join(sent, ", "))
}

func (m *SMTPMailer) SendDriverAllotment(booking *models.Booking, driver Driver, vehicle Vehicle) Result {
	if booking.Email == "" {
		return skipResult("no customer email")
	}

	subject := fmt.Sprintf("Driver Assigned - Booking %s", booking.BookingID)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Driver Assigned</h1>
					<p>Hello %s,</p>
					<p>Your driver for booking <strong>%s</strong> has been assigned.</p>
					<p>Driver: <strong>%s</strong> (%s)<br>
					Vehicle: <strong>%s</strong> - <strong>%s</strong></p>
					<p>Your chauffeur will contact you before pickup.</p>
					<p>Best regards,<br>The Radha Travels Team</p>
				</div>`+emailFooter,
		booking.FullName, booking.BookingID, driver.Name, driver.Phone, vehicle.Model, vehicle.RegNo)

	if err := m.deliver([]string{booking.Email}, subject, body); err != nil {
		return failResult(err)
	}
	return okResult("sent to customer")
}

func (m *SMTPMailer) SendAdminReset(admin *models.Admin, resetURL string) Result {
	name := admin.Name
	if name == "" {
		name = admin.Email
	}

	subject := "Admin password reset"
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Password Reset</h1>
					<p>Hello %s,</p>
					<p>You requested to reset your admin password. Click the link below to continue:</p>
					<div style="text-align: center; margin: 30px 0;">
						<a href="%s" style="background-color: #b7410e; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">Reset Password</a>
					</div>
					<p>This link is valid for 1 hour. If you did not request this, you can ignore this email.</p>
				</div>`+emailFooter,
		name, resetURL)

	if err := m.deliver([]string{admin.Email}, subject, body); err != nil {
		return failResult(err)
	}
	return okResult("sent")
}
