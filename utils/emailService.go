package utils

import (
	"fmt"
	"net/smtp"
	"nodo360/config"
	"strings"
	"time"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Nodo360 <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all platform emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #F7931A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; color: #999999; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Nodo360 &middot; Aprende Bitcoin desde cero</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendCertificateIssuedEmail notifies a student that their certificate was issued
func SendCertificateIssuedEmail(email, name, courseTitle, certificateNumber string) error {
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>¡Felicidades! Has completado el curso <strong>%s</strong> y tu certificado ya está disponible.</p>
		<p>Número de certificado: <strong>%s</strong></p>
		<p>Puedes consultarlo en tu perfil en cualquier momento.</p>`,
		name, courseTitle, certificateNumber)

	return SendEmail([]string{email}, "Tu certificado de Nodo360 está listo", getEmailTemplate("Certificado emitido", body))
}

// SendSessionReminderEmail reminds a participant of an upcoming mentorship session
func SendSessionReminderEmail(email, name, topic string, scheduledAt time.Time) error {
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Te recordamos tu sesión de mentoría de mañana.</p>
		<p>Tema: <strong>%s</strong></p>
		<p>Fecha: <strong>%s</strong></p>`,
		name, topic, scheduledAt.Format("02 Jan 2006 15:04 MST"))

	return SendEmail([]string{email}, "Recordatorio de tu sesión de mentoría", getEmailTemplate("Sesión de mentoría", body))
}
