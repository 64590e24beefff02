// File: services/notification/messages.go
package notification

import (
	"fmt"
	"time"

	"salonapi/models"
)

// TransferOrderParams feeds the email sent to the admin when a client
// requests a transfer payment order.
type TransferOrderParams struct {
	ClientName  string
	ServiceName string
	StartsAt    time.Time
	Amount      float64
	Bank        models.BankInfo
	ConfirmURL  string
}

// TransferOrderHTML builds the admin notification body for a new
// transfer payment order.
func TransferOrderHTML(p TransferOrderParams) string {
	return fmt.Sprintf(`
		<p>Se ha generado una <b>nueva orden de pago por transferencia</b>.</p>
		<p><b>Cliente:</b> %s</p>
		<p><b>Servicio:</b> %s</p>
		<p><b>Fecha y hora de la cita:</b> %s</p>
		<p><b>Monto a pagar:</b> $%.2f</p>
		<p><b>Banco:</b> %s</p>
		<p><b>Número de cuenta:</b> %s</p>
		<p><b>Titular:</b> %s</p>
		<p><b>Referencia que debe usar el cliente:</b> %s</p>
		<br/>
		<p>Cuando verifiques la transferencia en la cuenta, puedes confirmar el pago aquí:</p>
		<p>
			<a href="%s"
				style="display:inline-block;padding:10px 18px;background-color:#0d6efd;color:#ffffff;text-decoration:none;border-radius:6px;font-weight:bold;">
				Confirmar pago
			</a>
		</p>
	`,
		p.ClientName, p.ServiceName, p.StartsAt.Format("02/01/2006 15:04"),
		p.Amount, p.Bank.Bank, p.Bank.AccountNumber, p.Bank.AccountHolder,
		p.Bank.Reference, p.ConfirmURL)
}

// InvoiceConfirmedParams feeds the email sent to the client once the
// transfer has been verified.
type InvoiceConfirmedParams struct {
	ServiceName   string
	StartsAt      time.Time
	Amount        float64
	InvoiceNumber string
}

// InvoiceConfirmedHTML builds the client notification body for a
// confirmed payment.
func InvoiceConfirmedHTML(p InvoiceConfirmedParams) string {
	return fmt.Sprintf(`
		<p>Tu pago ha sido <b>confirmado</b>.</p>
		<p><b>Servicio:</b> %s</p>
		<p><b>Fecha y hora de la cita:</b> %s</p>
		<p><b>Total pagado:</b> $%.2f</p>
		<p><b>Factura:</b> %s</p>
		<p>Adjuntamos tu factura en PDF.</p>
	`, p.ServiceName, p.StartsAt.Format("02/01/2006 15:04"), p.Amount, p.InvoiceNumber)
}

// ReminderHTML builds the appointment reminder body sent the day before.
func ReminderHTML(clientName, serviceName string, startsAt time.Time) string {
	return fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Te recordamos tu cita de <b>%s</b> el %s.</p>
		<p>Si no puedes asistir, por favor cancela o reagenda con anticipación.</p>
	`, clientName, serviceName, startsAt.Format("02/01/2006 15:04"))
}
