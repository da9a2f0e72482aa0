// Package mailer delivers signup confirmation codes.
package mailer

// Mailer sends a confirmation code to a user. Delivery failures surface
// to the caller; nothing is written back to storage.
type Mailer interface {
	SendConfirmationCode(to, username, code string) error
}
