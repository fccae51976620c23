// Package mailer is the boundary to the transactional-email collaborator.
// Actual delivery lives outside this service; the default implementation
// only logs.
package mailer

import "log"

// Mailer sends account-lifecycle email.
type Mailer interface {
	SendWelcome(email, name string) error
}

// LogMailer is the default no-delivery implementation.
type LogMailer struct{}

func (LogMailer) SendWelcome(email, name string) error {
	log.Printf("Welcome email queued for %s <%s>", name, email)
	return nil
}
