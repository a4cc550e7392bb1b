// Package mail delivers login verification codes. Delivery is an opaque
// external capability from the auth service's point of view: it depends
// only on the Sender interface.
package mail

import "context"

// Sender dispatches a verification code to a user.
type Sender interface {
	SendVerificationCode(ctx context.Context, to, name, code string) error
}
