package accounts

import "context"

// Repo persists accounts. Create returns ErrExists when the role already
// has an account for the email.
type Repo interface {
	Create(ctx context.Context, a Account) error
	GetByEmail(ctx context.Context, role Role, email string) (Account, error)
	GetByID(ctx context.Context, role Role, id string) (Account, error)
	Update(ctx context.Context, a Account) error
}
