// Package users stores registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
)

// Repository is the User Store used by the registration flow.
//
// GetUserByEmail returns common.ErrorNotFound when no account uses email.
// Create assigns ID and CreatedAt and returns common.ErrorAlreadyExists when
// the email is taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
