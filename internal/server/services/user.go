// Package services contains server-side business logic. UserService
// implements account registration: validate, check the email is free, hash
// the password, persist the user and issue a session token.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/dbx"
	"github.com/dmitrijs2005/contactkeeper/internal/server/models"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactkeeper/internal/server/validation"
)

const (
	MsgNameRequired  = "Please include a Name"
	MsgInvalidEmail  = "Please include a valid email"
	MsgShortPassword = "Please enter a password with 6 or more characters"

	minPasswordLength = 6
)

// PasswordHasher derives a salted hash from a plaintext password.
type PasswordHasher interface {
	Hash(plain string) ([]byte, error)
}

// TokenIssuer signs a session token for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// RegisterInput carries the request fields; nil means the field was absent.
type RegisterInput struct {
	Name     *string
	Email    *string
	Password *string
}

// Registration is the result of a successful Register call.
type Registration struct {
	User  *models.User
	Token string
}

type UserService struct {
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer
}

func NewUserService(m repomanager.RepositoryManager, h PasswordHasher, t TokenIssuer) *UserService {
	return &UserService{repomanager: m, hasher: h, tokens: t}
}

// Validate applies the field rules and returns validation.Errors on failure.
func (s *UserService) Validate(in RegisterInput) error {
	return validation.Collect(
		validation.NotEmpty("name", in.Name, MsgNameRequired),
		validation.IsEmail("email", in.Email, MsgInvalidEmail),
		validation.MinLength("password", in.Password, minPasswordLength, MsgShortPassword),
	)
}

// Register creates the account described by in and returns it with a
// signed token.
//
// Errors: validation.Errors for bad input, common.ErrorAlreadyExists when
// the email is taken (found by the lookup or rejected by the store), any
// other error is a dependency failure.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*Registration, error) {
	if err := s.Validate(in); err != nil {
		return nil, err
	}

	user := &models.User{UserName: *in.Name, Email: *in.Email}

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		existing, err := repo.GetUserByEmail(ctx, user.Email)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error searching user: %w", err)
		}
		if existing != nil {
			return common.ErrorAlreadyExists
		}

		user.PasswordHash, err = s.hasher.Hash(*in.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		if _, err := repo.Create(ctx, user); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return err
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %w", err)
	}

	return &Registration{User: user, Token: token}, nil
}
