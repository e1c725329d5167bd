// Package services implements the account and messaging flows the samba
// command-line tools run against the store. Validation happens here, before
// any store round-trip; store outcomes are surfaced as the sentinel errors
// from internal/common.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/samba/internal/common"
	"github.com/dmitrijs2005/samba/internal/credentials"
	"github.com/dmitrijs2005/samba/internal/dbx"
	"github.com/dmitrijs2005/samba/internal/models"
	"github.com/dmitrijs2005/samba/internal/repositories/repomanager"
	"github.com/dmitrijs2005/samba/internal/repositories/users"
)

// passwordInput carries the validation rules for user passwords.
type passwordInput struct {
	Password string `validate:"required,min=8"`
}

// AccountService implements user creation, password changes, deletion and
// listing.
type AccountService struct {
	db       dbx.DBTX
	repos    repomanager.RepositoryManager
	validate *validator.Validate
}

func NewAccountService(db dbx.DBTX, repos repomanager.RepositoryManager) *AccountService {
	return &AccountService{
		db:       db,
		repos:    repos,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *AccountService) validatePassword(password string) error {
	if err := s.validate.Struct(passwordInput{Password: password}); err != nil {
		return fmt.Errorf("%w: password must be at least %d characters long",
			common.ErrorValidation, MinPasswordLength)
	}
	return nil
}

// Register creates a new user with the given credentials. It returns
// common.ErrorValidation for short passwords and common.ErrorAlreadyExists
// when the username is taken. The existence pre-check is best effort; the
// store's uniqueness constraint backstops the race and Save reports the
// same sentinel.
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}

	repo := s.repos.Users(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	user := models.NewUser(username)
	user.SetPassword(password)

	if err := repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password and replaces the stored
// credential with a hash of the new one.
func (s *AccountService) ChangePassword(ctx context.Context, username, password, newPassword string) error {
	if err := s.validatePassword(newPassword); err != nil {
		return err
	}

	repo := s.repos.Users(s.db)

	user, err := authenticateUser(ctx, repo, username, password)
	if err != nil {
		return err
	}

	user.SetPassword(newPassword)
	return repo.Save(ctx, user)
}

// Delete verifies the password and removes the user. Deleting a user whose
// messages still exist is rejected with common.ErrorConflict.
func (s *AccountService) Delete(ctx context.Context, username, password string) error {
	repo := s.repos.Users(s.db)

	user, err := authenticateUser(ctx, repo, username, password)
	if err != nil {
		return err
	}

	return repo.Delete(ctx, user)
}

// List returns every user in store order.
func (s *AccountService) List(ctx context.Context) ([]*models.User, error) {
	return s.repos.Users(s.db).GetAll(ctx)
}

// authenticateUser loads the user and checks the password. Unknown users
// flow through as common.ErrorNotFound; a failed check is
// common.ErrorIncorrectPassword. Both are normal outcomes, not failures.
func authenticateUser(ctx context.Context, repo users.Repository, username, password string) (*models.User, error) {
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !credentials.CheckPassword(password, user.HashedPassword) {
		return nil, common.ErrorIncorrectPassword
	}

	return user, nil
}
