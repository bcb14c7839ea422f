package commands

import (
	"context"
	"time"

	"ticketqueen/internal/domain/auth"
	"ticketqueen/internal/domain/user"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/pkg/clock"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/pkg/password"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignup          = errs.New("invalid signup")
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid credentials")
)

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Account is the public part of a user record.
type Account struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (*Account, error)
	Login(ctx context.Context, in LoginInput) (*Account, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher *password.Hasher
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher *password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		hasher: hasher,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (*Account, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignup)
	}
	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(username, email, hash, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailAlreadyRegistered)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &Account{
		ID:        u.ID(),
		Username:  u.Username().Value(),
		Email:     u.Email().Value(),
		CreatedAt: u.CreatedAt(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*Account, error) {
	login, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	creds, err := a.uow.CommandReads().UserByEmail(ctx, login.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := a.hasher.Compare(creds.PasswordHash, login.Password()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return &Account{
		ID:        creds.ID,
		Username:  creds.Username,
		Email:     creds.Email,
		CreatedAt: creds.CreatedAt,
	}, nil
}
