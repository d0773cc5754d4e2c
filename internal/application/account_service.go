package application

import (
	"context"
	"errors"
	"net/mail"

	"github.com/sirupsen/logrus"

	"github.com/carhub-dev/carhub-api/internal/domain/entity"
	repo "github.com/carhub-dev/carhub-api/internal/domain/repository"
	"github.com/carhub-dev/carhub-api/pkg/helpers"
	"github.com/carhub-dev/carhub-api/pkg/mailer"
)

const minNameLen = 5
const minPasswordLen = 5

// AccountService creates accounts and issues bearer tokens. Accounts are
// immutable after registration.
type AccountService struct {
	Repo        repo.UserRepository
	JWT         *helpers.JWTManager
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAccountService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *AccountService {
	return &AccountService{Repo: r, JWT: jwt, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

type RegisterInput struct {
	Name          string
	Email         string
	ContactNumber string
	Password      string
}

// Register validates input, hashes the password and persists the account.
// The returned record never carries the hash.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	fields := map[string]string{}
	if len(in.Name) < minNameLen {
		fields["name"] = "must be at least 5 characters long"
	}
	if len(in.Password) < minPasswordLen {
		fields["password"] = "didnt match minimum length"
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		fields["email"] = "must be a valid email"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if _, err := s.Repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:          in.Name,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Password:      hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.enqueueWelcomeEmail(ctx, u)

	out := *u
	out.Password = ""
	return &out, nil
}

// Authenticate compares the submitted password against the stored hash and
// returns a signed bearer token carrying the account id. The error is the
// same whether the email is unknown or the password is wrong.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !helpers.VerifyPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	token, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token signing failed")
		return "", err
	}
	return token, nil
}

// GetByID resolves an account from a token's uid claim.
func (s *AccountService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// enqueueWelcomeEmail is fire-and-forget: a queue failure never blocks
// registration.
func (s *AccountService) enqueueWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:      u.Email,
		Subject: "Welcome to CarHub",
		Text:    "Hi " + u.Name + ", your CarHub account is ready. List your first car any time.",
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
	}
}
