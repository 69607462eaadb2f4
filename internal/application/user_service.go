package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/shoppy/storefront/internal/domain/entity"
	repo "github.com/shoppy/storefront/internal/domain/repository"
	"github.com/shoppy/storefront/pkg/helpers"
	"github.com/shoppy/storefront/pkg/mailer"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUnknownEmail  = errors.New("no user with that email")
	ErrWrongPassword = errors.New("wrong password")
)

// UserService handles signup and login. It is the only issuer of session
// tokens.
type UserService struct {
	Repo         repo.UserRepository
	Tokens       *helpers.TokenManager
	Pub          *helpers.RabbitPublisher
	Logger       *logrus.Logger
	CartSeedSize int
	MailEnabled  bool
}

func NewUserService(r repo.UserRepository, tm *helpers.TokenManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, cartSeedSize int, mailEnabled bool) *UserService {
	return &UserService{
		Repo:         r,
		Tokens:       tm,
		Pub:          pub,
		Logger:       logger,
		CartSeedSize: cartSeedSize,
		MailEnabled:  mailEnabled,
	}
}

// Signup registers a new user with a pre-seeded empty cart and returns a
// session token. Email uniqueness is enforced by the store; a conflict
// surfaces as ErrEmailTaken with no token issued.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (string, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}
	u := &entity.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Cart:     entity.NewCart(s.CartSeedSize),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	token, _, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return "", err
	}

	s.enqueueWelcome(ctx, u)
	return token, nil
}

// Login validates credentials and returns a session token. The error
// distinguishes unknown email from a wrong password, matching the response
// bodies the frontend expects.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrUnknownEmail
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrWrongPassword
	}
	token, _, err := s.Tokens.Issue(u.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]any{"Name": u.Name},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
	}
}
