package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/givehub/backend/internal/models"
	"github.com/givehub/backend/pkg/bcrypt"
	"github.com/givehub/backend/pkg/email"
	jwtPkg "github.com/givehub/backend/pkg/jwt"
)

// UserRepository is the slice of the credential store the auth flow
// needs.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

type AuthService struct {
	users  UserRepository
	tokens *jwtPkg.TokenService
	email  *email.EmailService
	logger *zap.Logger
}

func NewAuthService(users UserRepository, tokens *jwtPkg.TokenService, emailService *email.EmailService, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		email:  emailService,
		logger: logger,
	}
}

func (s *AuthService) Signup(req models.SignupRequest) (*models.AuthResponse, error) {
	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrEmailExists
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	// Best effort: a failed welcome email never fails the signup.
	if s.email != nil {
		go func(to, name string) {
			if err := s.email.SendWelcomeEmail(to, name); err != nil {
				s.logger.Warn("welcome email failed", zap.String("email", to), zap.Error(err))
			}
		}(user.Email, user.Name)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Signin(req models.SigninRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the
		// caller.
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
