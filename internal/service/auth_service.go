package service

import (
	"context"
	"sync"
	"time"

	"devfinder/internal/entity"
	"devfinder/internal/repository"
	"devfinder/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const dummyPasswordHash = "$2a$12$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	users         repository.UserRepository
	emailSender   EmailSender
	passwordHash  PasswordHasher
	sessionTokens SessionTokenIssuer
	clock         Clock
	config        AuthConfig
	logger        logrus.FieldLogger
}

func NewAuthService(
	users repository.UserRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	sessionTokens SessionTokenIssuer,
	clock Clock,
	config AuthConfig,
	logger logrus.FieldLogger,
) *AuthService {
	return &AuthService{
		users:         users,
		emailSender:   emailSender,
		passwordHash:  passwordHash,
		sessionTokens: sessionTokens,
		clock:         clock,
		config:        config,
		logger:        logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.UserRole(input.Role),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, _, err := s.sessionTokens.IssueSessionToken(user)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{User: summarize(user), Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.TwoStepsAuth {
		token, _, err := s.sessionTokens.IssueSessionToken(user)
		if err != nil {
			return nil, err
		}
		return &LoginResult{User: summarize(user), Token: token}, nil
	}

	challenge, err := s.issueTwoStepsChallenge(ctx, user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{TwoStepsAuth: true, Challenge: challenge}, nil
}

// issueTwoStepsChallenge persists the code and dispatches the email
// concurrently. A persistence failure voids the challenge; a delivery
// failure does not, since the stored code stays valid until expiry.
func (s *AuthService) issueTwoStepsChallenge(ctx context.Context, user *entity.User) (*ChallengeResult, error) {
	code := utils.GenerateTwoStepsCode()
	expiresAt := s.now().Add(s.twoStepsCodeTTL())

	var persistErr, emailErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		persistErr = s.users.SetTwoStepsChallenge(ctx, user.ID, code, expiresAt)
	}()
	go func() {
		defer wg.Done()
		if s.emailSender == nil {
			emailErr = ErrInvalidInput
			return
		}
		emailErr = s.emailSender.SendTwoStepsCode(ctx, user.Email, user.Name, code)
	}()
	wg.Wait()

	if persistErr != nil {
		return nil, persistErr
	}
	if emailErr != nil && s.logger != nil {
		s.logger.WithError(emailErr).WithField("user_id", user.ID).Warn("two-steps code email not dispatched")
	}
	return &ChallengeResult{EmailDispatched: emailErr == nil}, nil
}

func (s *AuthService) ConfirmCode(ctx context.Context, input ConfirmCodeInput) (*ConfirmCodeResult, error) {
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}
	if user.TwoStepsCode == nil || user.TwoStepsCodeExpiresAt == nil {
		return nil, ErrCodeIncorrect
	}
	if s.now().After(*user.TwoStepsCodeExpiresAt) {
		return nil, ErrCodeExpired
	}
	if input.Code != *user.TwoStepsCode {
		return nil, ErrCodeIncorrect
	}

	// The code is single use: clear it before handing out the session.
	if err := s.users.ClearTwoStepsChallenge(ctx, user.ID); err != nil {
		return nil, err
	}

	token, _, err := s.sessionTokens.IssueSessionToken(user)
	if err != nil {
		return nil, err
	}
	return &ConfirmCodeResult{User: summarize(user), Token: token}, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileUpdateInput) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnauthorized
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = utils.NormalizeEmail(*input.Email)
	}
	if input.Resume != nil {
		user.Resume = input.Resume
	}
	if input.Skills != nil {
		user.Skills = utils.JSONStringSlice(input.Skills)
	}
	if input.Stack != nil {
		user.Stack = utils.JSONStringSlice(input.Stack)
	}
	return s.users.Update(ctx, user)
}

func (s *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	return s.users.Delete(ctx, userID)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) twoStepsCodeTTL() time.Duration {
	if s.config.TwoStepsCodeTTL > 0 {
		return s.config.TwoStepsCodeTTL
	}
	return 15 * time.Minute
}

func summarize(user *entity.User) *UserSummary {
	return &UserSummary{
		ID:     user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
		Avatar: user.Avatar,
	}
}
