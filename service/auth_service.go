package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bloghub/dao"
	"bloghub/internal/auth"
	"bloghub/internal/mail"
	"bloghub/model"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// verificationTokenTTL bounds how long a verification/reset token stays
// consumable. Expiry is checked at consumption time.
const verificationTokenTTL = 24 * time.Hour

// AuthService owns registration, login, the verification-token lifecycle and
// all password hashing / session-token minting.
type AuthService struct {
	users        *dao.UserDAO
	tokens       *dao.TokenDAO
	tm           *auth.TokenManager
	mailer       mail.Mailer
	clientDomain string
}

// NewAuthService 创建一个新的 AuthService 实例
func NewAuthService(users *dao.UserDAO, tokens *dao.TokenDAO, tm *auth.TokenManager, mailer mail.Mailer, clientDomain string) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		tm:           tm,
		mailer:       mailer,
		clientDomain: clientDomain,
	}
}

// Register persists a new unverified user and mails a verification link.
// Shape validation (email format, length bounds, password complexity) happens
// at the binding layer before this is called.
func (s *AuthService) Register(ctx context.Context, email, username, password string) error {
	if _, err := s.users.FindByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user := &model.User{
		Email:           email,
		Username:        username,
		Password:        hashed,
		ProfilePhotoURL: model.DefaultProfilePhotoURL,
	}
	if err := s.users.CreateUser(user); err != nil {
		// The unique index on email is the real guarantee; a concurrent
		// registration slipping past the lookup lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrEmailTaken
		}
		return err
	}

	token, err := s.issueOrReuseToken(user.ID)
	if err != nil {
		return err
	}
	s.sendVerificationMail(ctx, user, token.Token)
	return nil
}

// Login authenticates email/password. A verified account gets a session token
// plus the public profile projection. An unverified account gets its
// verification mail re-sent and a hard stop: no session token is minted.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsAccountVerified {
		token, err := s.issueOrReuseToken(user.ID)
		if err != nil {
			return "", nil, err
		}
		s.sendVerificationMail(ctx, user, token.Token)
		return "", nil, ErrAccountNotVerified
	}

	sessionToken, err := s.tm.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return "", nil, err
	}
	return sessionToken, user, nil
}

// VerifyAccount consumes a verification token, flipping the account to
// verified. The token is deleted on success, so a replay fails.
func (s *AuthService) VerifyAccount(userID uint64, tokenStr string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := s.matchToken(userID, tokenStr)
	if err != nil {
		return err
	}

	user.IsAccountVerified = true
	if err := s.users.Save(user); err != nil {
		return err
	}
	return s.tokens.DeleteByID(token.ID)
}

// SendResetLink mails a password-reset link. The acknowledgment is identical
// whether or not the email is registered, so the endpoint cannot be used to
// probe for accounts.
func (s *AuthService) SendResetLink(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := s.issueOrReuseToken(user.ID)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/reset-password/%d/%s", s.clientDomain, user.ID, token.Token)
	html := fmt.Sprintf(`<div><p>Click the link below to reset your password</p><a href="%s">Reset Password</a></div>`, link)
	_ = s.mailer.Send(ctx, user.Email, "Reset password", html)
	return nil
}

// CheckResetLink reports whether a (userId, token) pair is currently valid.
// Pure existence check, no mutation; the client calls it before showing the
// reset form.
func (s *AuthService) CheckResetLink(userID uint64, tokenStr string) error {
	if _, err := s.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	_, err := s.matchToken(userID, tokenStr)
	return err
}

// ResetPassword consumes a token to replace the password hash. Reset doubles
// as an implicit verification path, so the account is marked verified
// unconditionally.
func (s *AuthService) ResetPassword(userID uint64, tokenStr, newPassword string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := s.matchToken(userID, tokenStr)
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.IsAccountVerified = true
	user.Password = hashed
	if err := s.users.Save(user); err != nil {
		return err
	}
	return s.tokens.DeleteByID(token.ID)
}

// matchToken finds the exact (userId, token) record and rejects expired ones.
// An expired record is deleted lazily so the next issuance starts fresh.
func (s *AuthService) matchToken(userID uint64, tokenStr string) (*model.VerificationToken, error) {
	token, err := s.tokens.FindByUserAndToken(userID, tokenStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if time.Now().After(token.ExpiresAt) {
		_ = s.tokens.DeleteByID(token.ID)
		return nil, ErrInvalidToken
	}
	return token, nil
}

// issueOrReuseToken returns the user's live token, minting a fresh one when
// none exists or the existing one has expired.
func (s *AuthService) issueOrReuseToken(userID uint64) (*model.VerificationToken, error) {
	existing, err := s.tokens.FindByUser(userID)
	if err == nil {
		if time.Now().Before(existing.ExpiresAt) {
			return existing, nil
		}
		_ = s.tokens.DeleteByID(existing.ID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	raw, err := auth.NewVerificationToken()
	if err != nil {
		return nil, err
	}
	token := &model.VerificationToken{
		UserID:    userID,
		Token:     raw,
		ExpiresAt: time.Now().Add(verificationTokenTTL),
	}
	if err := s.tokens.Create(token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *AuthService) sendVerificationMail(ctx context.Context, user *model.User, token string) {
	link := fmt.Sprintf("%s/users/%d/verify/%s", s.clientDomain, user.ID, token)
	html := fmt.Sprintf(`<div><p>Click the link below to verify your email</p><a href="%s">Verify</a></div>`, link)
	_ = s.mailer.Send(ctx, user.Email, "Verify your email", html)
}
