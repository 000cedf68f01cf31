package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/barberia-reservas/internal/audit"
	"github.com/BruksfildServices01/barberia-reservas/internal/auth"
	"github.com/BruksfildServices01/barberia-reservas/internal/authz"
	domain "github.com/BruksfildServices01/barberia-reservas/internal/domain/appointment"
	"github.com/BruksfildServices01/barberia-reservas/internal/httperr"
	"github.com/BruksfildServices01/barberia-reservas/internal/media"
	"github.com/BruksfildServices01/barberia-reservas/internal/models"
	"github.com/BruksfildServices01/barberia-reservas/internal/validators"
)

const MinPasswordLength = 6

type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	TouchLastAccess(ctx context.Context, id uint, at time.Time) error
	UpdatePhotoKey(ctx context.Context, id uint, key string) error
}

type Options struct {
	PhoneRegion string
	// EmailDomainCheck, when set, must accept the address domain.
	EmailDomainCheck func(email string) bool
}

type Service struct {
	users   Users
	tokens  *auth.TokenIssuer
	revoker auth.Revoker
	photos  media.Store
	audit   audit.Recorder
	log     *slog.Logger
	opts    Options
	now     func() time.Time
}

func NewService(
	users Users,
	tokens *auth.TokenIssuer,
	revoker auth.Revoker,
	photos media.Store,
	rec audit.Recorder,
	log *slog.Logger,
	opts Options,
) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
		photos:  photos,
		audit:   rec,
		log:     log,
		opts:    opts,
		now:     time.Now,
	}
}

// --------------------------------------------------
// Register
// --------------------------------------------------

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Phone           string
}

// Register creates a client account. Other roles are provisioned by seeding.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailSyntaxValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if s.opts.EmailDomainCheck != nil && !s.opts.EmailDomainCheck(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	if strings.TrimSpace(in.FirstName) == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	if len(in.Password) < MinPasswordLength {
		return nil, httperr.ErrBusiness("password_too_short")
	}
	if in.Password != in.ConfirmPassword {
		return nil, httperr.ErrBusiness("password_mismatch")
	}

	phone := ""
	if strings.TrimSpace(in.Phone) != "" {
		normalized, ok := validators.NormalizePhone(in.Phone, s.opts.PhoneRegion)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_phone")
		}
		phone = normalized
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, httperr.ErrBusiness("email_taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        phone,
		Role:         string(authz.RoleClient),
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("email_taken")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}

// --------------------------------------------------
// Login / Logout
// --------------------------------------------------

type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if !user.Active {
		return nil, httperr.ErrBusiness("account_inactive")
	}

	role, ok := authz.ParseRole(user.Role)
	if !ok {
		return nil, fmt.Errorf("user %d has unknown role %q", user.ID, user.Role)
	}

	token, p, err := s.tokens.Issue(user.ID, role)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.users.TouchLastAccess(ctx, user.ID, now); err != nil {
		s.log.Warn("update last access failed",
			slog.Uint64("user_id", uint64(user.ID)),
			slog.Any("error", err),
		)
	} else {
		user.LastAccessAt = &now
	}

	return &LoginResult{User: user, Token: token, ExpiresAt: p.ExpiresAt}, nil
}

func (s *Service) Logout(ctx context.Context, p auth.Principal) error {
	if p.TokenID == "" {
		return nil
	}
	return s.revoker.Revoke(ctx, p.TokenID, p.ExpiresAt.Sub(s.now()))
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

type Profile struct {
	User     *models.User `json:"user"`
	PhotoURL string       `json:"photo_url,omitempty"`
}

func (s *Service) Profile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	out := &Profile{User: user}
	if user.PhotoKey != "" && s.photos != nil {
		url, err := s.photos.URL(ctx, user.PhotoKey)
		if err != nil {
			s.log.Warn("presign photo failed", slog.Any("error", err))
		} else {
			out.PhotoURL = url
		}
	}
	return out, nil
}

func (s *Service) UpdatePhoto(ctx context.Context, userID uint, upload io.Reader) (*Profile, error) {
	if s.photos == nil {
		return nil, httperr.ErrBusiness("photo_storage_disabled")
	}

	body, err := media.NormalizePhoto(upload, media.MaxPhotoSide)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImage) {
			return nil, httperr.ErrBusiness("invalid_image")
		}
		return nil, err
	}

	key := media.UserPhotoKey(userID)
	if err := s.photos.Put(ctx, key, media.WebPMime, body); err != nil {
		return nil, err
	}

	if err := s.users.UpdatePhotoKey(ctx, userID, key); err != nil {
		return nil, err
	}

	return s.Profile(ctx, userID)
}
