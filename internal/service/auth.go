package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/iliyamo/film-vault/internal/repository"
	"github.com/iliyamo/film-vault/internal/session"
	"github.com/iliyamo/film-vault/internal/utils"
)

// UserStore is the subset of repository.UserRepo the auth orchestrators
// need. Keeping it an interface lets validation and orchestration run in
// tests without a live database.
type UserStore interface {
	Create(ctx context.Context, u *repository.User) error
	GetByEmail(ctx context.Context, email string) (repository.User, error)
}

// AuthService coordinates the credential store, the password hasher and the
// session authority for signup and login.
type AuthService struct {
	users      UserStore
	sessions   *session.Manager
	bcryptCost int
}

func NewAuthService(users UserStore, sessions *session.Manager, bcryptCost int) *AuthService {
	return &AuthService{users: users, sessions: sessions, bcryptCost: bcryptCost}
}

// SignupInput carries the raw signup form fields.
type SignupInput struct {
	FirstName       string
	LastName        string
	Email           string
	Mobile          string
	Gender          string
	Password        string
	ConfirmPassword string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateSignup checks field constraints independently of the storage
// schema and returns one message per offending field.
func validateSignup(in SignupInput) *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(in.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}
	switch email := strings.TrimSpace(in.Email); {
	case email == "":
		fields["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		fields["email"] = "Email address is not valid"
	}
	if strings.TrimSpace(in.Mobile) == "" {
		fields["mobile"] = "Mobile number is required"
	}
	if g := strings.ToLower(strings.TrimSpace(in.Gender)); g != "male" && g != "female" {
		fields["gender"] = "Gender must be male or female"
	}
	if in.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Signup registers a new user and starts their session. Outcomes:
//
//	ErrPasswordMismatch      – password and confirmation differ
//	repository.ErrEmailExists – the email is already registered
//	*ValidationError          – one or more fields violate their constraint
//	any other error           – unclassified internal failure
//
// Exactly one user row and one session exist after a successful call; no
// failure path leaves either behind.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, session.UserSummary, error) {
	if in.Password != in.ConfirmPassword {
		return "", session.UserSummary{}, ErrPasswordMismatch
	}

	// Early duplicate check for a friendly error; the authoritative guard
	// is the unique constraint on users.email, which closes the race
	// between concurrent signups.
	_, err := s.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return "", session.UserSummary{}, repository.ErrEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", session.UserSummary{}, err
	}

	if verr := validateSignup(in); verr != nil {
		return "", session.UserSummary{}, verr
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", session.UserSummary{}, err
	}
	u := repository.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Mobile:       strings.TrimSpace(in.Mobile),
		Gender:       strings.ToLower(strings.TrimSpace(in.Gender)),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return "", session.UserSummary{}, err
	}

	summary := session.UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
	token, err := s.sessions.Start(ctx, summary)
	if err != nil {
		return "", session.UserSummary{}, err
	}
	return token, summary, nil
}

// Login verifies credentials and starts a session. Unknown email and wrong
// password are both reported as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, session.UserSummary, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", session.UserSummary{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", session.UserSummary{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return "", session.UserSummary{}, ErrInvalidCredentials
	}

	summary := session.UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
	token, err := s.sessions.Start(ctx, summary)
	if err != nil {
		return "", session.UserSummary{}, err
	}
	return token, summary, nil
}
