package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	rs "github.com/Gobd/ruleset"
)

// ValidationError carries the violations of a rejected request.
type ValidationError struct {
	Violations []rs.Violation
}

func newValidationError(results ...*rs.Result) *ValidationError {
	e := &ValidationError{}
	for _, res := range results {
		e.Violations = append(e.Violations, res.Violations()...)
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		keys[i] = v.Key
	}
	return "validation failed: " + strings.Join(keys, ", ")
}

// Fields returns the violations as key → message.
func (e *ValidationError) Fields() map[string]string {
	m := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		m[v.Key] = v.Message
	}
	return m
}

type repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePhone(ctx context.Context, id uint, phone string) error
}

// Service implements the user operations. Every request is validated before
// anything is stored.
type Service struct {
	repo         repository
	log          *zap.Logger
	registration *rs.RuleSet[RegistrationRequest]
}

// NewService returns a Service. Uniqueness lookups against repo are bounded
// by lookupTimeout.
func NewService(repo repository, log *zap.Logger, lookupTimeout time.Duration) (*Service, error) {
	registration, err := NewRegistrationRules(withTimeout(repo.ExistsByEmail, lookupTimeout))
	if err != nil {
		return nil, err
	}
	return &Service{
		repo:         repo,
		log:          log,
		registration: registration,
	}, nil
}

// RegistrationRules returns the rules applied by Register.
func (s *Service) RegistrationRules() *rs.RuleSet[RegistrationRequest] {
	return s.registration
}

// Register validates req and stores a new user with a hashed password.
func (s *Service) Register(ctx context.Context, req RegistrationRequest) (*User, error) {
	req.Normalize()
	res, err := s.registration.Validate(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.register(ctx, req, res)
}

// RegisterJSON decodes a RegistrationRequest from body and registers it.
// Malformed JSON is returned as a *ruleset.DecodeError.
func (s *Service) RegisterJSON(ctx context.Context, body io.Reader) (*User, error) {
	req, res, err := rs.DecodeAndValidate(ctx, body, s.registration)
	if err != nil {
		return nil, err
	}
	return s.register(ctx, req, res)
}

func (s *Service) register(ctx context.Context, req RegistrationRequest, res *rs.Result) (*User, error) {
	if !res.Valid() {
		s.log.Info("registration rejected", zap.Strings("fields", res.Keys()))
		return nil, newValidationError(res)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Name:     *req.Name,
		Email:    *req.Email,
		Age:      *req.Age,
		Password: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// registered concurrently after the uniqueness check
			return nil, &ValidationError{Violations: []rs.Violation{
				{Key: "email", Message: MsgEmailTaken, Code: "validation_not_unique"},
			}}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", zap.Uint("id", u.ID))
	return u, nil
}

// GetUserData loads the transferable data of a user.
func (s *Service) GetUserData(ctx context.Context, id uint) (UserData, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UserData{}, err
	}
	return UserDataFromUser(u), nil
}

// UpdateProfile validates data and newPhone, then stores the phone number.
func (s *Service) UpdateProfile(ctx context.Context, data UserData, newPhone string) (string, error) {
	dataRes, err := UserDataRules.Validate(ctx, data)
	if err != nil {
		return "", err
	}
	newPhone = strings.TrimSpace(newPhone)
	var phone any
	if newPhone != "" {
		phone = newPhone
	}
	phoneRes, err := PhoneRules.Validate(ctx, rs.Fields{"newPhone": phone})
	if err != nil {
		return "", err
	}
	if !dataRes.Valid() || !phoneRes.Valid() {
		return "", newValidationError(dataRes, phoneRes)
	}

	if err := s.repo.UpdatePhone(ctx, *data.UserID, newPhone); err != nil {
		return "", err
	}

	s.log.Info("profile updated",
		zap.Uint("id", *data.UserID),
		zap.String("name", *data.Name),
		zap.String("email", *data.Email),
		zap.Int("age", *data.Age),
	)
	return fmt.Sprintf("updated profile of %s, new phone: %s", *data.Name, newPhone), nil
}

// ValidateVip checks whether req describes a valid VIP tier assignment.
func (s *Service) ValidateVip(ctx context.Context, req VipRequest) (string, error) {
	req.Normalize()
	res, err := VipRules.Validate(ctx, req)
	if err != nil {
		return "", err
	}
	return vipVerdict(req, res)
}

// ValidateVipJSON decodes a VipRequest from body and validates it.
func (s *Service) ValidateVipJSON(ctx context.Context, body io.Reader) (string, error) {
	req, res, err := rs.DecodeAndValidate(ctx, body, VipRules)
	if err != nil {
		return "", err
	}
	return vipVerdict(req, res)
}

func vipVerdict(req VipRequest, res *rs.Result) (string, error) {
	if !res.Valid() {
		return "", newValidationError(res)
	}
	return fmt.Sprintf("validation passed: user %s, VIP level %d, discount %d%%",
		*req.Name, *req.VipLevel, *req.DiscountRate), nil
}

// withTimeout bounds every call of exists by d.
func withTimeout(exists rs.ExistsFunc, d time.Duration) rs.ExistsFunc {
	return func(ctx context.Context, value string) (bool, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return exists(ctx, value)
	}
}
