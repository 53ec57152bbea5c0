package ruleset_test

import (
	"context"
	"strings"

	rs "github.com/Gobd/ruleset"
)

type signup struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Age      *int    `json:"age"`
	Password *string `json:"password"`
	Level    *int    `json:"level"`
}

func (s signup) Lookup(field string) (any, bool) {
	switch field {
	case "name":
		return s.Name, true
	case "email":
		return s.Email, true
	case "age":
		return s.Age, true
	case "password":
		return s.Password, true
	case "level":
		return s.Level, true
	}
	return nil, false
}

func (s *signup) Normalize() {
	if s.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*s.Email))
		s.Email = &e
	}
}

func ptr[T any](v T) *T { return &v }

func taken(emails ...string) rs.ExistsFunc {
	return func(_ context.Context, v string) (bool, error) {
		for _, e := range emails {
			if e == v {
				return true, nil
			}
		}
		return false, nil
	}
}

func signupFields(exists rs.ExistsFunc) []*rs.FieldRules {
	return []*rs.FieldRules{
		rs.Field("name", rs.NotBlank("name is required"), rs.Length(2, 50, "name must be 2-50 characters")),
		rs.Field("email", rs.NotBlank("email is required"), rs.Email("email is invalid"), rs.Unique(exists, "email is already registered")),
		rs.Field("age", rs.Required("age is required"), rs.AtLeast(18, "age must be at least 18"), rs.AtMost(150, "age must be at most 150")),
		rs.Field("password", rs.NotBlank("password is required"), rs.MinLength(8, "password must be at least 8 characters")),
	}
}

func seniorLevel(s signup) bool {
	if s.Level == nil || s.Age == nil {
		return true
	}
	return *s.Level < 3 || *s.Age >= 30
}

func newSignupRules(exists rs.ExistsFunc) *rs.RuleSet[signup] {
	return rs.MustNew(signup{}, signupFields(exists),
		rs.Check("seniorLevel", seniorLevel, "level 3 requires age 30 or above"),
	)
}

func validSignup() signup {
	return signup{
		Name:     ptr("Zhang San"),
		Email:    ptr("new@example.com"),
		Age:      ptr(25),
		Password: ptr("longenough1"),
	}
}
