package ruleset_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rs "github.com/Gobd/ruleset"
)

func TestValidate(t *testing.T) {
	set := newSignupRules(taken("dup@example.com"))

	tests := []struct {
		name   string
		mutate func(*signup)
		want   map[string]string
	}{
		{
			name:   "valid",
			mutate: func(*signup) {},
			want:   map[string]string{},
		},
		{
			name:   "age below minimum",
			mutate: func(s *signup) { s.Age = ptr(16) },
			want:   map[string]string{"age": "age must be at least 18"},
		},
		{
			name: "every field invalid",
			mutate: func(s *signup) {
				*s = signup{Name: ptr("W"), Email: ptr("invalid"), Age: ptr(15), Password: ptr("123")}
			},
			want: map[string]string{
				"name":     "name must be 2-50 characters",
				"email":    "email is invalid",
				"age":      "age must be at least 18",
				"password": "password must be at least 8 characters",
			},
		},
		{
			name:   "email taken",
			mutate: func(s *signup) { s.Email = ptr("dup@example.com") },
			want:   map[string]string{"email": "email is already registered"},
		},
		{
			name:   "all absent",
			mutate: func(s *signup) { *s = signup{} },
			want: map[string]string{
				"name":     "name is required",
				"email":    "email is required",
				"age":      "age is required",
				"password": "password is required",
			},
		},
		{
			name:   "blank name",
			mutate: func(s *signup) { s.Name = ptr("   ") },
			want:   map[string]string{"name": "name is required"},
		},
		{
			name:   "empty name reports length",
			mutate: func(s *signup) { s.Name = ptr("") },
			want:   map[string]string{"name": "name must be 2-50 characters"},
		},
		{
			name:   "age at upper bound",
			mutate: func(s *signup) { s.Age = ptr(150) },
			want:   map[string]string{},
		},
		{
			name:   "age above maximum",
			mutate: func(s *signup) { s.Age = ptr(151) },
			want:   map[string]string{"age": "age must be at most 150"},
		},
		{
			name:   "senior level too young",
			mutate: func(s *signup) { s.Level = ptr(3) },
			want:   map[string]string{"seniorLevel": "level 3 requires age 30 or above"},
		},
		{
			name:   "senior level old enough",
			mutate: func(s *signup) { s.Level, s.Age = ptr(3), ptr(30) },
			want:   map[string]string{},
		},
		{
			name:   "record rule runs after field failures",
			mutate: func(s *signup) { s.Level, s.Name = ptr(3), ptr("W") },
			want: map[string]string{
				"name":        "name must be 2-50 characters",
				"seniorLevel": "level 3 requires age 30 or above",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validSignup()
			tt.mutate(&rec)

			res, err := rs.Validate(context.Background(), rec, set)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Map())
			assert.Equal(t, len(tt.want) == 0, res.Valid())
			assert.Equal(t, len(tt.want), res.Len())
		})
	}
}

func TestValidateOrderAndCodes(t *testing.T) {
	set := newSignupRules(taken())
	rec := signup{Name: ptr("W"), Email: ptr("invalid"), Age: ptr(15), Password: ptr("123"), Level: ptr(3)}

	res, err := set.Validate(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "email", "age", "password", "seniorLevel"}, res.Keys())
	assert.Equal(t, []rs.Violation{
		{Key: "name", Message: "name must be 2-50 characters", Code: "validation_length_out_of_range"},
		{Key: "email", Message: "email is invalid", Code: "validation_match_invalid"},
		{Key: "age", Message: "age must be at least 18", Code: "validation_out_of_range"},
		{Key: "password", Message: "password must be at least 8 characters", Code: "validation_length_out_of_range"},
		{Key: "seniorLevel", Message: "level 3 requires age 30 or above", Code: "validation_record_rule"},
	}, res.Violations())

	msg, ok := res.Get("email")
	assert.True(t, ok)
	assert.Equal(t, "email is invalid", msg)
	assert.False(t, res.Has("missing"))

	errs := res.Errors()
	require.Len(t, errs, 5)
	var verr validation.Error
	require.ErrorAs(t, errs["age"], &verr)
	assert.Equal(t, "validation_out_of_range", verr.Code())
	assert.Error(t, res.Err())
}

func TestValidateRunsEveryRule(t *testing.T) {
	var looked []string
	set := newSignupRules(func(_ context.Context, v string) (bool, error) {
		looked = append(looked, v)
		return false, nil
	})

	rec := validSignup()
	rec.Email = ptr("invalid")
	res, err := set.Validate(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"invalid"}, looked)
	assert.Equal(t, map[string]string{"email": "email is invalid"}, res.Map())
}

func TestValidateLaterFailureOverwrites(t *testing.T) {
	set := newSignupRules(taken("invalid"))
	rec := validSignup()
	rec.Name, rec.Email, rec.Password = ptr(""), ptr("invalid"), ptr("")

	res, err := set.Validate(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, []rs.Violation{
		{Key: "name", Message: "name must be 2-50 characters", Code: "validation_length_out_of_range"},
		{Key: "email", Message: "email is already registered", Code: "validation_not_unique"},
		{Key: "password", Message: "password must be at least 8 characters", Code: "validation_length_out_of_range"},
	}, res.Violations())
}

func TestValidateMalformedValueLookupFailure(t *testing.T) {
	boom := errors.New("database unavailable")
	set := newSignupRules(func(context.Context, string) (bool, error) { return false, boom })

	rec := validSignup()
	rec.Email = ptr("invalid")
	res, err := set.Validate(context.Background(), rec)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, rs.ErrCollaborator)
	assert.ErrorIs(t, err, boom)
}

func TestValidateCollaboratorFailure(t *testing.T) {
	boom := errors.New("database unavailable")
	set := newSignupRules(func(context.Context, string) (bool, error) { return false, boom })

	res, err := set.Validate(context.Background(), validSignup())
	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, rs.ErrCollaborator)
	assert.ErrorIs(t, err, boom)

	var cf *rs.CollaboratorFailure
	require.ErrorAs(t, err, &cf)
	assert.Equal(t, "email", cf.Field)
}

func TestValidateLookupTimeout(t *testing.T) {
	set := newSignupRules(func(ctx context.Context, _ string) (bool, error) {
		<-ctx.Done()
		return false, ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := set.Validate(ctx, validSignup())
	assert.ErrorIs(t, err, rs.ErrCollaborator)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestValidateIsIdempotent(t *testing.T) {
	set := newSignupRules(taken("dup@example.com"))
	rec := signup{Name: ptr("W"), Email: ptr("dup@example.com"), Age: ptr(15)}

	first, err := set.Validate(context.Background(), rec)
	require.NoError(t, err)
	second, err := set.Validate(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, first.Violations(), second.Violations())
}

func TestValidateConfigurationErrors(t *testing.T) {
	_, err := rs.Validate[signup](context.Background(), validSignup(), nil)
	assert.ErrorIs(t, err, rs.ErrConfiguration)

	set := rs.MustNew(rs.Fields{"name": nil}, []*rs.FieldRules{
		rs.Field("name", rs.NotBlank("name is required"), rs.Length(2, 50, "name must be 2-50 characters")),
	})

	_, err = set.Validate(context.Background(), nil)
	assert.ErrorIs(t, err, rs.ErrConfiguration)

	_, err = set.Validate(context.Background(), rs.Fields{"other": "x"})
	var cerr *rs.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "name", cerr.Field)

	_, err = set.Validate(context.Background(), rs.Fields{"name": 42})
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, rs.KindNotBlank, cerr.Kind)
}

func TestValidateFields(t *testing.T) {
	set := rs.MustNew(rs.Fields{"phone": ""}, []*rs.FieldRules{
		rs.Field("phone", rs.NotBlank("phone is required"), rs.Match(`\+?[0-9-]{6,20}`, "phone is invalid")),
	})

	res, err := set.Validate(context.Background(), rs.Fields{"phone": "0912-345-678"})
	require.NoError(t, err)
	assert.True(t, res.Valid())
	assert.NoError(t, res.Err())

	res, err = set.Validate(context.Background(), rs.Fields{"phone": "call me"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"phone": "phone is invalid"}, res.Map())
}

func TestDecodeAndValidate(t *testing.T) {
	set := newSignupRules(taken("dup@example.com"))

	body := `{"name":"Zhang San","email":"  DUP@Example.com ","age":25,"password":"longenough1"}`
	rec, res, err := rs.DecodeAndValidate(context.Background(), strings.NewReader(body), set)
	require.NoError(t, err)
	assert.Equal(t, "dup@example.com", *rec.Email)
	assert.Equal(t, map[string]string{"email": "email is already registered"}, res.Map())

	_, res, err = rs.UnmarshalAndValidate(context.Background(), []byte(`{"name":`), set)
	assert.Nil(t, res)
	var derr *rs.DecodeError
	assert.ErrorAs(t, err, &derr)
}
