package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rs "github.com/Gobd/ruleset"
)

func ptr[T any](v T) *T { return &v }

func lookup(claimed ...string) rs.ExistsFunc {
	return func(_ context.Context, email string) (bool, error) {
		for _, c := range claimed {
			if c == email {
				return true, nil
			}
		}
		return false, nil
	}
}

func registration(name, email string, age int, password string) RegistrationRequest {
	return RegistrationRequest{Name: &name, Email: &email, Age: &age, Password: &password}
}

func TestRegistrationRules(t *testing.T) {
	tests := []struct {
		name   string
		req    RegistrationRequest
		exists rs.ExistsFunc
		want   map[string]string
	}{
		{
			name:   "all valid",
			req:    registration("Zhang San", "new@example.com", 25, "longenough1"),
			exists: lookup(),
			want:   map[string]string{},
		},
		{
			name:   "underage",
			req:    registration("Zhang San", "new@example.com", 16, "longenough1"),
			exists: lookup(),
			want:   map[string]string{"age": MsgAgeMin},
		},
		{
			name:   "everything wrong",
			req:    registration("W", "invalid", 15, "123"),
			exists: lookup(),
			want: map[string]string{
				"name":     MsgNameLength,
				"email":    MsgEmailInvalid,
				"age":      MsgAgeMin,
				"password": MsgPasswordLength,
			},
		},
		{
			name:   "email already registered",
			req:    registration("Zhang San", "dup@example.com", 25, "longenough1"),
			exists: lookup("dup@example.com"),
			want:   map[string]string{"email": MsgEmailTaken},
		},
		{
			name:   "nothing given",
			req:    RegistrationRequest{},
			exists: lookup(),
			want: map[string]string{
				"name":     MsgNameRequired,
				"email":    MsgEmailRequired,
				"age":      MsgAgeRequired,
				"password": MsgPasswordRequired,
			},
		},
		{
			name:   "empty strings",
			req:    registration("", "", 25, ""),
			exists: lookup(),
			want: map[string]string{
				"name":     MsgNameLength,
				"email":    MsgEmailInvalid,
				"password": MsgPasswordLength,
			},
		},
		{
			name:   "too old",
			req:    registration("Zhang San", "new@example.com", 151, "longenough1"),
			exists: lookup(),
			want:   map[string]string{"age": MsgAgeMax},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewRegistrationRules(tt.exists)
			require.NoError(t, err)

			res, err := set.Validate(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Map())
			assert.Equal(t, len(tt.want) == 0, res.Valid())
		})
	}
}

func TestRegistrationRulesLookupFailure(t *testing.T) {
	boom := errors.New("too many connections")
	set, err := NewRegistrationRules(func(context.Context, string) (bool, error) { return false, boom })
	require.NoError(t, err)

	res, err := set.Validate(context.Background(), registration("Zhang San", "new@example.com", 25, "longenough1"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, rs.ErrCollaborator)
	assert.ErrorIs(t, err, boom)
}

func TestRegistrationRulesLookupFailureOnMalformedEmail(t *testing.T) {
	boom := errors.New("too many connections")
	set, err := NewRegistrationRules(func(context.Context, string) (bool, error) { return false, boom })
	require.NoError(t, err)

	_, err = set.Validate(context.Background(), registration("W", "invalid", 15, "123"))
	assert.ErrorIs(t, err, rs.ErrCollaborator)
}

func TestRegistrationRulesNeedLookup(t *testing.T) {
	_, err := NewRegistrationRules(nil)
	assert.ErrorIs(t, err, rs.ErrConfiguration)
}

func vip(level, discount, age int) VipRequest {
	return VipRequest{
		UserID:       ptr(uint(1)),
		Name:         ptr("Zhang San"),
		Age:          &age,
		VipLevel:     &level,
		DiscountRate: &discount,
	}
}

func TestVipRules(t *testing.T) {
	tests := []struct {
		name string
		req  VipRequest
		want map[string]string
	}{
		{"regular without discount", vip(VipRegular, 0, 25), map[string]string{}},
		{"regular with discount", vip(VipRegular, 5, 25), map[string]string{"validVipDiscount": MsgVipDiscount}},
		{"silver lower bound", vip(VipSilver, 5, 25), map[string]string{}},
		{"silver upper bound", vip(VipSilver, 10, 25), map[string]string{}},
		{"silver too generous", vip(VipSilver, 11, 25), map[string]string{"validVipDiscount": MsgVipDiscount}},
		{"gold", vip(VipGold, 15, 25), map[string]string{}},
		{"gold too stingy", vip(VipGold, 9, 25), map[string]string{"validVipDiscount": MsgVipDiscount}},
		{"platinum under 30", vip(VipPlatinum, 25, 25), map[string]string{"validPlatinumAge": MsgPlatinumAge}},
		{"platinum at 30", vip(VipPlatinum, 25, 30), map[string]string{}},
		{"unknown tier", vip(7, 0, 40), map[string]string{"validVipDiscount": MsgVipDiscount}},
		{
			name: "discount out of range",
			req:  vip(VipGold, 120, 40),
			want: map[string]string{"validVipDiscount": MsgVipDiscount, "validDiscountRange": MsgDiscountRange},
		},
		{
			name: "field and record failures together",
			req:  VipRequest{Name: ptr("W"), Age: ptr(25), VipLevel: ptr(VipPlatinum), DiscountRate: ptr(40)},
			want: map[string]string{
				"userId":           MsgUserIDRequired,
				"name":             MsgNameLength,
				"validVipDiscount": MsgVipDiscount,
				"validPlatinumAge": MsgPlatinumAge,
			},
		},
		{
			name: "record rules skip missing tier",
			req:  VipRequest{UserID: ptr(uint(1)), Name: ptr("Zhang San"), Age: ptr(20)},
			want: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := VipRules.Validate(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Map())
		})
	}
}

func TestVipRequestNormalize(t *testing.T) {
	req := VipRequest{Name: ptr("  Zhang San ")}
	req.Normalize()

	assert.Equal(t, "Zhang San", *req.Name)
	assert.Equal(t, VipRegular, *req.VipLevel)
	assert.Equal(t, 0, *req.DiscountRate)
}

func TestUserDataRules(t *testing.T) {
	u := &User{ID: 3, Name: "Zhang San", Email: "zs@example.com", Age: 40}
	res, err := UserDataRules.Validate(context.Background(), UserDataFromUser(u))
	require.NoError(t, err)
	assert.True(t, res.Valid())

	res, err = UserDataRules.Validate(context.Background(), UserData{Name: ptr("Zhang San"), Email: ptr("zs@example.com")})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"userId": MsgUserIDRequired, "age": MsgAgeRequired}, res.Map())
}

func TestPhoneRules(t *testing.T) {
	for phone, valid := range map[string]bool{
		"0912345678":      true,
		"+886-912-345678": true,
		"12345":           false,
		"":                false,
		"09123-":          false,
		"call me":         false,
	} {
		res, err := PhoneRules.Validate(context.Background(), rs.Fields{"newPhone": phone})
		require.NoError(t, err)
		assert.Equal(t, valid, res.Valid(), phone)
	}
}
