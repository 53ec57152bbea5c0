package user

import (
	rs "github.com/Gobd/ruleset"
)

// Violation messages. They are static so that a translation layer can key on
// them.
const (
	MsgNameRequired     = "name must not be blank"
	MsgNameLength       = "name must be between 2 and 50 characters"
	MsgEmailRequired    = "email must not be blank"
	MsgEmailInvalid     = "email is not a valid address"
	MsgEmailTaken       = "email is already registered"
	MsgAgeRequired      = "age must not be null"
	MsgAgeMin           = "age must be at least 18"
	MsgAgeMax           = "age must be at most 150"
	MsgPasswordRequired = "password must not be blank"
	MsgPasswordLength   = "password must be at least 8 characters"
	MsgUserIDRequired   = "user id must not be null"
	MsgPhoneRequired    = "phone must not be blank"
	MsgPhoneInvalid     = "phone must be 6 to 20 digits, optionally with a leading + and dashes"
	MsgVipDiscount      = "VIP level does not match the discount rate"
	MsgPlatinumAge      = "platinum tier is only available from age 30"
	MsgDiscountRange    = "discount rate must be between 0 and 100"
)

// VIP tiers.
const (
	VipRegular = iota
	VipSilver
	VipGold
	VipPlatinum
)

const platinumMinAge = 30

func nameRules() *rs.FieldRules {
	return rs.Field("name", rs.NotBlank(MsgNameRequired), rs.Length(2, 50, MsgNameLength))
}

func ageRules() *rs.FieldRules {
	return rs.Field("age", rs.Required(MsgAgeRequired), rs.AtLeast(18, MsgAgeMin), rs.AtMost(150, MsgAgeMax))
}

// NewRegistrationRules returns the rules for RegistrationRequest. exists
// reports whether an e-mail address is already registered.
func NewRegistrationRules(exists rs.ExistsFunc) (*rs.RuleSet[RegistrationRequest], error) {
	return rs.New(RegistrationRequest{}, []*rs.FieldRules{
		nameRules(),
		rs.Field("email", rs.NotBlank(MsgEmailRequired), rs.Email(MsgEmailInvalid), rs.Unique(exists, MsgEmailTaken)),
		ageRules(),
		rs.Field("password", rs.NotBlank(MsgPasswordRequired), rs.MinLength(8, MsgPasswordLength)),
	})
}

// UserDataRules checks the integrity of a transferred UserData.
var UserDataRules = rs.MustNew(UserData{}, []*rs.FieldRules{
	rs.Field("userId", rs.Required(MsgUserIDRequired)),
	nameRules(),
	rs.Field("email", rs.NotBlank(MsgEmailRequired), rs.Email(MsgEmailInvalid)),
	ageRules(),
})

// PhoneRules checks the newPhone parameter of a profile update.
var PhoneRules = rs.MustNew(rs.Fields{"newPhone": ""}, []*rs.FieldRules{
	rs.Field("newPhone", rs.NotBlank(MsgPhoneRequired), rs.Match(`\+?[0-9][0-9-]{4,18}[0-9]`, MsgPhoneInvalid)),
})

// VipRules checks a VipRequest, including the tier and discount combination.
var VipRules = rs.MustNew(VipRequest{}, []*rs.FieldRules{
	rs.Field("userId", rs.Required(MsgUserIDRequired)),
	nameRules(),
	ageRules(),
},
	rs.Check("validVipDiscount", validVipDiscount, MsgVipDiscount),
	rs.Check("validPlatinumAge", validPlatinumAge, MsgPlatinumAge),
	rs.Check("validDiscountRange", validDiscountRange, MsgDiscountRange),
)

func validVipDiscount(r VipRequest) bool {
	if r.VipLevel == nil || r.DiscountRate == nil {
		return true
	}
	d := *r.DiscountRate
	switch *r.VipLevel {
	case VipRegular:
		return d == 0
	case VipSilver:
		return d >= 5 && d <= 10
	case VipGold:
		return d >= 10 && d <= 20
	case VipPlatinum:
		return d >= 20 && d <= 30
	}
	return false
}

func validPlatinumAge(r VipRequest) bool {
	if r.VipLevel == nil || r.Age == nil || *r.VipLevel != VipPlatinum {
		return true
	}
	return *r.Age >= platinumMinAge
}

func validDiscountRange(r VipRequest) bool {
	if r.DiscountRate == nil {
		return true
	}
	return *r.DiscountRate >= 0 && *r.DiscountRate <= 100
}
