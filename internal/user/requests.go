package user

import (
	"github.com/Gobd/ruleset/transform"
)

// RegistrationRequest is the body of a registration call.
type RegistrationRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Age      *int    `json:"age"`
	Password *string `json:"password"`
}

func (r RegistrationRequest) Lookup(field string) (any, bool) {
	switch field {
	case "name":
		return r.Name, true
	case "email":
		return r.Email, true
	case "age":
		return r.Age, true
	case "password":
		return r.Password, true
	}
	return nil, false
}

// Normalize trims the name and canonicalizes the e-mail address.
func (r *RegistrationRequest) Normalize() {
	transform.TrimSpace(r.Name, r.Email)
	transform.ToLower(r.Email)
}

// UserData carries a stored user between services. It is validated again by
// the receiving side.
type UserData struct {
	UserID *uint   `json:"userId"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Age    *int    `json:"age"`
}

func (d UserData) Lookup(field string) (any, bool) {
	switch field {
	case "userId":
		return d.UserID, true
	case "name":
		return d.Name, true
	case "email":
		return d.Email, true
	case "age":
		return d.Age, true
	}
	return nil, false
}

// UserDataFromUser copies the transferable fields of u.
func UserDataFromUser(u *User) UserData {
	return UserData{
		UserID: &u.ID,
		Name:   &u.Name,
		Email:  &u.Email,
		Age:    &u.Age,
	}
}

// VipRequest asks whether a user qualifies for a VIP tier and discount.
type VipRequest struct {
	UserID       *uint   `json:"userId"`
	Name         *string `json:"name"`
	Age          *int    `json:"age"`
	VipLevel     *int    `json:"vipLevel"`
	DiscountRate *int    `json:"discountRate"`
}

func (r VipRequest) Lookup(field string) (any, bool) {
	switch field {
	case "userId":
		return r.UserID, true
	case "name":
		return r.Name, true
	case "age":
		return r.Age, true
	case "vipLevel":
		return r.VipLevel, true
	case "discountRate":
		return r.DiscountRate, true
	}
	return nil, false
}

// Normalize defaults a missing tier to regular and a missing discount to none.
func (r *VipRequest) Normalize() {
	transform.TrimSpace(r.Name)
	r.VipLevel = transform.Default(r.VipLevel, VipRegular)
	r.DiscountRate = transform.Default(r.DiscountRate, 0)
}

// VipRequestFromUser builds a VipRequest for a stored user.
func VipRequestFromUser(u *User, level, discount int) VipRequest {
	return VipRequest{
		UserID:       &u.ID,
		Name:         &u.Name,
		Age:          &u.Age,
		VipLevel:     &level,
		DiscountRate: &discount,
	}
}
