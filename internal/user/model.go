// Package user implements registration, profile updates and VIP eligibility
// checks for the demo user service.
package user

import "time"

// User is a registered account.
type User struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:50;not null"`
	Email     string `gorm:"size:254;uniqueIndex;not null"`
	Age       int    `gorm:"not null"`
	Password  string `gorm:"not null"`
	Phone     string `gorm:"size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Response is the public view of a User.
type Response struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponse converts u to its public view.
func ToResponse(u *User) Response {
	return Response{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}
