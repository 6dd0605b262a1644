package models

import (
	"time"

	"github.com/snapwork/snapwork/internal/geo"
)

// User roles
const (
	UserTypeCustomer = "customer"
	UserTypeWorker   = "worker"
)

type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	Password  string    `db:"password" json:"password,omitempty"`
	UserType  string    `db:"user_type" json:"userType"`
	Location  string    `db:"location" json:"location,omitempty"`
	Lat       *float64  `db:"lat" json:"lat,omitempty"`
	Lng       *float64  `db:"lng" json:"lng,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type RegisterRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=100"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone" validate:"omitempty,min=10,max=15"`
	Password string   `json:"password" validate:"required,min=6"`
	UserType string   `json:"userType" validate:"required,oneof=customer worker"`
	Location string   `json:"location"`
	Lat      *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng      *float64 `json:"lng" validate:"omitempty,longitude"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the wire form of a user. It never carries the credential.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	UserType  string    `json:"userType"`
	Location  string    `json:"location,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		UserType:  u.UserType,
		Location:  u.Location,
		Lat:       u.Lat,
		Lng:       u.Lng,
		CreatedAt: u.CreatedAt,
	}
}

// IsWorker reports whether the user registered in the worker role.
func (u *User) IsWorker() bool {
	return u.UserType == UserTypeWorker
}

// HasCoords reports whether the user carries a full coordinate pair.
func (u *User) HasCoords() bool {
	return u.Lat != nil && u.Lng != nil
}

// Coords returns the user's location as a geo point. Only valid when
// HasCoords is true.
func (u *User) Coords() geo.Point {
	var p geo.Point
	if u.Lat != nil {
		p.Lat = *u.Lat
	}
	if u.Lng != nil {
		p.Lng = *u.Lng
	}
	return p
}
