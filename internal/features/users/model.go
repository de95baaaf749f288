package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored account document. The bcrypt hash and the current bearer
// token never leave the process: both are excluded from JSON marshaling and
// absent from the Public projection.
type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email          string               `bson:"email" json:"email"`
	HashedPassword string               `bson:"hashedPassword" json:"-"`
	IsAdmin        bool                 `bson:"isAdmin" json:"isAdmin"`
	Favorite       []primitive.ObjectID `bson:"favorite" json:"favorite"`
	WatchList      []primitive.ObjectID `bson:"watchList" json:"watchList"`
	AvatarURL      string               `bson:"avatarUrl" json:"avatarUrl"`
	Token          string               `bson:"token" json:"-"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Public is the outward representation of a user. Every handler that
// serializes a user goes through this type, so no route can leak the
// credential fields by accident.
type Public struct {
	ID        primitive.ObjectID   `json:"id"`
	Email     string               `json:"email"`
	IsAdmin   bool                 `json:"isAdmin"`
	Favorite  []primitive.ObjectID `json:"favorite"`
	WatchList []primitive.ObjectID `json:"watchList"`
	AvatarURL string               `json:"avatarUrl"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Public projects the user for external consumption.
func (u *User) Public() *Public {
	return &Public{
		ID:        u.ID,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Favorite:  u.Favorite,
		WatchList: u.WatchList,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// SignUpRequest is the payload for account creation
type SignUpRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"hunter22"`
}

// SignInRequest is the payload for authentication
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest carries the old and new credentials
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// AuthResponse is returned on successful sign-in
type AuthResponse struct {
	Token string  `json:"token"`
	User  *Public `json:"user"`
}
