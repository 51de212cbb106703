package user

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
	RoleUser   = "user"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role" json:"role"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UpdateProfileInput struct {
	Name  *string `json:"name,omitempty"`
	Role  *string `json:"role,omitempty"`
	Photo *string `json:"photo,omitempty"`
}
