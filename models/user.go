package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role identifies what a user is allowed to do in the salon.
type Role string

const (
	RoleClient  Role = "CLIENTE"
	RoleStylist Role = "ESTILISTA"
	RoleManager Role = "GERENTE"
	RoleAdmin   Role = "ADMIN"
)

// User is a salon account: client, stylist or back-office staff.
// Field keys follow the existing collection schema.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"nombre" json:"nombre"`
	LastName  string             `bson:"apellido,omitempty" json:"apellido,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Role      Role               `bson:"role" json:"role"`
}

// FullName returns "first last", trimmed when the last name is missing.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// AuthUser is the authenticated identity extracted from a bearer token.
type AuthUser struct {
	ID   string
	Role Role
}
