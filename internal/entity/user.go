package entity

import (
	"github.com/unipoint-lab/appcore/pkg/enum"
)

type UserType string

var (
	UserStudent = enum.New(UserType("STUDENT"))
	UserPartner = enum.New(UserType("PARTNER"))
	UserAdmin   = enum.New(UserType("ADMIN"))
)

// User is the current identity as the backend sees it (GET /me). Identity
// provider custom attributes may lag behind it until the session refreshes.
type User struct {
	ID           string   `mapstructure:"id" structs:"id"`
	Email        string   `mapstructure:"email" structs:"email"`
	FullName     string   `mapstructure:"fullName" structs:"fullName"`
	Phone        string   `mapstructure:"phone" structs:"phone"`
	UserType     UserType `mapstructure:"userType" structs:"userType"`
	UniversityID string   `mapstructure:"universityId" structs:"universityId"`
	AvatarURL    string   `mapstructure:"avatarUrl" structs:"avatarUrl"`
	Points       int64    `mapstructure:"points" structs:"points"`
}
