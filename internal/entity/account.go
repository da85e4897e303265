package entity

import (
	"time"

	"github.com/unipoint-lab/appcore/pkg/enum"
)

type AccountStatus string

var (
	AccountActive   = enum.New(AccountStatus("ACTIVE"))
	AccountInactive = enum.New(AccountStatus("INACTIVE"))
)

type Student struct {
	ID           string        `mapstructure:"id" structs:"id"`
	FullName     string        `mapstructure:"fullName" structs:"fullName"`
	Email        string        `mapstructure:"email" structs:"email"`
	Phone        string        `mapstructure:"phone" structs:"phone"`
	UniversityID string        `mapstructure:"universityId" structs:"universityId"`
	Status       AccountStatus `mapstructure:"status" structs:"status"`
	Points       int64         `mapstructure:"points" structs:"points"`
	CreatedAt    time.Time     `mapstructure:"createdAt" structs:"-"`
}

type University struct {
	ID        string        `mapstructure:"id" structs:"id"`
	Name      string        `mapstructure:"name" structs:"name"`
	ShortName string        `mapstructure:"shortName" structs:"shortName"`
	City      string        `mapstructure:"city" structs:"city"`
	Status    AccountStatus `mapstructure:"status" structs:"status"`
}

type Partner struct {
	ID           string        `mapstructure:"id" structs:"id"`
	Name         string        `mapstructure:"name" structs:"name"`
	ContactEmail string        `mapstructure:"contactEmail" structs:"contactEmail"`
	Status       AccountStatus `mapstructure:"status" structs:"status"`
}
