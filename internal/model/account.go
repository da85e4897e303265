package model

import (
	"github.com/unipoint-lab/appcore/internal/entity"
)

type ListStudentsFilter struct {
	Page         int
	Search       string
	UniversityID string
	Status       string
}

type StudentPage struct {
	Students   []entity.Student
	Total      int
	TotalPages int
}

type UpsertUniversityForm struct {
	Name      string `structs:"name" validate:"required"`
	ShortName string `structs:"shortName"`
	City      string `structs:"city"`
}

type UpsertPartnerForm struct {
	Name         string `structs:"name" validate:"required"`
	ContactEmail string `structs:"contactEmail" validate:"omitempty,email"`
}

type UpsertCategoryForm struct {
	Name string `structs:"name" validate:"required"`
}
