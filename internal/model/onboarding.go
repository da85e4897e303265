package model

// OnboardingForm gates app access until completed. University is required for
// students only; the avatar is optional.
type OnboardingForm struct {
	UserType     string `validate:"required,oneof=STUDENT PARTNER"`
	UniversityID string `validate:"required_if=UserType STUDENT"`
	Phone        string `validate:"required,vnphone"`
	AvatarURL    string `validate:"omitempty,url"`
}
