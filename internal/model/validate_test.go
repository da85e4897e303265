package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

func TestValidate_OnboardingForm(t *testing.T) {
	form := OnboardingForm{
		UserType:     "STUDENT",
		UniversityID: "uni-1",
		Phone:        "0912-345-678",
	}
	require.NoError(t, Validate(form))

	// A student without a university is rejected client-side.
	form.UniversityID = ""
	err := Validate(form)
	require.Error(t, err)

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.BadRequest, xerr.Code)

	// Partners have no university requirement.
	require.NoError(t, Validate(OnboardingForm{UserType: "PARTNER", Phone: "0912345678"}))
}

func TestValidate_OnboardingForm_Phone(t *testing.T) {
	form := OnboardingForm{UserType: "PARTNER", Phone: "0212345678"}
	require.Error(t, Validate(form))
}

func TestValidate_CreateInvoiceForm(t *testing.T) {
	require.NoError(t, Validate(CreateInvoiceForm{ProductID: "p1", Quantity: 1}))
	require.Error(t, Validate(CreateInvoiceForm{ProductID: "p1", Quantity: 0}))
	require.Error(t, Validate(CreateInvoiceForm{Quantity: 1}))
}

func TestValidate_FeedbackForm(t *testing.T) {
	require.NoError(t, Validate(FeedbackForm{Rating: 5}))
	require.Error(t, Validate(FeedbackForm{Rating: 6}))
	require.Error(t, Validate(FeedbackForm{Rating: 0}))
}
