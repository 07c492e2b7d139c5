package student

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/vianuedu/backend/core"
)

var (
	genderTag  = "gender"
	genderText = "student must be either male (M) or female (F)"

	gradeLetterTag   = "gradeletter"
	gradeLetterText  = "the grade letter must be one letter long, between A and Z"
	gradeLetterRegex = regexp.MustCompile(`^[A-Z]$`)

	statusTag  = "studentstatus"
	statusText = "student must be either active, absent, on vacation, or graduated"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(genderTag, genderValidation)
	core.RegisterCustomTranslation(genderTag, genderText)

	_ = core.Validate.RegisterValidation(gradeLetterTag, gradeLetterValidation)
	core.RegisterCustomTranslation(gradeLetterTag, gradeLetterText)

	_ = core.Validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(statusTag, statusText)
}

// Custom Validators

func genderValidation(fl validator.FieldLevel) bool {
	return Gender(fl.Field().String()).IsValid()
}

func gradeLetterValidation(fl validator.FieldLevel) bool {
	return gradeLetterRegex.MatchString(fl.Field().String())
}

func statusValidation(fl validator.FieldLevel) bool {
	return Status(fl.Field().String()).IsValid()
}
