package testlib

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/vianuedu/backend/core"
)

var (
	testIDTag   = "testid"
	testIDText  = "test ID must be of the form T-000001"
	testIDRegex = regexp.MustCompile(`^T-[0-9]+$`)

	courseTag  = "course"
	courseText = "course must be one of Geo, Phi, Info or Math"

	// A test is administered to a whole grade, so single class designations
	// such as 12B are rejected. Both patterns are full matches.
	gradeLabelTag     = "gradelabel"
	gradeLabelText    = "the administered grade must not be a single class designation"
	classLabelRegexes = []*regexp.Regexp{
		regexp.MustCompile(`^[0-9]\w[A-Z]$`),
		regexp.MustCompile(`^[0-9][A-Z]$`),
	}
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(testIDTag, testIDValidation)
	core.RegisterCustomTranslation(testIDTag, testIDText)

	_ = core.Validate.RegisterValidation(courseTag, courseValidation)
	core.RegisterCustomTranslation(courseTag, courseText)

	_ = core.Validate.RegisterValidation(gradeLabelTag, gradeLabelValidation)
	core.RegisterCustomTranslation(gradeLabelTag, gradeLabelText)
}

// Custom Validators

func testIDValidation(fl validator.FieldLevel) bool {
	return testIDRegex.MatchString(fl.Field().String())
}

func courseValidation(fl validator.FieldLevel) bool {
	return Course(fl.Field().String()).IsValid()
}

func gradeLabelValidation(fl validator.FieldLevel) bool {
	label := fl.Field().String()
	for _, re := range classLabelRegexes {
		if re.MatchString(label) {
			return false
		}
	}
	return true
}
