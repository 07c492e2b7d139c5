package student

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/vianuedu/backend/core"
)

// Genders
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Statuses
type Status string

const (
	StatusActive     Status = "active"
	StatusAbsent     Status = "absent"
	StatusOnVacation Status = "on vacation"
	StatusGraduated  Status = "graduated"
)

var Statuses = []Status{StatusActive, StatusAbsent, StatusOnVacation, StatusGraduated}

func (s Status) IsValid() bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// MaxGrade is the last grade a student can be in; past it they graduate.
const MaxGrade = 12

// Account is an opaque credential pair held on behalf of a student.
// It is stored and serialized but never interpreted by this package.
type Account struct {
	Username     string `json:"username"`
	PasswordHash []byte `json:"-"`
}

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Account) CheckPassword(pwd []byte) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, pwd)
}

// Student identifies a pupil in the system. The amount of fields required to
// construct one is enough to differentiate two potentially similar students.
// All identity fields are fixed at construction; only Grade (via AdvanceGrade)
// and Status (via SetStatus) change afterwards.
type Student struct {
	ID             int     `json:"id"`
	FirstName      string  `json:"first_name"`
	FathersInitial string  `json:"fathers_initial"`
	LastName       string  `json:"last_name"`
	Gender         Gender  `json:"gender"`
	Grade          int     `json:"grade"`
	GradeLetter    string  `json:"grade_letter"`
	Status         Status  `json:"status"`
	Account        Account `json:"account"`

	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

// AdvanceGrade moves the student up by exactly one grade.
// Students already in the last grade cannot advance; graduate them with SetStatus instead.
func (s *Student) AdvanceGrade() error {
	if s.Grade >= MaxGrade {
		return core.NewBoundsError("cannot advance a student's grade higher than 12; graduate them with SetStatus instead")
	}
	s.Grade++
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// SetStatus replaces the student's status after re-validating it.
// The previous status is preserved when the new one is invalid.
func (s *Student) SetStatus(status Status) error {
	if !status.IsValid() {
		return core.NewValidationError(
			errors.New(statusText),
			core.FieldError{Field: "status", Error: statusText},
		)
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// String renders the student as an indented JSON dump, nested account included.
func (s Student) String() string {
	return core.ToIndentedJSON(s)
}

// Placeholder returns the fixed sample student attached to test answer keys.
// This is canned data and deliberately bypasses validation.
func Placeholder() Student {
	return Student{
		FirstName:      "Dexter",
		FathersInitial: "Z",
		LastName:       "Iftode",
		Gender:         GenderMale,
		Grade:          MaxGrade,
		GradeLetter:    "Z",
		Status:         StatusGraduated,
		Account:        Account{Username: "IfDex22"},
	}
}

// NewStudent contains information needed to create a new Student.
// Field order is the validation order; the first violated invariant names the error.
type NewStudent struct {
	FirstName      string `json:"first_name" validate:"required"`
	FathersInitial string `json:"fathers_initial" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Gender         string `json:"gender" validate:"gender"`
	Grade          int    `json:"grade" validate:"gte=1,lte=12"`
	GradeLetter    string `json:"grade_letter" validate:"gradeletter"`
	Status         string `json:"status" validate:"studentstatus"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

func (ns *NewStudent) Validate() error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.FathersInitial = core.CleanString(ns.FathersInitial)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Username = core.CleanString(ns.Username, true)

	if err := core.Validate.Struct(ns); err != nil {
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			return core.TranslateValidationErrors(vErrs)
		}
		return err
	}
	return nil
}

// New validates ns and builds the Student, all-or-nothing: on error no partial
// record is returned. The storage layer assigns the ID.
func New(ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}

	now := time.Now().UTC()
	std := Student{
		FirstName:      ns.FirstName,
		FathersInitial: ns.FathersInitial,
		LastName:       ns.LastName,
		Gender:         Gender(ns.Gender),
		Grade:          ns.Grade,
		GradeLetter:    ns.GradeLetter,
		Status:         Status(ns.Status),
		Account:        Account{Username: ns.Username},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if ns.Password != "" {
		if err := std.Account.SetPassword(ns.Password); err != nil {
			return Student{}, err
		}
	}
	return std, nil
}

// QueryFilter applies an AND operation on its set fields.
type QueryFilter struct {
	Grade       int
	GradeLetter string
	Status      Status
	Search      string // case-insensitive match on one of the name fields
}
