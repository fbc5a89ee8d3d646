// Package forms validates submitted form values. Each form is a plain
// struct whose rules are declared as validator tags; Validate returns a
// field-to-message map that is empty when the input is acceptable.
package forms

import (
	"net/url"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("form")
	})
}

type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type RegisterForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type NewTaskForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Deadline    string `form:"deadline" validate:"required"`
	Status      string `form:"status" validate:"required"`
}

func NewLoginForm(values url.Values) *LoginForm {
	return &LoginForm{
		Email:    values.Get("email"),
		Password: values.Get("password"),
	}
}

func NewRegisterForm(values url.Values) *RegisterForm {
	return &RegisterForm{
		Name:     values.Get("name"),
		Email:    values.Get("email"),
		Password: values.Get("password"),
	}
}

func NewTaskFormFrom(values url.Values) *NewTaskForm {
	return &NewTaskForm{
		Title:       values.Get("title"),
		Description: values.Get("description"),
		Deadline:    values.Get("deadline"),
		Status:      values.Get("status"),
	}
}

func (f *LoginForm) Validate() map[string]string    { return check(f) }
func (f *RegisterForm) Validate() map[string]string { return check(f) }
func (f *NewTaskForm) Validate() map[string]string  { return check(f) }

func check(form any) map[string]string {
	errs := map[string]string{}

	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	for _, fe := range err.(validator.ValidationErrors) {
		switch fe.Tag() {
		case "required":
			errs[fe.Field()] = "This field is required"
		default:
			errs[fe.Field()] = "This field is invalid"
		}
	}

	return errs
}
