package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"master_ms/pkg/apperr"
)

var (
	alphaSpace     = regexp.MustCompile(`^[A-Za-z\s&]+$`)
	alphaSpaceDash = regexp.MustCompile(`^[A-Za-z\s&-]+$`)

	once     sync.Once
	validate *validator.Validate
)

// Validator 与 gin 共用 binding 标签
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.SetTagName("binding")
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("alpha_space", func(fl validator.FieldLevel) bool {
			return alphaSpace.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("alpha_space_dash", func(fl validator.FieldLevel) bool {
			return alphaSpaceDash.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate 校验结构体，失败时返回 400，消息取字段 msg 标签
//
//	msg:"required=Please enter state name.;alpha_space=Name must contain only alphabetic characters."
func Validate(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.BadRequest("Invalid payload.").WithErr(err)
	}

	fe := fieldErrs[0]
	return apperr.BadRequest(fieldMessage(s, fe)).WithErr(err)
}

func fieldMessage(s interface{}, fe validator.FieldError) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			for _, rule := range strings.Split(f.Tag.Get("msg"), ";") {
				tag, text, found := strings.Cut(rule, "=")
				if found && strings.TrimSpace(tag) == fe.Tag() {
					return strings.TrimSpace(text)
				}
			}
		}
	}
	return fe.Field() + " is invalid."
}
