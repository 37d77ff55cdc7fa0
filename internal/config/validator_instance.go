package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/popmenu/internal/components"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	menuIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("menu_id", func(fl validator.FieldLevel) bool {
			return menuIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("menu_mode", func(fl validator.FieldLevel) bool {
			_, ok := model.ParseMode(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("menu_align", func(fl validator.FieldLevel) bool {
			_, ok := position.ParseAlign(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("menu_size", func(fl validator.FieldLevel) bool {
			_, ok := model.ParseSize(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := components.ThemeByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
