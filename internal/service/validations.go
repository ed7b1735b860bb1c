package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sgn7/packmate/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := entity.ParseWeekday(fl.Field().String())
			return ok
		})
		validate.RegisterValidation("item_category", func(fl validator.FieldLevel) bool {
			_, ok := entity.ParseCategory(fl.Field().String())
			return ok
		})
	})
}
