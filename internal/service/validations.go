package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("human_name", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a space, hyphen or apostrophe
				if i == 0 && !unicode.IsLetter(char) {
					return false
				}
				// Letters, spaces, hyphens and apostrophes only
				if !unicode.IsLetter(char) && char != ' ' && char != '-' && char != '\'' {
					return false
				}
			}
			return true
		})
	})
}
