package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Task is a single to-do item. IDs are positive integers, unique within a
// store, and stable for the task's lifetime.
type Task struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Text string `json:"text" validate:"required,notblank"`
	Date *Date  `json:"date"`
	Done bool   `json:"done"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

// NewTask builds a validated task. Text is trimmed; empty or whitespace-only
// text is rejected.
func NewTask(id int, text string, date *Date) (Task, error) {
	task := Task{
		ID:   id,
		Text: strings.TrimSpace(text),
		Date: date,
	}
	if err := ValidateStruct(task); err != nil {
		return Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}
	return task, nil
}
