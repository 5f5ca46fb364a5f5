package validate

import (
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

/* Набор символов из исторического правила сложности пароля.
 * Менять нельзя — уже выданные пароли проверялись по нему. */
const passwordSymbols = "@$!%*?&"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=320"`
	Password  string `json:"password" validate:"required,min=8,complexity"`
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
}

/* На логине пароль проверяется только на непустоту: требовать сложность
 * от уже существующего пароля бессмысленно. Асимметрия намеренная. */
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required"`
}

var messages = map[string]string{
	"email":     "Invalid email address",
	"password":  "Password must be at least 8 characters long and contain uppercase, lowercase, number and special character",
	"firstName": "First name is required and must be less than 50 characters",
	"lastName":  "Last name is required and must be less than 50 characters",
}

func messageFor(field string, tag string) string {
	if field == "password" && tag == "required" {
		return "Password is required"
	}
	if message, found := messages[field]; found {
		return message
	}
	return "Invalid value"
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	/* В ошибках валидации поля называются как в JSON, а не как в Go. */
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("complexity", passwordComplexity); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

func passwordComplexity(fl validator.FieldLevel) bool {
	var lower, upper, digit, symbol bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

/* Registration нормализует payload на месте и возвращает упорядоченный
 * список ошибок. Пустой список означает, что payload принят. */
func (validate *Validator) Registration(req *RegisterRequest) []FieldError {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if errs := validate.check(req); len(errs) > 0 {
		return errs
	}

	/* Экранирование после проверки длины, иначе "O'Brien"
	 * не прошёл бы по лимиту из-за &#39;. */
	req.FirstName = html.EscapeString(req.FirstName)
	req.LastName = html.EscapeString(req.LastName)
	return nil
}

func (validate *Validator) Login(req *LoginRequest) []FieldError {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	return validate.check(req)
}

func (validate *Validator) check(req interface{}) []FieldError {
	err := validate.v.Struct(req)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "Invalid request"}}
	}
	result := make([]FieldError, 0, len(validationErrors))
	seen := make(map[string]struct{}, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		/* Одно сообщение на поле, даже если сработало несколько правил. */
		if _, duplicate := seen[field]; duplicate {
			continue
		}
		seen[field] = struct{}{}
		result = append(result, FieldError{Field: field, Message: messageFor(field, fieldError.Tag())})
	}
	return result
}
