// Package schema holds the declarative payload schemas and the validator
// that checks inbound bodies against them. The schema table is built once at
// startup and never mutated; validation reports every violated field in one
// pass so callers can render a complete error list.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind identifies which declarative schema applies to a payload.
type Kind string

const (
	KindCategory     Kind = "category"
	KindContent      Kind = "content"
	KindCredentials  Kind = "credentials"
	KindRegistration Kind = "registration"
)

// FieldReason is a single field-level violation.
type FieldReason struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the full list of violated fields for one payload.
type ValidationError struct {
	Reasons []FieldReason
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Reasons))
	for _, r := range e.Reasons {
		parts = append(parts, r.Field+" "+r.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// CategoryPayload is the accepted shape for category creation and update.
type CategoryPayload struct {
	Name        string   `json:"name" validate:"required"`
	Cover       string   `json:"cover" validate:"required,url"`
	Permissions []string `json:"permissions" validate:"required,min=1,dive,oneof=text images videos"`
}

// ContentPayload is the accepted shape for content creation and update.
// Which of the optional fields may actually be populated is decided later
// against the referenced category's permission set.
type ContentPayload struct {
	NameTheme   string `json:"name_theme" validate:"required"`
	URLImage    string `json:"url_image" validate:"omitempty,url"`
	URLVideo    string `json:"url_video" validate:"omitempty,url"`
	ContentText string `json:"content_text"`
	Credits     string `json:"credits"`
}

// CredentialsPayload is the accepted shape for login.
type CredentialsPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegistrationPayload is the accepted shape for account registration.
type RegistrationPayload struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user readers"`
}

// Validator checks payloads against the schema registered for their kind.
type Validator struct {
	validate *validator.Validate
	kinds    map[Kind]func() interface{}
}

// NewValidator builds the immutable schema table.
func NewValidator() *Validator {
	v := validator.New()
	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: v,
		kinds: map[Kind]func() interface{}{
			KindCategory:     func() interface{} { return &CategoryPayload{} },
			KindContent:      func() interface{} { return &ContentPayload{} },
			KindCredentials:  func() interface{} { return &CredentialsPayload{} },
			KindRegistration: func() interface{} { return &RegistrationPayload{} },
		},
	}
}

// Validate decodes the body and checks it against the schema for the kind.
// On failure it returns a ValidationError listing every violated field.
func (v *Validator) Validate(kind Kind, body io.Reader) (interface{}, error) {
	proto, ok := v.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
	payload := proto()

	dec := json.NewDecoder(body)
	if err := dec.Decode(payload); err != nil {
		return nil, &ValidationError{Reasons: []FieldReason{
			{Field: "body", Reason: "must be valid JSON"},
		}}
	}

	if err := v.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		reasons := make([]FieldReason, 0, len(verrs))
		for _, fe := range verrs {
			reasons = append(reasons, FieldReason{Field: fe.Field(), Reason: reasonFor(fe)})
		}
		return nil, &ValidationError{Reasons: reasons}
	}

	return payload, nil
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
