package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"storefront/internal/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// CreateProductInput is the payload for creating a product. Every field is
// required; price and inventory are pointers so that an absent field can be
// told apart from a legitimate zero.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Slug        string   `json:"slug" validate:"required,slug"`
	Description string   `json:"description" validate:"required,min=10"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required,category"`
	Inventory   *int     `json:"inventory" validate:"required,gte=0"`
}

// Normalize trims surrounding whitespace before validation runs.
func (in *CreateProductInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
}

// UpdateProductInput carries a partial update. Nil fields are left unchanged;
// supplied fields obey the same rules as on create. Slug is intentionally
// absent: it is immutable once a product exists.
type UpdateProductInput struct {
	Name        *string  `json:"name" validate:"omitnil,min=1,max=100"`
	Description *string  `json:"description" validate:"omitnil,min=10"`
	Category    *string  `json:"category" validate:"omitnil,category"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Inventory   *int     `json:"inventory" validate:"omitnil,gte=0"`
}

// Normalize trims surrounding whitespace on the supplied text fields.
func (in *UpdateProductInput) Normalize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(in.Name)
	trim(in.Description)
	trim(in.Category)
}

// New returns a validator configured with the storefront's custom rules.
// Field names in validation errors follow the json tags so that error maps
// line up with the wire format.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// slug: lowercase letters, digits, and hyphens only.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	// category: member of the closed category set.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, c := range models.Categories {
			if value == c {
				return true
			}
		}
		return false
	})

	return v
}

// Messages converts a validation error into a field -> human-readable
// message map suitable for returning to API clients.
func Messages(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["payload"] = err.Error()
		return out
	}

	for _, e := range verrs {
		out[e.Field()] = message(e)
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", e.Field())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("Field '%s' cannot be more than %s characters", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("Field '%s' must be a non-negative number", e.Field())
	case "slug":
		return fmt.Sprintf("Field '%s' may only contain lowercase letters, digits, and hyphens", e.Field())
	case "category":
		return fmt.Sprintf("Field '%s' must be one of: %s", e.Field(), strings.Join(models.Categories, ", "))
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag())
	}
}
