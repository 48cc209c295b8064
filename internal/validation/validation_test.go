package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/validation"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func validCreateInput() validation.CreateProductInput {
	return validation.CreateProductInput{
		Name:        "USB-C Cable",
		Slug:        "usb-c-cable",
		Description: "Durable charging cable for devices.",
		Price:       floatPtr(12.99),
		Category:    "Accessories",
		Inventory:   intPtr(150),
	}
}

func TestCreateProductInput_Valid(t *testing.T) {
	v := validation.New()

	input := validCreateInput()
	input.Normalize()

	assert.NoError(t, v.Struct(input))
}

func TestCreateProductInput_FieldRules(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		mutate   func(*validation.CreateProductInput)
		badField string
	}{
		{"missing name", func(in *validation.CreateProductInput) { in.Name = "" }, "name"},
		{"whitespace-only name", func(in *validation.CreateProductInput) { in.Name = "   " }, "name"},
		{"name too long", func(in *validation.CreateProductInput) { in.Name = strings.Repeat("a", 101) }, "name"},
		{"missing slug", func(in *validation.CreateProductInput) { in.Slug = "" }, "slug"},
		{"uppercase slug", func(in *validation.CreateProductInput) { in.Slug = "USB-C-Cable" }, "slug"},
		{"slug with spaces", func(in *validation.CreateProductInput) { in.Slug = "usb c cable" }, "slug"},
		{"slug with dot", func(in *validation.CreateProductInput) { in.Slug = "hdmi-2.1-cable" }, "slug"},
		{"missing description", func(in *validation.CreateProductInput) { in.Description = "" }, "description"},
		{"short description", func(in *validation.CreateProductInput) { in.Description = "too short" }, "description"},
		{"missing price", func(in *validation.CreateProductInput) { in.Price = nil }, "price"},
		{"negative price", func(in *validation.CreateProductInput) { in.Price = floatPtr(-1) }, "price"},
		{"missing inventory", func(in *validation.CreateProductInput) { in.Inventory = nil }, "inventory"},
		{"negative inventory", func(in *validation.CreateProductInput) { in.Inventory = intPtr(-5) }, "inventory"},
		{"missing category", func(in *validation.CreateProductInput) { in.Category = "" }, "category"},
		{"unknown category", func(in *validation.CreateProductInput) { in.Category = "Gadgets" }, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)
			input.Normalize()

			err := v.Struct(input)
			assert.Error(t, err)

			msgs := validation.Messages(err)
			assert.Contains(t, msgs, tt.badField)
			assert.NotEmpty(t, msgs[tt.badField])
		})
	}
}

// The API boundary accepts a zero price; only negative prices are rejected.
// The admin UI applies the stricter price > 0 rule on its own.
func TestCreateProductInput_ZeroPriceAllowed(t *testing.T) {
	v := validation.New()

	input := validCreateInput()
	input.Price = floatPtr(0)
	input.Normalize()

	assert.NoError(t, v.Struct(input))
}

func TestCreateProductInput_ZeroInventoryAllowed(t *testing.T) {
	v := validation.New()

	input := validCreateInput()
	input.Inventory = intPtr(0)
	input.Normalize()

	assert.NoError(t, v.Struct(input))
}

func TestUpdateProductInput_EmptyIsValid(t *testing.T) {
	v := validation.New()

	input := validation.UpdateProductInput{}
	input.Normalize()

	assert.NoError(t, v.Struct(input))
}

func TestUpdateProductInput_SuppliedFieldsValidated(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		input    validation.UpdateProductInput
		badField string
	}{
		{"empty name", validation.UpdateProductInput{Name: strPtr("  ")}, "name"},
		{"name too long", validation.UpdateProductInput{Name: strPtr(strings.Repeat("x", 101))}, "name"},
		{"short description", validation.UpdateProductInput{Description: strPtr("tiny")}, "description"},
		{"unknown category", validation.UpdateProductInput{Category: strPtr("Furniture")}, "category"},
		{"negative price", validation.UpdateProductInput{Price: floatPtr(-0.01)}, "price"},
		{"negative inventory", validation.UpdateProductInput{Inventory: intPtr(-1)}, "inventory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Normalize()
			err := v.Struct(tt.input)
			assert.Error(t, err)
			assert.Contains(t, validation.Messages(err), tt.badField)
		})
	}
}

func TestUpdateProductInput_ValidPartial(t *testing.T) {
	v := validation.New()

	input := validation.UpdateProductInput{
		Price:     floatPtr(0),
		Inventory: intPtr(0),
		Category:  strPtr("Storage"),
	}
	input.Normalize()

	assert.NoError(t, v.Struct(input))
}
