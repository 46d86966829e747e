package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormDraftReadsOnlyActiveVariant(t *testing.T) {
	form := Form{
		FieldName:     "Dune",
		FieldPrice:    " 9.99 ",
		FieldImageURL: "u",
		FieldType:     "Book",
		FieldWeight:   "2",
		FieldSize:     "not a number",
	}

	draft, err := form.Draft()
	require.NoError(t, err)
	assert.Equal(t, Draft{Name: "Dune", Price: 9.99, ImageURL: "u", Variant: Book{Weight: 2}}, draft)
}

func TestFormDraftFurniture(t *testing.T) {
	draft, err := Form{
		FieldName: "Table", FieldPrice: "100", FieldImageURL: "u", FieldType: "Furniture",
		FieldHeight: "75", FieldWidth: "120", FieldLength: "80",
	}.Draft()
	require.NoError(t, err)
	assert.Equal(t, Furniture{Height: 75, Width: 120, Length: 80}, draft.Variant)
}

func TestFormDraftErrors(t *testing.T) {
	_, err := Form{FieldType: "Vinyl", FieldPrice: "1"}.Draft()
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Form{FieldType: "DVD", FieldPrice: "1", FieldSize: "big"}.Draft()
	assert.ErrorContains(t, err, "field size")
}

func TestParseNumber(t *testing.T) {
	for _, raw := range []string{"12.5", " 7 ", "-3", "1e3", "0"} {
		_, err := ParseNumber(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"", " ", "abc", "NaN", "Inf", "+Inf", "-Infinity", "1e400", "0x1p-2", "-0X10"} {
		_, err := ParseNumber(raw)
		assert.ErrorIs(t, err, ErrNotANumber, raw)
	}
}

func TestFormDraftRejectsInfinity(t *testing.T) {
	_, err := Form{FieldType: "DVD", FieldPrice: "Inf", FieldSize: "1"}.Draft()
	assert.ErrorIs(t, err, ErrNotANumber)
	assert.ErrorContains(t, err, "field price")
}

func TestFormFromMapStringifiesScalars(t *testing.T) {
	form := FormFromMap(map[string]any{
		"name":    "Matrix",
		"price":   12.5,
		"type":    "DVD",
		"size":    700,
		"unknown": "dropped",
	})

	assert.Equal(t, Form{
		FieldName:  "Matrix",
		FieldPrice: "12.5",
		FieldType:  "DVD",
		FieldSize:  "700",
	}, form)
}

func TestFormFromProductPrefillsEditForm(t *testing.T) {
	form := FormFromProduct(Product{
		SKU: "DV00010001", Name: "Matrix", Price: 12.5, ImageURL: "u", Variant: DVD{Size: 700},
	})

	assert.Equal(t, "12.5", form[FieldPrice])
	assert.Equal(t, "700", form[FieldSize])
	assert.Equal(t, "DVD", form[FieldType])
	assert.Equal(t, "", form[FieldWeight])
	assert.Equal(t, "", form[FieldHeight])

	product, err := form.Product("DV00010001")
	require.NoError(t, err)
	assert.Equal(t, DVD{Size: 700}, product.Variant)
	assert.Equal(t, "DV00010001", product.SKU)
}
