package models

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Nombres de los campos del formulario de producto
const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldImageURL = "imageUrl"
	FieldType     = "type"
	FieldSize     = "size"
	FieldWeight   = "weight"
	FieldHeight   = "height"
	FieldWidth    = "width"
	FieldLength   = "length"
)

var formFields = []string{
	FieldName, FieldPrice, FieldImageURL, FieldType,
	FieldSize, FieldWeight, FieldHeight, FieldWidth, FieldLength,
}

var ErrNotANumber = errors.New("not a finite decimal number")

// Form son los valores crudos del formulario, antes de validar
type Form map[string]string

// FormFromMap normaliza un cuerpo JSON arbitrario a valores de texto.
// Las claves desconocidas se descartan.
func FormFromMap(raw map[string]any) Form {
	form := Form{}
	for _, field := range formFields {
		value, ok := raw[field]
		if !ok {
			continue
		}
		s, err := cast.ToStringE(value)
		if err != nil {
			continue
		}
		form[field] = s
	}
	return form
}

// FormFromProduct rellena el formulario de edición con un producto existente
func FormFromProduct(p Product) Form {
	form := Form{
		FieldName:     p.Name,
		FieldPrice:    formatNumber(p.Price),
		FieldImageURL: p.ImageURL,
		FieldType:     string(p.Type()),
		FieldSize:     "",
		FieldWeight:   "",
		FieldHeight:   "",
		FieldWidth:    "",
		FieldLength:   "",
	}
	if p.Variant != nil {
		for k, v := range p.Variant.formValues() {
			form[k] = v
		}
	}
	return form
}

// Draft construye el borrador tipado. Se asume que el formulario ya fue validado;
// solo se leen los campos del tipo seleccionado.
func (f Form) Draft() (Draft, error) {
	t, err := ParseType(f[FieldType])
	if err != nil {
		return Draft{}, err
	}

	price, err := f.number(FieldPrice)
	if err != nil {
		return Draft{}, err
	}

	draft := Draft{
		Name:     f[FieldName],
		Price:    price,
		ImageURL: f[FieldImageURL],
	}

	switch t {
	case TypeDVD:
		size, err := f.number(FieldSize)
		if err != nil {
			return Draft{}, err
		}
		draft.Variant = DVD{Size: size}
	case TypeBook:
		weight, err := f.number(FieldWeight)
		if err != nil {
			return Draft{}, err
		}
		draft.Variant = Book{Weight: weight}
	case TypeFurniture:
		var dims [3]float64
		for i, field := range []string{FieldHeight, FieldWidth, FieldLength} {
			if dims[i], err = f.number(field); err != nil {
				return Draft{}, err
			}
		}
		draft.Variant = Furniture{Height: dims[0], Width: dims[1], Length: dims[2]}
	}

	return draft, nil
}

// Product construye el producto para una actualización; sku y fecha los decide el repositorio
func (f Form) Product(sku string) (Product, error) {
	draft, err := f.Draft()
	if err != nil {
		return Product{}, err
	}
	return Product{
		SKU:      sku,
		Name:     draft.Name,
		Price:    draft.Price,
		ImageURL: draft.ImageURL,
		Variant:  draft.Variant,
	}, nil
}

func (f Form) number(field string) (float64, error) {
	n, err := ParseNumber(f[field])
	if err != nil {
		return 0, errors.Wrapf(err, "field %s", field)
	}
	return n, nil
}

// ParseNumber interpreta un número decimal finito; ignora espacios alrededor.
// Rechaza NaN, infinitos y la notación hexadecimal.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, errors.Wrapf(ErrNotANumber, "%q", s)
	}

	n, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, errors.Wrapf(ErrNotANumber, "%q", s)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errors.Wrapf(ErrNotANumber, "%q", s)
	}
	return n, nil
}
