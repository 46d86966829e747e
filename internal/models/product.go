package models

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnknownType = errors.New("unknown product type")

// ProductType es el discriminante del producto
type ProductType string

const (
	TypeDVD       ProductType = "DVD"
	TypeBook      ProductType = "Book"
	TypeFurniture ProductType = "Furniture"
)

// Types lista los tipos en el orden del formulario
var Types = []ProductType{TypeDVD, TypeBook, TypeFurniture}

// ParseType convierte el valor del formulario en un ProductType
func ParseType(s string) (ProductType, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownType, "%q", s)
}

// Variant agrupa los atributos físicos propios de cada tipo.
// Solo DVD, Book y Furniture la implementan.
type Variant interface {
	Type() ProductType
	Label() string
	formValues() map[string]string
}

// DVD: tamaño en MB
type DVD struct {
	Size float64
}

// Book: peso en kg
type Book struct {
	Weight float64
}

// Furniture: dimensiones en cm
type Furniture struct {
	Height float64
	Width  float64
	Length float64
}

func (DVD) Type() ProductType       { return TypeDVD }
func (Book) Type() ProductType      { return TypeBook }
func (Furniture) Type() ProductType { return TypeFurniture }

func (v DVD) Label() string  { return "Size: " + formatNumber(v.Size) + " MB" }
func (v Book) Label() string { return "Weight: " + formatNumber(v.Weight) + " Kg" }
func (v Furniture) Label() string {
	return fmt.Sprintf("Dimensions: %sx%sx%s", formatNumber(v.Height), formatNumber(v.Width), formatNumber(v.Length))
}

func (v DVD) formValues() map[string]string {
	return map[string]string{FieldSize: formatNumber(v.Size)}
}

func (v Book) formValues() map[string]string {
	return map[string]string{FieldWeight: formatNumber(v.Weight)}
}

func (v Furniture) formValues() map[string]string {
	return map[string]string{
		FieldHeight: formatNumber(v.Height),
		FieldWidth:  formatNumber(v.Width),
		FieldLength: formatNumber(v.Length),
	}
}

// Draft son los datos de un producto antes de asignar SKU y fecha
type Draft struct {
	Name     string
	Price    float64
	ImageURL string
	Variant  Variant
}

// Product representa un producto del catálogo
type Product struct {
	SKU       string
	Name      string
	Price     float64
	ImageURL  string
	CreatedAt int64 // milisegundos Unix
	Variant   Variant
}

// Type devuelve el tipo del producto o "" si no tiene variante
func (p Product) Type() ProductType {
	if p.Variant == nil {
		return ""
	}
	return p.Variant.Type()
}

// AttributeLabel describe el atributo del tipo, p. ej. "Size: 700 MB"
func (p Product) AttributeLabel() string {
	if p.Variant == nil {
		return ""
	}
	return p.Variant.Label()
}

// PriceLabel formatea el precio con dos decimales
func (p Product) PriceLabel() string {
	return "$" + strconv.FormatFloat(p.Price, 'f', 2, 64)
}

// productJSON es la forma plana persistida: los campos de variante
// solo aparecen para el tipo correspondiente.
type productJSON struct {
	SKU       string      `json:"sku"`
	Name      string      `json:"name"`
	Price     float64     `json:"price"`
	ImageURL  string      `json:"imageUrl,omitempty"`
	Type      ProductType `json:"type"`
	CreatedAt int64       `json:"createdAt"`
	Size      *float64    `json:"size,omitempty"`
	Weight    *float64    `json:"weight,omitempty"`
	Height    *float64    `json:"height,omitempty"`
	Width     *float64    `json:"width,omitempty"`
	Length    *float64    `json:"length,omitempty"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	out := productJSON{
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}

	switch v := p.Variant.(type) {
	case DVD:
		out.Type = TypeDVD
		out.Size = &v.Size
	case Book:
		out.Type = TypeBook
		out.Weight = &v.Weight
	case Furniture:
		out.Type = TypeFurniture
		out.Height, out.Width, out.Length = &v.Height, &v.Width, &v.Length
	default:
		return nil, errors.Wrapf(ErrUnknownType, "product %s", p.SKU)
	}

	return json.Marshal(out)
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var in productJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var variant Variant
	switch in.Type {
	case TypeDVD:
		variant = DVD{Size: deref(in.Size)}
	case TypeBook:
		variant = Book{Weight: deref(in.Weight)}
	case TypeFurniture:
		variant = Furniture{Height: deref(in.Height), Width: deref(in.Width), Length: deref(in.Length)}
	default:
		return errors.Wrapf(ErrUnknownType, "%q", in.Type)
	}

	*p = Product{
		SKU:       in.SKU,
		Name:      in.Name,
		Price:     in.Price,
		ImageURL:  in.ImageURL,
		CreatedAt: in.CreatedAt,
		Variant:   variant,
	}
	return nil
}

// EncodeProducts serializa la colección completa
func EncodeProducts(products []Product) (string, error) {
	if products == nil {
		products = []Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeProducts deserializa la colección completa
func DecodeProducts(raw string) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
