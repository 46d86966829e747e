package validation

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"catalog-manager/internal/models"
)

// Mensajes mostrados junto a cada campo del formulario
const (
	MsgRequired      = "Please, submit required data"
	MsgInvalidNumber = "Please, provide the data of indicated type"
	MsgNegativePrice = "Please, provide a price that is not negative"
	MsgImageURL      = "Please, provide image url"
	MsgType          = "Please, select the product type"
	MsgSize          = "Please, provide size"
	MsgWeight        = "Please, provide weight"
	MsgHeight        = "Please, provide height"
	MsgWidth         = "Please, provide width"
	MsgLength        = "Please, provide length"
)

// Errors mapea campo -> mensaje. Vacío significa formulario válido.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

// Fields devuelve los campos con error en orden alfabético
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

type rule struct {
	field    string
	tags     string
	messages map[string]string // tag -> mensaje; "" es el mensaje por defecto
}

func (r rule) message(tag string) string {
	if msg, ok := r.messages[tag]; ok {
		return msg
	}
	return r.messages[""]
}

var commonRules = []rule{
	{field: models.FieldName, tags: "required", messages: map[string]string{"": MsgRequired}},
	{field: models.FieldPrice, tags: "required,float,nonnegative", messages: map[string]string{
		"":            MsgInvalidNumber,
		"nonnegative": MsgNegativePrice,
	}},
	{field: models.FieldImageURL, tags: "required", messages: map[string]string{"": MsgImageURL}},
}

var variantRules = map[models.ProductType][]rule{
	models.TypeDVD: {
		{field: models.FieldSize, tags: "required,float", messages: map[string]string{"": MsgSize}},
	},
	models.TypeBook: {
		{field: models.FieldWeight, tags: "required,float", messages: map[string]string{"": MsgWeight}},
	},
	models.TypeFurniture: {
		{field: models.FieldHeight, tags: "required,float", messages: map[string]string{"": MsgHeight}},
		{field: models.FieldWidth, tags: "required,float", messages: map[string]string{"": MsgWidth}},
		{field: models.FieldLength, tags: "required,float", messages: map[string]string{"": MsgLength}},
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// float: número decimal finito (se ignoran espacios alrededor)
	_ = v.RegisterValidation("float", func(fl validator.FieldLevel) bool {
		_, ok := parseNumber(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("nonnegative", func(fl validator.FieldLevel) bool {
		n, ok := parseNumber(fl.Field().String())
		return ok && n >= 0
	})
	return v
}

// Validate revisa los campos comunes y solo los del tipo seleccionado
func Validate(form models.Form) Errors {
	errs := Errors{}

	for _, r := range commonRules {
		check(errs, form, r)
	}

	t, err := models.ParseType(form[models.FieldType])
	if err != nil {
		errs[models.FieldType] = MsgType
		return errs
	}
	for _, r := range variantRules[t] {
		check(errs, form, r)
	}

	return errs
}

func check(errs Errors, form models.Form, r rule) {
	err := validate.Var(form[r.field], r.tags)
	if err == nil {
		return
	}

	tag := ""
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		tag = verrs[0].Tag()
	}
	errs[r.field] = r.message(tag)
}

func parseNumber(s string) (float64, bool) {
	n, err := models.ParseNumber(s)
	return n, err == nil
}
