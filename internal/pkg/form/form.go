package form

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"museum/internal/domain"
	apperror "museum/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Mensagens usam o nome do campo do formulário, não o nome Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

var timeType = reflect.TypeOf(time.Time{})

// dateHook converte "2006-01-02" em time.Time; texto vazio vira o zero value
// (a obrigatoriedade fica a cargo da tag validate).
func dateHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != timeType {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateLayout, s)
}

// Decode copia os valores do formulário para dst (ponteiro para struct com
// tags `form`). Números e datas são convertidos; valores inválidos geram
// ValidationError.
func Decode(values url.Values, dst interface{}) error {
	flat := make(map[string]interface{}, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			flat[k] = strings.TrimSpace(vs[0])
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       dateHook,
		WeaklyTypedInput: true,
		TagName:          "form",
		Result:           dst,
	})
	if err != nil {
		return apperror.NewInternalError("Falha ao preparar leitura do formulário.", err)
	}

	if err := dec.Decode(flat); err != nil {
		return apperror.NewValidationError(fmt.Sprintf("Formulário inválido: %s", err.Error()))
	}
	return nil
}

// Validate aplica as tags `validate` e devolve a primeira falha como ValidationError.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.NewInternalError("Falha ao validar formulário.", err)
	}
	return apperror.NewValidationError(message(verrs[0]))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", field)
	case "email":
		return fmt.Sprintf("O campo %s deve ser um email válido.", field)
	case "max":
		return fmt.Sprintf("O campo %s excede o tamanho máximo (%s).", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("O campo %s deve ser no mínimo %s.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("O campo %s deve ser maior que %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("O campo %s deve ser no máximo %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um de: %s.", field, fe.Param())
	}
	return fmt.Sprintf("O campo %s é inválido.", field)
}

// DecodeAndValidate é o atalho usado pelos handlers de POST.
func DecodeAndValidate(values url.Values, dst interface{}) error {
	if err := Decode(values, dst); err != nil {
		return err
	}
	return Validate(dst)
}
