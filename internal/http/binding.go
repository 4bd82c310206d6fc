package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"profile-votes/internal/domain"
)

// RegisterVoteValidators agrega los tags mbti, enneagram y zodiac al validador de
// gin, resueltos contra el mismo catalogo que usan los servicios.
func RegisterVoteValidators(catalog *domain.Catalog) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for _, d := range domain.Dimensions() {
		dim := d
		err := v.RegisterValidation(string(dim), func(fl validator.FieldLevel) bool {
			return catalog.Contains(dim, fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("register %s validator: %w", dim, err)
		}
	}
	return nil
}

// bindErrorMessage traduce errores de binding a un mensaje legible.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case string(domain.DimensionMBTI), string(domain.DimensionEnneagram), string(domain.DimensionZodiac):
			msgs = append(msgs, fmt.Sprintf("%s is not a valid %s value", field, fe.Tag()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
