package students

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Formatos aceptados para fechas-hora. Sin zona => UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	dateLayout,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores reportan el nombre JSON del campo, no el de Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("isodatetime", func(fl validator.FieldLevel) bool {
		_, err := parseDateTime(fl.Field().String())
		return err == nil
	})

	return v
}

// Los campos son punteros para distinguir "ausente" de "vacío":
// required falla con nil, pero acepta "".

type studentBaseRequest struct {
	Name      *string `json:"name" validate:"required"`
	Gender    *string `json:"gender" validate:"required"`
	Birthdate *string `json:"birthdate" validate:"required,datetime=2006-01-02"`
	HairColor *string `json:"hair_color" validate:"required"`
	HairType  *string `json:"hair_type" validate:"required"`
}

type interestBaseRequest struct {
	Interest *string `json:"interest" validate:"required"`
}

type petBaseRequest struct {
	PetType  *string `json:"pet_type" validate:"required"`
	PetBreed *string `json:"pet_breed"`
	PetName  *string `json:"pet_name" validate:"required"`
}

type lessonBaseRequest struct {
	Content *string `json:"content" validate:"required"`
	Date    *string `json:"date" validate:"required,isodatetime"`
}

func (r studentBaseRequest) toInput() StudentInput {
	bd, _ := time.Parse(dateLayout, *r.Birthdate)
	return StudentInput{
		Name:      *r.Name,
		Gender:    *r.Gender,
		Birthdate: bd,
		HairColor: *r.HairColor,
		HairType:  *r.HairType,
	}
}

func (r interestBaseRequest) toInput() InterestInput {
	return InterestInput{Interest: *r.Interest}
}

func (r petBaseRequest) toInput() PetInput {
	return PetInput{
		Type:  *r.PetType,
		Breed: r.PetBreed,
		Name:  *r.PetName,
	}
}

func (r lessonBaseRequest) toInput() LessonInput {
	d, _ := parseDateTime(*r.Date)
	return LessonInput{
		Content: *r.Content,
		Date:    d,
	}
}

func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// -------------------------
// Errores de validación
// -------------------------

// fieldError sigue la forma {"loc": [...], "msg": ..., "type": ...}.
type fieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

type validationErrorResponse struct {
	Detail []fieldError `json:"detail"`
}

// decodeBody decodifica y valida un objeto JSON.
func decodeBody[T any](r *http.Request) (T, []fieldError) {
	var zero T

	var body *T
	if errs := decodeJSON(r.Body, &body); errs != nil {
		return zero, errs
	}
	if body == nil {
		return zero, []fieldError{missingBody()}
	}

	if errs := validateItem(*body, []any{"body"}); errs != nil {
		return zero, errs
	}
	return *body, nil
}

// decodeList decodifica y valida un array JSON; cada error lleva el índice del item.
func decodeList[T any](r *http.Request) ([]T, []fieldError) {
	var body *[]T
	if errs := decodeJSON(r.Body, &body); errs != nil {
		return nil, errs
	}
	if body == nil {
		return nil, []fieldError{missingBody()}
	}

	var out []fieldError
	for i, item := range *body {
		out = append(out, validateItem(item, []any{"body", i})...)
	}
	if len(out) > 0 {
		return nil, out
	}
	return *body, nil
}

func decodeJSON(rd io.Reader, dst any) []fieldError {
	err := json.NewDecoder(rd).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return []fieldError{missingBody()}
	case errors.As(err, &typeErr):
		loc := []any{"body"}
		if typeErr.Field != "" {
			for _, p := range strings.Split(typeErr.Field, ".") {
				loc = append(loc, p)
			}
		}
		return []fieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type.String()),
			Type: "type_error",
		}}
	default:
		return []fieldError{{
			Loc:  []any{"body"},
			Msg:  "invalid json",
			Type: "value_error.jsondecode",
		}}
	}
}

func validateItem(v any, prefix []any) []fieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Loc: prefix, Msg: err.Error(), Type: "value_error"}}
	}

	out := make([]fieldError, 0, len(verrs))
	for _, e := range verrs {
		loc := append(append([]any{}, prefix...), e.Field())

		fe := fieldError{Loc: loc}
		switch e.ActualTag() {
		case "required":
			fe.Msg = "field required"
			fe.Type = "value_error.missing"
		case "datetime":
			fe.Msg = "invalid date format, expected YYYY-MM-DD"
			fe.Type = "value_error.date"
		case "isodatetime":
			fe.Msg = "invalid datetime format"
			fe.Type = "value_error.datetime"
		default:
			fe.Msg = fmt.Sprintf("field %s is invalid", e.Field())
			fe.Type = "value_error"
		}
		out = append(out, fe)
	}
	return out
}

func missingBody() fieldError {
	return fieldError{
		Loc:  []any{"body"},
		Msg:  "field required",
		Type: "value_error.missing",
	}
}
