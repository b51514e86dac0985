package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"personas/internal/apierror"
	"personas/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())
	trans    ut.Translator
)

func init() {
	// Report fields by their wire names (json, then query, then path).
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// FlexUint is validated as the number it holds, so gt=0 and required work.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(dto.FlexUint); ok {
			return uint64(v)
		}
		return nil
	}, dto.FlexUint(0))

	if err := validate.RegisterValidation("fecha_pasada", fechaPasada); err != nil {
		panic(err)
	}

	locale := es.New()
	trans, _ = ut.New(locale, locale).GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}
	if err := validate.RegisterTranslation("fecha_pasada", trans,
		func(t ut.Translator) error {
			return t.Add("fecha_pasada", "{0} debe ser una fecha válida (AAAA-MM-DD) y no puede ser futura", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("fecha_pasada", fe.Field())
			return msg
		},
	); err != nil {
		panic(err)
	}
}

// fechaPasada accepts YYYY-MM-DD or RFC 3339 dates that are not in the future.
func fechaPasada(fl validator.FieldLevel) bool {
	t, err := dto.ParseFecha(fl.Field().String())
	if err != nil {
		return false
	}
	return !t.After(time.Now())
}

// normalizer is implemented by requests that clean their input before validation.
type normalizer interface{ Normalize() }

// bindJSON decodes the body into req and validates it. Unknown fields are
// ignored; an empty body is validated as {} so every required field is reported.
// A field with the wrong JSON type is reported next to every other invalid field.
func bindJSON(c *gin.Context, req any) error {
	var body []byte
	var err error
	if c.Request.Body != nil {
		body, err = io.ReadAll(c.Request.Body)
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &apierror.MalformedBodyError{Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var typeErrs []apierror.FieldError
	for {
		err := binding.JSON.BindBody(body, req)
		if err == nil {
			break
		}
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return &apierror.MalformedBodyError{Err: err}
		}
		typeErrs = append(typeErrs, apierror.FieldError{
			Field:   typeErr.Field,
			Message: typeErr.Field + " debe ser de tipo " + tipoJSON(typeErr.Type),
		})
		// Drop the offending key and decode the rest again from scratch.
		stripped, found := withoutKey(body, typeErr.Field)
		if !found {
			return apierror.NewValidation(typeErrs...)
		}
		body = stripped
		v := reflect.ValueOf(req).Elem()
		v.Set(reflect.Zero(v.Type()))
	}

	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}
	err = validateStruct(req)
	if len(typeErrs) == 0 {
		return err
	}

	var verr *apierror.ValidationError
	if err != nil && !errors.As(err, &verr) {
		return err
	}
	fields := typeErrs
	if verr != nil {
		for _, fe := range verr.Fields {
			if !hasField(typeErrs, fe.Field) {
				fields = append(fields, fe)
			}
		}
	}
	return apierror.NewValidation(fields...)
}

// withoutKey re-encodes a JSON object without the top-level key that matches
// name the way encoding/json matches struct fields (case-insensitively).
func withoutKey(body []byte, name string) ([]byte, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, false
	}
	found := false
	for k := range obj {
		if strings.EqualFold(k, name) {
			delete(obj, k)
			found = true
		}
	}
	if !found {
		return nil, false
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, false
	}
	return out, true
}

func hasField(fields []apierror.FieldError, name string) bool {
	for _, f := range fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

// bindQuery binds query-string parameters into req and validates them.
func bindQuery(c *gin.Context, req any) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return apierror.BadRequest("Parámetros de consulta inválidos")
	}
	return validateStruct(req)
}

// bindID reads and validates the :id path segment.
func bindID(c *gin.Context) (uint, error) {
	id, err := dto.ParseDecimalUint(c.Param("id"))
	if err != nil || uint64(uint(id)) != id {
		return 0, apierror.NewValidation(apierror.FieldError{
			Field:   "id",
			Message: "El ID debe ser un número entero positivo",
		})
	}
	if err := validateStruct(&dto.IDParam{ID: uint(id)}); err != nil {
		return 0, err
	}
	return uint(id), nil
}

func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]apierror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apierror.FieldError{Field: fe.Field(), Message: fe.Translate(trans)})
	}
	return apierror.NewValidation(fields...)
}

func tipoJSON(t reflect.Type) string {
	if t == nil {
		return "valor válido"
	}
	switch t.Kind() {
	case reflect.String:
		return "texto"
	case reflect.Bool:
		return "booleano"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "número"
	case reflect.Slice, reflect.Array:
		return "lista"
	}
	return "objeto"
}

// ok writes a success envelope.
func ok(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Envelope{Success: true, Message: message, Data: data})
}
