package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/unrolled/render"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "requestID"
	RequestIDHeader                = "X-Request-ID"
)

const maxBodyBytes = 1 << 20

func RequestID(r *http.Request) string {
	if id, ok := r.Context().Value(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// GenerateSlug lower-cases s, strips diacritics and joins words with hyphens.
func GenerateSlug(s string) string {
	return slug.Make(s)
}

// FoldText lower-cases s and removes combining marks, so "Aço" folds to "aco".
func FoldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("material", func(fl validator.FieldLevel) bool {
		return models.MaterialType(fl.Field().String()).Valid()
	})
	return v
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", field)
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s must be a number.", field)
		case "min", "gte":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", field, err.Param())
		case "max", "lte":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", field, err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", field, err.Param())
		case "material":
			errorMessages[field] = fmt.Sprintf("%s is not a known material type.", field)
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), field)
		}
	}
	return errorMessages
}

// ValidateStruct runs v against s and converts failures into a validation error.
func ValidateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return apperror.ValidationFields("Invalid request", FormatValidationErrors(validationErrors))
	}
	return apperror.Internal(err)
}

func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.Validation("Request body is empty")
		}
		log.Printf("DecodeJSON: %v", err)
		return apperror.Validation("Malformed JSON body")
	}
	return nil
}

// WriteError maps err onto the error taxonomy and writes {"error": ...}.
func WriteError(rnd *render.Render, w http.ResponseWriter, r *http.Request, err error) {
	kind := apperror.KindOf(err)
	status := apperror.Status(kind)
	if kind == apperror.KindInternal || kind == apperror.KindUnavailable {
		log.Printf("WriteError: request_id=%s %s %s: %v", RequestID(r), r.Method, r.URL.Path, err)
	}

	msg, fields := apperror.Public(err)
	body := map[string]interface{}{"error": msg}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	_ = rnd.JSON(w, status, body)
}
