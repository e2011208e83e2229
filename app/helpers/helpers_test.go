package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-joias/app/utils/apperror"
	"github.com/unrolled/render"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Anéis":          "aneis",
		"Anel de Ouro":   "anel-de-ouro",
		"  Colar Coração ": "colar-coracao",
	}
	for in, want := range cases {
		if got := GenerateSlug(in); got != want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFoldText(t *testing.T) {
	if got := FoldText("Aço Inoxidável"); got != "aco inoxidavel" {
		t.Fatalf("FoldText = %q", got)
	}
}

type sample struct {
	Name     string `json:"name" validate:"required"`
	Material string `json:"materialType" validate:"required,material"`
	Price    int    `json:"price" validate:"min=0"`
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	v := NewValidator()
	err := ValidateStruct(v, sample{Material: "PLATINA", Price: -1})
	if !apperror.Is(err, apperror.KindValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	_, fields := apperror.Public(err)
	for _, f := range []string{"name", "materialType", "price"} {
		if fields[f] == "" {
			t.Errorf("missing field message for %s: %v", f, fields)
		}
	}

	if err := ValidateStruct(v, sample{Name: "Anel", Material: "OURO_18K"}); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}
}

func TestWriteErrorShapes(t *testing.T) {
	rnd := render.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/x", nil)

	rec := httptest.NewRecorder()
	WriteError(rnd, rec, req, apperror.NotFound("Product not found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Product not found" {
		t.Fatalf("body = %v", body)
	}

	rec = httptest.NewRecorder()
	WriteError(rnd, rec, req, errors.New("sql: secret detail"))
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if rec.Code != http.StatusInternalServerError || body["error"] != "Internal server error" {
		t.Fatalf("internal error leaked: %d %v", rec.Code, body)
	}
}

func TestDecodeJSONHidesDecoderDetail(t *testing.T) {
	cases := map[string]string{
		"":                "Request body is empty",
		`{"name": `:       "Malformed JSON body",
		`{"name": 12}`:    "Malformed JSON body",
		`[1, 2, "three"]`: "Malformed JSON body",
	}
	for body, want := range cases {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		w := httptest.NewRecorder()

		var dst struct {
			Name string `json:"name"`
		}
		err := DecodeJSON(w, r, &dst)
		if !apperror.Is(err, apperror.KindValidation) {
			t.Fatalf("%q: want validation error, got %v", body, err)
		}
		if msg, _ := apperror.Public(err); msg != want {
			t.Errorf("%q: message = %q, want %q", body, msg, want)
		}
	}
}
