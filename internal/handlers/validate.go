package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks a decoded request against its validate tags.
func (h *Handler) ValidateStruct(s interface{}) error {
	return formatValidation(h.validator.Struct(s))
}

func formatValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "eth_addr":
			msgs = append(msgs, fmt.Sprintf("%s must be an Ethereum address", fe.Field()))
		case "numeric":
			msgs = append(msgs, fmt.Sprintf("%s must be a number", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// decodeJSON reads a size-limited JSON body into dst and validates it.
// It writes the error response itself and reports whether to continue.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	if err := h.ValidateStruct(dst); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
