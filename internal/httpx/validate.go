package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/laes18/go-restaurant-pos/internal/pos"
)

// NewValidator configures request validation, including the struct-level
// rule that card payments carry a non-blank authorization reference.
func NewValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(paymentStructValidation, pos.PaymentRequest{})
	return v
}

func paymentStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(pos.PaymentRequest)
	if req.Method == pos.MethodCard {
		if req.CardReference == nil || strings.TrimSpace(*req.CardReference) == "" {
			sl.ReportError(req.CardReference, "card_reference", "CardReference", "required_for_card", "")
		}
	}
}

// decodeValid binds the JSON body into out and validates it. On failure it
// writes the 400 response itself and returns false so the handler can
// short-circuit.
func decodeValid(w http.ResponseWriter, r *http.Request, v *validatorv10.Validate, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidRequest, "invalid json")
		return false
	}
	if err := v.Struct(out); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var ve validatorv10.ValidationErrors
	if ok := isValidationErrors(err, &ve); ok && len(ve) > 0 {
		parts := make([]string, 0, len(ve))
		for _, fe := range ve {
			parts = append(parts, fe.StructNamespace()+" failed "+fe.Tag())
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}

func isValidationErrors(err error, out *validatorv10.ValidationErrors) bool {
	ve, ok := err.(validatorv10.ValidationErrors)
	if ok {
		*out = ve
	}
	return ok
}
