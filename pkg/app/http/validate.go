package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/mainalysis/domain-analyzer/pkg/app/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValid reads a JSON request body into dst and checks its `validate`
// struct tags. Bodies are capped at 1MB.
func DecodeValid(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.BadRequestError(err, "invalid request")
	}
	return nil
}
