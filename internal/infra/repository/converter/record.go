package converter

import (
	"bytes"
	"encoding/json"

	"car-rental/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func decodeRecord(raw json.RawMessage, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		return errs.Wrap(err, "decode record")
	}
	if err := validate.Struct(dst); err != nil {
		return errs.Wrap(err, "validate record")
	}
	return nil
}
