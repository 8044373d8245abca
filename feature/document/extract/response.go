package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"invoice-reconciler/core/utils"
	"invoice-reconciler/feature/document/models"
)

// ErrNoStructuredData marks a model response that contains no parseable
// JSON array. It is recoverable at document granularity.
var ErrNoStructuredData = errors.New("no structured data found in model response")

// excerptLimit bounds the raw-response slice kept for diagnostics.
const excerptLimit = 300

// ResponseError describes why a model response could not be validated. It
// carries an excerpt of the raw text so an operator can inspect what the
// model actually returned.
type ResponseError struct {
	Reason  string
	Excerpt string
	Err     error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("invalid model response: %s (excerpt: %q)", e.Reason, e.Excerpt)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// assistedRow is the wire shape of one object in the model's JSON array.
// Field types are loose because the model sometimes emits numbers where the
// document printed strings.
type assistedRow struct {
	Sequence      any `json:"sequence"`
	Code          any `json:"code"`
	Description   any `json:"description"`
	UnitPackaging any `json:"unit_packaging"`
	Quantity      any `json:"quantity"`
	Value         any `json:"value"`
}

// ParseResponse validates a free-form model response and returns the records
// it encodes. The candidate array is excised between the first '[' and the
// last ']' so prose before or after the JSON is tolerated. A missing bracket
// pair or a parse failure returns a *ResponseError wrapping
// ErrNoStructuredData or the JSON error.
func ParseResponse(raw string) ([]models.ProductRecord, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, &ResponseError{
			Reason:  "no JSON array delimiters",
			Excerpt: excerpt(raw),
			Err:     ErrNoStructuredData,
		}
	}

	var rows []assistedRow
	if err := json.Unmarshal([]byte(raw[start:end+1]), &rows); err != nil {
		return nil, &ResponseError{
			Reason:  "JSON array does not parse",
			Excerpt: excerpt(raw),
			Err:     err,
		}
	}

	records := make([]models.ProductRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.ProductRecord{
			Sequence:      utils.ToString(row.Sequence),
			Code:          utils.ToString(row.Code),
			Description:   stripQuotes(utils.ToString(row.Description)),
			UnitPackaging: utils.ToString(row.UnitPackaging),
			QuantityRaw:   utils.ToString(row.Quantity),
			Value:         utils.ToString(row.Value),
		})
	}

	return records, nil
}

// stripQuotes removes one leading and one trailing quote character. Some
// upstream tables carry canonical descriptions pre-quoted ('WIDGET A').
func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	return s
}

func excerpt(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) > excerptLimit {
		return raw[:excerptLimit] + "..."
	}
	return raw
}
