package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("CleanArray", func(t *testing.T) {
		raw := `[{"sequence":"1","code":"123456","description":"WIDGET A","unit_packaging":"BOX/12","quantity":"1.002.000","value":"98.500"}]`

		records, err := ParseResponse(raw)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "123456", records[0].Code)
		assert.Equal(t, "WIDGET A", records[0].Description)
		assert.Equal(t, "1.002.000", records[0].QuantityRaw)
	})

	t.Run("ProseAroundArray", func(t *testing.T) {
		raw := "Here is the extracted data:\n" +
			`[{"sequence":1,"code":"123456","description":"WIDGET A","unit_packaging":"BOX/12","quantity":"1","value":""}]` +
			"\nLet me know if you need anything else."

		records, err := ParseResponse(raw)
		require.NoError(t, err)
		require.Len(t, records, 1)
		// Numeric sequence coerced back to its printed form.
		assert.Equal(t, "1", records[0].Sequence)
	})

	t.Run("QuotedDescriptionSanitized", func(t *testing.T) {
		raw := `[{"sequence":"1","code":"123456","description":"'WIDGET A'","unit_packaging":"BOX/12","quantity":"1","value":""}]`

		records, err := ParseResponse(raw)
		require.NoError(t, err)
		assert.Equal(t, "WIDGET A", records[0].Description)
	})

	t.Run("MissingFieldsBecomeEmpty", func(t *testing.T) {
		raw := `[{"code":"123456","description":"WIDGET A","quantity":"1"}]`

		records, err := ParseResponse(raw)
		require.NoError(t, err)
		assert.Equal(t, "", records[0].Sequence)
		assert.Equal(t, "", records[0].Value)
	})

	t.Run("NoBrackets", func(t *testing.T) {
		_, err := ParseResponse("I could not find any tabular data in this document.")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoStructuredData)

		var respErr *ResponseError
		require.True(t, errors.As(err, &respErr))
		assert.Contains(t, respErr.Excerpt, "could not find")
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := ParseResponse(`[{"code": "123456",]`)
		require.Error(t, err)

		var respErr *ResponseError
		require.True(t, errors.As(err, &respErr))
		assert.NotErrorIs(t, err, ErrNoStructuredData)
	})

	t.Run("EmptyArray", func(t *testing.T) {
		records, err := ParseResponse("[]")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "WIDGET", stripQuotes("'WIDGET'"))
	assert.Equal(t, "WIDGET", stripQuotes(`"WIDGET"`))
	assert.Equal(t, "WIDGET", stripQuotes("'WIDGET"))
	assert.Equal(t, "WIDGET", stripQuotes("WIDGET"))
	assert.Equal(t, "", stripQuotes(""))
	// Only the outermost quote pair is stripped.
	assert.Equal(t, "'WIDGET'", stripQuotes("''WIDGET''"))
}
