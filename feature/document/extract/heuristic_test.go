package extract

import (
	"testing"

	"invoice-reconciler/feature/document/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicExtract(t *testing.T) {
	h := NewHeuristic()

	t.Run("QualifyingLine", func(t *testing.T) {
		records := h.Extract("3  123456  WIDGET A   BOX/12   1.002.000")

		require.Len(t, records, 1)
		assert.Equal(t, models.ProductRecord{
			Sequence:      "3",
			Code:          "123456",
			Description:   "WIDGET A",
			UnitPackaging: "BOX/12",
			QuantityRaw:   "1.002.000",
		}, records[0])
	})

	t.Run("OptionalValueColumn", func(t *testing.T) {
		records := h.Extract("1  654321  WIDGET B   PACK/6   0.009.000   125.000")

		require.Len(t, records, 1)
		assert.Equal(t, "125.000", records[0].Value)
	})

	t.Run("NonQualifyingLines", func(t *testing.T) {
		text := "INVOICE NO 42\n" +
			"WIDGET A  BOX/12  1.002.000\n" + // no leading ordinal+code
			"3  12345  WIDGET A   BOX/12   1\n" + // code is 5 digits
			"TOTAL  10.000"
		assert.Empty(t, h.Extract(text))
	})

	t.Run("TooFewColumns", func(t *testing.T) {
		assert.Empty(t, h.Extract("3  123456  WIDGET A   1.002.000"))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		records := h.Extract("")
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("MixedDocument", func(t *testing.T) {
		text := "PT DISTRIBUTOR JAYA\n" +
			"DELIVERY LIST PAGE 1\n" +
			"1  111111  WIDGET A   BOX/12   1\n" +
			"some footer noise\n" +
			"2  222222  WIDGET B SPECIAL   PACK/6   2.012.010   98.500\n"

		records := h.Extract(text)
		require.Len(t, records, 2)
		assert.Equal(t, "111111", records[0].Code)
		assert.Equal(t, "WIDGET B SPECIAL", records[1].Description)
		assert.Equal(t, "2.012.010", records[1].QuantityRaw)
	})
}
