package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPages_EmptyInput(t *testing.T) {
	_, err := ExtractPages(nil)
	assert.Error(t, err)

	_, err = ExtractPages([]byte{})
	assert.Error(t, err)
}

func TestExtractPages_NotAPDF(t *testing.T) {
	_, err := ExtractPages([]byte("just some text, not a pdf"))
	assert.Error(t, err)
}
