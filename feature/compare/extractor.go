package compare

import (
	"context"
	"strings"

	"invoice-reconciler/feature/document/extract"
	docmodels "invoice-reconciler/feature/document/models"
	"invoice-reconciler/feature/document/pdftext"

	"go.uber.org/zap"
)

// Extractor turns one document's bytes into product records.
type Extractor interface {
	// Extract parses the document and returns its product records.
	Extract(ctx context.Context, document []byte) ([]docmodels.ProductRecord, error)
	// Strategy names the extraction strategy for reporting.
	Strategy() string
}

// NewExtractor builds the extractor for the configured strategy. The returned
// closer releases the model client for the assisted strategy and is a no-op
// otherwise.
func NewExtractor(ctx context.Context, cfg extract.Config, logger *zap.Logger) (Extractor, func() error, error) {
	switch cfg.Strategy {
	case extract.StrategyAssisted:
		gen, err := extract.NewGeminiGenerator(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return &assistedExtractor{assisted: extract.NewAssisted(gen, logger)}, gen.Close, nil
	default:
		return &heuristicExtractor{heuristic: extract.NewHeuristic()}, func() error { return nil }, nil
	}
}

// heuristicExtractor runs the regex heuristic over the document's text layer.
type heuristicExtractor struct {
	heuristic *extract.Heuristic
}

func (e *heuristicExtractor) Strategy() string {
	return extract.StrategyHeuristic
}

func (e *heuristicExtractor) Extract(ctx context.Context, document []byte) ([]docmodels.ProductRecord, error) {
	text, err := pdftext.ExtractText(document)
	if err != nil {
		return nil, err
	}
	return e.heuristic.Extract(text), nil
}

// assistedExtractor delegates to the generative model, preferring the
// document's text layer and falling back to raw bytes when the text layer is
// unusable.
type assistedExtractor struct {
	assisted *extract.Assisted
}

func (e *assistedExtractor) Strategy() string {
	return extract.StrategyAssisted
}

func (e *assistedExtractor) Extract(ctx context.Context, document []byte) ([]docmodels.ProductRecord, error) {
	text, err := pdftext.ExtractText(document)
	if err != nil || strings.TrimSpace(text) == "" {
		return e.assisted.ExtractDocument(ctx, document, "application/pdf")
	}
	return e.assisted.ExtractText(ctx, text)
}
