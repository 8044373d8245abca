package compare

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"invoice-reconciler/core/reconcile"
	"invoice-reconciler/core/storage"
	"invoice-reconciler/feature/compare/models"
	docmodels "invoice-reconciler/feature/document/models"
	"invoice-reconciler/feature/lookup"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Object name prefixes inside the storage bucket.
const (
	documentPrefix = "documents"
	exportPrefix   = "exports"
)

// Document is one uploaded file entering the pipeline.
type Document struct {
	Name string
	Data []byte
}

// DocumentResult is the extraction outcome for one document.
type DocumentResult struct {
	// Name is the uploaded file name.
	Name string `json:"name"`
	// Records are the annotated product records, empty when extraction failed.
	Records []docmodels.ProductRecord `json:"records"`
}

// ExtractionFailure records a per-document extraction error. The batch
// continues past it with an empty record set for that document.
type ExtractionFailure struct {
	Document string `json:"document"`
	Reason   string `json:"reason"`
}

// CompareResult is the full outcome of one comparison run.
type CompareResult struct {
	RunID    string              `json:"run_id"`
	Strategy string              `json:"strategy"`
	Left     DocumentResult      `json:"left"`
	Right    DocumentResult      `json:"right"`
	Report   reconcile.Report    `json:"report"`
	Failures []ExtractionFailure `json:"failures,omitempty"`
}

// Service runs the comparison pipeline.
type Service struct {
	extractor Extractor
	lookup    *lookup.Service
	client    storage.Client
	bucket    string
	history   *History
	logger    *zap.Logger
	callDelay time.Duration
}

// NewService creates a new compare service. The storage client and history
// repository may be nil; archiving and run history are then skipped.
func NewService(extractor Extractor, lookupSvc *lookup.Service, client storage.Client, bucket string, history *History, logger *zap.Logger, callDelay time.Duration) *Service {
	return &Service{
		extractor: extractor,
		lookup:    lookupSvc,
		client:    client,
		bucket:    bucket,
		history:   history,
		logger:    logger,
		callDelay: callDelay,
	}
}

// ExtractDocument extracts and annotates the records of a single document.
func (s *Service) ExtractDocument(ctx context.Context, doc Document) ([]docmodels.ProductRecord, error) {
	records, err := s.extractor.Extract(ctx, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("extraction of %q failed: %w", doc.Name, err)
	}
	return s.lookup.Annotate(ctx, records)
}

// Compare runs the full pipeline over two documents: extract each in turn,
// annotate with lookup codes, reconcile, then archive the uploads, write the
// XLSX export, and record the run. A document whose extraction fails enters
// the join with zero rows and is reported in Failures.
func (s *Service) Compare(ctx context.Context, left, right Document) (*CompareResult, error) {
	result := &CompareResult{
		RunID:    uuid.NewString(),
		Strategy: s.extractor.Strategy(),
	}

	result.Left = s.extractOne(ctx, left, result)

	// Documents are processed strictly in sequence, with a courtesy pause
	// between model calls.
	if s.callDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.callDelay):
		}
	}

	result.Right = s.extractOne(ctx, right, result)

	result.Report = reconcile.Compare(
		docmodels.Rows(result.Left.Records),
		docmodels.Rows(result.Right.Records),
	)

	s.archive(ctx, result.RunID, left, right)
	s.export(ctx, result)
	s.record(ctx, result)

	return result, nil
}

// Runs lists past comparison runs, newest first.
func (s *Service) Runs(ctx context.Context) ([]models.CompareRun, error) {
	if s.history == nil {
		return []models.CompareRun{}, nil
	}
	return s.history.List(ctx)
}

// Export streams the stored XLSX export of a past run.
func (s *Service) Export(ctx context.Context, runID string) (io.ReadCloser, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	object := fmt.Sprintf("%s/%s.xlsx", exportPrefix, runID)
	reader, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch export %q: %w", object, err)
	}
	return reader, nil
}

func (s *Service) extractOne(ctx context.Context, doc Document, result *CompareResult) DocumentResult {
	records, err := s.ExtractDocument(ctx, doc)
	if err != nil {
		s.logger.Warn("Document extraction failed",
			zap.String("document", doc.Name),
			zap.Error(err))
		result.Failures = append(result.Failures, ExtractionFailure{
			Document: doc.Name,
			Reason:   err.Error(),
		})
		return DocumentResult{Name: doc.Name, Records: []docmodels.ProductRecord{}}
	}
	return DocumentResult{Name: doc.Name, Records: records}
}

// archive stores the uploaded PDFs under documents/<run-id>/. Failures are
// logged, never fatal.
func (s *Service) archive(ctx context.Context, runID string, docs ...Document) {
	if s.client == nil {
		return
	}
	for _, doc := range docs {
		object := fmt.Sprintf("%s/%s/%s", documentPrefix, runID, doc.Name)
		_, err := s.client.PutObject(ctx, s.bucket, object,
			bytes.NewReader(doc.Data), int64(len(doc.Data)),
			minio.PutObjectOptions{ContentType: "application/pdf"})
		if err != nil {
			s.logger.Warn("Failed to archive document",
				zap.String("object", object),
				zap.Error(err))
		}
	}
}

// export renders and stores the run's XLSX workbook. Failures are logged,
// never fatal.
func (s *Service) export(ctx context.Context, result *CompareResult) {
	if s.client == nil {
		return
	}
	buf, err := BuildWorkbook(result)
	if err != nil {
		s.logger.Warn("Failed to build export workbook",
			zap.String("run_id", result.RunID),
			zap.Error(err))
		return
	}

	object := fmt.Sprintf("%s/%s.xlsx", exportPrefix, result.RunID)
	_, err = s.client.PutObject(ctx, s.bucket, object,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"})
	if err != nil {
		s.logger.Warn("Failed to store export workbook",
			zap.String("object", object),
			zap.Error(err))
	}
}

// record persists the run in history. Failures are logged, never fatal.
func (s *Service) record(ctx context.Context, result *CompareResult) {
	if s.history == nil {
		return
	}
	run := &models.CompareRun{
		ID:          result.RunID,
		LeftName:    result.Left.Name,
		RightName:   result.Right.Name,
		Strategy:    result.Strategy,
		LeftRows:    len(result.Left.Records),
		RightRows:   len(result.Right.Records),
		Differences: len(result.Report.Differences),
		Failures:    len(result.Failures),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.history.Record(ctx, run); err != nil {
		s.logger.Warn("Failed to record compare run",
			zap.String("run_id", result.RunID),
			zap.Error(err))
	}
}
