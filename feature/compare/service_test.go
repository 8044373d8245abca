package compare

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoice-reconciler/feature/document/extract"
	docmodels "invoice-reconciler/feature/document/models"
	"invoice-reconciler/feature/lookup"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	storagemocks "invoice-reconciler/core/storage/mocks"
)

// stubExtractor returns canned records keyed by document content.
type stubExtractor struct {
	records map[string][]docmodels.ProductRecord
	errs    map[string]error
}

func (s *stubExtractor) Strategy() string {
	return extract.StrategyHeuristic
}

func (s *stubExtractor) Extract(ctx context.Context, document []byte) ([]docmodels.ProductRecord, error) {
	key := string(document)
	if err, ok := s.errs[key]; ok {
		return nil, err
	}
	return s.records[key], nil
}

func testLookupService(t *testing.T, body string) *lookup.Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	loader := lookup.NewLoader(lookup.Config{URL: server.URL, TimeoutSeconds: 5}, zap.NewNop())
	return lookup.NewService(lookup.NewCache(loader), zap.NewNop())
}

func TestServiceCompare(t *testing.T) {
	extractor := &stubExtractor{
		records: map[string][]docmodels.ProductRecord{
			"left-doc": {
				{Sequence: "1", Code: "100001", Description: "COCA COLA 330ML", QuantityRaw: "2.012.010"},
				{Sequence: "2", Code: "100002", Description: "FANTA ORANGE", QuantityRaw: "5"},
			},
			"right-doc": {
				{Sequence: "1", Code: "100001", Description: "COCA COLA 330ML", QuantityRaw: "2.012.010"},
				{Sequence: "2", Code: "100003", Description: "SPRITE", QuantityRaw: "1"},
			},
		},
	}
	lookupSvc := testLookupService(t, `[{"ItemDescription":"COCA COLA 330ML","ItemCode":"700001"}]`)

	client := &storagemocks.Client{}
	client.On("PutObject", mock.Anything, "invoices", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(extractor, lookupSvc, client, "invoices", nil, zap.NewNop(), 0)

	result, err := svc.Compare(context.Background(),
		Document{Name: "left.pdf", Data: []byte("left-doc")},
		Document{Name: "right.pdf", Data: []byte("right-doc")},
	)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.RunID)
	assert.Empty(t, result.Failures)

	// Annotation happened before the join.
	assert.Equal(t, "700001", result.Left.Records[0].MatchedCode)
	assert.Equal(t, "exact", result.Left.Records[0].MatchTier)
	assert.Equal(t, "not_found", result.Left.Records[1].MatchTier)

	// 100002 only left, 100003 only right, 100001 agrees.
	require.Len(t, result.Report.Differences, 2)
	assert.Equal(t, "100002", result.Report.Differences[0].Code)
	assert.Equal(t, "100003", result.Report.Differences[1].Code)

	// Both uploads archived under the run id, plus the export workbook.
	client.AssertNumberOfCalls(t, "PutObject", 3)
	client.AssertCalled(t, "PutObject", mock.Anything, "invoices",
		fmt.Sprintf("documents/%s/left.pdf", result.RunID),
		mock.Anything, mock.Anything, mock.Anything)
	client.AssertCalled(t, "PutObject", mock.Anything, "invoices",
		fmt.Sprintf("exports/%s.xlsx", result.RunID),
		mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceCompareExtractionFailureContinues(t *testing.T) {
	extractor := &stubExtractor{
		records: map[string][]docmodels.ProductRecord{
			"right-doc": {
				{Sequence: "1", Code: "100003", Description: "SPRITE", QuantityRaw: "1"},
			},
		},
		errs: map[string]error{
			"left-doc": fmt.Errorf("no text layer"),
		},
	}
	lookupSvc := testLookupService(t, `[]`)

	svc := NewService(extractor, lookupSvc, nil, "", nil, zap.NewNop(), 0)

	result, err := svc.Compare(context.Background(),
		Document{Name: "left.pdf", Data: []byte("left-doc")},
		Document{Name: "right.pdf", Data: []byte("right-doc")},
	)
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "left.pdf", result.Failures[0].Document)
	assert.Contains(t, result.Failures[0].Reason, "no text layer")

	// The failed side joins with zero rows.
	assert.Empty(t, result.Left.Records)
	require.Len(t, result.Report.Differences, 1)
	assert.Equal(t, "100003", result.Report.Differences[0].Code)
}

func TestServiceRunsWithoutHistory(t *testing.T) {
	svc := NewService(&stubExtractor{}, testLookupService(t, `[]`), nil, "", nil, zap.NewNop(), 0)

	runs, err := svc.Runs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}
