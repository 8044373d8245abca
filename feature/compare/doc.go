// Package compare orchestrates the invoice comparison pipeline.
//
// It turns uploaded PDF documents into product records, annotates them with
// canonical codes from the lookup table, and runs the reconciliation engine
// over two record sets to produce a difference report.
//
// # Components
//
//   - Service: Runs the extract → annotate → reconcile pipeline, archives
//     uploads, writes XLSX exports, and records run history.
//   - Handler: Exposes HTTP endpoints for comparison, single-document
//     extraction, run history, and export download.
//   - Feature: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /compare : Compare two uploaded PDF documents.
//   - POST /documents/extract : Extract and annotate records from one PDF.
//   - GET /compare/runs : List past comparison runs.
//   - GET /compare/runs/:id/export : Download the XLSX export of a run.
package compare
