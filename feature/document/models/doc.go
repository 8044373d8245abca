// Package models defines the document-domain data structures shared by the
// extraction, lookup, and comparison features.
package models
