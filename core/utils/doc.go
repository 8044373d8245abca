// Package utils provides loose type-coercion helpers, mainly for fields of
// generically decoded JSON where external systems blur strings and numbers.
package utils
