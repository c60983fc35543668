// Package psych holds the unified psychometric questionnaire and its scoring.
//
// The bank is an explicitly constructed Catalog; the scoring functions take it
// as an argument so smaller synthetic catalogs can stand in during tests.
package psych
