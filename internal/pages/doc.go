// Package pages derives the view model of each console page from its base
// datasets and the page's query parameters.
//
// Every builder is pure: the same records, query and reference date always
// produce the same view, and the input slices are never modified.
package pages
