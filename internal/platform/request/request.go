// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the
multipart form-field decoding patterns shared by the create/update handlers,
ensuring consistent fail-closed parsing of numeric fields.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
FormString retrieves a trimmed form field value. Returns "" when absent.
*/
func FormString(request *http.Request, name string) string {
	return strings.TrimSpace(request.FormValue(name))
}

/*
FormStringPtr retrieves an optional form field. Returns nil when the field is
absent or blank, so optional columns stay NULL instead of storing "".
*/
func FormStringPtr(request *http.Request, name string) *string {
	value := FormString(request, name)
	if value == "" {
		return nil
	}
	return &value
}

/*
FormInt parses a required integer form field. Returns the fallback when the
value is absent or unparseable.
*/
func FormInt(request *http.Request, name string, fallback int) int {
	value := FormString(request, name)
	if value == "" {
		return fallback
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return number
}

/*
FormIntPtr parses an optional integer form field. Absent or unparseable
values yield nil, never a zero value.
*/
func FormIntPtr(request *http.Request, name string) *int {
	value := FormString(request, name)
	if value == "" {
		return nil
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &number
}
