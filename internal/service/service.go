// Package service holds the application workflows between the HTTP
// handlers and the repositories.
package service

import "errors"

// ErrNotFound marks lookups for rows the user does not own or that do
// not exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")
