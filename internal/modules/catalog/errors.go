package catalog

import "errors"

var ErrNotFound = errors.New("service not found")
