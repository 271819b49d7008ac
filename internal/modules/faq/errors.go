package faq

import "errors"

var ErrNotFound = errors.New("faq entry not found")
