package service

import "errors"

// Engine error taxonomy. Controllers map these onto HTTP statuses
// (ErrValidation → 400, ErrDataSource → 502); an empty month is a
// valid zero result, never an error.
var (
	ErrValidation = errors.New("validation error")
	ErrDataSource = errors.New("data source error")
)
