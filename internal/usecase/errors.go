package usecase

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrCompanyNameExists = errors.New("company name already exists")
	ErrInternal          = errors.New("internal error")
)
