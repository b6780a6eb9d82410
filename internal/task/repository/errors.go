package repository

import "errors"

var (
	ErrFailedToInsert   = errors.New("failed to insert record")
	ErrFailedToList     = errors.New("failed to list records")
	ErrFailedToComplete = errors.New("failed to complete record")
)
