package services

// Domain error taxonomy surfaced to HTTP handlers: NotFound -> 404,
// Conflict -> 400 on duplicate SKU (the status the original API reports),
// BadRequest -> 400 for cart/stock issues.
// Each carries the human-readable message returned to the caller.

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }
