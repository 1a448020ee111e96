package domain

import "errors"

var (
	// ErrContentNotFound is returned when no active content matches the requested ID.
	ErrContentNotFound = errors.New("content not found")

	// ErrUserNotFound is returned when no user is registered for an address.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when the caller may not act on the content.
	ErrForbidden = errors.New("not authorized for this content")

	// ErrContentIsFree is returned when purchasing public content.
	ErrContentIsFree = errors.New("content is free")

	// ErrOwnContent is returned when a creator tries to purchase their own content.
	ErrOwnContent = errors.New("cannot purchase own content")

	// ErrInvalidArgument wraps request validation failures.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTooLarge is returned when an upload exceeds the size limit.
	ErrTooLarge = errors.New("file too large")

	// ErrBlobNotFound is returned by blob stores when a blob ID is unknown.
	ErrBlobNotFound = errors.New("blob not found")
)
