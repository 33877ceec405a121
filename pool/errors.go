package pool

import "errors"

var (
	// ErrReservationFailed indicates that the backing buffer for a new pool
	// could not be reserved.
	ErrReservationFailed = errors.New("pool: buffer reservation failed")

	// ErrBadCapacity indicates a non-positive or oversized pool capacity.
	ErrBadCapacity = errors.New("pool: capacity must be between 1 byte and 2GB")

	// ErrOutOfSpace indicates that no free region large enough was found.
	ErrOutOfSpace = errors.New("pool: no free region large enough")

	// ErrBadSize indicates a non-positive allocation or resize request.
	ErrBadSize = errors.New("pool: size must be positive")

	// ErrDoubleFree indicates a free of a region that is already free.
	ErrDoubleFree = errors.New("pool: region already free")

	// ErrForeignRef indicates a ref that names no live allocation in this pool.
	ErrForeignRef = errors.New("pool: ref not allocated from this pool")

	// ErrNilRef indicates NilRef was passed where a live allocation was expected.
	ErrNilRef = errors.New("pool: nil ref")

	// ErrClosed indicates an operation on a pool after Close.
	ErrClosed = errors.New("pool: pool is closed")
)
