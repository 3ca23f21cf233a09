package cipherkit

import "errors"

// ErrLengthMismatch is returned when paired input and output buffers have
// different lengths. No memory is read or written before the check.
var ErrLengthMismatch = errors.New("cipherkit: mismatched input and output lengths")

// ErrKeystreamExhausted is returned when applying keystream to an input
// would advance a bounded stream core past the end of its counter space.
// The input and output buffers are untouched when it is returned.
var ErrKeystreamExhausted = errors.New("cipherkit: remaining keystream shorter than input")
