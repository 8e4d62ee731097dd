// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed             = ProcessError("node allocation failed")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCorruptBalance               = RecordError("tree balance factor out of range")
	ErrCorruptCount                 = RecordError("tree node count is inconsistent")
	ErrCorruptHeight                = RecordError("tree node height is inconsistent")
	ErrCorruptOrder                 = RecordError("tree keys are not in strictly increasing order")
	ErrCorruptParent                = RecordError("tree parent link is inconsistent")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidIterator              = InvalidError("invalid iterator")
	ErrInvalidLoggerChannel         = InvalidError("invalid logger channel")
	ErrInvalidPoolSize              = InvalidError("invalid node pool size")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrKeyNotFound                  = NotFoundError("key not found")
	ErrKeyTooLong                   = LengthError("key too long")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrPoolExhausted                = ProcessError("node pool exhausted")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrValueTooLong                 = LengthError("value too long")
	ErrWrongIteratorOwner           = InvalidError("iterator belongs to a different tree")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
