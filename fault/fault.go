// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type BalanceError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised         = ExistsError("already initialised")
	AssetNotFound              = NotFoundError("kitty does not exist")
	BalanceOverflow            = LimitError("balance overflow")
	CountOverflow              = LimitError("kitty count overflow")
	DatabaseIsNotSet           = ProcessError("database is not set")
	FileAlreadyExists          = ExistsError("file already exists")
	IncompatibleDatabase       = InvalidError("incompatible database version")
	InsufficientBalance        = BalanceError("not enough balance to reserve")
	InvalidAccount             = InvalidError("invalid account")
	InvalidAssetId             = InvalidError("invalid kitty id")
	InvalidChecksum            = InvalidError("checksum mismatch")
	InvalidCount               = InvalidError("invalid count")
	InvalidCursor              = InvalidError("invalid cursor")
	InvalidDNA                 = InvalidError("invalid dna length")
	InvalidIpAddress           = InvalidError("invalid IP address")
	InvalidKeyLength           = InvalidError("invalid key length")
	InvalidKeyType             = InvalidError("invalid key type")
	InvalidNonce               = InvalidError("invalid nonce")
	InvalidPublicKeyFile       = InvalidError("invalid public key file")
	InvalidSignature           = AuthorisationError("invalid signature")
	InvalidStructPointer       = InvalidError("invalid struct pointer")
	MissingParameters          = InvalidError("missing parameters")
	NonceReused                = ExistsError("nonce already used")
	NotInitialised             = NotFoundError("not initialised")
	NotOwner                   = AuthorisationError("not kitty owner")
	NotPublicKey               = InvalidError("not public key")
	RateLimiting               = LimitError("rate limiting")
	SameParentNotAllowed       = InvalidError("same parent not allowed")
	TransactionAlreadyFinished = ProcessError("transaction already finished")
	TransferToSelf             = InvalidError("transfer to self")
	UnsignedRequest            = AuthorisationError("request is not signed")
	WrongNetwork               = InvalidError("account belongs to another network")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e BalanceError) Error() string       { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LimitError) Error() string         { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrBalance(e error) bool       { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool         { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
