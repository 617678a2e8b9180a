// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package recorddata - layout of the record header in account data
//
//   offset  size  field
//   0       32    authority (ed25519 public key)
//   32      1     version (0 => uninitialized)
//   33      8     writable window (little-endian value)
//
// the header is read and written through explicit offsets, never by
// reinterpreting memory, so the layout is identical on every platform
package recorddata

import (
	"encoding/binary"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// byte sizes for various fields
const (
	AuthoritySize = account.KeySize
	VersionSize   = 1
	ValueSize     = 8
)

// offsets of the fields
const (
	authorityOffset = 0
	versionOffset   = authorityOffset + AuthoritySize

	// WritableStartIndex - first byte after the header
	WritableStartIndex = versionOffset + VersionSize
)

// versions
const (
	UninitializedVersion = 0
	CurrentVersion       = 1
)

// Status - explicit initialisation state derived from the version byte
type Status int

// possible states
const (
	Uninitialized Status = iota
	Initialized
)

// String - name of a status
func (status Status) String() string {
	switch status {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	default:
		return "*unknown*"
	}
}

// Header - the unpacked record header
type Header struct {
	Authority account.Key `json:"authority"`
	Version   uint8       `json:"version"`
}

// Unpack - read the header from the front of account data
func Unpack(data []byte) (*Header, error) {
	if len(data) < WritableStartIndex {
		return nil, fault.ErrInvalidAccountData
	}

	header := &Header{
		Version: data[versionOffset],
	}
	copy(header.Authority[:], data[authorityOffset:versionOffset])

	return header, nil
}

// Pack - write the header to the front of account data
func (header *Header) Pack(data []byte) error {
	if len(data) < WritableStartIndex {
		return fault.ErrInvalidAccountData
	}
	copy(data[authorityOffset:versionOffset], header.Authority[:])
	data[versionOffset] = header.Version
	return nil
}

// Status - initialisation state of the header
func (header *Header) Status() Status {
	if UninitializedVersion == header.Version {
		return Uninitialized
	}
	return Initialized
}

// IsInitialized - true once Initialize has run
func (header *Header) IsInitialized() bool {
	return Initialized == header.Status()
}

// Initialise - set authority and current version
func (header *Header) Initialise(authority account.Key) {
	header.Authority = authority
	header.Version = CurrentVersion
}

// Clear - return to the zeroed uninitialized state
func (header *Header) Clear() {
	*header = Header{}
}

// HasValue - true if the data is long enough to hold the writable window
func HasValue(data []byte) bool {
	return len(data) >= WritableStartIndex+ValueSize
}

// Value - the little-endian value in the writable window
func Value(data []byte) (uint64, error) {
	if !HasValue(data) {
		return 0, fault.ErrInvalidAccountData
	}
	return binary.LittleEndian.Uint64(data[WritableStartIndex:]), nil
}

// PutValue - copy exactly 8 raw bytes into the writable window
func PutValue(data []byte, value [ValueSize]byte) error {
	if !HasValue(data) {
		return fault.ErrInvalidAccountData
	}
	copy(data[WritableStartIndex:WritableStartIndex+ValueSize], value[:])
	return nil
}
