// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the record commands and their binary form
//
// a packed instruction is a one byte tag followed by the fixed width
// little-endian fields of that command, with no length prefixes:
//
//   0  Initialize
//   1  WriteU64      offset(8)
//   2  CheckAdd      offset(8) addition(8)
//   3  SetAuthority
//   4  CloseAccount
package instruction

// TagType - type code for instructions
type TagType uint8

// enumerate the possible instruction types
// this is the first byte of "Packed"
const (
	InitializeTag   = TagType(iota) // set authority and version on a zeroed record
	WriteU64Tag     = TagType(iota) // copy 8 bytes from a source account into the record
	CheckAddTag     = TagType(iota) // verify source value >= record value + addition
	SetAuthorityTag = TagType(iota) // replace the authority
	CloseAccountTag = TagType(iota) // move the record balance to a destination

	// this item must be last
	InvalidTag = TagType(iota)
)

// byte sizes for various fields
const (
	tagSize    = 1
	uint64Size = 8
)

// Packed - packed instructions are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Tag() TagType
	Pack() Packed
}

// Initialize - accounts: record(writable), authority
type Initialize struct{}

// WriteU64 - accounts: record(writable), authority(signer), source
type WriteU64 struct {
	Offset uint64 `json:"offset,string"` // start of 8 bytes in the source account data
}

// CheckAdd - accounts: record, authority(signer), source
type CheckAdd struct {
	Offset   uint64 `json:"offset,string"`   // start of 8 bytes in the source account data
	Addition uint64 `json:"addition,string"` // required increase over the stored value
}

// SetAuthority - accounts: record(writable), authority(signer), new authority
type SetAuthority struct{}

// CloseAccount - accounts: record(writable), authority(signer), destination(writable)
type CloseAccount struct{}

// Tag - the type code of each instruction
func (Initialize) Tag() TagType   { return InitializeTag }
func (WriteU64) Tag() TagType     { return WriteU64Tag }
func (CheckAdd) Tag() TagType     { return CheckAddTag }
func (SetAuthority) Tag() TagType { return SetAuthorityTag }
func (CloseAccount) Tag() TagType { return CloseAccountTag }

// String - name of an instruction type
func (tag TagType) String() string {
	switch tag {
	case InitializeTag:
		return "Initialize"
	case WriteU64Tag:
		return "WriteU64"
	case CheckAddTag:
		return "CheckAdd"
	case SetAuthorityTag:
		return "SetAuthority"
	case CloseAccountTag:
		return "CloseAccount"
	default:
		return "Invalid"
	}
}

// AccountCount - number of accounts an instruction type operates on
func (tag TagType) AccountCount() int {
	switch tag {
	case InitializeTag:
		return 2
	case WriteU64Tag, CheckAddTag, SetAuthorityTag, CloseAccountTag:
		return 3
	default:
		return 0
	}
}

// Type - returns the instruction type code
func (packed Packed) Type() TagType {
	if 0 == len(packed) || packed[0] >= uint8(InvalidTag) {
		return InvalidTag
	}
	return TagType(packed[0])
}
