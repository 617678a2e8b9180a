// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"
)

// Pack - tag only
func (Initialize) Pack() Packed {
	return Packed{byte(InitializeTag)}
}

// Pack - tag followed by offset
func (writeU64 WriteU64) Pack() Packed {
	message := make(Packed, 0, tagSize+uint64Size)
	message = append(message, byte(WriteU64Tag))
	return appendUint64(message, writeU64.Offset)
}

// Pack - tag followed by offset and addition
func (checkAdd CheckAdd) Pack() Packed {
	message := make(Packed, 0, tagSize+2*uint64Size)
	message = append(message, byte(CheckAddTag))
	message = appendUint64(message, checkAdd.Offset)
	return appendUint64(message, checkAdd.Addition)
}

// Pack - tag only
func (SetAuthority) Pack() Packed {
	return Packed{byte(SetAuthorityTag)}
}

// Pack - tag only
func (CloseAccount) Pack() Packed {
	return Packed{byte(CloseAccountTag)}
}

// append a little-endian 64 bit value
func appendUint64(buffer Packed, value uint64) Packed {
	var b [uint64Size]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}
