// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"

	"github.com/bitmark-inc/recordd/fault"
)

// Unpack - turn a byte slice into an instruction
//
// bytes following a complete payload are ignored
//
// must cast result to correct type
//
// e.g.
//   switch in := result.(type) {
//   case instruction.WriteU64:
func (packed Packed) Unpack() (Instruction, error) {
	if 0 == len(packed) {
		return nil, fault.ErrInvalidInstructionData
	}

	rest := packed[tagSize:]

	switch TagType(packed[0]) {

	case InitializeTag:
		return Initialize{}, nil

	case WriteU64Tag:
		offset, ok := readUint64(rest, 0)
		if !ok {
			return nil, fault.ErrInvalidInstructionData
		}
		return WriteU64{Offset: offset}, nil

	case CheckAddTag:
		offset, ok := readUint64(rest, 0)
		if !ok {
			return nil, fault.ErrInvalidInstructionData
		}
		addition, ok := readUint64(rest, uint64Size)
		if !ok {
			return nil, fault.ErrInvalidInstructionData
		}
		return CheckAdd{Offset: offset, Addition: addition}, nil

	case SetAuthorityTag:
		return SetAuthority{}, nil

	case CloseAccountTag:
		return CloseAccount{}, nil

	default:
		return nil, fault.ErrInvalidInstructionData
	}
}

// Unpack - convenience for raw byte slices
func Unpack(input []byte) (Instruction, error) {
	return Packed(input).Unpack()
}

// read a little-endian 64 bit value at a position
func readUint64(buffer []byte, start int) (uint64, bool) {
	if len(buffer) < start+uint64Size {
		return 0, false
	}
	return binary.LittleEndian.Uint64(buffer[start:]), true
}
