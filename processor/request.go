// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/instruction"
)

// InitializeRequest - accounts for Initialize
type InitializeRequest struct {
	Record    Handle
	Authority Handle
}

// WriteRequest - accounts and offset for WriteU64
type WriteRequest struct {
	Record    Handle
	Authority Handle
	Source    Handle
	Offset    uint64
}

// CheckAddRequest - accounts and arguments for CheckAdd
type CheckAddRequest struct {
	Record    Handle
	Authority Handle
	Source    Handle
	Offset    uint64
	Addition  uint64
}

// SetAuthorityRequest - accounts for SetAuthority
type SetAuthorityRequest struct {
	Record       Handle
	Authority    Handle
	NewAuthority Handle
}

// CloseRequest - accounts for CloseAccount
type CloseRequest struct {
	Record      Handle
	Authority   Handle
	Destination Handle
}

// bind the positional handle list to the named fields of a request
//
// extra handles are ignored; missing or nil handles are an error
func bind(in instruction.Instruction, handles []Handle) (interface{}, error) {
	count := in.Tag().AccountCount()
	if len(handles) < count {
		return nil, fault.ErrNotEnoughAccountKeys
	}
	for _, h := range handles[:count] {
		if nil == h {
			return nil, fault.ErrNotEnoughAccountKeys
		}
	}

	switch in := in.(type) {
	case instruction.Initialize:
		return &InitializeRequest{
			Record:    handles[0],
			Authority: handles[1],
		}, nil

	case instruction.WriteU64:
		return &WriteRequest{
			Record:    handles[0],
			Authority: handles[1],
			Source:    handles[2],
			Offset:    in.Offset,
		}, nil

	case instruction.CheckAdd:
		return &CheckAddRequest{
			Record:    handles[0],
			Authority: handles[1],
			Source:    handles[2],
			Offset:    in.Offset,
			Addition:  in.Addition,
		}, nil

	case instruction.SetAuthority:
		return &SetAuthorityRequest{
			Record:       handles[0],
			Authority:    handles[1],
			NewAuthority: handles[2],
		}, nil

	case instruction.CloseAccount:
		return &CloseRequest{
			Record:      handles[0],
			Authority:   handles[1],
			Destination: handles[2],
		}, nil

	default:
		return nil, fault.ErrInvalidInstructionData
	}
}
