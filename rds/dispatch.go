// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

import (
	"fmt"

	"github.com/rob-gra/go-rds/tables"
)

// dispatchEntry is one row of the (group_type, version) dispatch
// table, Redesign Guidance #4: a 32-entry table keyed by a 5-bit
// (group_type<<1 | version) index, rather than a nested branch.
type dispatchEntry struct {
	decode func(d *Decoder, g Group)
}

// dispatchKey packs group-type and version into the table index used
// by dispatchTable.
func dispatchKey(groupType uint8, versionB bool) uint8 {
	v := uint8(0)
	if versionB {
		v = 1
	}
	return groupType<<1 | v
}

// dispatchTable implements spec.md §4.1's dispatch table. Entries left
// zero-valued (nil decode) are either unimplemented group types (5, 6,
// 7, 9, 10, 11, 12, 13) or a version the standard doesn't allocate to
// that type (e.g. 1B, 3B, 4B, 8B, 15A) — both are normal, silently
// skipped input per spec.md §7.
var dispatchTable = buildDispatchTable()

func buildDispatchTable() [32]dispatchEntry {
	var t [32]dispatchEntry

	t[dispatchKey(0, false)] = dispatchEntry{func(d *Decoder, g Group) { d.decodeType0(g, false) }}
	t[dispatchKey(0, true)] = dispatchEntry{func(d *Decoder, g Group) { d.decodeType0(g, true) }}
	t[dispatchKey(1, false)] = dispatchEntry{(*Decoder).decodeType1A}
	t[dispatchKey(2, false)] = dispatchEntry{func(d *Decoder, g Group) { d.decodeType2(g, false) }}
	t[dispatchKey(2, true)] = dispatchEntry{func(d *Decoder, g Group) { d.decodeType2(g, true) }}
	t[dispatchKey(3, false)] = dispatchEntry{(*Decoder).decodeType3A}
	t[dispatchKey(4, false)] = dispatchEntry{(*Decoder).decodeType4A}
	t[dispatchKey(8, false)] = dispatchEntry{(*Decoder).decodeType8A}
	t[dispatchKey(14, false)] = dispatchEntry{(*Decoder).decodeType14A}
	t[dispatchKey(14, true)] = dispatchEntry{(*Decoder).decodeType14A}
	t[dispatchKey(15, true)] = dispatchEntry{(*Decoder).decodeType15B}

	return t
}

// dispatch implements spec.md §4.1: fixed extraction and always-emitted
// PI/PTY, then routing to the per-group decoder (if any).
func (d *Decoder) dispatch(g Group) {
	groupType := g.groupType()
	versionB := g.versionB()

	d.state.pi = g.pi()
	d.state.pty = g.pty()

	d.emit(RecordPI, formatPI(g))
	d.emit(RecordPTY, tables.PTYName(d.state.pty))

	if int(groupType) >= len(dispatchTable)/2 {
		// Unreachable given the 4-bit group-type field width; guarded
		// per spec.md §7's "internal logic error" case.
		d.emit(RecordDiagnostic, fmt.Sprintf("internal logic error: group_type=%d out of range", groupType))
		return
	}

	entry := dispatchTable[dispatchKey(groupType, versionB)]
	if entry.decode == nil {
		d.debug.Debug("dispatch: no decoder for group_type=%d version=%s (%s)",
			groupType, versionLetter(versionB), tables.GroupAcronym(groupType, versionB))
		return
	}
	entry.decode(d, g)
}

func versionLetter(versionB bool) string {
	if versionB {
		return "B"
	}
	return "A"
}
