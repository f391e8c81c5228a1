// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

// decodeType2 implements spec.md §4.5, Radiotext. Version A carries 4
// bytes per segment (16 segments x 4 bytes = 64), version B carries 2
// bytes per segment (16 segments x 2 bytes = 32, so only the first 32
// bytes of the 64-byte buffer are written).
func (d *Decoder) decodeType2(g Group, versionB bool) {
	s := &d.state

	segment := uint8(field(g.B1, 0, 4))
	ab := uint8(field(g.B1, 4, 1))

	if ab != s.rtAB {
		for i := range s.rtBuf {
			s.rtBuf[i] = ' '
		}
		s.rtAB = ab
	}

	if !versionB {
		base := int(segment) * 4
		s.rtBuf[base] = hiByte(g.B2)
		s.rtBuf[base+1] = loByte(g.B2)
		s.rtBuf[base+2] = hiByte(g.B3)
		s.rtBuf[base+3] = loByte(g.B3)
	} else {
		base := int(segment) * 2
		s.rtBuf[base] = hiByte(g.B3)
		s.rtBuf[base+1] = loByte(g.B3)
	}

	d.emit(RecordRadiotext, string(s.rtBuf[:]))
}
