// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package rds decodes RDS/RBDS groups (IEC 62106, ISO 14819 for TMC)
// into typed textual records.
//
// A Group is four already error-corrected 16-bit data blocks. The
// caller is responsible for demodulation, differential decoding and
// syndrome-based group synchronisation; this package only sees the
// 16 data bits of each block. The inbound wire format is a blob of
// exactly 8 bytes, interpreted as four little-endian uint16 words
// B0..B3 in that order — bit-exact interoperability with an upstream
// producer requires it to use the same word order.
package rds
