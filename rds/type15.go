// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rds

// decodeType15B implements spec.md §4.10: fast basic tuning carries no
// information beyond the always-emitted PI/PTY pair the dispatcher
// produces for every group. This decoder is intentionally empty.
func (d *Decoder) decodeType15B(_ Group) {}
