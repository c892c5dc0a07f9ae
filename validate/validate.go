// seehuhn.de/go/sigpad - signature capture and input validation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package validate checks text input such as phone numbers, email
// addresses and passwords.
//
// All checks are pure functions of their input.  Leading and trailing
// spaces and tabs are ignored.  A failed check is reported by returning
// false, never as an error.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// trim removes horizontal white space from both ends of s.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\t' || unicode.Is(unicode.Zs, r)
	})
}

var phoneRE = regexp.MustCompile(
	`^\s*(?:\+?(\d{1,3}))?[-. (]*(\d{3})[-. )]*(\d{3})[-. ]*(\d{4})(?: *x(\d+))?\s*$`)

// PhoneNumber is a North American style phone number, split into its
// parts.  CountryCode and Extension are empty if not given.
type PhoneNumber struct {
	CountryCode string
	AreaCode    string
	Exchange    string
	Subscriber  string
	Extension   string
}

func (p PhoneNumber) String() string {
	var b strings.Builder
	if p.CountryCode != "" {
		b.WriteString("+" + p.CountryCode + " ")
	}
	fmt.Fprintf(&b, "(%s) %s-%s", p.AreaCode, p.Exchange, p.Subscriber)
	if p.Extension != "" {
		b.WriteString(" x" + p.Extension)
	}
	return b.String()
}

// ParsePhoneNumber splits a phone number like "1-800-555-1234 x12" into
// its parts.  The area code is required.
func ParsePhoneNumber(s string) (PhoneNumber, bool) {
	m := phoneRE.FindStringSubmatch(trim(s))
	if m == nil {
		return PhoneNumber{}, false
	}
	return PhoneNumber{
		CountryCode: m[1],
		AreaCode:    m[2],
		Exchange:    m[3],
		Subscriber:  m[4],
		Extension:   m[5],
	}, true
}

// IsValidPhoneNumber reports whether s is a phone number with area code,
// optionally preceded by a country code and followed by an extension.
func IsValidPhoneNumber(s string) bool {
	return phoneRE.MatchString(trim(s))
}

var emailRE = regexp.MustCompile(
	`^[A-Z0-9a-z]([A-Z0-9a-z._%+-]{0,30}[A-Z0-9a-z])?` +
		`@([A-Z0-9a-z]([A-Z0-9a-z-]{0,30}[A-Z0-9a-z])?\.){1,5}[A-Za-z]{2,8}$`)

// IsValidEmail reports whether s looks like an email address.  Only ASCII
// addresses are accepted.
func IsValidEmail(s string) bool {
	return emailRE.MatchString(trim(s))
}

// hasMinLength reports whether s has at least n characters.  Characters are
// counted as they are perceived by the user, so that a letter with a
// combining accent or a flag emoji counts once.
func hasMinLength(s string, n int) bool {
	return uniseg.GraphemeClusterCount(s) >= n
}
