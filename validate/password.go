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

package validate

import (
	"fmt"
	"regexp"
)

// PasswordStyle selects the rules a password must follow.
type PasswordStyle int

// These are the supported password styles.
const (
	// Min8AlphaNum requires at least 8 letters and digits, with at least
	// one of each.
	Min8AlphaNum PasswordStyle = iota

	// Min6CapitalOrNumOrSpecial requires at least 6 characters, with at
	// least one capital letter, digit or one of !#$%&?.
	Min6CapitalOrNumOrSpecial

	// Min8AlphaNumSpecial requires at least 8 characters from letters,
	// digits and $@!%*#?&, with at least one of each kind.
	Min8AlphaNumSpecial

	// Min8UpperLowerNum requires at least 8 letters and digits, with at
	// least one upper case letter, one lower case letter and one digit.
	Min8UpperLowerNum

	// Min8UpperLowerNumSpecial is like Min8UpperLowerNum, but also requires
	// one of $@!%*?&#.
	Min8UpperLowerNumSpecial

	// Min8Max10UpperLowerNumSpecial is like Min8UpperLowerNumSpecial, but
	// limits the length to 10 characters.
	Min8Max10UpperLowerNumSpecial
)

var passwordStyleNames = map[PasswordStyle]string{
	Min8AlphaNum:                  "min8-alnum",
	Min6CapitalOrNumOrSpecial:     "min6-capital-or-num-or-special",
	Min8AlphaNumSpecial:           "min8-alnum-special",
	Min8UpperLowerNum:             "min8-upper-lower-num",
	Min8UpperLowerNumSpecial:      "min8-upper-lower-num-special",
	Min8Max10UpperLowerNumSpecial: "min8-max10-upper-lower-num-special",
}

func (s PasswordStyle) String() string {
	if name, ok := passwordStyleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PasswordStyle(%d)", int(s))
}

// ParsePasswordStyle converts a name as returned by PasswordStyle.String
// back into a PasswordStyle.
func ParsePasswordStyle(name string) (PasswordStyle, error) {
	for s, n := range passwordStyleNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown password style %q", name)
}

// passwordPolicy describes a password style.  Go regular expressions have
// no lookahead, so the "at least one of" conditions are listed
// separately.
type passwordPolicy struct {
	charset  *regexp.Regexp // matches the whole password
	required []*regexp.Regexp
}

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasDigit  = regexp.MustCompile(`\d`)
)

var passwordPolicies = map[PasswordStyle]passwordPolicy{
	Min6CapitalOrNumOrSpecial: {
		charset:  regexp.MustCompile(`^.{6,}$`),
		required: []*regexp.Regexp{regexp.MustCompile(`[A-Z\d!#$%&?]`)},
	},
	Min8AlphaNum: {
		charset:  regexp.MustCompile(`^[A-Za-z\d]{8,}$`),
		required: []*regexp.Regexp{hasLetter, hasDigit},
	},
	Min8AlphaNumSpecial: {
		charset: regexp.MustCompile(`^[A-Za-z\d$@!%*#?&]{8,}$`),
		required: []*regexp.Regexp{
			hasLetter, hasDigit, regexp.MustCompile(`[$@!%*#?&]`),
		},
	},
	Min8UpperLowerNum: {
		charset:  regexp.MustCompile(`^[A-Za-z\d]{8,}$`),
		required: []*regexp.Regexp{hasLower, hasUpper, hasDigit},
	},
	Min8UpperLowerNumSpecial: {
		charset: regexp.MustCompile(`^[A-Za-z\d$@!%*?&#]{8,}$`),
		required: []*regexp.Regexp{
			hasLower, hasUpper, hasDigit, regexp.MustCompile(`[$@!%*?&#]`),
		},
	},
	Min8Max10UpperLowerNumSpecial: {
		charset: regexp.MustCompile(`^[A-Za-z\d$@!%*?&#]{8,10}$`),
		required: []*regexp.Regexp{
			hasLower, hasUpper, hasDigit, regexp.MustCompile(`[$@!%*?&#]`),
		},
	},
}

// IsValidPassword reports whether s is an acceptable password of the
// given style.  Unknown styles accept nothing.
func IsValidPassword(s string, style PasswordStyle) bool {
	p, ok := passwordPolicies[style]
	if !ok {
		return false
	}
	s = trim(s)
	if !p.charset.MatchString(s) {
		return false
	}
	for _, re := range p.required {
		if !re.MatchString(s) {
			return false
		}
	}
	return true
}
