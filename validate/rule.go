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

import "fmt"

type ruleKind int

const (
	kindBlank ruleKind = iota
	kindMinLength
	kindPhone
	kindEmail
	kindPassword
)

// Rule is a check for a text field.  Rules are comparable with ==.
type Rule struct {
	kind  ruleKind
	n     int
	style PasswordStyle
}

// These rules need no parameters.
var (
	// NotBlank accepts every non-empty input.
	NotBlank = Rule{kind: kindBlank}

	// Phone accepts phone numbers, see IsValidPhoneNumber.
	Phone = Rule{kind: kindPhone}

	// Email accepts email addresses, see IsValidEmail.
	Email = Rule{kind: kindEmail}
)

// MinLength returns a rule accepting input with at least n characters.
func MinLength(n int) Rule {
	return Rule{kind: kindMinLength, n: n}
}

// Password returns a rule accepting passwords of the given style.
func Password(style PasswordStyle) Rule {
	return Rule{kind: kindPassword, style: style}
}

func (r Rule) String() string {
	switch r.kind {
	case kindBlank:
		return "not blank"
	case kindMinLength:
		return fmt.Sprintf("at least %d characters", r.n)
	case kindPhone:
		return "phone number"
	case kindEmail:
		return "email address"
	case kindPassword:
		return "password (" + r.style.String() + ")"
	default:
		return "invalid rule"
	}
}

// Validate reports whether s satisfies the rule r.
func Validate(r Rule, s string) bool {
	switch r.kind {
	case kindBlank:
		return trim(s) != ""
	case kindMinLength:
		return hasMinLength(trim(s), r.n)
	case kindPhone:
		return IsValidPhoneNumber(s)
	case kindEmail:
		return IsValidEmail(s)
	case kindPassword:
		return IsValidPassword(s, r.style)
	default:
		return false
	}
}
