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

import "testing"

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"not-an-email", false},
		{"  first.last+tag@mail.example.co.uk\t", true},
		{"a@b.de", true},
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user@example", false},
		{"user@-example.com", false},
		{"user@example.c", false},
		{"user@example.toolongtld", false},
		{"us er@example.com", false},
		{"jürgen@example.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidEmail(tc.in); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %t, want %t", tc.in, got, tc.want)
		}
	}
}

func TestPhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1-800-555-1234", true},
		{"555-1234", false},
		{"800 555 1234", true},
		{"(800) 555-1234", true},
		{"+1 (800) 555-1234 x42", true},
		{"1----800----555-1234", true},
		{"8005551234", true},
		{"800-555-123", false},
		{"800-555-1234 ext 5", false},
		{"phone", false},
	}
	for _, tc := range cases {
		if got := IsValidPhoneNumber(tc.in); got != tc.want {
			t.Errorf("IsValidPhoneNumber(%q) = %t, want %t", tc.in, got, tc.want)
		}
	}
}

func TestParsePhoneNumber(t *testing.T) {
	p, ok := ParsePhoneNumber(" +44 (800) 555-1234 x12 ")
	if !ok {
		t.Fatal("number not recognised")
	}
	want := PhoneNumber{
		CountryCode: "44",
		AreaCode:    "800",
		Exchange:    "555",
		Subscriber:  "1234",
		Extension:   "12",
	}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
	if s := p.String(); s != "+44 (800) 555-1234 x12" {
		t.Errorf("String() = %q", s)
	}

	p, ok = ParsePhoneNumber("800.555.1234")
	if !ok || p.CountryCode != "" || p.Extension != "" {
		t.Errorf("got %+v, %t", p, ok)
	}

	if _, ok := ParsePhoneNumber("555-1234"); ok {
		t.Error("number without area code accepted")
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		style PasswordStyle
		in    string
		want  bool
	}{
		{Min8AlphaNum, "abc12345", true},
		{Min8AlphaNum, "abcdefgh", false},
		{Min8AlphaNum, "12345678", false},
		{Min8AlphaNum, "abc1234", false},
		{Min8AlphaNum, "abc1234!", false},
		{Min8AlphaNum, " abc12345 ", true},

		{Min6CapitalOrNumOrSpecial, "abcdeF", true},
		{Min6CapitalOrNumOrSpecial, "abcde1", true},
		{Min6CapitalOrNumOrSpecial, "abcde?", true},
		{Min6CapitalOrNumOrSpecial, "abcdef", false},
		{Min6CapitalOrNumOrSpecial, "abcD1", false},
		{Min6CapitalOrNumOrSpecial, "a!", false},

		{Min8AlphaNumSpecial, "abc1234$", true},
		{Min8AlphaNumSpecial, "abc12345", false},
		{Min8AlphaNumSpecial, "abc1234^", false},

		{Min8UpperLowerNum, "Abc12345", true},
		{Min8UpperLowerNum, "abc12345", false},
		{Min8UpperLowerNum, "ABC12345", false},

		{Min8UpperLowerNumSpecial, "Abc1234#", true},
		{Min8UpperLowerNumSpecial, "Abcdefg1", false},
		{Min8UpperLowerNumSpecial, "abc1234#", false},

		{Min8Max10UpperLowerNumSpecial, "Abc1234#", true},
		{Min8Max10UpperLowerNumSpecial, "Abc1234#xy", true},
		{Min8Max10UpperLowerNumSpecial, "Abc1234#xyz", false},
		{Min8Max10UpperLowerNumSpecial, "Ab1#", false},

		{PasswordStyle(99), "Abc1234#", false},
	}
	for _, tc := range cases {
		if got := IsValidPassword(tc.in, tc.style); got != tc.want {
			t.Errorf("IsValidPassword(%q, %s) = %t, want %t", tc.in, tc.style, got, tc.want)
		}
	}
}

func TestPasswordStyleNames(t *testing.T) {
	for style := range passwordPolicies {
		got, err := ParsePasswordStyle(style.String())
		if err != nil || got != style {
			t.Errorf("%s: got %v, %v", style, got, err)
		}
	}
	if _, err := ParsePasswordStyle("strong"); err == nil {
		t.Error("unknown style accepted")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		rule Rule
		in   string
		want bool
	}{
		{NotBlank, "x", true},
		{NotBlank, "", false},
		{NotBlank, " \t ", false},
		{MinLength(6), "abcdef", true},
		{MinLength(6), "abcde", false},
		{MinLength(3), "🇩🇪🇫🇷", false},
		{MinLength(2), "🇩🇪🇫🇷", true},
		{MinLength(4), "éééé", true},
		{MinLength(5), "éééé", false},
		{MinLength(0), "", true},
		{Phone, "1-800-555-1234", true},
		{Phone, "555-1234", false},
		{Email, "user@example.com", true},
		{Email, "not-an-email", false},
		{Password(Min8AlphaNum), "abc12345", true},
		{Password(Min8UpperLowerNum), "abc12345", false},
		{Rule{kind: ruleKind(42)}, "anything", false},
	}
	for _, tc := range cases {
		if got := Validate(tc.rule, tc.in); got != tc.want {
			t.Errorf("Validate(%s, %q) = %t, want %t", tc.rule, tc.in, got, tc.want)
		}
	}
}

func TestRuleEquality(t *testing.T) {
	if MinLength(3) != MinLength(3) {
		t.Error("equal rules compare unequal")
	}
	if MinLength(3) == MinLength(4) {
		t.Error("different lengths compare equal")
	}
	if Password(Min8AlphaNum) == Password(Min8UpperLowerNum) {
		t.Error("different password styles compare equal")
	}
	var zero Rule
	if zero != NotBlank {
		t.Error("zero rule is not NotBlank")
	}
}
