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

// Command sigform shows a terminal form with validated text fields.
//
// Each field gets a green bar once its content is valid and a red bar
// while it is not.  When the form is submitted, the values are printed.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/sigpad/internal/config"
	"seehuhn.de/go/sigpad/internal/form"
	"seehuhn.de/go/sigpad/validate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	style, err := validate.ParsePasswordStyle(cfg.Form.PasswordStyle)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	m := form.New("Registration", []form.Field{
		{Key: "name", Label: "Name", Rule: validate.NotBlank},
		{Key: "user", Label: "User name", Rule: validate.MinLength(cfg.Form.MinLength)},
		{Key: "phone", Label: "Phone", Rule: validate.Phone},
		{Key: "email", Label: "Email", Rule: validate.Email},
		{Key: "password", Label: "Password", Rule: validate.Password(style), Secret: true},
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if !m.Submitted() {
		os.Exit(1)
	}

	values := m.Values()
	for _, k := range slices.Sorted(maps.Keys(values)) {
		if k == "password" {
			continue
		}
		fmt.Printf("%-10s %s\n", k+":", values[k])
	}
	if phone, ok := validate.ParsePhoneNumber(values["phone"]); ok {
		fmt.Println("normalised phone:", phone)
	}
	fmt.Println("password:", strings.Repeat("*", len(values["password"])))
}
