// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package prompts

import "github.com/charmbracelet/huh"

// RunTranslateForm prompts for the values the translate command needs
// when no module files were given on the command line.
func RunTranslateForm(file, format *string, camelCase *bool, formats []string) error {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("YANG module file").
				Validate(fileValidator).
				Value(file),
			huh.NewSelect[string]().
				Title("Output format").
				Options(options...).
				Value(format),
			huh.NewConfirm().
				Title("Use camel-case capitalization for property names?").
				Value(camelCase),
		),
	).WithTheme(Theme())

	return form.Run()
}
