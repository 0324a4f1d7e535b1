// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ubicity-corp/yang2tosca/internal/config"
	"github.com/ubicity-corp/yang2tosca/internal/prompts"
	"github.com/ubicity-corp/yang2tosca/internal/translate"
	"github.com/ubicity-corp/yang2tosca/internal/yang"

	// Import translator to auto-register
	_ "github.com/ubicity-corp/yang2tosca/internal/translate/tosca"
)

type translateOptions struct {
	format    string
	output    string
	camelCase bool
	typeMap   string
	paths     []string
}

func registerTranslateCmd(parent *cobra.Command) {
	opts := &translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [module file...]",
		Short: "Translate YANG modules to a target format",
		Long: fmt.Sprintf(`Translate YANG modules to a target format.

Available formats: %s`, strings.Join(translate.Available(), ", ")),
		Example: `  # Interactive mode
  yang2tosca translate

  # Translate a single module
  yang2tosca translate ietf-interfaces.yang

  # Translate multiple modules into a directory
  yang2tosca translate -o types a.yang b.yang

  # Resolve imports against additional module directories
  yang2tosca translate -p ./standard/ietf module.yang

  # Use camel-case property names and a custom type map
  yang2tosca translate --camel-case -t typemap.yaml module.yang`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "tosca", fmt.Sprintf("Output format (%s)", strings.Join(translate.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "Output directory")
	cmd.Flags().BoolVar(&opts.camelCase, "camel-case", false, "Use camel-case capitalization for property and attribute names")
	cmd.Flags().StringVarP(&opts.typeMap, "type-map", "t", "", "Type map configuration file (defaults to the built-in map)")
	cmd.Flags().StringArrayVarP(&opts.paths, "path", "p", nil, "Directory searched for imported modules (repeatable)")

	parent.AddCommand(cmd)
}

func runTranslate(opts *translateOptions, args []string) error {
	// A wrong type map would corrupt every scalar type in the output,
	// so configuration problems abort before any file is touched.
	cfg := config.Default()
	if opts.typeMap != "" {
		loaded, err := config.Load(opts.typeMap)
		if err != nil {
			return fmt.Errorf("failed to load type map: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid type map %s: %w", opts.typeMap, err)
		}
		cfg = loaded
	}

	// Prompt for any missing values
	if len(args) == 0 {
		var file string
		err := prompts.RunTranslateForm(&file, &opts.format, &opts.camelCase, translate.Available())
		if err != nil {
			return err
		}
		args = []string{file}
	}

	translator, err := translate.Get(opts.format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			opts.format, strings.Join(translate.Available(), ", "))
	}

	registry := yang.NewRegistry()

	// Modules in the search path are only import targets; parse failures
	// there are reported but do not abort the run.
	for _, dir := range opts.paths {
		loader := yang.NewLoader(os.DirFS(dir))
		err := loader.LoadDir(".", registry, func(err error) {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		})
		if err != nil {
			return fmt.Errorf("failed to read module directory %s: %w", dir, err)
		}
	}

	var modules []*yang.Node
	for _, arg := range args {
		loader := yang.NewLoader(os.DirFS(filepath.Dir(arg)))
		module, err := loader.LoadFile(filepath.Base(arg))
		if err != nil {
			return err
		}
		registry.Add(module)
		modules = append(modules, module)
	}

	for _, module := range modules {
		registry.Resolve(module)
	}

	if err := os.MkdirAll(opts.output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Translating %d module(s) to %s...\n", len(modules), opts.format)

	var errors []string
	successCount := 0

	for _, module := range modules {
		data, err := translator.Translate(module, registry, translate.Options{
			TypeMap:   cfg.TypeMap,
			CamelCase: opts.camelCase,
		})
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", module.Argument, err))
			continue
		}

		outFile := filepath.Join(opts.output, module.Argument+translator.FileExtension())

		if err := os.WriteFile(outFile, data, 0o600); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", module.Argument, err))
			continue
		}
		fmt.Printf("  %s\n", outFile)
		successCount++
	}

	fmt.Printf("\nSuccessfully translated %d module(s)\n", successCount)

	if len(errors) > 0 {
		fmt.Println("\nErrors:")
		for _, err := range errors {
			fmt.Printf("  - %s\n", err)
		}
		return fmt.Errorf("failed to translate %d module(s)", len(errors))
	}

	return nil
}
