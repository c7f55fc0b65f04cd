// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders annotation results for output. Concrete
// formatters live in subpackages and register themselves at init time, so
// callers blank-import the ones they want available.
package formatters

import (
	"fmt"
	"strings"

	"blind-redact/internal/masker"
)

// Options defines configuration options for formatters.
type Options struct {
	Verbose bool // Whether to display per-redaction detail
	NoColor bool // Whether to disable colored output
}

// Formatter is implemented by every output format.
type Formatter interface {
	// Format renders the results in the formatter's output format.
	Format(results []masker.Result, options Options) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders results with the named formatter from the default registry.
func Export(format string, results []masker.Result, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(List(), ", "))
	}
	return formatter.Format(results, options)
}
