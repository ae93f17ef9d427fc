/*
Copyright 2025 The AlaudaDevops Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package validate

import "fmt"

// Severity classifies how a finding affects the document
type Severity string

const (
	// SeverityError marks documents the external service would reject
	SeverityError Severity = "error"
	// SeverityWarning marks accepted but likely unintended configuration
	SeverityWarning Severity = "warning"
)

// Finding represents a single lint result against a configuration document
type Finding struct {
	// Rule is the identifier of the lint rule that produced this finding
	Rule string `json:"rule" yaml:"rule"`
	// Severity is the finding severity
	Severity Severity `json:"severity" yaml:"severity"`
	// Path locates the offending value inside the document,
	// e.g. "updates[1].schedule.interval"
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the problem
	Message string `json:"message" yaml:"message"`
}

// String returns a formatted one-line representation of the finding
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s (%s)", f.Severity, f.Path, f.Message, f.Rule)
}

// Findings is the complete result of linting one document
type Findings []Finding

// Errors returns only error-severity findings
func (f Findings) Errors() Findings {
	errors := make(Findings, 0, len(f))
	for _, finding := range f {
		if finding.Severity == SeverityError {
			errors = append(errors, finding)
		}
	}
	return errors
}

// Warnings returns only warning-severity findings
func (f Findings) Warnings() Findings {
	warnings := make(Findings, 0, len(f))
	for _, finding := range f {
		if finding.Severity == SeverityWarning {
			warnings = append(warnings, finding)
		}
	}
	return warnings
}

// HasErrors reports whether any finding is an error
func (f Findings) HasErrors() bool {
	for _, finding := range f {
		if finding.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Summary returns a human-readable summary of the lint run
func (f Findings) Summary() string {
	if len(f) == 0 {
		return "Document is valid"
	}
	return fmt.Sprintf("Found %d errors, %d warnings", len(f.Errors()), len(f.Warnings()))
}

// errorf appends an error finding
func (f *Findings) errorf(rule, path, format string, args ...any) {
	*f = append(*f, Finding{
		Rule:     rule,
		Severity: SeverityError,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// warnf appends a warning finding
func (f *Findings) warnf(rule, path, format string, args ...any) {
	*f = append(*f, Finding{
		Rule:     rule,
		Severity: SeverityWarning,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}
