package validator

import (
	"fmt"
	"io"
)

// RenderText writes the report as a plain-text document, one block per
// result in report order.
func RenderText(writer io.Writer, results []Result) {
	errors := 0
	warnings := 0

	for _, result := range results {
		fmt.Fprintf(writer, "[%s] %s\n", result.Status, result.Title)

		if result.Description != "" {
			fmt.Fprintf(writer, "  %s\n", result.Description)
		}
		for _, message := range result.Messages {
			fmt.Fprintf(writer, "  - %s\n", message)
		}
		fmt.Fprintln(writer)

		switch result.Status {
		case StatusError:
			errors++
		case StatusWarning:
			warnings++
		}
	}

	fmt.Fprintf(writer, "%d checks, %d errors, %d warnings\n", len(results), errors, warnings)
}

// HasErrors reports whether any result of the report is an error.
func HasErrors(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusError {
			return true
		}
	}

	return false
}
