package rules

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// xmllint exits with 3 when the document does not validate.
const exitValidationFailed = 3

// Exec validates documents against an XSD with the external xmllint tool.
type Exec struct {
	// Binary is the xmllint executable, looked up in PATH when relative.
	Binary string
	// Schema is the XSD file.
	Schema string
}

// Validate runs xmllint on path. Reports written by xmllint are split into
// errors and warnings; a failure to run it at all is returned as err.
func (x Exec) Validate(ctx context.Context, path string) (errs, warnings []string, err error) {
	binary := x.Binary
	if binary == "" {
		binary = "xmllint"
	}

	cmd := exec.CommandContext(ctx, binary, "--noout", "--schema", x.Schema, path)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, nil, ctxErr
	}

	errs, warnings = splitReport(stderr.String(), path)

	var exitErr *exec.ExitError

	switch {
	case runErr == nil:
		return nil, warnings, nil
	case errors.As(runErr, &exitErr) && exitErr.ExitCode() == exitValidationFailed:
		if len(errs) == 0 {
			errs = []string{path + " fails to validate"}
		}

		return errs, warnings, nil
	default:
		return nil, nil, fmt.Errorf("running %s on %s: %w: %s", binary, path, runErr, strings.TrimSpace(stderr.String()))
	}
}

// splitReport sorts xmllint's stderr lines into errors and warnings,
// dropping the summary line naming the document.
func splitReport(report, path string) (errs, warnings []string) {
	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case line == "":
		case line == path+" validates", line == path+" fails to validate":
		case strings.Contains(line, "validity warning"):
			warnings = append(warnings, line)
		default:
			errs = append(errs, line)
		}
	}

	return errs, warnings
}
