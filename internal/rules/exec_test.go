package rules

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLint writes a shell script standing in for xmllint. Its arguments are
// --noout --schema <xsd> <document>.
func fakeLint(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "xmllint")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	return path
}

func TestExecValidate(t *testing.T) {
	tests := []struct {
		name         string
		script       string
		wantErrs     []string
		wantWarnings []string
		wantErr      string
	}{
		{
			name:   "validates",
			script: `echo "$4 validates" >&2`,
		},
		{
			name: "validity errors",
			script: `echo "$4:3: element Wall: Schemas validity error : Element 'Wall': Missing child element(s)." >&2
echo "$4:9: element Area: Schemas validity warning : unusual value" >&2
echo "$4 fails to validate" >&2
exit 3`,
			wantErrs:     []string{"doc.xml:3: element Wall: Schemas validity error : Element 'Wall': Missing child element(s)."},
			wantWarnings: []string{"doc.xml:9: element Area: Schemas validity warning : unusual value"},
		},
		{
			name: "summary only",
			script: `echo "$4 fails to validate" >&2
exit 3`,
			wantErrs: []string{"doc.xml fails to validate"},
		},
		{
			name: "broken schema",
			script: `echo "WXS schema $3 failed to compile" >&2
exit 5`,
			wantErr: "failed to compile",
		},
		{
			name:    "checks arguments",
			script: `[ "$1" = "--noout" ] && [ "$2" = "--schema" ] && [ "$3" = "HPXML.xsd" ] || exit 9`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := Exec{Binary: fakeLint(t, tt.script), Schema: "HPXML.xsd"}

			errs, warnings, err := x.Validate(context.Background(), "doc.xml")
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantErrs, errs)
			assert.Equal(t, tt.wantWarnings, warnings)
		})
	}
}

func TestExecMissingBinary(t *testing.T) {
	x := Exec{Binary: filepath.Join(t.TempDir(), "no-such-xmllint"), Schema: "HPXML.xsd"}

	_, _, err := x.Validate(context.Background(), "doc.xml")
	assert.ErrorContains(t, err, "running")
}

func TestExecCancelled(t *testing.T) {
	x := Exec{Binary: fakeLint(t, "sleep 5"), Schema: "HPXML.xsd"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := x.Validate(ctx, "doc.xml")
	assert.ErrorIs(t, err, context.Canceled)
}
