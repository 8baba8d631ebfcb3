package gen

import (
	"os"
	"path/filepath"
)

// unformattedSuffix keeps the sidecar out of the Go build of the output
// package.
const unformattedSuffix = ".unformatted"

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, filename+unformattedSuffix), content, filePerm)
}
