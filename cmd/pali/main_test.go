package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
	}{
		{
			name: "success with valid config",
			config: `version: "1"
targets:
  greet:
    cmd: ["echo", "hello"]
    phony: true
`,
			args:         []string{"pali", "run", "greet"},
			expectedExit: 0,
		},
		{
			name: "failing action exits non-zero",
			config: `version: "1"
targets:
  broken:
    cmd: ["sh", "-c", "exit 1"]
    phony: true
`,
			args:         []string{"pali", "run", "broken"},
			expectedExit: 1,
		},
		{
			name:         "missing config",
			config:       "",
			args:         []string{"pali", "run", "greet"},
			expectedExit: 1,
		},
		{
			name: "unknown goal",
			config: `version: "1"
targets:
  greet:
    cmd: ["echo", "hello"]
    phony: true
`,
			args:         []string{"pali", "run", "deploy"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			if tt.config != "" {
				require.NoError(t, os.WriteFile(tmpDir+"/pali.yaml", []byte(tt.config), 0o600))
			}

			originalWd, _ := os.Getwd()
			require.NoError(t, os.Chdir(tmpDir))
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
