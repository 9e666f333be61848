package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompletionShells(t *testing.T) {
	tests := []struct {
		shell   string
		marker  string
		wantErr string
	}{
		{shell: "bash", marker: "__start_tjk"},
		{shell: "zsh", marker: "#compdef tjk"},
		{shell: "fish", marker: "complete -c tjk"},
		{shell: "powershell", marker: "Register-ArgumentCompleter"},
		{shell: "tcsh", wantErr: "unsupported shell: tcsh"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			stdout := new(bytes.Buffer)
			cmd := rootCmdWithOut(stdout)
			err := runCompletion(cmd, tt.shell)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Contains(t, stdout.String(), tt.marker)
		})
	}
}

// rootCmdWithOut returns a bare tjk root so generated scripts carry its name.
func rootCmdWithOut(out *bytes.Buffer) *cobra.Command {
	root := &cobra.Command{Use: "tjk"}
	root.SetOut(out)
	return root
}

func TestCompletionAutoDetect(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	stdout := new(bytes.Buffer)
	cmd := newCompletionGenerateCmd()
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.NoError(t, err)
	assert.NotEmpty(t, stdout.String())
}

func TestCompletionAutoDetectUnknown(t *testing.T) {
	t.Setenv("SHELL", "/bin/csh")
	stdout := new(bytes.Buffer)
	cmd := newCompletionGenerateCmd()
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not detect shell")
}

func TestCompletionRegistered(t *testing.T) {
	commands := rootCmd.Commands()
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name()
	}
	assert.Contains(t, names, "completion")

	// completion is a group holding generate
	var completionGroup *cobra.Command
	for _, cmd := range commands {
		if cmd.Name() == "completion" {
			completionGroup = cmd
			break
		}
	}
	assert.NotNil(t, completionGroup)
	subNames := make([]string, len(completionGroup.Commands()))
	for i, sub := range completionGroup.Commands() {
		subNames[i] = sub.Name()
	}
	assert.Equal(t, []string{"generate"}, subNames)
}

func TestDetectShell(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"/bin/bash", "bash"},
		{"/usr/local/bin/zsh", "zsh"},
		{"/opt/homebrew/bin/fish", "fish"},
		{"/usr/bin/pwsh", "powershell"},
		{"/bin/tcsh", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Setenv("SHELL", tt.shell)
			assert.Equal(t, tt.want, detectShell())
		})
	}
}
