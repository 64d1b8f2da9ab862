// SPDX-License-Identifier: Apache-2.0

package common

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestFlagDefinition_StringValue(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	var dir string
	FlagProjectDir.SetVar(cmd, &dir, false)

	v, err := FlagProjectDir.Value(cmd, []string{"--project-dir", "/tmp/raven"})
	require.NoError(t, err)
	require.Equal(t, "/tmp/raven", v)
	require.Equal(t, "/tmp/raven", dir)
}

func TestFlagDefinition_BoolDefault(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	var yes bool
	FlagAssumeYes.SetVar(cmd, &yes, false)

	v, err := FlagAssumeYes.Value(cmd, nil)
	require.NoError(t, err)
	require.False(t, v)

	v, err = FlagAssumeYes.Value(cmd, []string{"--yes"})
	require.NoError(t, err)
	require.True(t, v)
}

func TestFlagDefinition_StringSlice(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	var models []string
	FlagOllamaModels.SetVar(cmd, &models, false)

	v, err := FlagOllamaModels.Value(cmd, []string{"--ollama-models", "llama3.1:8b,qwen2.5vl:7b"})
	require.NoError(t, err)
	require.Equal(t, []string{"llama3.1:8b", "qwen2.5vl:7b"}, v)
}
