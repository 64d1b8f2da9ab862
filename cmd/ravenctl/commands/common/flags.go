// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"fmt"

	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/raven-assistant/ravenctl/internal/doctor"
)

var (
	FlagAssumeYes = FlagDefinition[bool]{
		Name:        "yes",
		ShortName:   "y",
		Description: "Assume yes, skip the confirmation prompt",
		Default:     false,
	}

	FlagProjectDir = FlagDefinition[string]{
		Name:        "project-dir",
		ShortName:   "d",
		Description: "Assistant project directory (defaults to the working directory)",
		Default:     "",
	}

	FlagDelegate = FlagDefinition[string]{
		Name:        "delegate",
		ShortName:   "",
		Description: "Delegate installer script to run instead of the native installation",
		Default:     "",
	}

	FlagRequirements = FlagDefinition[string]{
		Name:        "requirements",
		ShortName:   "r",
		Description: "Python requirements file (defaults to requirements.txt in the project directory)",
		Default:     "",
	}

	FlagWhisperModel = FlagDefinition[string]{
		Name:        "whisper-model",
		ShortName:   "",
		Description: "Whisper speech recognition model to download",
		Default:     "",
	}

	FlagOllamaModels = FlagDefinition[[]string]{
		Name:        "ollama-models",
		ShortName:   "",
		Description: "Ollama models to pull during installation",
		Default:     nil,
	}
)

// FlagDefinition defines a command-line flag typed by T.
type FlagDefinition[T any] struct {
	Name        string
	ShortName   string
	Description string
	Default     T
}

// valueFrom contains the common type-switch logic to extract a value
// from the provided pflag.FlagSet.
func (fp *FlagDefinition[T]) valueFrom(flags *pflag.FlagSet) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		v, err := flags.GetString(fp.Name)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case bool:
		v, err := flags.GetBool(fp.Name)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case []string:
		v, err := flags.GetStringSlice(fp.Name)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	default:
		return zero, fmt.Errorf("unsupported flag type: %T", zero)
	}
}

// Value extracts the flag value (persistent, non-persistent or inherited from
// a parent command) from the provided cobra command.
func (fp *FlagDefinition[T]) Value(cmd *cobra.Command, args []string) (T, error) {
	if args == nil {
		args = []string{}
	}

	// Parse so that flags inherited from parent commands are resolved too.
	err := cmd.ParseFlags(args)
	if err != nil {
		var zero T
		return zero, errorx.InternalError.Wrap(err, "failed to parse flags for command %s", cmd.Name())
	}

	return fp.valueFrom(cmd.Flags())
}

// SetVar registers the flag on the command bound to p and exits on error.
func (fp *FlagDefinition[T]) SetVar(cmd *cobra.Command, p *T, required bool) {
	if err := fp.setFlagVar(cmd.Flags(), cmd, p); err != nil {
		doctor.CheckErr(context.Background(), err, "failed to set flag "+fp.Name)
		return
	}

	if err := fp.MarkRequired(cmd, required); err != nil {
		doctor.CheckErr(context.Background(), err, "failed to set flag "+fp.Name)
	}
}

func (fp *FlagDefinition[T]) setFlagVar(flags *pflag.FlagSet, cmd *cobra.Command, p *T) error {
	if p == nil {
		return errorx.IllegalArgument.New("pointer for flag %s is nil", fp.Name)
	}
	if cmd == nil {
		return errorx.IllegalArgument.New("command for flag %s is nil", fp.Name)
	}

	var zero T
	switch any(zero).(type) {
	case string:
		def := any(fp.Default).(string)
		ps, ok := any(p).(*string)
		if !ok {
			return errorx.IllegalArgument.New("expected *string for flag %s", fp.Name)
		}
		flags.StringVarP(ps, fp.Name, fp.ShortName, def, fp.Description)

	case bool:
		def := any(fp.Default).(bool)
		pb, ok := any(p).(*bool)
		if !ok {
			return errorx.IllegalArgument.New("expected *bool for flag %s", fp.Name)
		}
		flags.BoolVarP(pb, fp.Name, fp.ShortName, def, fp.Description)

	case []string:
		def := any(fp.Default).([]string)
		pss, ok := any(p).(*[]string)
		if !ok {
			return errorx.IllegalArgument.New("expected *[]string for flag %s", fp.Name)
		}
		flags.StringSliceVarP(pss, fp.Name, fp.ShortName, def, fp.Description)

	default:
		return fmt.Errorf("unsupported flag type: %T", zero)
	}

	return nil
}

func (fp *FlagDefinition[T]) MarkRequired(cmd *cobra.Command, v bool) error {
	if v {
		err := cmd.MarkFlagRequired(fp.Name)
		if err != nil {
			return errorx.InternalError.Wrap(err, "failed to mark flag %s as required", fp.Name)
		}
	}

	return nil
}
