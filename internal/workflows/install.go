// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/config"
	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/internal/workflows/steps"
	"github.com/raven-assistant/ravenctl/pkg/detect"
	"github.com/raven-assistant/ravenctl/pkg/fsx"
	"github.com/raven-assistant/ravenctl/pkg/ollama"
	"github.com/raven-assistant/ravenctl/pkg/python"
	"github.com/raven-assistant/ravenctl/pkg/software"
	"github.com/raven-assistant/ravenctl/pkg/whisper"
)

// requirementsPath resolves the requirements file from config or the default
// project location.
func requirementsPath(cfg config.InstallerConfig) string {
	if cfg.RequirementsFile == "" {
		return core.RequirementsFile()
	}
	if filepath.IsAbs(cfg.RequirementsFile) {
		return cfg.RequirementsFile
	}
	return filepath.Join(core.ProjectDir(), cfg.RequirementsFile)
}

// delegatePath resolves the configured delegate installer relative to the
// project directory.
func delegatePath(cfg config.InstallerConfig) string {
	if filepath.IsAbs(cfg.Delegate) {
		return cfg.Delegate
	}
	return filepath.Join(core.ProjectDir(), cfg.Delegate)
}

// NewInstallWorkflow builds the installation workflow. When a delegate
// installer is configured the workflow hands over to it after the interpreter
// preflight; otherwise the full native installation is performed.
func NewInstallWorkflow(cfg config.InstallerConfig) (automa.Builder, error) {
	fileManager, err := fsx.NewManager()
	if err != nil {
		return nil, err
	}

	osInfo := detectOSInfo()
	detector := software.NewProgramDetector(nil)
	interpreter := &python.Interpreter{}

	if cfg.Delegate != "" {
		return automa.NewWorkflowBuilder().
			WithId("install-delegate").
			Steps(
				steps.CheckPythonInterpreter(detector, osInfo, interpreter),
				steps.RunDelegate(interpreter, delegatePath(cfg)),
			), nil
	}

	venv := python.NewVenv(core.VenvDir())
	whisperManager := whisper.NewManager(core.ModelsDir())
	ollamaManager := ollama.NewManager()

	stepList := []automa.Builder{
		CheckHostMemoryStep(),
		steps.CheckPythonInterpreter(detector, osInfo, interpreter),
	}

	if osInfo.Type == detect.OSTypeLinux {
		stepList = append(stepList,
			steps.RefreshSystemPackageIndex(),
			steps.InstallSystemPackage("python3-venv", software.NewPython3Venv),
			steps.InstallSystemPackage("python3-pip", software.NewPython3Pip),
			steps.InstallSystemPackage("python3-dev", software.NewPython3Dev),
			steps.InstallSystemPackage("portaudio19-dev", software.NewPortaudioDev),
		)
	}

	stepList = append(stepList,
		steps.CreateVenv(venv, interpreter),
		steps.UpgradePip(venv),
		steps.InstallRequirements(venv, requirementsPath(cfg)),
		steps.DownloadWhisperModel(whisperManager, cfg.WhisperModel),
		steps.InstallOllama(ollamaManager, osInfo),
		steps.StartOllamaService(ollamaManager, osInfo),
		steps.PullOllamaModels(ollamaManager, cfg.OllamaModels),
		steps.GenerateRunScript(fileManager, venv),
	)

	return automa.NewWorkflowBuilder().
		WithId("install").
		Steps(stepList...), nil
}

// UsageInstructions renders the post-install "how to use" block.
func UsageInstructions(models []string) string {
	var b strings.Builder

	b.WriteString("\nHOW TO USE R.A.V.E.N.:\n")
	b.WriteString("\n1. START THE APPLICATION:\n")
	if runtime.GOOS == "windows" {
		b.WriteString("   Option A: Double-click run.bat\n")
		b.WriteString(fmt.Sprintf("   Option B: python %s\n", steps.AssistantEntryPoint))
	} else {
		b.WriteString("   Option A: ./run.sh\n")
		b.WriteString(fmt.Sprintf("   Option B: source venv/bin/activate && python %s\n", steps.AssistantEntryPoint))
	}

	b.WriteString("\n2. VOICE COMMANDS:\n")
	b.WriteString("   - Say 'open camera' to activate camera vision\n")
	b.WriteString("   - Say 'close camera' to deactivate camera\n")
	b.WriteString("   - Say 'what do you see' to analyze camera feed\n")
	b.WriteString("   - Say 'goodbye' or 'shutdown' to exit\n")

	b.WriteString("\n3. TROUBLESHOOTING:\n")
	b.WriteString("   - If microphone doesn't work: Check system permissions\n")
	b.WriteString("   - If camera doesn't work: Check camera permissions\n")
	b.WriteString("   - If Ollama errors: Ensure Ollama service is running\n")
	b.WriteString("   - Run 'ravenctl check' to diagnose common issues\n")

	b.WriteString("\n4. REQUIRED MODELS:\n")
	for _, model := range models {
		b.WriteString(fmt.Sprintf("   - %s\n", model))
	}

	b.WriteString("\n5. FOR MORE HELP:\n")
	b.WriteString("   Check README.md for detailed documentation\n")

	return b.String()
}
