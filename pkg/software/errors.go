// SPDX-License-Identifier: Apache-2.0

package software

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace       = errorx.NewNamespace("software")
	DownloadError         = ErrorsNamespace.NewType("download_error")
	ChecksumError         = ErrorsNamespace.NewType("checksum_error")
	FileNotFoundError     = ErrorsNamespace.NewType("file_not_found")
	ProgramNotFoundError  = ErrorsNamespace.NewType("program_not_found")
	InstallationError     = ErrorsNamespace.NewType("installation_error")
	UninstallationError   = ErrorsNamespace.NewType("uninstallation_error")

	programNameProperty  = errorx.RegisterPrintableProperty("program_name")
	urlProperty          = errorx.RegisterPrintableProperty("url")
	filePathProperty     = errorx.RegisterPrintableProperty("file_path")
	algorithmProperty    = errorx.RegisterPrintableProperty("algorithm")
	expectedHashProperty = errorx.RegisterPrintableProperty("expected_hash")
	actualHashProperty   = errorx.RegisterPrintableProperty("actual_hash")
	statusCodeProperty   = errorx.RegisterPrintableProperty("status_code")
)

const (
	downloadErrorMsg        = "failed to download from URL '%s'"
	checksumErrorMsg        = "checksum verification failed for file '%s' using algorithm '%s' [ expected = '%s', actual = '%s' ]"
	fileNotFoundErrorMsg    = "file not found: '%s'"
	programNotFoundErrorMsg = "program '%s' not found"
	installationErrorMsg    = "failed to install '%s'"
	uninstallationErrorMsg  = "failed to uninstall '%s'"
)

func NewDownloadError(cause error, url string, statusCode int) *errorx.Error {
	err := DownloadError.New(downloadErrorMsg, url).
		WithProperty(urlProperty, url)

	if statusCode > 0 {
		err = err.WithProperty(statusCodeProperty, statusCode)
	}

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewChecksumError(filePath, algorithm, expectedHash, actualHash string) *errorx.Error {
	return ChecksumError.New(checksumErrorMsg, filePath, algorithm, expectedHash, actualHash).
		WithProperty(filePathProperty, filePath).
		WithProperty(algorithmProperty, algorithm).
		WithProperty(expectedHashProperty, expectedHash).
		WithProperty(actualHashProperty, actualHash)
}

func NewFileNotFoundError(filePath string) *errorx.Error {
	return FileNotFoundError.New(fileNotFoundErrorMsg, filePath).
		WithProperty(filePathProperty, filePath)
}

func NewProgramNotFoundError(cause error, programName string) *errorx.Error {
	err := ProgramNotFoundError.New(programNotFoundErrorMsg, programName).
		WithProperty(programNameProperty, programName)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewInstallationError(cause error, programName string) *errorx.Error {
	err := InstallationError.New(installationErrorMsg, programName).
		WithProperty(programNameProperty, programName)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}

func NewUninstallationError(cause error, programName string) *errorx.Error {
	err := UninstallationError.New(uninstallationErrorMsg, programName).
		WithProperty(programNameProperty, programName)

	if cause != nil {
		err = err.WithUnderlyingErrors(cause)
	}

	return err
}
