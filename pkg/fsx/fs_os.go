// SPDX-License-Identifier: Apache-2.0

package fsx

import (
	"io"
	"os"
	"path/filepath"

	"github.com/joomcode/errorx"
)

type osManager struct{}

func (m *osManager) PathExists(path string) (os.FileInfo, bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errorx.ExternalError.Wrap(err, "failed to stat path: %s", path)
	}
	return info, true, nil
}

func (m *osManager) IsRegularFile(path string) bool {
	info, ok, err := m.PathExists(path)
	if err != nil || !ok {
		return false
	}
	return info.Mode().IsRegular()
}

func (m *osManager) IsDirectory(path string) bool {
	info, ok, err := m.PathExists(path)
	if err != nil || !ok {
		return false
	}
	return info.IsDir()
}

func (m *osManager) CreateDirectory(path string, recursive bool) error {
	info, ok, err := m.PathExists(path)
	if err != nil {
		return err
	}

	if ok {
		if info.IsDir() {
			return nil
		}
		return errorx.IllegalState.New("path exists and is not a directory: %s", path)
	}

	if recursive {
		err = os.MkdirAll(path, 0o755)
	} else {
		err = os.Mkdir(path, 0o755)
	}
	if err != nil {
		return errorx.ExternalError.Wrap(err, "failed to create directory: %s", path)
	}

	return nil
}

func (m *osManager) CopyFile(src string, dst string, overwrite bool) error {
	if !m.IsRegularFile(src) {
		return errorx.IllegalArgument.New("source is not a regular file: %s", src)
	}

	if _, ok, err := m.PathExists(dst); err != nil {
		return err
	} else if ok && !overwrite {
		return errorx.IllegalState.New("destination already exists: %s", dst)
	}

	in, err := os.Open(src)
	if err != nil {
		return errorx.ExternalError.Wrap(err, "failed to open source file: %s", src)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return errorx.ExternalError.Wrap(err, "failed to stat source file: %s", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errorx.ExternalError.Wrap(err, "failed to open destination file: %s", dst)
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, in); err != nil {
		return errorx.ExternalError.Wrap(err, "failed to copy %s to %s", src, dst)
	}

	return out.Sync()
}

func (m *osManager) WriteFile(path string, content []byte) error {
	if err := m.CreateDirectory(filepath.Dir(path), true); err != nil {
		return err
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errorx.ExternalError.Wrap(err, "failed to write file: %s", path)
	}

	return nil
}

func (m *osManager) ReadFile(path string, limit int64) ([]byte, error) {
	if limit < 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errorx.ExternalError.Wrap(err, "failed to read file: %s", path)
		}
		return data, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errorx.ExternalError.Wrap(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, errorx.ExternalError.Wrap(err, "failed to read file: %s", path)
	}

	return data, nil
}

func (m *osManager) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errorx.ExternalError.Wrap(err, "failed to remove path: %s", path)
	}
	return nil
}

func (m *osManager) WritePermissions(path string, perm os.FileMode) error {
	if err := os.Chmod(path, perm); err != nil {
		return errorx.ExternalError.Wrap(err, "failed to change permissions: %s", path)
	}
	return nil
}
