// SPDX-License-Identifier: Apache-2.0

package software

import "os"

// programInfo implements ProgramInfo interface
type programInfo struct {
	path       string
	mode       os.FileMode
	version    string
	sha256Hash string
}

func (p *programInfo) GetVersion() string {
	return p.version
}

func (p *programInfo) GetHash() string {
	return p.sha256Hash
}

func (p *programInfo) GetFileMode() os.FileMode {
	return p.mode
}

func (p *programInfo) GetPath() string {
	return p.path
}

func (p *programInfo) IsExecAny() bool {
	return p.mode&0111 != 0
}
