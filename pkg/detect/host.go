// SPDX-License-Identifier: Apache-2.0

package detect

import (
	"fmt"
	"os"
	"sync"

	"github.com/docker/go-units"
	"github.com/jaypipes/ghw"
	"github.com/zcalusic/sysinfo"
)

var once sync.Once

func suppressGHWWarnings() {
	once.Do(func() {
		_ = os.Setenv("GHW_DISABLE_WARNINGS", "1")
	})
}

// HostProfile provides an abstraction over system information gathering.
// Local voice and vision models are memory hungry, so the installer uses
// this to warn the user when the host is under-provisioned.
type HostProfile interface {
	// OS information
	GetOSVendor() string
	GetOSVersion() string

	// CPU information
	GetCPUCores() uint

	// Memory information
	GetTotalMemoryBytes() uint64
	GetUsableMemoryBytes() uint64

	String() string
}

// DefaultHostProfile implements HostProfile using both sysinfo and ghw libraries
type DefaultHostProfile struct {
	sysInfo sysinfo.SysInfo
}

// GetHostProfile creates a new DefaultHostProfile by gathering system information
func GetHostProfile() HostProfile {
	// Suppress warnings before any ghw operations
	suppressGHWWarnings()

	var si sysinfo.SysInfo
	si.GetSysInfo()

	return &DefaultHostProfile{
		sysInfo: si,
	}
}

// GetOSVendor returns the OS vendor/distribution name
func (d *DefaultHostProfile) GetOSVendor() string {
	return d.sysInfo.OS.Vendor
}

// GetOSVersion returns the OS version
func (d *DefaultHostProfile) GetOSVersion() string {
	return d.sysInfo.OS.Version
}

// GetCPUCores returns the number of CPU cores
func (d *DefaultHostProfile) GetCPUCores() uint {
	cpu, err := ghw.CPU()
	if err != nil {
		return 0
	}
	return uint(cpu.TotalCores)
}

// GetTotalMemoryBytes returns total physical memory in bytes, or 0 when
// detection fails. ghw reports -1 on failure, which must not wrap around.
func (d *DefaultHostProfile) GetTotalMemoryBytes() uint64 {
	memory, err := ghw.Memory()
	if err != nil {
		return 0
	}
	return nonNegativeBytes(memory.TotalPhysicalBytes)
}

// GetUsableMemoryBytes returns usable physical memory in bytes, or 0 when
// detection fails.
func (d *DefaultHostProfile) GetUsableMemoryBytes() uint64 {
	memory, err := ghw.Memory()
	if err != nil {
		return 0
	}
	return nonNegativeBytes(memory.TotalUsableBytes)
}

// nonNegativeBytes clamps ghw's -1 failure sentinel to 0 before the unsigned
// conversion.
func nonNegativeBytes(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

func (d *DefaultHostProfile) String() string {
	return fmt.Sprintf("OS: %s %s, CPU: %d cores, Memory: %s/%s (usable/total)",
		d.GetOSVendor(), d.GetOSVersion(), d.GetCPUCores(),
		HumanizeBytes(d.GetUsableMemoryBytes()), HumanizeBytes(d.GetTotalMemoryBytes()))
}

// HumanizeBytes returns a human-readable approximation of the memory size
// capped at 4 valid numbers (e.g. "2.746 MB", "796 KB").
func HumanizeBytes(size uint64) string {
	return units.HumanSize(float64(size))
}
