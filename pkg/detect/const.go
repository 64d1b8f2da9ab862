package detect

var (
	// release ID to flavor
	linuxFlavorMapping = map[string]string{
		"ubuntu": OSFlavorLinuxUbuntu,
		"debian": OSFlavorLinuxDebian,
		"fedora": OSFlavorLinuxFedora,
		"centos": OSFlavorLinuxCentos,
		"rhel":   OSFlavorLinuxRhel,
		"arch":   OSFlavorLinuxArch,
		"sles":   OSFlavorLinuxSuse,
	}

	// release version to flavor
	macFlavorMapping = map[string]string{
		"11.*": OSFlavorMacBigSur,
		"12.*": OSFlavorMacMonterey,
		"13.*": OSFlavorMacVentura,
		"14.*": OSFlavorMacSonoma,
		"15.*": OSFlavorMacSequoia,
	}
)

const (
	LSBReleaseFileName = "lsb-release"
	OSReleaseFileName  = "os-release"

	EtcLSBReleasePath = "/etc/lsb-release"
	EtcOSReleasePath  = "/etc/os-release"

	OSFlavorUnknown  = "unknown"
	OSVersionUnknown = "unknown"

	OSTypeLinux   = "linux"
	OSTypeDarwin  = "darwin"
	OSTypeWindows = "windows"

	OSFlavorLinuxUbuntu = "ubuntu"
	OSFlavorLinuxDebian = "debian"
	OSFlavorLinuxFedora = "fedora"
	OSFlavorLinuxCentos = "centos"
	OSFlavorLinuxRhel   = "rhel"
	OSFlavorLinuxArch   = "arch"
	OSFlavorLinuxSuse   = "suse"

	OSFlavorMacBigSur   = "big-sur"
	OSFlavorMacMonterey = "monterey"
	OSFlavorMacVentura  = "ventura"
	OSFlavorMacSonoma   = "sonoma"
	OSFlavorMacSequoia  = "sequoia"
)
