package config

// Mode selects which stages of the update pipeline execute for a run.
type Mode string

// Operation modes. ModeFull is the default when no subcommand is given.
const (
	// ModeCompile downloads, configures, and compiles the new kernel source.
	ModeCompile Mode = "kernel-compile"

	// ModeInstall installs the compiled kernel modules and image, then
	// regenerates the initramfs and updates the bootloader.
	ModeInstall Mode = "kernel-install"

	// ModeDKMS removes DKMS modules for the old kernel, rebuilds them for
	// the new one, then regenerates the initramfs and updates the bootloader.
	ModeDKMS Mode = "dkms-install"

	// ModeFull runs the whole pipeline: compile, install, DKMS, boot update.
	ModeFull Mode = "full"
)

// RequiresOld reports whether the mode needs the old kernel version: modes
// that touch DKMS must know which installed kernel to remove modules from.
func (m Mode) RequiresOld() bool {
	return m == ModeDKMS || m == ModeFull
}

func (m Mode) String() string {
	return string(m)
}

// Downloader is the tool used to fetch the kernel source tarball.
type Downloader string

// Supported downloaders.
const (
	DownloaderCurl Downloader = "curl"
	DownloaderWget Downloader = "wget"
)

// ParseDownloader validates a downloader name from flags or settings.
func ParseDownloader(name string) (Downloader, error) {
	switch Downloader(name) {
	case DownloaderCurl:
		return DownloaderCurl, nil
	case DownloaderWget:
		return DownloaderWget, nil
	default:
		return "", &UnknownDownloaderError{Name: name}
	}
}
