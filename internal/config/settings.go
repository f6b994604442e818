// Package config derives the validated execution plan for a kernel update
// run and loads the ambient settings it starts from.
package config

// Settings are the host-specific defaults a run starts from. They come from
// the settings file and KERNUP_* environment variables; command-line flags
// override the suffix and downloader. The validated Plan is derived from
// Settings plus the version pair and never reads them again.
type Settings struct {
	// URLBase is the base URL kernel tarballs are fetched from. Empty means
	// derive "https://cdn.kernel.org/pub/linux/kernel/v<major>.x" from the
	// new version.
	URLBase string `mapstructure:"urlBase" yaml:"urlBase"`

	// SourceBase is the directory kernel source trees are extracted into.
	SourceBase string `mapstructure:"sourceBase" yaml:"sourceBase"`

	// ModuleBase is the directory installed kernel module trees live in.
	ModuleBase string `mapstructure:"moduleBase" yaml:"moduleBase"`

	// ConfigBase is the directory holding the config-<suffix> build
	// configuration template.
	ConfigBase string `mapstructure:"configBase" yaml:"configBase"`

	// BootDir is the directory the kernel image is installed into.
	BootDir string `mapstructure:"bootDir" yaml:"bootDir"`

	// Suffix is the identifier appended to kernel and module names to
	// distinguish this custom build.
	Suffix string `mapstructure:"suffix" yaml:"suffix"`

	// Downloader selects the download tool: "curl" or "wget".
	Downloader string `mapstructure:"downloader" yaml:"downloader"`

	// DKMSModule is the out-of-tree module managed through DKMS.
	DKMSModule string `mapstructure:"dkmsModule" yaml:"dkmsModule"`

	// InitramfsTool is the initramfs generator program.
	InitramfsTool string `mapstructure:"initramfsTool" yaml:"initramfsTool"`

	// BootloaderTool is the bootloader update program.
	BootloaderTool string `mapstructure:"bootloaderTool" yaml:"bootloaderTool"`
}

// DefaultSettings returns Settings with all default values populated.
// The paths match an Arch/Manjaro-like layout with GRUB and an NVIDIA
// driver managed through DKMS.
func DefaultSettings() Settings {
	return Settings{
		SourceBase:     "/lib/modules",
		ModuleBase:     "/lib/modules",
		ConfigBase:     "/lib/modules",
		BootDir:        "/boot",
		Suffix:         "custom",
		Downloader:     "curl",
		DKMSModule:     "nvidia",
		InitramfsTool:  "mkinitcpio",
		BootloaderTool: "update-grub",
	}
}
