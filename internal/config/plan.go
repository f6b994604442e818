package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kernup/cli/internal/kernel"
)

// Plan is the validated, fully-derived execution plan for one run. It is
// built exactly once, from validated input, and read-only afterwards; every
// stage consults it for paths and names. Construction is pure: no filesystem
// or network access.
type Plan struct {
	// VersionNew is the kernel version being built or installed.
	VersionNew kernel.Version

	// VersionOld is the kernel version being replaced; nil for modes that
	// do not need it.
	VersionOld *kernel.Version

	// Mode selects which stages execute.
	Mode Mode

	// Suffix distinguishes this custom build in kernel and module names.
	Suffix string

	// Downloader fetches the source tarball.
	Downloader Downloader

	// SourceBase is the directory source trees are extracted into.
	SourceBase string

	// ModuleBase is the directory installed module trees live in.
	ModuleBase string

	// BootDir is the directory the kernel image is installed into.
	BootDir string

	// DKMSModule is the out-of-tree module managed through DKMS.
	DKMSModule string

	// InitramfsTool and BootloaderTool are the boot regeneration programs.
	InitramfsTool  string
	BootloaderTool string

	// SourceDirName is the extracted source tree's directory name,
	// e.g. "linux-6.15.4" ("linux-6.15" for patch-zero versions).
	SourceDirName string

	// SourceDir is SourceBase joined with SourceDirName.
	SourceDir string

	// TarballName is the local tarball filename, e.g. "linux-6.15.4.tar.xz".
	TarballName string

	// DownloadURL is the full tarball URL.
	DownloadURL string

	// KernelIdentNew names the new kernel's module directory and DKMS
	// registration, e.g. "6.15.4-custom" ("6.15-custom" for patch zero).
	KernelIdentNew string

	// KernelIdentOld is the old kernel's identifier, always in full
	// major.minor.patch form. Empty when VersionOld is nil.
	KernelIdentOld string

	// ConfigTemplate is the path of the pre-existing build configuration
	// template, e.g. "/lib/modules/config-custom".
	ConfigTemplate string

	// BootImagePath is where the compiled kernel image is installed,
	// e.g. "/boot/vmlinuz-6.15". Always uses the major.minor form.
	BootImagePath string

	// ModuleDir is the new kernel's installed module directory.
	ModuleDir string

	// InitramfsProfile is the initramfs generator preset name,
	// e.g. "linux615_custom".
	InitramfsProfile string
}

// Build validates the version pair against the operation mode and derives
// the full execution plan from the settings.
//
// Validation order:
//  1. If old is present, new must be strictly greater than old.
//  2. Modes that touch DKMS (dkms-install and the full default) require old.
func Build(newVersion kernel.Version, oldVersion *kernel.Version, mode Mode, settings Settings) (*Plan, error) {
	if oldVersion != nil && !oldVersion.Less(newVersion) {
		return nil, &VersionOrderError{New: newVersion, Old: *oldVersion}
	}

	if mode.RequiresOld() && oldVersion == nil {
		return nil, &MissingOldVersionError{Mode: mode}
	}

	downloader, err := ParseDownloader(settings.Downloader)
	if err != nil {
		return nil, err
	}

	// Upstream release naming drops a zero patch component: 6.15.0 ships as
	// linux-6.15.tar.xz. The derived names must mirror that exactly.
	releaseName := newVersion.String()
	if newVersion.Patch == 0 {
		releaseName = newVersion.ShortString()
	}

	urlBase := settings.URLBase
	if urlBase == "" {
		urlBase = fmt.Sprintf("https://cdn.kernel.org/pub/linux/kernel/v%d.x", newVersion.Major)
	}

	sourceDirName := "linux-" + releaseName
	tarballName := sourceDirName + ".tar.xz"
	identNew := releaseName + "-" + settings.Suffix

	identOld := ""
	if oldVersion != nil {
		identOld = oldVersion.String() + "-" + settings.Suffix
	}

	return &Plan{
		VersionNew:       newVersion,
		VersionOld:       oldVersion,
		Mode:             mode,
		Suffix:           settings.Suffix,
		Downloader:       downloader,
		SourceBase:       settings.SourceBase,
		ModuleBase:       settings.ModuleBase,
		BootDir:          settings.BootDir,
		DKMSModule:       settings.DKMSModule,
		InitramfsTool:    settings.InitramfsTool,
		BootloaderTool:   settings.BootloaderTool,
		SourceDirName:    sourceDirName,
		SourceDir:        filepath.Join(settings.SourceBase, sourceDirName),
		TarballName:      tarballName,
		DownloadURL:      urlBase + "/" + tarballName,
		KernelIdentNew:   identNew,
		KernelIdentOld:   identOld,
		ConfigTemplate:   filepath.Join(settings.ConfigBase, "config-"+settings.Suffix),
		BootImagePath:    filepath.Join(settings.BootDir, "vmlinuz-"+newVersion.ShortString()),
		ModuleDir:        filepath.Join(settings.ModuleBase, identNew),
		InitramfsProfile: fmt.Sprintf("linux%d%d_%s", newVersion.Major, newVersion.Minor, settings.Suffix),
	}, nil
}

// Summary renders the resolved plan for the operator, one line per field.
func (p *Plan) Summary() []string {
	lines := []string{
		fmt.Sprintf("Mode: %s", p.Mode),
		fmt.Sprintf("New version: %s", p.VersionNew),
	}
	if p.VersionOld != nil {
		lines = append(lines, fmt.Sprintf("Old version: %s", p.VersionOld))
	}
	lines = append(lines,
		fmt.Sprintf("Downloader: %s", p.Downloader),
		fmt.Sprintf("Source tree: %s", p.SourceDir),
		fmt.Sprintf("Kernel ident: %s", p.KernelIdentNew),
	)
	if p.KernelIdentOld != "" {
		lines = append(lines, fmt.Sprintf("Old kernel ident: %s", p.KernelIdentOld))
	}
	lines = append(lines, fmt.Sprintf("Boot image: %s", p.BootImagePath))
	return lines
}

// SummaryString is Summary joined with newlines, for plain output.
func (p *Plan) SummaryString() string {
	return strings.Join(p.Summary(), "\n")
}
