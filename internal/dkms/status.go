// Package dkms parses the DKMS registry's status output.
//
// `dkms status` prints one line per registered (module, kernel) pair:
//
//	nvidia/550.135, 6.11.10-2-MANJARO, x86_64: installed
//	nvidia/550.135, 6.12.4-custom, x86_64: installed
package dkms

import "strings"

// ModuleVersion extracts the driver version registered for module from
// status output. The first line that starts with "module/" and contains a
// comma carries the version: the token between the slash and the first
// comma.
//
// Output with no mention of the module at all yields a *ModuleNotFoundError;
// output that mentions it but has no parseable line yields a
// *StatusParseError.
func ModuleVersion(status, module string) (string, error) {
	if !strings.Contains(status, module) {
		return "", &ModuleNotFoundError{Module: module}
	}

	prefix := module + "/"
	for _, line := range strings.Split(status, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		rest := line[len(prefix):]
		comma := strings.Index(rest, ",")
		if comma < 0 {
			continue
		}

		version := strings.TrimSpace(rest[:comma])
		if version == "" {
			return "", &StatusParseError{
				Output: status,
				Reason: "empty version token before the first comma",
			}
		}
		return version, nil
	}

	return "", &StatusParseError{
		Output: status,
		Reason: "no line matched the " + prefix + "<version>, ... format",
	}
}
