package main

import "runtime/debug"

var version = buildVersion()

// buildVersion reports the module version for tagged installs, otherwise the
// short VCS revision with a "-dirty" suffix for modified trees.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	switch {
	case revision == "":
		return "dev"
	case len(revision) > 7:
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	return revision
}
