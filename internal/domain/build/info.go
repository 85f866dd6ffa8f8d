// Package build carries build metadata set through ldflags.
package build

import "fmt"

// RepoURL is the project home page.
const RepoURL = "https://github.com/bnema/floatdesk"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Short returns "floatdesk <version> (<commit>)", with "dev" for an
// unstamped build.
func (i Info) Short() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if i.Commit == "" {
		return "floatdesk " + version
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("floatdesk %s (%s)", version, commit)
}

// Authors lists the people credited on the about screen.
func Authors() []string {
	return []string{"bnema"}
}
