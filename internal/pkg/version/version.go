package version

import (
	"github.com/carlmjohnson/versioninfo"
)

// Injected at build time:
//
//	go build -ldflags "-X killshot/internal/pkg/version.tag=$(git describe --tags --abbrev=0) \
//	  -X killshot/internal/pkg/version.branch=$(git rev-parse --abbrev-ref HEAD)"
var (
	tag    string
	branch string
)

type gitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// GetGitInfo returns the git metadata of the binary. Commit and dirty state
// come from the VCS stamp the go tool records.
func GetGitInfo() gitInfo {
	t := tag
	if t == "" {
		t = versioninfo.Version
	}
	b := branch
	if b == "" {
		b = "unknown"
	}

	return gitInfo{
		Commit: versioninfo.Revision,
		Branch: b,
		Tag:    t,
		Dirty:  versioninfo.DirtyBuild,
	}
}
