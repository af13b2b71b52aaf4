package version

import (
	"fmt"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

const (
	FMT_VERSTR      = "v%v.%v.%v-%x"
	MASK_MAJOR_VER  = uint64(0xFF00000000000000)
	MASK_MINOR_VER  = uint64(0x00FF000000000000)
	MASK_PATCH_VER  = uint64(0x0000FFFF00000000)
	MASK_COMMIT_VER = uint64(0x00000000FFFFFFFF)
)

var (
	// it is changed using ldflags.
	//  ex) -ldflags "... -X 'github.com/beatoz/swoupon-go/cmd/version.GitCommit=$(XXX)'"
	Version   string
	GitCommit string

	majorVer  uint64 = 0
	minorVer  uint64 = 1
	patchVer  uint64 = 0
	commitVer uint64 = 0
)

func init() {
	if err := parseVersions(Version, GitCommit); err != nil {
		panic(err)
	}
}

func parseVersions(versionStr, gitCommit string) error {
	if versionStr == "" {
		return nil
	}

	if !strings.HasPrefix(versionStr, "v") {
		return fmt.Errorf("invalid version string: %v", versionStr)
	}
	ver, err := goversion.NewVersion(versionStr)
	if err != nil {
		return fmt.Errorf("invalid version string: %v: %w", versionStr, err)
	}
	segs := ver.Segments64()
	vers := make([]uint64, 3)
	for i, bits := range []uint{8, 8, 16} {
		if segs[i] < 0 || segs[i] >= 1<<bits {
			return fmt.Errorf("invalid version string: %v: segment %d out of range", versionStr, i)
		}
		vers[i] = uint64(segs[i])
	}

	commit := uint64(0)
	if gitCommit != "" {
		if len(gitCommit) > 8 {
			gitCommit = gitCommit[:8]
		}
		c, err := strconv.ParseUint(gitCommit, 16, 32)
		if err != nil {
			return fmt.Errorf("invalid git commit: %v: %w", gitCommit, err)
		}
		commit = c
	}

	majorVer, minorVer, patchVer, commitVer = vers[0], vers[1], vers[2], commit
	return nil
}

func String() string {
	return fmt.Sprintf(FMT_VERSTR, majorVer, minorVer, patchVer, commitVer)
}

// Uint64 packs the version into a single number using the MASK_* layout.
func Uint64() uint64 {
	return (majorVer<<56)&MASK_MAJOR_VER |
		(minorVer<<48)&MASK_MINOR_VER |
		(patchVer<<32)&MASK_PATCH_VER |
		commitVer&MASK_COMMIT_VER
}

func Major() uint64 {
	return majorVer
}

func Minor() uint64 {
	return minorVer
}

func Patch() uint64 {
	return patchVer
}

func CommitHash() uint64 {
	return commitVer
}
