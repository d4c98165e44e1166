package release

import (
	"errors"
	"fmt"
	"play-release-tools/src/lib/cerr"
	"strconv"
	"strings"

	"google.golang.org/api/androidpublisher/v3"
)

var (
	ErrNoReleases        = errors.New("track has no releases")
	ErrNoMatchingRelease = errors.New("no release in the track matches the selector")
)

// Selector picks the release to modify out of a track's release sequence.
type Selector interface {
	Select(releases []*androidpublisher.TrackRelease) (int, error)
	String() string
}

var (
	_ Selector = IndexSelector{}
	_ Selector = VersionCodeSelector{}
	_ Selector = StatusSelector{}
	_ Selector = NameSelector{}
)

// FirstRelease targets the head of the sequence, whatever it holds.
var FirstRelease = IndexSelector{Index: 0}

type IndexSelector struct {
	Index int
}

func (i IndexSelector) Select(releases []*androidpublisher.TrackRelease) (int, error) {
	if len(releases) == 0 {
		return 0, ErrNoReleases
	}

	if i.Index < 0 || i.Index >= len(releases) {
		return 0, cerr.Field("index", i.Index).
			Field("release_count", len(releases)).
			Wrap(ErrNoMatchingRelease).Error("Release index is out of range")
	}

	return i.Index, nil
}

func (i IndexSelector) String() string {
	if i.Index == 0 {
		return "first"
	}

	return fmt.Sprintf("index:%d", i.Index)
}

type VersionCodeSelector struct {
	VersionCode int64
}

func (v VersionCodeSelector) Select(releases []*androidpublisher.TrackRelease) (int, error) {
	return selectWhere(releases, v, func(release *androidpublisher.TrackRelease) bool {
		for _, code := range release.VersionCodes {
			if code == v.VersionCode {
				return true
			}
		}
		return false
	})
}

func (v VersionCodeSelector) String() string {
	return fmt.Sprintf("version-code:%d", v.VersionCode)
}

type StatusSelector struct {
	Status string
}

func (s StatusSelector) Select(releases []*androidpublisher.TrackRelease) (int, error) {
	return selectWhere(releases, s, func(release *androidpublisher.TrackRelease) bool {
		return release.Status == s.Status
	})
}

func (s StatusSelector) String() string {
	return "status:" + s.Status
}

type NameSelector struct {
	Name string
}

func (n NameSelector) Select(releases []*androidpublisher.TrackRelease) (int, error) {
	return selectWhere(releases, n, func(release *androidpublisher.TrackRelease) bool {
		return release.Name == n.Name
	})
}

func (n NameSelector) String() string {
	return "name:" + n.Name
}

func selectWhere(releases []*androidpublisher.TrackRelease, selector Selector, matches func(*androidpublisher.TrackRelease) bool) (int, error) {
	if len(releases) == 0 {
		return 0, ErrNoReleases
	}

	for i, release := range releases {
		if release != nil && matches(release) {
			return i, nil
		}
	}

	return 0, cerr.Field("selector", selector.String()).
		Wrap(ErrNoMatchingRelease).Error("Failed to find the release to modify")
}

// ParseSelector accepts "first", "index:<n>", "version-code:<code>",
// "status:<status>" and "name:<release name>".
func ParseSelector(value string) (Selector, error) {
	if value == "" || value == "first" {
		return FirstRelease, nil
	}

	kind, argument, found := strings.Cut(value, ":")
	if !found || argument == "" {
		return nil, cerr.Field("selector", value).Error("Selector must look like <kind>:<value>")
	}

	switch kind {
	case "index":
		index, err := strconv.Atoi(argument)
		if err != nil {
			return nil, cerr.Field("selector", value).Wrap(err).Error("Release index is not a number")
		}
		return IndexSelector{Index: index}, nil
	case "version-code":
		code, err := strconv.ParseInt(argument, 10, 64)
		if err != nil {
			return nil, cerr.Field("selector", value).Wrap(err).Error("Version code is not a number")
		}
		return VersionCodeSelector{VersionCode: code}, nil
	case "status":
		return StatusSelector{Status: argument}, nil
	case "name":
		return NameSelector{Name: argument}, nil
	default:
		return nil, cerr.Field("selector", value).Error("Unknown selector kind")
	}
}
