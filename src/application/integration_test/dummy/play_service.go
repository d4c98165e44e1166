package dummy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"play-release-tools/src/application/publishing/entity"

	"google.golang.org/api/androidpublisher/v3"
)

var _ entity.Client = &PlayService{}
var _ entity.SessionOpener = &PlayService{}

const (
	OpOpen         = "Open"
	OpInsertEdit   = "InsertEdit"
	OpCommitEdit   = "CommitEdit"
	OpDeleteEdit   = "DeleteEdit"
	OpListTracks   = "ListTracks"
	OpGetTrack     = "GetTrack"
	OpUpdateTrack  = "UpdateTrack"
	OpUploadBundle = "UploadBundle"
)

type Edit struct {
	PackageName string
	Tracks      map[string]*androidpublisher.Track
	Committed   bool
	Deleted     bool
}

type UploadedBundle struct {
	Name      string
	MediaType string
	Content   []byte
}

// PlayService stands in for both the session opener and the remote service.
// Edits stage copies of the committed tracks and a commit publishes them.
type PlayService struct {
	Unavailable bool
	Failures    map[string]error
	BeforeCall  func(operation string)
	AfterCall   func(operation string)

	// UpdateTrack answers with the releases in reverse order
	ReorderReleases bool

	Tracks          map[string]map[string]*androidpublisher.Track
	Edits           map[string]*Edit
	Bundles         map[int64]UploadedBundle
	NextVersionCode int64

	// exactly as handed over by the caller
	LastUpdate *androidpublisher.Track

	Calls      []string
	OpenCount  int
	CloseCount int
}

func NewPlayService() *PlayService {
	return &PlayService{
		Unavailable:     false,
		Failures:        make(map[string]error),
		Tracks:          make(map[string]map[string]*androidpublisher.Track),
		Edits:           make(map[string]*Edit),
		Bundles:         make(map[int64]UploadedBundle),
		NextVersionCode: 100,
	}
}

func (p *PlayService) SetTrack(packageName string, track *androidpublisher.Track) {
	if p.Tracks[packageName] == nil {
		p.Tracks[packageName] = make(map[string]*androidpublisher.Track)
	}

	p.Tracks[packageName][track.Track] = copyTrack(track)
}

// CommittedTrack returns a copy so tests can't reach into the service state.
func (p *PlayService) CommittedTrack(packageName string, trackName string) (*androidpublisher.Track, bool) {
	track, ok := p.Tracks[packageName][trackName]
	if !ok {
		return nil, false
	}

	return copyTrack(track), true
}

func (p *PlayService) CommittedEdits() int {
	count := 0
	for _, edit := range p.Edits {
		if edit.Committed {
			count++
		}
	}
	return count
}

func (p *PlayService) Open(ctx context.Context) (entity.Client, error) {
	if err := p.call(ctx, OpOpen); err != nil {
		return nil, err
	}
	defer p.after(OpOpen)

	p.OpenCount++
	return p, nil
}

func (p *PlayService) Close() error {
	p.CloseCount++
	return nil
}

func (p *PlayService) InsertEdit(ctx context.Context, packageName string) (entity.Edit, error) {
	if err := p.call(ctx, OpInsertEdit); err != nil {
		return entity.Edit{}, err
	}
	defer p.after(OpInsertEdit)

	editID := fmt.Sprintf("edit-%d", len(p.Edits)+1)
	staged := make(map[string]*androidpublisher.Track)
	for name, track := range p.Tracks[packageName] {
		staged[name] = copyTrack(track)
	}

	p.Edits[editID] = &Edit{
		PackageName: packageName,
		Tracks:      staged,
	}

	return entity.Edit{ID: editID, ExpiryTimeSeconds: "1700000000"}, nil
}

func (p *PlayService) CommitEdit(ctx context.Context, packageName string, editID string) (entity.Edit, error) {
	if err := p.call(ctx, OpCommitEdit); err != nil {
		return entity.Edit{}, err
	}
	defer p.after(OpCommitEdit)

	edit, err := p.openEdit(packageName, editID)
	if err != nil {
		return entity.Edit{}, err
	}

	for _, track := range edit.Tracks {
		p.SetTrack(packageName, track)
	}
	edit.Committed = true

	return entity.Edit{ID: editID}, nil
}

func (p *PlayService) DeleteEdit(ctx context.Context, packageName string, editID string) error {
	if err := p.call(ctx, OpDeleteEdit); err != nil {
		return err
	}
	defer p.after(OpDeleteEdit)

	edit, err := p.openEdit(packageName, editID)
	if err != nil {
		return err
	}

	edit.Deleted = true
	return nil
}

func (p *PlayService) ListTracks(ctx context.Context, packageName string, editID string) ([]*androidpublisher.Track, error) {
	if err := p.call(ctx, OpListTracks); err != nil {
		return nil, err
	}
	defer p.after(OpListTracks)

	edit, err := p.openEdit(packageName, editID)
	if err != nil {
		return nil, err
	}

	tracks := []*androidpublisher.Track{}
	for _, name := range entity.StandardTracks {
		if track, ok := edit.Tracks[string(name)]; ok {
			tracks = append(tracks, copyTrack(track))
		}
	}

	return tracks, nil
}

func (p *PlayService) GetTrack(ctx context.Context, packageName string, editID string, trackName string) (*androidpublisher.Track, error) {
	if err := p.call(ctx, OpGetTrack); err != nil {
		return nil, err
	}
	defer p.after(OpGetTrack)

	edit, err := p.openEdit(packageName, editID)
	if err != nil {
		return nil, err
	}

	track, ok := edit.Tracks[trackName]
	if !ok {
		return nil, NotFound
	}

	return copyTrack(track), nil
}

func (p *PlayService) UpdateTrack(ctx context.Context, packageName string, editID string, track *androidpublisher.Track) (*androidpublisher.Track, error) {
	if err := p.call(ctx, OpUpdateTrack); err != nil {
		return nil, err
	}
	defer p.after(OpUpdateTrack)

	edit, err := p.openEdit(packageName, editID)
	if err != nil {
		return nil, err
	}

	p.LastUpdate = track
	edit.Tracks[track.Track] = copyTrack(track)

	response := copyTrack(track)
	if p.ReorderReleases {
		for i, j := 0, len(response.Releases)-1; i < j; i, j = i+1, j-1 {
			response.Releases[i], response.Releases[j] = response.Releases[j], response.Releases[i]
		}
	}
	return response, nil
}

func (p *PlayService) UploadBundle(ctx context.Context, packageName string, editID string, bundle entity.Bundle) (entity.UploadedBundle, error) {
	if err := p.call(ctx, OpUploadBundle); err != nil {
		return entity.UploadedBundle{}, err
	}
	defer p.after(OpUploadBundle)

	if _, err := p.openEdit(packageName, editID); err != nil {
		return entity.UploadedBundle{}, err
	}

	content, err := io.ReadAll(bundle.Content)
	if err != nil {
		return entity.UploadedBundle{}, err
	}

	versionCode := p.NextVersionCode
	p.NextVersionCode++
	p.Bundles[versionCode] = UploadedBundle{
		Name:      bundle.Name,
		MediaType: bundle.MediaType,
		Content:   content,
	}

	return entity.UploadedBundle{VersionCode: versionCode, SHA256: "deadbeef"}, nil
}

func (p *PlayService) call(ctx context.Context, operation string) error {
	p.Calls = append(p.Calls, operation)

	if p.BeforeCall != nil {
		p.BeforeCall(operation)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if p.Unavailable {
		return NetworkFailure
	}

	return p.Failures[operation]
}

func (p *PlayService) after(operation string) {
	if p.AfterCall != nil {
		p.AfterCall(operation)
	}
}

func (p *PlayService) openEdit(packageName string, editID string) (*Edit, error) {
	edit, ok := p.Edits[editID]
	if !ok || edit.PackageName != packageName || edit.Committed || edit.Deleted {
		return nil, UnexpectedInput
	}

	return edit, nil
}

// copyTrack goes through the wire format, the way the remote service sees it.
func copyTrack(track *androidpublisher.Track) *androidpublisher.Track {
	bytes, err := json.Marshal(track)
	if err != nil {
		panic(err)
	}

	copied := &androidpublisher.Track{}
	if err := json.Unmarshal(bytes, copied); err != nil {
		panic(err)
	}

	return copied
}
