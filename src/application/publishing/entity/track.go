package entity

type TrackName string

// Tracks every application has. The remote service also accepts custom
// closed testing track names, so these are not enforced locally.
const (
	InternalTrack   TrackName = "internal"
	AlphaTrack      TrackName = "alpha"
	BetaTrack       TrackName = "beta"
	ProductionTrack TrackName = "production"
)

var StandardTracks = []TrackName{InternalTrack, AlphaTrack, BetaTrack, ProductionTrack}

type ReleaseStatus string

// DraftStatus is what a newly uploaded bundle is released as unless told otherwise.
const DraftStatus ReleaseStatus = "draft"
