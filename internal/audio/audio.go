// Package audio plays the background tracks. Every call is fire and
// forget: playback problems never reach the caller.
package audio

// Track names one looping background tune.
type Track string

const (
	TrackNone     Track = ""
	TrackRomantic Track = "romantic" // Menu
	TrackGame     Track = "game"     // Levels
	TrackVictory  Track = "victory"  // Completion and treasure
)

// Service is the audio collaborator used by the platform.
type Service interface {
	// Play switches to track. Requesting the current track is a no-op.
	Play(t Track)
	// SetVolume sets the master volume in [0, 1].
	SetVolume(v float64)
	// Stop silences playback.
	Stop()
	// Current returns the track playing, or TrackNone.
	Current() Track
}

// Noop is the muted service.
type Noop struct{}

func (Noop) Play(Track) {}
func (Noop) SetVolume(float64) {}
func (Noop) Stop() {}
func (Noop) Current() Track { return TrackNone }
