package services

import (
	"errors"
	"sync"

	"route-preview-service/internal/domain"
)

// Phase is the presentation state of the route search.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSearching Phase = "searching"
	PhaseResolved  Phase = "resolved"
	PhaseFailed    Phase = "failed"
)

// ErrSearchInProgress rejects a search started while one is outstanding.
var ErrSearchInProgress = errors.New("a search is already in progress")

// Session holds the presentation state the renderer consumes: the current
// endpoint texts plus the Idle -> Searching -> Resolved|Failed machine.
//
// Begin hands out a generation token and each completion must present it.
// A completion carrying a stale token is discarded, so a late result from
// an abandoned search can never overwrite newer state.
type Session struct {
	mu         sync.Mutex
	phase      Phase
	generation uint64
	startText  string
	endText    string
	route      *domain.RouteResult
	reason     string
}

func NewSession() *Session {
	return &Session{phase: PhaseIdle}
}

// Snapshot is a point-in-time copy of the session for rendering.
type Snapshot struct {
	Phase      Phase
	StartText  string
	EndText    string
	Route      *domain.RouteResult
	FailReason string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Phase:      s.phase,
		StartText:  s.startText,
		EndText:    s.endText,
		Route:      s.route,
		FailReason: s.reason,
	}
}

// SetInputs replaces both endpoint texts without touching the search phase.
func (s *Session) SetInputs(start, end string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startText = start
	s.endText = end
}

// SetStart replaces only the start text (current-location prefill).
func (s *Session) SetStart(start string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startText = start
}

// Swap exchanges the start and end texts. It never invokes a resolution.
func (s *Session) Swap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startText, s.endText = s.endText, s.startText
}

// Clear resets both inputs and returns to Idle, dropping any route
// artifacts. It never invokes a resolution.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseIdle
	s.startText = ""
	s.endText = ""
	s.route = nil
	s.reason = ""
}

// Begin transitions to Searching, clears prior route artifacts and returns
// the generation token the eventual Complete or Fail must present, together
// with the endpoint inputs captured in the same critical section — so the
// resolution always runs against exactly the texts the searching snapshot
// shows, even if an input edit races the transition. Begin fails while
// another search is outstanding; the caller must not run overlapping
// resolutions against the same session.
func (s *Session) Begin() (uint64, domain.EndpointInput, domain.EndpointInput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseSearching {
		return 0, domain.EndpointInput{}, domain.EndpointInput{}, ErrSearchInProgress
	}
	s.generation++
	s.phase = PhaseSearching
	s.route = nil
	s.reason = ""
	start := domain.EndpointInput{Label: domain.LabelStart, RawText: s.startText}
	end := domain.EndpointInput{Label: domain.LabelEnd, RawText: s.endText}
	return s.generation, start, end, nil
}

// Complete moves Searching -> Resolved. It reports whether the result was
// accepted; a stale generation or a phase past Searching discards it.
func (s *Session) Complete(gen uint64, route *domain.RouteResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSearching || gen != s.generation {
		return false
	}
	s.phase = PhaseResolved
	s.route = route
	s.reason = ""
	return true
}

// Fail moves Searching -> Failed with a user-facing reason. Stale
// generations are discarded the same way as in Complete. No route
// artifacts survive a failure.
func (s *Session) Fail(gen uint64, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSearching || gen != s.generation {
		return false
	}
	s.phase = PhaseFailed
	s.route = nil
	s.reason = reason
	return true
}
