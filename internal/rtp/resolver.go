package rtp

import (
	"fmt"
	"strings"

	"ciapress/internal/gameinfo"
)

// DecisionKind classifies the outcome of RTP resolution.
type DecisionKind string

const (
	// DecisionUseExact means the requested release is in the catalog.
	DecisionUseExact DecisionKind = "use_exact"
	// DecisionUseFallback means a same-family substitute was selected.
	// Substitution can alter text rendering, so it is always reported.
	DecisionUseFallback DecisionKind = "use_fallback"
	// DecisionSkip means the game needs an RTP no catalog entry can
	// satisfy; the game is skipped, not failed.
	DecisionSkip DecisionKind = "skip"
	// DecisionNotNeeded means no RTP gets bundled, either because the game
	// is self-contained or because bundling was switched off.
	DecisionNotNeeded DecisionKind = "not_needed"
)

// Decision is the outcome of resolving one game's RTP requirement.
type Decision struct {
	Kind      DecisionKind
	Requested string // release the game asked for, "" when unspecified
	ID        string // catalog entry to stage, set for UseExact and UseFallback
	Reason    string // human-readable explanation, set for Skip
	NeedsRTP  bool   // bundling was switched off for a game that wants an RTP
}

// Request carries everything resolution needs for one game.
type Request struct {
	Requested     string // RTP identifier from game metadata, may be empty
	GameRoot      string // game directory, probed for the runtime executable
	Catalog       Catalog
	SelfContained bool // the game declares FullPackageFlag
	OptOut        bool // the user disabled RTP bundling
}

// English fallback families, keyed by engine generation. Within a family
// the order is a fixed preference list; earlier entries are the
// translations games were most commonly authored against.
const (
	family2000 = "2000-en"
	family2003 = "2003-en"
)

var fallbackOrder = map[string][]string{
	family2000: {"2000-en-don-miguel", "2000-en-official"},
	family2003: {"2003-en-rpg-advocate", "2003-en-maker-universe", "2003-en-official"},
}

// Resolve decides which RTP to bundle for one game. Self-contained games
// never get one. Opting out also yields NotNeeded but flags the decision so
// the caller can warn that the archive may be unplayable. Otherwise the
// requested release is used when cataloged, a same-family fallback is tried
// next, and resolution ends in Skip when nothing usable exists.
func Resolve(req Request) Decision {
	if req.SelfContained {
		return Decision{Kind: DecisionNotNeeded, Requested: req.Requested}
	}
	if req.OptOut {
		return Decision{Kind: DecisionNotNeeded, Requested: req.Requested, NeedsRTP: true}
	}

	if req.Requested != "" {
		if _, ok := req.Catalog[req.Requested]; ok {
			return Decision{Kind: DecisionUseExact, Requested: req.Requested, ID: req.Requested}
		}
	}

	for _, id := range fallbackOrder[familyFor(req.Requested, req.GameRoot)] {
		if _, ok := req.Catalog[id]; ok {
			return Decision{Kind: DecisionUseFallback, Requested: req.Requested, ID: id}
		}
	}

	return Decision{Kind: DecisionSkip, Requested: req.Requested, Reason: skipReason(req.Requested)}
}

// familyFor picks the fallback family. An explicit English request pins the
// family; anything else is inferred from the runtime executable, with 2003
// as the default since its RTP works for both generations.
func familyFor(requested, gameRoot string) string {
	if strings.HasPrefix(requested, family2000) {
		return family2000
	}
	if strings.HasPrefix(requested, family2003) {
		return family2003
	}
	if gameinfo.EngineGeneration(gameRoot) == gameinfo.Generation2000 {
		return family2000
	}
	return family2003
}

func skipReason(requested string) string {
	if requested == "" {
		return "game needs an RTP, but none were found"
	}
	return fmt.Sprintf("game needs the %s RTP which we don't have, and no fallback was found", requested)
}
