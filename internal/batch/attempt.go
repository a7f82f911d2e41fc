package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"ciapress/internal/cia"
	"ciapress/internal/fingerprint"
	"ciapress/internal/gameinfo"
	"ciapress/internal/logging"
	"ciapress/internal/rtp"
	"ciapress/internal/services"
	"ciapress/internal/textutil"
)

// RunOne attempts a full build of one candidate. Every failure mode becomes
// an ordinary Result, panics from deeper layers included, so the batch loop
// needs no recovery of its own. The scratch space is cleared on every exit
// path.
func (r *Runner) RunOne(ctx context.Context, cand Candidate) (result Result) {
	relPath := relDir(cand.Path, cand.BatchRoot)
	result = Result{Name: cand.Name, Dir: relPath}

	ctx = services.WithAttemptID(ctx, uuid.NewString())
	ctx = services.WithGame(ctx, cand.Name)
	logger := logging.WithContext(ctx, r.logger)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("build attempt panicked", logging.Any("panic", rec))
			r.warn("build failed for %s", relPath)
			result.Success = false
			result.Skipped = false
		}
		r.stager.CleanAll()
	}()

	logger.Info("processing game", logging.String("path", cand.Path))

	if !gameinfo.IsGameRoot(cand.Path) {
		r.warn("not a game (no RPG_RT.ini found): %s", relPath)
		result.Skipped = true
		return result
	}

	bundle, missing := gameinfo.CheckAssets(cand.Path)
	if len(missing) == gameinfo.RequiredAssetCount {
		r.warn("no 3DS assets found (skipping): %s", relPath)
		result.Skipped = true
		return result
	}
	if len(missing) > 0 {
		r.warn("3DS assets directory is missing files: %s: %s", strings.Join(missing, ", "), relPath)
		return result
	}

	meta, err := gameinfo.LoadMetadata(cand.Path)
	if err != nil {
		var verr *gameinfo.ValidationError
		if errors.As(err, &verr) {
			r.warn("gameinfo.cfg file is invalid or missing information: %s: %s", strings.Join(verr.Problems, ", "), relPath)
		} else {
			r.warn("could not parse gameinfo.cfg: %v: %s", err, relPath)
		}
		return result
	}
	result.ID = meta.ID
	result.Title = meta.Title
	result.Author = meta.Author
	result.Release = meta.Release

	slug := textutil.Slug(cand.Name)
	if slug == "" {
		slug = textutil.SanitizeToken(cand.Name)
	}
	target := filepath.Join(r.cfg.Paths.OutDir, slug+".cia")
	result.Target = relDir(target, r.cfg.Paths.OutDir)

	// Reused placeholder assets deserve a warning; a placeholder
	// gameinfo.cfg means a duplicate title ID and fails the build.
	matched, err := r.defaults.Matches(map[string]string{
		fingerprint.KindAudio:  bundle.Audio,
		fingerprint.KindBanner: bundle.Banner,
		fingerprint.KindIcon:   bundle.Icon,
		fingerprint.KindInfo:   bundle.Info,
	})
	if err != nil {
		r.warn("could not fingerprint 3DS assets: %v: %s", err, relPath)
		return result
	}
	defaultInfo := slices.Contains(matched, fingerprint.KindInfo)
	if len(matched) > 1 || defaultInfo {
		suffix := textutil.Ternary(defaultInfo, " (a unique gameinfo.cfg file is required at minimum)", "")
		r.warn("game uses default assets%s: %s: %s", suffix, strings.Join(matched, ", "), relPath)
	}
	if defaultInfo {
		return result
	}

	selfContained, err := gameinfo.FullPackageFlag(cand.Path)
	if err != nil {
		r.warn("could not parse RPG_RT.ini: %v: %s", err, relPath)
		return result
	}

	decision := rtp.Resolve(rtp.Request{
		Requested:     meta.RTP,
		GameRoot:      cand.Path,
		Catalog:       r.catalog,
		SelfContained: selfContained,
		OptOut:        r.noRTP,
	})
	logger.Debug("resolved RTP",
		logging.String("kind", string(decision.Kind)),
		logging.String("requested", decision.Requested),
		logging.String("id", decision.ID),
	)

	switch decision.Kind {
	case rtp.DecisionSkip:
		r.warn("%s (skipping): %s", decision.Reason, relPath)
		result.Skipped = true
		return result
	case rtp.DecisionUseFallback:
		if decision.Requested != "" {
			r.warn("game needs the %s RTP which we don't have; fallback %s RTP will be used: %s", decision.Requested, decision.ID, relPath)
		} else {
			r.warn("game needs an RTP but doesn't indicate which one; %s RTP will be used: %s", decision.ID, relPath)
		}
	case rtp.DecisionNotNeeded:
		if decision.NeedsRTP {
			needed := textutil.Ternary(decision.Requested != "", fmt.Sprintf(" (needed: %s)", decision.Requested), "")
			r.warn("game needs RTP but --no-rtp was passed: %s%s", relPath, needed)
		}
	}

	stagedDir, err := r.stager.Stage(slug, r.catalog[decision.ID], cand.Path)
	if err != nil {
		logger.Error("staging failed", logging.Error(err))
		r.warn("build failed for %s", relPath)
		return result
	}

	_, err = r.builder.Build(ctx, cia.Request{
		Metadata:    meta,
		StagedDir:   stagedDir,
		Banner:      bundle.Banner,
		Audio:       bundle.Audio,
		Icon:        bundle.Icon,
		ELF:         r.cfg.Toolchain.ELF,
		RSFTemplate: r.cfg.Toolchain.RSFTemplate,
		ScratchDir:  r.stager.Root(),
		OutDir:      r.cfg.Paths.OutDir,
		Slug:        slug,
	})
	if err != nil {
		logger.Error("archive build failed", logging.Error(err))
		var stepErr *cia.StepError
		if errors.As(err, &stepErr) {
			r.warn("build failed at step %d (%s) for %s", stepErr.Step, stepErr.Name, relPath)
		} else {
			r.warn("build failed for %s", relPath)
		}
		return result
	}

	result.Success = true
	logger.Info("built archive", logging.String("target", target))

	release := textutil.Ternary(meta.Release != "", ", "+meta.Release, "")
	r.report("Built %s as %s: #%s %s (by %s%s)", cand.Name, result.Target, meta.ID, meta.Title, meta.Author, release)
	return result
}
