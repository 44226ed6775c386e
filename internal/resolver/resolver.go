// Package resolver turns an incoming request's explicit id, explicit name,
// or free-text question into a resolved store id, or determines that no
// store filter applies.
package resolver

import (
	"strings"

	"go.uber.org/zap"

	"github.com/storeq/storeq/internal/directory"
	"github.com/storeq/storeq/internal/extract"
	"github.com/storeq/storeq/internal/matcher"
)

// Via records which branch produced the resolution.
type Via int

const (
	ViaNone Via = iota
	ViaExplicitID
	ViaExplicitName
	ViaExtractedText
)

func (v Via) String() string {
	switch v {
	case ViaExplicitID:
		return "explicit_id"
	case ViaExplicitName:
		return "explicit_name"
	case ViaExtractedText:
		return "extracted_text"
	default:
		return "none"
	}
}

// Request carries the store hints of one incoming request. Empty string
// means absent.
type Request struct {
	StoreID   string
	StoreName string
	Question  string
}

// Result is the resolution outcome. An empty StoreID with ViaNone means
// "apply no store filter" — a valid result, not an error.
type Result struct {
	StoreID     string
	Via         Via
	MatchedName string
}

// Resolved reports whether a store filter applies.
func (r Result) Resolved() bool {
	return r.Via != ViaNone
}

// Options tune resolution policy.
type Options struct {
	// StrictExplicitName stops at ViaNone when an explicit store name fails
	// to resolve, instead of falling through to text extraction.
	StrictExplicitName bool
}

// Resolver resolves requests against one immutable directory snapshot.
// Safe for concurrent use.
type Resolver struct {
	matcher   *matcher.Matcher
	extractor *extract.Extractor
	opts      Options
	log       *zap.Logger
}

// New returns a Resolver over dir. A nil logger disables logging.
func New(dir *directory.Directory, opts Options, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		matcher:   matcher.New(dir),
		extractor: extract.New(dir),
		opts:      opts,
		log:       log,
	}
}

// Resolve applies the priority chain: explicit id, explicit name, question
// text, none. The first applicable branch wins. An explicit id is returned
// verbatim without directory validation; ids can be valid without being
// enumerated locally.
func (r *Resolver) Resolve(req Request) Result {
	if id := strings.TrimSpace(req.StoreID); id != "" {
		return Result{StoreID: id, Via: ViaExplicitID}
	}

	if name := strings.TrimSpace(req.StoreName); name != "" {
		if rec := r.matcher.Resolve(name, true); rec != nil {
			return Result{StoreID: rec.StoreID, Via: ViaExplicitName, MatchedName: rec.StoreName}
		}
		r.log.Warn("explicit store name did not resolve", zap.String("storeName", name))
		if r.opts.StrictExplicitName {
			return Result{}
		}
	}

	if q := strings.TrimSpace(req.Question); q != "" {
		if candidate, ok := r.extractor.Extract(q); ok {
			if rec := r.matcher.Resolve(candidate, true); rec != nil {
				return Result{StoreID: rec.StoreID, Via: ViaExtractedText, MatchedName: rec.StoreName}
			}
			r.log.Warn("extracted candidate did not resolve", zap.String("candidate", candidate))
		}
	}

	return Result{}
}
