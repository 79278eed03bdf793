package vulpes

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/vulpes-browser/vulpes/internal/config"
	"github.com/vulpes-browser/vulpes/internal/engine"
	"github.com/vulpes-browser/vulpes/internal/fetch"
	"github.com/vulpes-browser/vulpes/internal/handle"
	"github.com/vulpes-browser/vulpes/internal/lifecycle"
	"github.com/vulpes-browser/vulpes/internal/logging"
	"github.com/vulpes-browser/vulpes/internal/sanitize"
)

// library bundles the process-wide state behind the boundary. Fields other
// than state and arena are populated by Init and cleared by Shutdown.
type library struct {
	state   *lifecycle.Manager
	arena   *handle.Arena
	cfg     *config.Config
	log     *zap.Logger
	fetcher *fetch.Client
	policy  *sanitize.Policy
}

var lib = &library{
	state: lifecycle.New(),
	arena: handle.NewArena(),
	log:   logging.Nop(),
}

// Init brings the library into the initialized state. It is idempotent:
// repeated calls are no-ops returning CodeOK. Must be called from a single
// designated goroutine, never concurrently with Shutdown.
func Init() Code {
	err := lib.state.Initialize(func() (func(), error) {
		cfg := config.LoadOrDefault()
		log := logging.Nop()
		if cfg.Logging.Enabled {
			log = logging.New(cfg.Logging.Level, cfg.Logging.Development)
		}

		lib.cfg = cfg
		lib.log = log
		lib.fetcher = fetch.NewClient(fetch.Options{
			Timeout:          cfg.Fetch.Timeout,
			RetryMax:         cfg.Fetch.RetryMax,
			RetryWaitMin:     cfg.Fetch.RetryWaitMin,
			RetryWaitMax:     cfg.Fetch.RetryWaitMax,
			UserAgent:        cfg.Fetch.UserAgent,
			RatePerSec:       cfg.Fetch.RatePerSec,
			MaxBodySize:      cfg.Fetch.MaxBodySize,
			BreakerThreshold: cfg.Fetch.BreakerThreshold,
			BreakerCooldown:  cfg.Fetch.BreakerCooldown,
		}, log)
		lib.policy = sanitize.NewUGC()

		log.Info("vulpes initialized", zap.String("version", versionString))
		return teardown, nil
	})
	if err != nil {
		return CodeUnknown
	}
	return CodeOK
}

// teardown releases process-wide resources on shutdown. Any results still
// unreleased by the caller are drained from the arena.
func teardown() {
	drained := lib.arena.Drain()
	if drained > 0 {
		lib.log.Warn("shutdown drained unreleased results", zap.Int("count", drained))
	}
	lib.log.Info("vulpes shut down")
	_ = lib.log.Sync()

	lib.cfg = nil
	lib.fetcher = nil
	lib.policy = nil
	lib.log = logging.Nop()
}

// Shutdown transitions the library back to the uninitialized state and
// releases all process-wide resources. A no-op when not initialized. Must be
// called from the same designated goroutine as Init.
func Shutdown() { lib.state.Shutdown() }

// IsInitialized reports whether the library is currently initialized.
func IsInitialized() bool { return lib.state.Initialized() }

// TextResult carries extracted (or sanitized) text across the boundary.
// Ownership transfers to the caller: release exactly once via Release.
type TextResult struct {
	// Text is the UTF-8 output. Nil after release.
	Text []byte
	// Code is CodeOK on success or the failure classification.
	Code Code

	id handle.ID
}

// Release returns the result to the library. Safe on a nil result; a repeat
// release of the same result is detected and ignored. The result must not be
// used afterwards.
func (r *TextResult) Release() {
	if r == nil || r.id == "" {
		return
	}
	if lib.arena.Release(r.id) {
		r.Text = nil
	}
	r.id = ""
}

// FetchResult carries the outcome of a Fetch across the boundary. Same
// single-release ownership contract as TextResult.
type FetchResult struct {
	// Status is the HTTP status code; zero when the request never completed.
	Status int
	// Body holds the response bytes. Nil after release or on failure.
	Body []byte
	// ContentType is taken from the response header, or sniffed from the
	// body when the server sent none.
	ContentType string
	// Code is CodeOK on success or the failure classification.
	Code Code

	id handle.ID
}

// Release returns the result to the library. Safe on a nil result; a repeat
// release is detected and ignored.
func (r *FetchResult) Release() {
	if r == nil || r.id == "" {
		return
	}
	if lib.arena.Release(r.id) {
		r.Body = nil
	}
	r.id = ""
}

// ExtractText extracts human-visible text from raw HTML bytes. The input is
// read-only for the duration of the call and never retained. Empty input is
// valid and yields an empty result with CodeOK. Malformed markup is recovered,
// never reported as an error; the only failure codes are CodeNotInitialized
// and CodeInvalidArgument (input over the configured size cap).
func ExtractText(html []byte) *TextResult {
	if !lib.state.Initialized() {
		return &TextResult{Code: CodeNotInitialized}
	}
	if max := lib.cfg.Extract.MaxInputSize; max > 0 && int64(len(html)) > max {
		return &TextResult{Code: CodeInvalidArgument}
	}
	doc := engine.Extract(html)
	return newTextResult(doc.Text)
}

// ExtractTitle extracts the document title through the same tokenizer
// pipeline as ExtractText. A document without a title yields an empty result
// with CodeOK.
func ExtractTitle(html []byte) *TextResult {
	if !lib.state.Initialized() {
		return &TextResult{Code: CodeNotInitialized}
	}
	if max := lib.cfg.Extract.MaxInputSize; max > 0 && int64(len(html)) > max {
		return &TextResult{Code: CodeInvalidArgument}
	}
	doc := engine.Extract(html)
	return newTextResult([]byte(doc.Title))
}

// CleanHTML sanitizes an HTML fragment, stripping scripts, event handlers,
// and unsafe markup while keeping user-generated formatting.
func CleanHTML(html []byte) *TextResult {
	if !lib.state.Initialized() {
		return &TextResult{Code: CodeNotInitialized}
	}
	if max := lib.cfg.Extract.MaxInputSize; max > 0 && int64(len(html)) > max {
		return &TextResult{Code: CodeInvalidArgument}
	}
	return newTextResult(lib.policy.Clean(html))
}

// Fetch retrieves a URL over HTTP and returns the response status, body, and
// content type. Transport failures map to CodeNetwork, unreadable response
// bodies to CodeParse, and unusable URLs to CodeInvalidArgument.
func Fetch(ctx context.Context, url string) *FetchResult {
	if !lib.state.Initialized() {
		return &FetchResult{Code: CodeNotInitialized}
	}
	if strings.TrimSpace(url) == "" {
		return &FetchResult{Code: CodeInvalidArgument}
	}

	resp, err := lib.fetcher.Get(ctx, url)
	if err != nil {
		lib.log.Debug("fetch failed", zap.String("url", url), zap.Error(err))
		return &FetchResult{Code: fetchCode(err)}
	}
	return &FetchResult{
		Status:      resp.Status,
		Body:        resp.Body,
		ContentType: resp.ContentType,
		Code:        CodeOK,
		id:          lib.arena.Acquire(),
	}
}

func newTextResult(text []byte) *TextResult {
	if text == nil {
		text = []byte{}
	}
	return &TextResult{Text: text, Code: CodeOK, id: lib.arena.Acquire()}
}

// fetchCode maps transport-layer classifications onto the shared enumeration.
func fetchCode(err error) Code {
	switch fetch.Classify(err) {
	case fetch.KindInvalidURL:
		return CodeInvalidArgument
	case fetch.KindBody:
		return CodeParse
	default:
		return CodeNetwork
	}
}
