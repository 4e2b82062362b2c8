package update

import (
	"context"
	"time"

	"github.com/Masterminds/semver/v3"
)

// DefaultPollInterval is the minimum time between release feed polls.
const DefaultPollInterval = 7 * 24 * time.Hour

// Options control the check schedule.
type Options struct {
	// PollInterval is the minimum time between network polls.
	// Zero or negative means DefaultPollInterval.
	PollInterval time.Duration
	// ForceRecheck polls regardless of the elapsed time.
	ForceRecheck bool
}

func (o Options) interval() time.Duration {
	if o.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return o.PollInterval
}

// SignalKind classifies the outcome of one check.
type SignalKind int

const (
	// SignalNone means up to date, nothing to surface.
	SignalNone SignalKind = iota
	// SignalUpdateAvailable means a newer release is known.
	SignalUpdateAvailable
	// SignalCheckFailed means the poll could not complete.
	SignalCheckFailed
)

// Signal is what a check surfaces to the host.
type Signal struct {
	Kind           SignalKind
	CurrentVersion string
	LatestVersion  string
	DownloadURL    string
	Err            error // set only for SignalCheckFailed
}

// Check decides whether to poll the release feed and updates rec
// accordingly. It returns the signal to surface and whether rec was
// mutated (and therefore must be saved).
//
// Within the poll interval no network access happens: a stored pending
// update is replayed from the record, otherwise nothing is surfaced.
// Once the interval has elapsed the fetcher is invoked. On any fetch or
// parse failure the record is left untouched, including
// lastcheckedtime, so the next invocation retries immediately rather
// than waiting out a full interval. On success the latest version,
// download URL and check time are recorded; NeedUpdate is set when the
// fetched version is newer and never cleared here; it stays pending
// until the installed version itself changes.
func Check(ctx context.Context, rec *Record, now time.Time, f Fetcher, owner, repo string, opts Options) (Signal, bool) {
	elapsed := now.Unix() - rec.LastCheckedTime

	if !opts.ForceRecheck && elapsed <= int64(opts.interval().Seconds()) {
		if rec.NeedUpdate {
			return Signal{
				Kind:           SignalUpdateAvailable,
				CurrentVersion: rec.Version,
				LatestVersion:  rec.LatestVersion,
				DownloadURL:    rec.DownloadURL,
			}, false
		}
		return Signal{Kind: SignalNone, CurrentVersion: rec.Version}, false
	}

	rel, err := f.FetchLatest(ctx, owner, repo)
	if err != nil {
		return Signal{Kind: SignalCheckFailed, CurrentVersion: rec.Version, Err: err}, false
	}

	current, err := semver.NewVersion(rec.Version)
	if err != nil {
		err = &ParseError{Field: "version", Err: err}
		return Signal{Kind: SignalCheckFailed, CurrentVersion: rec.Version, Err: err}, false
	}
	latest, err := semver.NewVersion(rel.TagName)
	if err != nil {
		err = &ParseError{Field: "tag_name", Err: err}
		return Signal{Kind: SignalCheckFailed, CurrentVersion: rec.Version, Err: err}, false
	}

	sig := Signal{
		Kind:           SignalNone,
		CurrentVersion: rec.Version,
		LatestVersion:  rel.TagName,
		DownloadURL:    rel.DownloadURL,
	}
	if latest.GreaterThan(current) {
		rec.NeedUpdate = true
		sig.Kind = SignalUpdateAvailable
	}

	rec.LatestVersion = rel.TagName
	rec.DownloadURL = rel.DownloadURL
	// lastcheckedtime is monotonically non-decreasing.
	if ts := now.Unix(); ts > rec.LastCheckedTime {
		rec.LastCheckedTime = ts
	}

	return sig, true
}
