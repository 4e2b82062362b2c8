// Package workflow builds result lists for search-style launcher hosts
// and wires the self-update check into them.
package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/egoavara/launchkit/update"
)

// Config carries the per-invocation inputs into a client. The host's
// raw arguments are not read here; callers that want the conventional
// query argument handling can pass it through ParseQuery first.
type Config struct {
	// Query is the user's search text.
	Query string
	// Version is the currently installed plugin version, used to seed
	// the version record on first run.
	Version string
	// StorePath is the version record location. Empty disables
	// CheckForUpdate.
	StorePath string
	// PollInterval is the minimum time between release feed polls.
	// Zero means update.DefaultPollInterval.
	PollInterval time.Duration
	// ForceRecheck polls regardless of the elapsed time.
	ForceRecheck bool
	// Fetcher overrides the release feed client. Nil means the GitHub
	// releases API with its default timeout.
	Fetcher update.Fetcher
	// UpdateIcon and FailedIcon are optional icon paths for the
	// update-available item and the check-failed item.
	UpdateIcon string
	FailedIcon string
}

// Client accumulates result items in producer order and emits them to
// the host in a single terminal write.
type Client struct {
	Query     string
	PageCount int

	cfg   Config
	items []Item
}

// NewClient creates a client for one invocation.
func NewClient(cfg Config) *Client {
	query, pages := ParseQuery(cfg.Query)
	return &Client{
		Query:     query,
		PageCount: pages,
		cfg:       cfg,
		items:     []Item{},
	}
}

// ParseQuery strips the "+" page markers from a raw query argument and
// returns the cleaned query and the page count (1 when unmarked).
func ParseQuery(raw string) (string, int) {
	return strings.ReplaceAll(raw, "+", ""), strings.Count(raw, "+") + 1
}

// Add appends items in producer order.
func (c *Client) Add(items ...Item) {
	c.items = append(c.items, items...)
}

// AddResult builds an item and appends it. iconPath and arg may be
// empty.
func (c *Client) AddResult(title, subtitle, iconPath, arg string) {
	item := Item{Title: title, Subtitle: subtitle, Arg: arg}
	if iconPath != "" {
		item.Icon = &Icon{Path: iconPath}
	}
	c.items = append(c.items, item)
}

// Items returns a copy of the accumulated items.
func (c *Client) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Feedback serializes the accumulated items to the host's document
// shape. It performs no I/O.
func (c *Client) Feedback() ([]byte, error) {
	return json.Marshal(feedback{Items: c.items})
}

// Respond writes the feedback document to w. This is the terminal
// operation of an invocation; the caller exits 0 afterwards even when
// the results describe a failure.
func (c *Client) Respond(w io.Writer) error {
	data, err := c.Feedback()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// CheckForUpdate runs the time-gated update check against owner/repo
// and converts the outcome into result items. Failures never abort the
// invocation: they surface as a single "Update failed" item.
func (c *Client) CheckForUpdate(ctx context.Context, owner, repo string) {
	if c.cfg.StorePath == "" {
		return
	}

	store := update.NewStore(c.cfg.StorePath)
	rec, err := store.Load()
	if err != nil {
		if !errors.Is(err, update.ErrMissingState) {
			c.addCheckFailed()
			return
		}
		// First run: never checked, poll immediately.
		rec = update.NewRecord(c.cfg.Version)
	}

	fetcher := c.cfg.Fetcher
	if fetcher == nil {
		fetcher = update.NewGitHubClient()
	}
	opts := update.Options{
		PollInterval: c.cfg.PollInterval,
		ForceRecheck: c.cfg.ForceRecheck,
	}

	sig, polled := update.Check(ctx, rec, time.Now(), fetcher, owner, repo, opts)
	if polled {
		if err := store.Save(rec); err != nil {
			c.addCheckFailed()
			return
		}
	}

	if item, ok := SignalItem(sig, c.cfg.UpdateIcon, c.cfg.FailedIcon); ok {
		c.Add(item)
	}
}

func (c *Client) addCheckFailed() {
	c.AddResult("Update failed", "Could not get latest release", c.cfg.FailedIcon, "")
}

// SignalItem converts an update signal into a result item. The second
// return is false when the signal carries nothing to surface.
func SignalItem(sig update.Signal, updateIcon, failedIcon string) (Item, bool) {
	switch sig.Kind {
	case update.SignalUpdateAvailable:
		item := Item{
			Title:    fmt.Sprintf("Update available %s → %s", sig.CurrentVersion, sig.LatestVersion),
			Subtitle: "Hold ⇧ and enter to update",
			Arg:      sig.DownloadURL,
		}
		if updateIcon != "" {
			item.Icon = &Icon{Path: updateIcon}
		}
		return item, true
	case update.SignalCheckFailed:
		item := Item{
			Title:    "Update failed",
			Subtitle: "Could not get latest release",
		}
		if failedIcon != "" {
			item.Icon = &Icon{Path: failedIcon}
		}
		return item, true
	}
	return Item{}, false
}
