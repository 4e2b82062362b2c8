package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/egoavara/launchkit/internal/config"
	"github.com/egoavara/launchkit/internal/debuglog"
	"github.com/egoavara/launchkit/internal/i18n"
	"github.com/egoavara/launchkit/internal/version"
	"github.com/egoavara/launchkit/update"
	"github.com/egoavara/launchkit/workflow"
	"github.com/spf13/cobra"
)

var (
	checkForce   bool
	checkJSON    bool
	checkStore   string
	checkCurrent string

	checkCmd = &cobra.Command{
		Use:   "check <owner/repo>",
		Short: "Check the release feed for a newer plugin version",
		Long: `Check the release feed of a GitHub repository for a newer version.

The check is time-gated: within the configured poll interval no network
request is made and a previously recorded pending update is replayed
from the persisted record.

Example:
  launchkit check egoavara/launchkit
  launchkit check egoavara/launchkit --force
  launchkit check egoavara/launchkit --json`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
)

func init() {
	checkCmd.Flags().BoolVarP(&checkForce, "force", "f", false, "poll regardless of the interval")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit the host feedback document instead of human output")
	checkCmd.Flags().StringVar(&checkStore, "store", "", "version record path (default: "+config.RecordPath()+")")
	checkCmd.Flags().StringVar(&checkCurrent, "current", "", "current version override (default: the launchkit build version)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepo(args[0])
	if err != nil {
		return err
	}

	cfg := config.Get()
	storePath := checkStore
	if storePath == "" {
		storePath = config.RecordPath()
	}
	current := checkCurrent
	if current == "" {
		current = version.Version
	}

	store := update.NewStore(storePath)
	rec, err := store.Load()
	if err != nil {
		var perr *update.PersistError
		if errors.As(err, &perr) {
			if checkJSON {
				return emitFeedback(update.Signal{Kind: update.SignalCheckFailed, Err: err})
			}
			return errors.New(i18n.T("check.storeUnreadable", map[string]any{"Error": err.Error()}))
		}
		// First run: never checked.
		debuglog.Printf("no version record at %s, treating as first run", storePath)
		rec = update.NewRecord(current)
	}

	opts := update.Options{
		PollInterval: cfg.PollInterval(),
		ForceRecheck: checkForce || cfg.Update.DefaultForceRecheck,
	}

	sig, polled := update.Check(cmd.Context(), rec, time.Now(), update.NewGitHubClient(), owner, repo, opts)
	debuglog.Printf("check %s/%s: polled=%v kind=%d", owner, repo, polled, sig.Kind)
	if polled {
		if err := store.Save(rec); err != nil {
			sig = update.Signal{Kind: update.SignalCheckFailed, CurrentVersion: rec.Version, Err: err}
		}
	}

	if checkJSON {
		return emitFeedback(sig)
	}
	return printSignal(sig, polled)
}

// emitFeedback writes the host feedback document to stdout.
func emitFeedback(sig update.Signal) error {
	client := workflow.NewClient(workflow.Config{})
	if item, ok := workflow.SignalItem(sig, "", ""); ok {
		client.Add(item)
	}
	return client.Respond(os.Stdout)
}

func printSignal(sig update.Signal, polled bool) error {
	switch sig.Kind {
	case update.SignalUpdateAvailable:
		fmt.Println(i18n.T("check.updateAvailable", map[string]any{
			"Current": sig.CurrentVersion,
			"Latest":  sig.LatestVersion,
		}))
		fmt.Println(i18n.T("check.downloadFrom", map[string]any{"URL": sig.DownloadURL}))
	case update.SignalCheckFailed:
		if sig.Err != nil {
			debuglog.Printf("check failed: %v", sig.Err)
		}
		fmt.Println(i18n.T("check.failed", nil))
	default:
		if polled {
			fmt.Println(i18n.T("check.upToDate", map[string]any{"Current": sig.CurrentVersion}))
		} else {
			fmt.Println(i18n.T("check.skipped", nil))
		}
	}
	return nil
}

func splitRepo(target string) (string, string, error) {
	parts := strings.Split(target, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", target)
	}
	return parts[0], parts[1], nil
}
