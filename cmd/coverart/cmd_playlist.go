package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/simonhull/coverart/internal/playlist"
)

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Manage the playlist database (playlist.db)",
}

var playlistAddCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Append tracks, storing their embedded covers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlaylistAdd,
}

var playlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracks in playlist order",
	Args:  cobra.NoArgs,
	RunE:  runPlaylistList,
}

var playlistRemoveCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"remove"},
	Short:   "Remove tracks by id",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runPlaylistRemove,
}

var playlistClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every track",
	Args:  cobra.NoArgs,
	RunE:  runPlaylistClear,
}

func init() {
	playlistCmd.AddCommand(playlistAddCmd, playlistListCmd, playlistRemoveCmd, playlistClearCmd)
}

func openPlaylist() (*playlist.Store, error) {
	return playlist.Open(cfg.Playlist.DB, logger, extractOptions()...)
}

func runPlaylistAdd(cmd *cobra.Command, args []string) error {
	paths := make([]string, len(args))
	for i, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve `%v`", a)
		}
		paths[i] = abs
	}

	store, err := openPlaylist()
	if err != nil {
		return err
	}
	defer store.Close()

	added, err := store.Add(cmd.Context(), paths...)
	if err != nil {
		return err
	}
	for _, t := range added {
		fmt.Fprintf(cmd.OutOrStdout(), "added %d %s%s\n", t.ID, t.Name, coverNote(&t))
	}
	return nil
}

func runPlaylistList(cmd *cobra.Command, _ []string) error {
	store, err := openPlaylist()
	if err != nil {
		return err
	}
	defer store.Close()

	tracks, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOVER\tPATH")
	for i := range tracks {
		t := &tracks[i]
		cover := "-"
		if t.HasCover() {
			cover = fmt.Sprintf("%s %dB", t.CoverMIME, len(t.Cover))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, t.Name, cover, t.Path)
	}
	return tw.Flush()
}

func runPlaylistRemove(cmd *cobra.Command, args []string) error {
	ids := make([]int64, len(args))
	for i, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid track id `%v`", a)
		}
		ids[i] = id
	}

	store, err := openPlaylist()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, id := range ids {
		if err := store.Remove(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", id)
	}
	return nil
}

func runPlaylistClear(cmd *cobra.Command, _ []string) error {
	store, err := openPlaylist()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Clear(cmd.Context())
}

func coverNote(t *playlist.Track) string {
	if !t.HasCover() {
		return " (no cover)"
	}
	return ""
}
