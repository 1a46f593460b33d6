// Package playlist persists an ordered list of audio tracks together with
// their embedded cover art in SQLite.
package playlist

import (
	"context"
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/simonhull/coverart"
)

// ErrTrackNotFound is returned when no track has the requested id.
var ErrTrackNotFound = errors.New("track not found")

var (
	//go:embed DDL.sql
	ddl string
)

// Track is one playlist entry.
type Track struct {
	AddedAt   time.Time `db:"added_at"`
	Name      string    `db:"name"`
	Path      string    `db:"path"`
	CoverMIME string    `db:"cover_mime"`
	Cover     []byte    `db:"cover"`
	ID        int64     `db:"id"`
	Position  int       `db:"position"`
}

// HasCover reports whether an embedded image was stored for the track.
func (t *Track) HasCover() bool {
	return len(t.Cover) > 0
}

// Store is a SQLite-backed playlist.
type Store struct {
	db      *sqlx.DB
	logger  *zap.Logger
	extract []coverart.Option
}

// Open opens (creating if needed) the playlist database at dsn. extractOpts
// are applied when reading covers of newly added tracks.
func Open(dsn string, logger *zap.Logger, extractOpts ...coverart.Option) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open playlist database `%v`", dsn)
	}
	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, statement := range strings.Split(ddl, "--------") {
		if _, err := db.Exec(statement); err != nil {
			if cerr := db.Close(); cerr != nil {
				logger.Warn("closing playlist database", zap.String("dsn", dsn), zap.Error(cerr))
			}
			return nil, errors.Wrapf(err, "failed to apply playlist schema")
		}
	}

	return &Store{db: db, logger: logger, extract: extractOpts}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add appends tracks for paths, in order, extracting each file's cover.
//
// A file without a readable cover is still added. A missing or unreadable
// file aborts the call and nothing is added.
func (s *Store) Add(ctx context.Context, paths ...string) ([]Track, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return nil, errors.Wrapf(err, "failed to add `%v`", p)
		}
	}

	results, err := coverart.ExtractMany(ctx, paths, s.extract...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract covers")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.GetContext(ctx, &next, `SELECT COALESCE(MAX(position), -1) + 1 FROM tracks`); err != nil {
		return nil, errors.Wrap(err, "failed to read playlist length")
	}

	now := time.Now().UTC()
	added := make([]Track, 0, len(results))
	for i, r := range results {
		if r.Err != nil && !isNoImage(r.Err) {
			return nil, errors.Wrapf(r.Err, "failed to read `%v`", r.Path)
		}

		track := Track{
			Name:     trackName(r.Path),
			Path:     r.Path,
			Position: next + i,
			AddedAt:  now,
		}
		if r.Image != nil {
			track.Cover = r.Image.Data
			track.CoverMIME = r.Image.MIMEType
		} else {
			s.logger.Debug("track added without cover", zap.String("path", r.Path), zap.Error(r.Err))
		}

		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO tracks (name, path, position, cover, cover_mime, added_at)
			VALUES (:name, :path, :position, :cover, :cover_mime, :added_at)`, &track)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to insert track `%v`", r.Path)
		}
		if track.ID, err = res.LastInsertId(); err != nil {
			return nil, errors.Wrap(err, "failed to read inserted track id")
		}
		added = append(added, track)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit tracks")
	}

	s.logger.Info("tracks added", zap.Int("count", len(added)))
	return added, nil
}

// List returns all tracks in playlist order.
func (s *Store) List(ctx context.Context) ([]Track, error) {
	var tracks []Track
	if err := s.db.SelectContext(ctx, &tracks, `SELECT * FROM tracks ORDER BY position, id`); err != nil {
		return nil, errors.Wrap(err, "failed to list tracks")
	}
	return tracks, nil
}

// Get returns the track with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*Track, error) {
	var t Track
	if err := s.db.GetContext(ctx, &t, `SELECT * FROM tracks WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(ErrTrackNotFound, "id %d", id)
		}
		return nil, errors.Wrapf(err, "failed to get track %d", id)
	}
	return &t, nil
}

// Remove deletes the track with the given id.
func (s *Store) Remove(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tracks WHERE id = ?`, id)
	if err != nil {
		return errors.Wrapf(err, "failed to remove track %d", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read rows affected")
	}
	if n == 0 {
		return errors.Wrapf(ErrTrackNotFound, "id %d", id)
	}
	return nil
}

// Clear removes every track.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tracks`); err != nil {
		return errors.Wrap(err, "failed to clear playlist")
	}
	return nil
}

// trackName is the file name without its extension.
func trackName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// isNoImage reports whether err only means the file carries no usable cover.
func isNoImage(err error) bool {
	return errors.Is(err, coverart.ErrUnsupportedFormat) ||
		errors.Is(err, coverart.ErrNoTag) ||
		errors.Is(err, coverart.ErrMalformedFrame) ||
		errors.Is(err, coverart.ErrNotFound) ||
		errors.Is(err, coverart.ErrImageTooLarge)
}
