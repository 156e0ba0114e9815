package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

var _ domain.AudioCache = (*AudioStore)(nil)

// AudioStore implements domain.AudioCache with SQLite BLOBs so synthesized
// audio survives restarts. Expired rows read as misses and are removed.
type AudioStore struct {
	db  *sqlx.DB
	ttl time.Duration
}

// NewAudioStore creates an AudioStore whose entries live for ttl.
func NewAudioStore(db *DB, ttl time.Duration) *AudioStore {
	return &AudioStore{db: db.SqlDB, ttl: ttl}
}

func audioKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (s *AudioStore) Get(ctx context.Context, text string) ([]byte, bool, error) {
	var row struct {
		Audio     []byte `db:"audio"`
		ExpiresAt int64  `db:"expires_at"`
	}
	k := audioKey(text)
	err := s.db.GetContext(ctx, &row, "SELECT audio, expires_at FROM audio_cache WHERE text_hash = ?", k)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cached audio: %w", err)
	}

	if time.Now().Unix() >= row.ExpiresAt {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM audio_cache WHERE text_hash = ?", k); err != nil {
			return nil, false, fmt.Errorf("delete expired audio: %w", err)
		}
		return nil, false, nil
	}
	return row.Audio, true, nil
}

func (s *AudioStore) Set(ctx context.Context, text string, audio []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audio_cache (text_hash, audio, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT (text_hash) DO UPDATE SET audio = excluded.audio, expires_at = excluded.expires_at`,
		audioKey(text), audio, time.Now().Add(s.ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("save cached audio: %w", err)
	}
	return nil
}

// DeleteExpired removes every expired entry and reports how many were dropped.
func (s *AudioStore) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM audio_cache WHERE expires_at <= ?", time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("delete expired audio: %w", err)
	}
	return res.RowsAffected()
}

// Close purges expired entries. The database handle is owned by DB.
func (s *AudioStore) Close() error {
	_, err := s.DeleteExpired(context.Background())
	return err
}
