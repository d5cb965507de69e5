package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/taingy-srun/portfolio/internal/config"
	"github.com/taingy-srun/portfolio/internal/domain/resume"
	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

func TestMemorySessionGate(t *testing.T) {
	ctx := context.Background()
	g := NewMemorySessionGate()

	require.NoError(t, g.Acquire(ctx, "a"))
	assert.ErrorIs(t, g.Acquire(ctx, "a"), apperror.ErrConflict)
	assert.NoError(t, g.Acquire(ctx, "b"))

	require.NoError(t, g.Release(ctx, "a"))
	assert.NoError(t, g.Acquire(ctx, "a"))
	assert.NoError(t, g.Release(ctx, "never-acquired"))
}

type fakeRedis struct {
	redis.Cmdable
	keys   map[string]time.Duration
	failed error
}

func (f *fakeRedis) SetNX(_ context.Context, key string, _ interface{}, ttl time.Duration) *redis.BoolCmd {
	if f.failed != nil {
		return redis.NewBoolResult(false, f.failed)
	}
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			delete(f.keys, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisSessionGate(t *testing.T) {
	ctx := context.Background()
	rdb := &fakeRedis{keys: map[string]time.Duration{}}
	g := NewRedisSessionGate(rdb, 30*time.Second, logger.NewNopLogger())

	require.NoError(t, g.Acquire(ctx, "s1"))
	assert.Equal(t, 30*time.Second, rdb.keys["chat:pending:s1"])
	assert.ErrorIs(t, g.Acquire(ctx, "s1"), apperror.ErrConflict)

	require.NoError(t, g.Release(ctx, "s1"))
	assert.Empty(t, rdb.keys)
	assert.NoError(t, g.Acquire(ctx, "s1"))
}

func TestRedisSessionGateError(t *testing.T) {
	rdb := &fakeRedis{keys: map[string]time.Duration{}, failed: errors.New("connection refused")}
	g := NewRedisSessionGate(rdb, time.Second, logger.NewNopLogger())

	err := g.Acquire(context.Background(), "s1")
	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestYAMLResumeSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.yaml")

	data, err := yaml.Marshal(resume.Builtin())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	rec, err := NewYAMLResumeSource(path, logger.NewNopLogger()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resume.Builtin(), rec)
}

func TestYAMLResumeSourceErrors(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	log := logger.NewNopLogger()

	_, err := NewYAMLResumeSource(filepath.Join(dir, "missing.yaml"), log).Load(ctx)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [unclosed"), 0o600))
	_, err = NewYAMLResumeSource(bad, log).Load(ctx)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	nameless := filepath.Join(dir, "nameless.yaml")
	require.NoError(t, os.WriteFile(nameless, []byte("email: a@b.c\n"), 0o600))
	_, err = NewYAMLResumeSource(nameless, log).Load(ctx)
	assert.ErrorIs(t, err, resume.ErrInvalidRecord)
}

type fakeRow struct {
	document []byte
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.document
	return nil
}

type fakeQuerier struct {
	row   fakeRow
	query string
	args  []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.query = sql
	q.args = args
	return q.row
}

func TestPostgresResumeSource(t *testing.T) {
	doc, err := json.Marshal(resume.Builtin())
	require.NoError(t, err)

	q := &fakeQuerier{row: fakeRow{document: doc}}
	rec, err := NewPostgresResumeSource(q, "default", logger.NewNopLogger()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, resume.Builtin(), rec)
	assert.Equal(t, "SELECT document FROM resumes WHERE slug = $1 LIMIT 1", q.query)
	assert.Equal(t, []any{"default"}, q.args)
}

func TestPostgresResumeSourceNotFound(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	_, err := NewPostgresResumeSource(q, "nobody", logger.NewNopLogger()).Load(context.Background())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPostgresResumeSourceBadDocument(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{document: []byte("{not json")}}
	_, err := NewPostgresResumeSource(q, "default", logger.NewNopLogger()).Load(context.Background())
	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestLoadResumeSelectsSource(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNopLogger()

	var cfg config.Config
	rec, err := LoadResume(ctx, cfg, log)
	require.NoError(t, err)
	assert.Equal(t, "Taingy Srun", rec.Name)

	cfg.Resume.Source = config.ResumeSourceFile
	_, err = LoadResume(ctx, cfg, log)
	assert.Error(t, err)

	cfg.Resume.Source = "s3"
	_, err = LoadResume(ctx, cfg, log)
	assert.Error(t, err)
}
