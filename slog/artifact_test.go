package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/mock"
	sdslog "github.com/fwojciec/sitedraft/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingArtifactService(t *testing.T) {
	t.Parallel()

	t.Run("logs create with page count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactService{
			CreateArtifactSetFn: func(_ context.Context, set *sitedraft.ArtifactSet) error {
				set.ID = "set-1"
				return nil
			},
		}

		svc := sdslog.NewLoggingArtifactService(inner, newDebugLogger(&buf))
		set := &sitedraft.ArtifactSet{HTMLArtifacts: []sitedraft.HTMLArtifact{{Filename: "index.html"}, {Filename: "about.html"}}}
		err := svc.CreateArtifactSet(context.Background(), set)

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "artifact set create")
		assert.Contains(t, output, "id=set-1")
		assert.Contains(t, output, "pages=2")
	})

	t.Run("logs not found on find", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactService{
			FindArtifactSetByIDFn: func(_ context.Context, _ string) (*sitedraft.ArtifactSet, error) {
				return nil, sitedraft.Errorf(sitedraft.ENOTFOUND, "artifact set not found")
			},
		}

		svc := sdslog.NewLoggingArtifactService(inner, newDebugLogger(&buf))
		_, err := svc.FindArtifactSetByID(context.Background(), "missing")

		assert.Equal(t, sitedraft.ENOTFOUND, sitedraft.ErrorCode(err))
		assert.Contains(t, buf.String(), "id=missing")
		assert.Contains(t, buf.String(), "not found")
	})

	t.Run("logs list count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactService{
			FindArtifactSetsFn: func(_ context.Context, _ sitedraft.ArtifactSetFilter) ([]*sitedraft.ArtifactSet, error) {
				return []*sitedraft.ArtifactSet{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
			},
		}

		svc := sdslog.NewLoggingArtifactService(inner, newDebugLogger(&buf))
		sets, err := svc.FindArtifactSets(context.Background(), sitedraft.ArtifactSetFilter{Limit: 10})

		require.NoError(t, err)
		assert.Len(t, sets, 3)
		assert.Contains(t, buf.String(), "count=3")
		assert.Contains(t, buf.String(), "limit=10")
	})

	t.Run("logs delete at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactService{
			DeleteArtifactSetFn: func(_ context.Context, _ string) error { return nil },
		}

		svc := sdslog.NewLoggingArtifactService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := svc.DeleteArtifactSet(context.Background(), "set-1")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "artifact set delete")
		assert.Contains(t, buf.String(), "id=set-1")
	})

	t.Run("debug lines are hidden at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArtifactService{
			FindArtifactSetsFn: func(_ context.Context, _ sitedraft.ArtifactSetFilter) ([]*sitedraft.ArtifactSet, error) {
				return nil, nil
			},
		}

		svc := sdslog.NewLoggingArtifactService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := svc.FindArtifactSets(context.Background(), sitedraft.ArtifactSetFilter{})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
