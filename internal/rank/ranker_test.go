package rank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRanker_Rank(t *testing.T) {
	r := New(DefaultConfig())

	ranked, err := r.Rank("berlin", []string{"alt berlin", "potsdam", "berlino"})
	require.NoError(t, err)

	assert.Equal(t, []string{"berlino", "alt berlin", "potsdam"}, ranked)
}

func TestRanker_RankRejectsInvalidInput(t *testing.T) {
	r := New(DefaultConfig())

	_, err := r.Rank("", []string{"berlin"})
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = r.Rank("berlin", []string{"berlin", ""})
	assert.ErrorIs(t, err, ErrEmptyCandidate)
}

func TestRanker_HybridUsesConfiguredTop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Top = 1
	r := New(cfg)

	matches, err := r.Hybrid("hello", []string{"hell", "hello"})
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "hello", matches[0].Text)
}

func TestRanker_NilLogger(t *testing.T) {
	r := New(Config{Top: 2})

	assert.Equal(t, 3, r.Distance("kitten", "sitting"))
}

func TestRanker_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := DefaultConfig()
	cfg.Logger = zap.New(core)
	r := New(cfg)

	_, err := r.Rank("berlin", []string{"berlin", "potsdam"})
	require.NoError(t, err)
	_, err = r.Hybrid("berlin", []string{"berlin", "potsdam"})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("ranked candidates").Len())
	assert.Equal(t, 1, logs.FilterMessage("hybrid search").Len())
	// one trace per kept hybrid candidate
	assert.Equal(t, 2, logs.FilterMessage("levenshtein operands").Len())
}

func TestRank_ConcurrentCallers(t *testing.T) {
	candidates := []string{"berlino", "mo-berlin", "potsdam", "berlin wannsee", "berlin", "weder", "alt berlin"}
	expected := []string{"berlin", "berlino", "berlin wannsee", "mo-berlin", "alt berlin", "potsdam", "weder"}
	r := New(DefaultConfig())

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			got, err := r.Rank("berlin", candidates)
			if err != nil {
				return err
			}
			for j := range expected {
				if got[j] != expected[j] {
					return fmt.Errorf("position %d: got %q, want %q", j, got[j], expected[j])
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
