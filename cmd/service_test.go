package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wikiquiz/internal/config"
	"github.com/abhisek/wikiquiz/internal/workflow"
)

// failingService points cfg at a server that always answers 500 with an
// empty body and returns its request counter.
func failingService(t *testing.T, retries int) *atomic.Int32 {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = config.DefaultConfig()
	cfg.ServiceURL = srv.URL
	cfg.Retries = retries
	return &hits
}

func TestDefaultServiceFetchesOnce(t *testing.T) {
	hits := failingService(t, config.DefaultConfig().Retries)

	w := workflow.NewHistoryWorkflow(newService(), workflow.Options{})
	msg, ok := w.SelectEntry("1")().(workflow.QuizFetchedMsg)
	require.True(t, ok)
	require.True(t, w.ApplyDetail(msg))

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, workflow.DetailFailedMessage, w.Detail().Message())
}

func TestDefaultServiceListsOnce(t *testing.T) {
	hits := failingService(t, config.DefaultConfig().Retries)

	w := workflow.NewHistoryWorkflow(newService(), workflow.Options{})
	msg, ok := w.Activate()().(workflow.HistoryLoadedMsg)
	require.True(t, ok)
	require.True(t, w.ApplyList(msg))

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, workflow.ListFailedMessage, w.ListState().Message())
}

func TestDefaultServiceGenerateFallbackMessage(t *testing.T) {
	hits := failingService(t, config.DefaultConfig().Retries)

	err := generateQuiz(newService(), workflow.Options{}, dogURL, false, io.Discard)
	require.EqualError(t, err, workflow.GenerateFailedMessage)
	assert.Equal(t, int32(1), hits.Load())
}

func TestConfiguredRetriesRepeatReads(t *testing.T) {
	hits := failingService(t, 1)

	_, err := newService().ListHistory(t.Context())
	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())
}
