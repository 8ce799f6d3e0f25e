package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddc002021/hackathon/internal/present"
	"github.com/ddc002021/hackathon/internal/trace"
)

// newTestBackend serves canned responses for the boundary endpoints.
func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/graph/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		view := strings.TrimPrefix(r.URL.Path, "/graph/")
		graph := WireGraph{
			Nodes: []WireNode{
				{ID: "f1", Data: WireNodeData{Label: "Feature One", Type: "feature", Modality: "code", View: view}},
			},
			Edges: []WireEdge{
				{Source: "f1", Target: "f1"},
			},
		}
		json.NewEncoder(w).Encode(graph)
	})

	mux.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(QueryResult{
			Query:            body["query"],
			Answer:           "found it",
			QueryType:        "path",
			HighlightedNodes: []string{"f1"},
			Paths:            []present.Path{{Nodes: []string{"p1", "f1"}}},
		})
	})

	mux.HandleFunc("/feature/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(FeatureDetail{
			ID:   strings.TrimPrefix(r.URL.Path, "/feature/"),
			Name: "Feature One",
			Type: "feature",
		})
	})

	mux.HandleFunc("/walkthrough-function", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		stepZero := 0
		json.NewEncoder(w).Encode(WalkthroughResult{
			Success:     true,
			Walkthrough: "## Steps",
			TraceGraph: &trace.Result{
				Nodes: []trace.InputNode{{ID: "n0", Kind: trace.KindStart, Step: &stepZero}},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPClient_FetchGraph(t *testing.T) {
	srv := newTestBackend(t)
	client := NewHTTPClient(srv.URL)

	snap, err := client.FetchGraph(context.Background(), present.ViewFeatures)
	require.NoError(t, err)
	require.Len(t, snap.Nodes, 1)
	assert.Equal(t, present.TypeFeature, snap.Nodes[0].Semantic.Type)
	assert.Equal(t, present.ViewFeatures, snap.Nodes[0].Semantic.View)
}

func TestHTTPClient_Query(t *testing.T) {
	srv := newTestBackend(t)
	client := NewHTTPClient(srv.URL)

	res, err := client.Query(context.Background(), "how is attention implemented?")
	require.NoError(t, err)
	assert.Equal(t, "found it", res.Answer)
	assert.Equal(t, []string{"f1"}, res.HighlightedNodes)
	require.Len(t, res.Paths, 1)
}

func TestHTTPClient_FeatureDetails(t *testing.T) {
	srv := newTestBackend(t)
	client := NewHTTPClient(srv.URL)

	detail, err := client.FeatureDetails(context.Background(), "feature_1")
	require.NoError(t, err)
	assert.Equal(t, "feature_1", detail.ID)
}

func TestHTTPClient_Walkthrough(t *testing.T) {
	srv := newTestBackend(t)
	client := NewHTTPClient(srv.URL)

	res, err := client.Walkthrough(context.Background(), "encode")
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.TraceGraph)

	nodes, edges := trace.Build(*res.TraceGraph)
	assert.Len(t, nodes, 1)
	assert.Empty(t, edges)
}

func TestHTTPClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no repository uploaded yet", http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL)
	_, err := client.Query(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "no repository uploaded yet")
}
