package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// AnalysisCompletedEvent is pushed to connected clients when an ATS
// analysis finishes, so an open editor can refresh its score panel.
type AnalysisCompletedEvent struct {
	Type         string `json:"type"`
	AnalysisID   string `json:"analysisId"`
	Score        int    `json:"score"`
	MatchedCount int    `json:"matchedCount"`
	MissingCount int    `json:"missingCount"`
	Timestamp    string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyAnalysisCompleted(analysisID string, score, matched, missing int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := AnalysisCompletedEvent{
		Type:         "analysis_completed",
		AnalysisID:   analysisID,
		Score:        score,
		MatchedCount: matched,
		MissingCount: missing,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
