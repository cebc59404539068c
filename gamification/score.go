package gamification

// Snapshot is a derived engagement view. Never persisted as a source of
// truth; recomputed on demand from counters.
type Snapshot struct {
	PageViews        int     `json:"page_views"`
	IdeasCreated     int     `json:"ideas_created"`
	TimeSpentSeconds int     `json:"time_spent_seconds"`
	EngagementScore  float64 `json:"engagement_score"`
}

// EngagementScore combines page views, idea creation and time on
// platform into a single bounded score in [0, 100]. The weights are a
// tunable heuristic; only the output is clamped, negative inputs are
// rejected.
func EngagementScore(pageViews, ideasCreated, timeSpentSeconds int) (float64, error) {
	if pageViews < 0 || ideasCreated < 0 || timeSpentSeconds < 0 {
		return 0, ErrInvalidInput
	}
	score := float64(pageViews)*2 + float64(ideasCreated)*10 + float64(timeSpentSeconds)/60
	if score > 100 {
		score = 100
	}
	return score, nil
}
