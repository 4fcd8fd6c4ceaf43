package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
)

type componentStatus struct {
	OK               bool             `json:"ok"`
	CategoriesLoaded *int             `json:"categories_loaded,omitempty"`
	InvalidEntries   *int             `json:"invalid_entries,omitempty"`
	Reloads          *int             `json:"reloads,omitempty"`
	LastReload       string           `json:"last_reload,omitempty"`
	Source           string           `json:"source,omitempty"`
	Mode             string           `json:"mode,omitempty"`
	Views            map[string]int64 `json:"views,omitempty"`
	Error            string           `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.Snapshot.Count()
		invalid := d.Snapshot.InvalidEntries()
		reloads := d.Snapshot.Reloads()

		lastReload := "never"
		if t := d.Snapshot.GetLastReload(); !t.IsZero() {
			lastReload = t.Format(time.RFC3339)
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:               count > 0,
				CategoriesLoaded: &count,
				InvalidEntries:   &invalid,
				Reloads:          &reloads,
				LastReload:       lastReload,
				Source:           d.AssetsSource,
			},
			"views": checkViews(r.Context(), d),
		}

		writeJSON(w, d, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if catalog, ok := components["catalog"]; ok && !catalog.OK {
		return "critical"
	}
	if views, ok := components["views"]; ok && !views.OK {
		return "degraded"
	}
	return "ok"
}

// checkViews pings Redis and reads the counters. Disabled counters are not
// a failure.
func checkViews(ctx context.Context, d deps.Deps) componentStatus {
	if d.Views == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if d.RedisClient != nil {
		if err := d.RedisClient.Ping(ctx).Err(); err != nil {
			return componentStatus{OK: false, Mode: "redis", Error: err.Error()}
		}
	}

	views, err := d.Views.GetViews(ctx)
	if err != nil {
		return componentStatus{OK: false, Mode: "redis", Error: err.Error()}
	}
	return componentStatus{OK: true, Mode: "redis", Views: views}
}
