package handler

import (
	"net/http"
	"runtime"
	"time"
)

// Set with -ldflags "-X github.com/osse101/RogueMods_Go/internal/handler.GitCommit=..."
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// VersionInfo describes the running build
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Uptime    string `json:"uptime"`
}

// HandleVersion reports the build and how long this process has served
func HandleVersion(version string) http.HandlerFunc {
	started := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   version,
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
			Uptime:    time.Since(started).Round(time.Second).String(),
		})
	}
}
