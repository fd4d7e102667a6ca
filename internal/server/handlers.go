package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/deptnumbers/internal/combinations"
)

// SystemStatusResponse is returned by GET /api/system/status
type SystemStatusResponse struct {
	Status         string                `json:"status"`
	UptimeSeconds  float64               `json:"uptime_seconds"`
	Strategy       combinations.Strategy `json:"strategy"`
	Goroutines     int                   `json:"goroutines"`
	HeapAllocMB    float64               `json:"heap_alloc_mb"`
	MemoryUsedPct  float64               `json:"memory_used_percent"` // host RAM, 0 when unavailable
	MemoryTotalMB  float64               `json:"memory_total_mb"`
	DefaultNumbers string                `json:"default_numbers"`
	DefaultTarget  int                   `json:"default_target"`
}

// indexData feeds the index.html template
type indexData struct {
	Numbers    string
	Target     int
	Strategy   combinations.Strategy
	Strategies []combinations.Strategy
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "deptnumbers",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleSystemStatus reports process and host memory statistics
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	response := SystemStatusResponse{
		Status:         "healthy",
		UptimeSeconds:  time.Since(s.startedAt).Seconds(),
		Strategy:       s.solver.Strategy(),
		Goroutines:     runtime.NumGoroutine(),
		HeapAllocMB:    float64(ms.HeapAlloc) / 1024 / 1024,
		DefaultNumbers: s.cfg.DefaultNumbers,
		DefaultTarget:  s.cfg.DefaultTarget,
	}

	// Get memory statistics (instant, no blocking)
	memStat, err := mem.VirtualMemory()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get memory statistics")
	} else {
		response.MemoryUsedPct = memStat.UsedPercent
		response.MemoryTotalMB = float64(memStat.Total) / 1024 / 1024
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleIndex renders the puzzle page with the configured defaults
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Numbers:    s.cfg.DefaultNumbers,
		Target:     s.cfg.DefaultTarget,
		Strategy:   s.solver.Strategy(),
		Strategies: combinations.Strategies(),
	}

	var buf bytes.Buffer
	if err := s.index.Execute(&buf, data); err != nil {
		s.log.Error().Err(err).Msg("Failed to render index.html")
		http.Error(w, "Frontend not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Error().Err(err).Msg("Failed to write index.html response")
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
