// Package logging provides the structured logger and the in-process request
// statistics of the API.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Statistics represents the collected request statistics
type Statistics struct {
	UniqueVisitors  map[string]time.Time `json:"uniqueVisitors"`  // IP -> Last Visit Time
	TotalRequests   int                  `json:"totalRequests"`   // Requests handled by tracked endpoints
	ErrorCount      int                  `json:"errorCount"`      // Responses with status >= 400
	EndpointHits    map[string]int       `json:"endpointHits"`    // "METHOD /path" -> Count
	AverageLoadTime float64              `json:"averageLoadTime"` // Average handling time in milliseconds
	TotalLoadTime   float64              `json:"totalLoadTime"`
	LastPersisted   time.Time            `json:"lastPersisted"`

	filePath string
	devMode  bool
	mutex    sync.RWMutex
}

// NewStatistics creates statistics persisted at filePath. Existing data is
// loaded when the file is present. In dev mode GetStatistics includes the
// per-endpoint breakdown.
func NewStatistics(filePath string, devMode bool) (*Statistics, error) {
	s := &Statistics{
		UniqueVisitors: make(map[string]time.Time),
		EndpointHits:   make(map[string]int),
		LastPersisted:  time.Now(),
		filePath:       filePath,
		devMode:        devMode,
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// TrackVisitor records a unique visitor
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// endpointKey normalizes a request into "METHOD /path", ignoring the query.
func endpointKey(method, path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}
	return strings.ToUpper(method) + " " + path
}

// TrackRequest records a handled API request
func (s *Statistics) TrackRequest(method, path string, loadTime float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.TotalRequests++
	s.EndpointHits[endpointKey(method, path)]++

	if hasError {
		s.ErrorCount++
	}

	s.TotalLoadTime += loadTime
	s.AverageLoadTime = s.TotalLoadTime / float64(s.TotalRequests)
}

// Requests returns the number of tracked requests.
func (s *Statistics) Requests() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.TotalRequests
}

func (s *Statistics) uniqueVisitors24h() int {
	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

// GetUniqueVisitorsCount returns the number of unique visitors in the last 24 hours
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.uniqueVisitors24h()
}

// EndpointCount is one entry of TopEndpoints.
type EndpointCount struct {
	Endpoint string `json:"endpoint"`
	Hits     int    `json:"hits"`
}

func (s *Statistics) topEndpoints(n int) []EndpointCount {
	out := make([]EndpointCount, 0, len(s.EndpointHits))
	for e, hits := range s.EndpointHits {
		out = append(out, EndpointCount{Endpoint: e, Hits: hits})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hits != out[j].Hits {
			return out[i].Hits > out[j].Hits
		}
		return out[i].Endpoint < out[j].Endpoint
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopEndpoints returns the n most requested endpoints, busiest first
func (s *Statistics) TopEndpoints(n int) []EndpointCount {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.topEndpoints(n)
}

func (s *Statistics) errorRate() float64 {
	if s.TotalRequests == 0 {
		return 0
	}
	return (float64(s.ErrorCount) / float64(s.TotalRequests)) * 100
}

// GetErrorRate returns the error rate as a percentage
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.errorRate()
}

// Save persists the statistics to its file
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.filePath == "" {
		return nil
	}
	s.LastPersisted = time.Now()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not encode statistics: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("could not write statistics file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("could not replace statistics file: %w", err)
	}
	return nil
}

// Load reads the statistics from its file
func (s *Statistics) Load() error {
	if s.filePath == "" {
		return nil
	}
	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not an error if file doesn't exist yet
		}
		return fmt.Errorf("could not open statistics file: %w", err)
	}
	defer file.Close()

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := json.NewDecoder(file).Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %w", err)
	}
	if s.UniqueVisitors == nil {
		s.UniqueVisitors = make(map[string]time.Time)
	}
	if s.EndpointHits == nil {
		s.EndpointHits = make(map[string]int)
	}
	return nil
}

// GetStatistics returns a snapshot. Outside dev mode the endpoint breakdown is omitted.
func (s *Statistics) GetStatistics() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := map[string]interface{}{
		"uniqueVisitors24h": s.uniqueVisitors24h(),
		"totalRequests":     s.TotalRequests,
		"errorRate":         s.errorRate(),
		"averageLoadTime":   s.AverageLoadTime,
	}
	if s.devMode {
		out["topEndpoints"] = s.topEndpoints(5)
	}
	return out
}
