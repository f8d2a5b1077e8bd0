package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// StructuredEvent represents one load-time or evaluation-time event of the
// rule engine, suitable for SIEM/data-analysis ingestion.
type StructuredEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"` // "rule_loaded", "round_trip_failed", "stage_pass", "stage_fail"
	File        string    `json:"file,omitempty"`
	TestTitle   string    `json:"test_title,omitempty"`
	RuleID      string    `json:"rule_id,omitempty"`
	Operator    string    `json:"operator,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	RulesLoaded int       `json:"rules_loaded,omitempty"`
	DurationMS  int64     `json:"duration_ms"`
}

// StructuredLogger handles structured logging for SIEM integration.
type StructuredLogger struct {
	mu           sync.Mutex
	jsonFile     *os.File
	csvFile      *os.File
	events       []StructuredEvent
	maxEvents    int
	enableJSON   bool
	enableCSV    bool
	enableStdout bool
}

// NewStructuredLogger creates a new structured logger.
func NewStructuredLogger(jsonPath, csvPath string, maxEvents int) (*StructuredLogger, error) {
	sl := &StructuredLogger{
		events:       make([]StructuredEvent, 0),
		maxEvents:    maxEvents,
		enableJSON:   jsonPath != "",
		enableCSV:    csvPath != "",
		enableStdout: true,
	}

	var err error

	if jsonPath != "" {
		sl.jsonFile, err = os.OpenFile(jsonPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open JSON log file: %w", err)
		}
	}

	if csvPath != "" {
		sl.csvFile, err = os.OpenFile(csvPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV log file: %w", err)
		}

		fi, _ := sl.csvFile.Stat()
		if fi.Size() == 0 {
			header := "Timestamp,EventID,EventType,File,TestTitle,RuleID,Operator,Reason\n"
			sl.csvFile.WriteString(header)
		}
	}

	return sl, nil
}

// LogEvent logs a structured event.
func (sl *StructuredLogger) LogEvent(event StructuredEvent) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	sl.events = append(sl.events, event)
	if len(sl.events) > sl.maxEvents {
		sl.events = sl.events[1:]
	}

	if sl.enableJSON && sl.jsonFile != nil {
		data, _ := json.Marshal(event)
		sl.jsonFile.WriteString(string(data) + "\n")
	}

	if sl.enableCSV && sl.csvFile != nil {
		sl.csvFile.WriteString(csvLine(event))
	}

	if sl.enableStdout {
		sl.printEvent(event)
	}

	return nil
}

func csvLine(event StructuredEvent) string {
	return fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%s\n",
		event.Timestamp.Format(time.RFC3339),
		event.EventID,
		event.EventType,
		event.File,
		event.TestTitle,
		event.RuleID,
		event.Operator,
		event.Reason,
	)
}

// printEvent prints an event to stdout with color coding.
func (sl *StructuredLogger) printEvent(event StructuredEvent) {
	color := "\033[0m"
	marker := "✓"
	switch event.EventType {
	case "stage_fail", "round_trip_failed":
		color = "\033[31m"
		marker = "✗"
	case "stage_pass":
		color = "\033[32m"
	}

	fmt.Printf("%s[%s] %s %s %s %s\033[0m\n",
		color,
		event.Timestamp.Format("15:04:05"),
		marker,
		event.EventType,
		event.TestTitle,
		event.Reason,
	)
}

// ExportJSON exports all events to a JSON file.
func (sl *StructuredLogger) ExportJSON(filePath string) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	data, err := json.MarshalIndent(sl.events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

// ExportCSV exports all events to a CSV file.
func (sl *StructuredLogger) ExportCSV(filePath string) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	file.WriteString("Timestamp,EventID,EventType,File,TestTitle,RuleID,Operator,Reason\n")
	for _, event := range sl.events {
		file.WriteString(csvLine(event))
	}

	return nil
}

// GetEvents returns all logged events.
func (sl *StructuredLogger) GetEvents() []StructuredEvent {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	events := make([]StructuredEvent, len(sl.events))
	copy(events, sl.events)
	return events
}

// GetEventsByType returns events filtered by event type.
func (sl *StructuredLogger) GetEventsByType(eventType string) []StructuredEvent {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	var filtered []StructuredEvent
	for _, event := range sl.events {
		if event.EventType == eventType {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// Close closes the log files.
func (sl *StructuredLogger) Close() error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	if sl.jsonFile != nil {
		sl.jsonFile.Close()
	}

	if sl.csvFile != nil {
		sl.csvFile.Close()
	}

	return nil
}

// GetStatistics returns summary statistics about logged events.
func (sl *StructuredLogger) GetStatistics() map[string]interface{} {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	total := len(sl.events)
	passed := 0
	failed := 0
	byType := make(map[string]int)

	for _, event := range sl.events {
		switch event.EventType {
		case "stage_pass":
			passed++
		case "stage_fail":
			failed++
		}
		byType[event.EventType]++
	}

	return map[string]interface{}{
		"total_events": total,
		"passed":       passed,
		"failed":       failed,
		"by_type":      byType,
	}
}
