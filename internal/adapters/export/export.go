// Package export renders state snapshots as JSON, YAML, Markdown or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xvierd/stayfocused/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "md"
	FormatCSV      Format = "csv"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatMarkdown, FormatCSV}

// ParseFormat validates a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatMarkdown, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Document is the serialized form of a snapshot.
type Document struct {
	GeneratedAt    time.Time `json:"generated_at" yaml:"generated_at"`
	View           string    `json:"view" yaml:"view"`
	CurrentProject int       `json:"current_project" yaml:"current_project"`
	Projects       []Project `json:"projects" yaml:"projects"`
}

// Project is one exported project. Durations are in whole seconds.
type Project struct {
	ID           string           `json:"id" yaml:"id"`
	Name         string           `json:"name" yaml:"name"`
	Description  string           `json:"description,omitempty" yaml:"description,omitempty"`
	Note         string           `json:"note,omitempty" yaml:"note,omitempty"`
	TotalSeconds int64            `json:"total_seconds" yaml:"total_seconds"`
	Commitment   map[string]int64 `json:"commitment_seconds,omitempty" yaml:"commitment_seconds,omitempty"`
	CurrentTask  int              `json:"current_task" yaml:"current_task"`
	Tasks        []Task           `json:"tasks" yaml:"tasks"`
}

// Task is one exported task.
type Task struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Note           string `json:"note,omitempty" yaml:"note,omitempty"`
	ElapsedSeconds int64  `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Elapsed        string `json:"elapsed" yaml:"elapsed"`
}

var dayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// NewDocument converts a snapshot to its exported form.
func NewDocument(state *domain.CurrentState) *Document {
	doc := &Document{
		GeneratedAt:    state.Timestamp,
		View:           string(state.View),
		CurrentProject: state.CurrentProject,
		Projects:       []Project{},
	}

	for _, ps := range state.Projects {
		p := Project{
			ID:           ps.ID,
			Name:         ps.Name,
			Description:  ps.Description,
			Note:         ps.Note,
			TotalSeconds: int64(ps.TotalTime / time.Second),
			CurrentTask:  ps.CurrentTask,
			Tasks:        []Task{},
		}
		for i, d := range ps.Commitment {
			if d == 0 {
				continue
			}
			if p.Commitment == nil {
				p.Commitment = make(map[string]int64)
			}
			p.Commitment[dayNames[i]] = int64(d / time.Second)
		}
		for _, ts := range ps.Tasks {
			p.Tasks = append(p.Tasks, Task{
				ID:             ts.ID,
				Name:           ts.Name,
				Description:    ts.Description,
				Note:           ts.Note,
				ElapsedSeconds: int64(ts.Elapsed / time.Second),
				Elapsed:        ts.ElapsedHMS,
			})
		}
		doc.Projects = append(doc.Projects, p)
	}
	return doc
}

// Write encodes state to w in the given format.
func Write(w io.Writer, format Format, state *domain.CurrentState) error {
	doc := NewDocument(state)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	case FormatCSV:
		return writeCSV(w, doc)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func writeMarkdown(w io.Writer, doc *Document) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# stayfocused export\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", doc.GeneratedAt.Format("2006-01-02 15:04"))

	for _, p := range doc.Projects {
		fmt.Fprintf(&b, "## %s\n", displayName(p.Name, "(unnamed project)"))
		if p.Description != "" {
			fmt.Fprintf(&b, "%s\n", p.Description)
		}
		fmt.Fprintf(&b, "- Total: %s\n", domain.FormatHMS(time.Duration(p.TotalSeconds)*time.Second))
		if p.Note != "" {
			fmt.Fprintf(&b, "- Note: %s\n", p.Note)
		}
		for _, t := range p.Tasks {
			fmt.Fprintf(&b, "  - %s: %s\n", displayName(t.Name, "(unnamed task)"), t.Elapsed)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCSV(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)

	_ = cw.Write([]string{"project", "task", "elapsed_seconds", "elapsed", "description", "note"})
	for _, p := range doc.Projects {
		for _, t := range p.Tasks {
			_ = cw.Write([]string{
				p.Name,
				t.Name,
				fmt.Sprintf("%d", t.ElapsedSeconds),
				t.Elapsed,
				t.Description,
				t.Note,
			})
		}
	}

	cw.Flush()
	return cw.Error()
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
