// Package pipeline runs document-structure extraction and relevance
// ranking over collections of PDFs, with bounded per-document concurrency
// and per-document failure isolation.
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// CollectionJob is the input for a ranking run: who is asking, what they
// need to get done, and which documents to look in.
type CollectionJob struct {
	Persona     string   `json:"persona"`
	JobToBeDone string   `json:"job_to_be_done"`
	Documents   []string `json:"documents"`
}

// LoadJob reads a collection job description from a JSON file.
func LoadJob(path string) (CollectionJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CollectionJob{}, fmt.Errorf("read job file: %w", err)
	}
	var job CollectionJob
	if err := json.Unmarshal(data, &job); err != nil {
		return CollectionJob{}, fmt.Errorf("parse job file: %w", err)
	}
	if len(job.Documents) == 0 {
		return CollectionJob{}, fmt.Errorf("job lists no documents")
	}
	return job, nil
}

// Metadata echoes the job back alongside the processing timestamp.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one of the top-ranked sections across the
// collection. ImportanceRank is 1 for the most relevant section.
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// Subsection carries the refined body text behind an extracted section.
type Subsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Output is the collection-level result document.
type Output struct {
	Metadata           Metadata           `json:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections"`
	SubsectionAnalysis []Subsection       `json:"subsection_analysis"`
}
