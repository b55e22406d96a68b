package pipeline

import "time"

// CorpusLine is the unit of text published to the corpus-lines topic: one
// line of raw text from a named source.
type CorpusLine struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// FlushNotice is published after a count table has been flushed, so
// downstream build steps know a fresh count file exists.
type FlushNotice struct {
	Source     string    `json:"source"`
	Language   string    `json:"language"`
	Path       string    `json:"path"`
	Vocabulary int       `json:"vocabulary"`
	Total      int64     `json:"total"`
	FlushedAt  time.Time `json:"flushed_at"`
}
