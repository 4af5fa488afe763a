package model

import "time"

// DiaryExport is the JSON document written to object storage for a diary snapshot.
type DiaryExport struct {
	Diary      Diary        `json:"diary"`
	Tasks      []TaskResult `json:"tasks"`
	ExportedAt time.Time    `json:"exported_at"`
}

// ExportResult describes where an export was stored.
type ExportResult struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}
