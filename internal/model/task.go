package model

// Task is a sub-item nominally associated with a diary.
// DiaryID records the diary from the creating route; it is not enforced as a foreign key.
type Task struct {
	ID      int64  `json:"id"`
	DiaryID int64  `json:"diary_id"`
	Title   string `json:"title"`
}

// TaskData is the payload accepted when creating or updating a task.
type TaskData struct {
	Title string `json:"title" validate:"notblank"`
}

// TaskResult is the summary of a task returned to clients.
type TaskResult struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Result converts a task into its client-facing summary.
func (t *Task) Result() *TaskResult {
	return &TaskResult{ID: t.ID, Title: t.Title}
}
