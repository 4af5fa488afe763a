package model

// Diary is a top-level journal entry.
// The ID is assigned by the store on insert.
type Diary struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// DiaryData is the payload accepted when creating a diary.
type DiaryData struct {
	Title   string `json:"title" validate:"notblank"`
	Comment string `json:"comment"`
}
