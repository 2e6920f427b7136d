package models

import "time"

// Chapter belongs to a story by StoryID. LastUpdated is maintained by the
// store on insert and on every update.
type Chapter struct {
	ID           int64     `json:"id"`
	StoryID      int64     `json:"story_id"`
	ChapterTitle string    `json:"chapter_title"`
	StoryChapter string    `json:"story_chapter"`
	LastUpdated  time.Time `json:"last_updated"`
}
