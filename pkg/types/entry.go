package types

// Entry is a single journal submission. Entries are immutable after
// creation except for deletion, and created_at is the sole sort key.
type Entry struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	Content   string `json:"content" db:"content"`
	Poem      string `json:"poem" db:"poem"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}
