package models

import "time"

// Message is a piece of content posted on behalf of an account. CreatedAt is
// assigned by the store.
type Message struct {
	ID          int64     `db:"id" json:"id"`
	AuthorEmail string    `db:"master_email_address" json:"master_email_address"`
	Department  string    `db:"department" json:"department"`
	Text        string    `db:"text" json:"text"`
	ContentType string    `db:"content_type" json:"content_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
