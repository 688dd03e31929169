package models

// User is a record in the user directory. ID is assigned by the store and
// never changes.
type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}
