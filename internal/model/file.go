package model

// File represents an uploaded file stored as bytes with its extension,
// used for resume storage.
type File struct {
	ID        int `gorm:"primaryKey" json:"id"`
	Content   []byte
	Extension string
}
