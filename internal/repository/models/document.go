package models

import (
	"database/sql"
	"time"
)

// Document is the row shape of the documents table.
type Document struct {
	ID         string         `db:"id"`
	Filename   string         `db:"filename"`
	Content    sql.NullString `db:"content"`
	FileData   string         `db:"file_data"`
	UploadDate time.Time      `db:"upload_date"`
}

// DocumentSummary is a documents row without the stored file, used for listings.
type DocumentSummary struct {
	ID         string         `db:"id"`
	Filename   string         `db:"filename"`
	Content    sql.NullString `db:"content"`
	UploadDate time.Time      `db:"upload_date"`
}
