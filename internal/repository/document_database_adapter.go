package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"autoquiz/internal/domain"
	"autoquiz/internal/repository/models"
	"autoquiz/internal/util"
)

// Column aliases are quoted so Oracle returns lower-case names that match the db tags.
const (
	insertDocumentQuery = `INSERT INTO documents (id, filename, content, file_data, upload_date)
	VALUES (:id, :filename, :content, :file_data, :upload_date)`

	getDocumentQuery = `SELECT
		id "id",
		filename "filename",
		content "content",
		file_data "file_data",
		upload_date "upload_date"
	FROM documents
	WHERE id = ?`

	listDocumentsQuery = `SELECT
		id "id",
		filename "filename",
		content "content",
		upload_date "upload_date"
	FROM documents
	ORDER BY upload_date, id`

	deleteDocumentQuery = `DELETE FROM documents WHERE id = ?`
)

// DocumentDatabaseAdapter implements domain.DocumentRepository using sqlx.
type DocumentDatabaseAdapter struct {
	db DBTX
}

// NewDocumentDatabaseAdapter creates a new instance of DocumentDatabaseAdapter
func NewDocumentDatabaseAdapter(db DBTX) domain.DocumentRepository {
	return &DocumentDatabaseAdapter{db: db}
}

// Save implements domain.DocumentRepository
func (a *DocumentDatabaseAdapter) Save(ctx context.Context, doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("cannot save nil document")
	}
	if doc.ID == "" {
		doc.ID = util.NewULID()
	}

	if _, err := a.db.NamedExecContext(ctx, insertDocumentQuery, toModelDocument(doc)); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// GetByID implements domain.DocumentRepository
func (a *DocumentDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	var row models.Document
	err := a.db.GetContext(ctx, &row, a.db.Rebind(getDocumentQuery), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by ID %s: %w", id, err)
	}
	return toDomainDocument(&row), nil
}

// List implements domain.DocumentRepository. FileData is left empty on listed documents.
func (a *DocumentDatabaseAdapter) List(ctx context.Context) ([]*domain.Document, error) {
	var rows []models.DocumentSummary
	if err := a.db.SelectContext(ctx, &rows, listDocumentsQuery); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]*domain.Document, 0, len(rows))
	for i := range rows {
		docs = append(docs, &domain.Document{
			ID:         rows[i].ID,
			Filename:   rows[i].Filename,
			Content:    rows[i].Content.String,
			UploadDate: rows[i].UploadDate,
		})
	}
	return docs, nil
}

// Delete implements domain.DocumentRepository
func (a *DocumentDatabaseAdapter) Delete(ctx context.Context, id string) (bool, error) {
	result, err := a.db.ExecContext(ctx, a.db.Rebind(deleteDocumentQuery), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for document %s: %w", id, err)
	}
	return affected > 0, nil
}

func toModelDocument(doc *domain.Document) *models.Document {
	if doc == nil {
		return nil
	}
	return &models.Document{
		ID:         doc.ID,
		Filename:   doc.Filename,
		Content:    util.StringToNullString(doc.Content),
		FileData:   doc.FileData,
		UploadDate: doc.UploadDate,
	}
}

func toDomainDocument(row *models.Document) *domain.Document {
	if row == nil {
		return nil
	}
	return &domain.Document{
		ID:         row.ID,
		Filename:   row.Filename,
		Content:    row.Content.String,
		FileData:   row.FileData,
		UploadDate: row.UploadDate,
	}
}
