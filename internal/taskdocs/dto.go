package taskdocs

import "time"

// TaskDocumentResponse is the outward-facing representation of a task document.
type TaskDocumentResponse struct {
	DocumentID  string     `json:"documentId"`
	FileName    string     `json:"fileName"`
	MimeType    string     `json:"mimeType"`
	SizeBytes   int64      `json:"sizeBytes"`
	ExtractedAt *time.Time `json:"extractedAt,omitempty"`
	UploadedAt  time.Time  `json:"uploadedAt"`
	Text        string     `json:"text,omitempty"`
}

func toResponse(doc TaskDocument) TaskDocumentResponse {
	return TaskDocumentResponse{
		DocumentID:  doc.ID,
		FileName:    doc.FileName,
		MimeType:    doc.MimeType,
		SizeBytes:   doc.SizeBytes,
		ExtractedAt: doc.ExtractedAt,
		UploadedAt:  doc.CreatedAt,
	}
}
