package dto

type IndexDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Folder  string `json:"folder"`
}

type IndexDocumentResponse struct {
	Id string `json:"id"`
}

type UpdateDocumentRequest struct {
	Content string `json:"content"`
}

type DocumentResponse struct {
	Id       string                 `json:"id"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}
