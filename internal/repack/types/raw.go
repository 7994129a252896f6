package types

// RawRecord is one entry of a provider's downloads feed, before link
// resolution. Link may be empty or carry a non-HTTP scheme; URIs may be
// empty; only Title is expected to be present.
type RawRecord struct {
	Title      string   `json:"title"`
	Link       string   `json:"link,omitempty"`
	URIs       []string `json:"uris,omitempty"`
	FileSize   string   `json:"fileSize,omitempty"`
	UploadDate string   `json:"uploadDate,omitempty"`
}
