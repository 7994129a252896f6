package types

// SourceKind identifies which search path produced a listing.
type SourceKind string

const (
	SourceIndexed SourceKind = "indexed"
	SourceLive    SourceKind = "live"
)

// Listing is the minimal contract shared by both search paths. Every
// listing carries a title, a provenance label and exactly one actionable
// link; everything else depends on the concrete shape.
type Listing interface {
	GetTitle() string
	GetSourceLabel() string
	GetAccessURL() string
	Kind() SourceKind
}

// IndexedListing is a record stored in the title index. Identifier is the
// upsert key, so repeated refreshes converge instead of duplicating.
type IndexedListing struct {
	Identifier     string `json:"identifier"`
	Title          string `json:"title"`
	SourceLabel    string `json:"sourceLabel"`
	AccessURL      string `json:"accessUrl"`
	SizeDescriptor string `json:"sizeDescriptor,omitempty"`
	PublishedAt    string `json:"publishedAt,omitempty"`
}

func (l *IndexedListing) GetTitle() string       { return l.Title }
func (l *IndexedListing) GetSourceLabel() string { return l.SourceLabel }
func (l *IndexedListing) GetAccessURL() string   { return l.AccessURL }
func (l *IndexedListing) Kind() SourceKind       { return SourceIndexed }

// LiveListing is a record produced by the live web-search path. It never
// carries an identifier and is never written to the index.
type LiveListing struct {
	Title       string `json:"title"`
	SourceLabel string `json:"sourceLabel"`
	AccessURL   string `json:"accessUrl"`
	Snippet     string `json:"snippet,omitempty"`
}

func (l *LiveListing) GetTitle() string       { return l.Title }
func (l *LiveListing) GetSourceLabel() string { return l.SourceLabel }
func (l *LiveListing) GetAccessURL() string   { return l.AccessURL }
func (l *LiveListing) Kind() SourceKind       { return SourceLive }

var (
	_ Listing = (*IndexedListing)(nil)
	_ Listing = (*LiveListing)(nil)
)
