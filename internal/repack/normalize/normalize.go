package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/lk2023060901/repack-search-backend/internal/repack/types"
)

// Identifier derives the stable upsert key for a provider record. The
// same (provider, title) pair always yields the same identifier, so
// repeated refreshes converge on one index document.
func Identifier(providerName, title string) string {
	sum := sha256.Sum256([]byte(providerName + title))
	return hex.EncodeToString(sum[:])
}

// AccessURL resolves the single actionable link for a raw record:
//  1. the record's own link, verbatim, when it starts with "http"
//  2. otherwise the first alternative URI, verbatim (may be a magnet)
//  3. otherwise the provider's search page with the title as query term
//
// Tier 1 checks nothing beyond the scheme prefix: a non-HTTP link such
// as ftp:// falls through to tier 2 or 3.
func AccessURL(cfg *types.ProviderConfig, rec *types.RawRecord) string {
	if rec.Link != "" && strings.HasPrefix(rec.Link, "http") {
		return rec.Link
	}
	if len(rec.URIs) > 0 {
		return rec.URIs[0]
	}
	return cfg.SearchURL + encodeTerm(rec.Title)
}

// encodeTerm percent-encodes a search term for a provider search page.
// Spaces must come out as %20, not '+'.
func encodeTerm(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Record maps one raw feed entry into the indexed listing shape. Entries
// without a title cannot be keyed and are dropped; callers get nil.
func Record(cfg *types.ProviderConfig, rec *types.RawRecord) *types.IndexedListing {
	if rec == nil || rec.Title == "" {
		return nil
	}
	return &types.IndexedListing{
		Identifier:     Identifier(cfg.Name, rec.Title),
		Title:          rec.Title,
		SourceLabel:    cfg.Name,
		AccessURL:      AccessURL(cfg, rec),
		SizeDescriptor: rec.FileSize,
		PublishedAt:    rec.UploadDate,
	}
}

// Records maps a whole feed, dropping untitled entries.
func Records(cfg *types.ProviderConfig, recs []*types.RawRecord) []*types.IndexedListing {
	out := make([]*types.IndexedListing, 0, len(recs))
	for _, rec := range recs {
		if listing := Record(cfg, rec); listing != nil {
			out = append(out, listing)
		}
	}
	return out
}

// LiveHit maps one web-search hit into the live listing shape.
func LiveHit(title, link, displayLink, snippet string) *types.LiveListing {
	return &types.LiveListing{
		Title:       title,
		SourceLabel: displayLink,
		AccessURL:   link,
		Snippet:     snippet,
	}
}
