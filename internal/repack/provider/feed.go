package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/lk2023060901/repack-search-backend/internal/repack/types"

	"github.com/tidwall/gjson"
)

// FetchDownloads retrieves the provider feed and decodes its downloads
// array into raw records.
func (b *BaseFetcher) FetchDownloads(ctx context.Context) ([]*types.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.config.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range b.BuildDefaultHeaders() {
		req.Header.Set(k, v)
	}

	resp, err := b.DoRequest(ctx, req)
	if err != nil {
		return nil, &types.ProviderError{
			Provider: b.GetID(),
			Code:     "REQUEST_FAILED",
			Message:  "Failed to fetch feed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &types.ProviderError{
			Provider: b.GetID(),
			Code:     fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message:  string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	return parseDownloads(b.GetID(), body)
}

// parseDownloads decodes the downloads array of a feed document. The
// feeds are hand-maintained JSON, so fields are read individually and
// missing ones come back empty rather than failing the whole feed.
func parseDownloads(id types.ProviderID, body []byte) ([]*types.RawRecord, error) {
	if !gjson.ValidBytes(body) {
		return nil, &types.ProviderError{
			Provider: id,
			Code:     "INVALID_FEED",
			Message:  "feed is not valid JSON",
			Err:      types.ErrInvalidFeed,
		}
	}

	downloads := gjson.GetBytes(body, "downloads")
	if !downloads.IsArray() {
		return nil, &types.ProviderError{
			Provider: id,
			Code:     "INVALID_FEED",
			Message:  "feed has no downloads array",
			Err:      types.ErrInvalidFeed,
		}
	}

	entries := downloads.Array()
	records := make([]*types.RawRecord, 0, len(entries))
	for _, entry := range entries {
		rec := &types.RawRecord{
			Title:      entry.Get("title").String(),
			Link:       entry.Get("link").String(),
			FileSize:   entry.Get("fileSize").String(),
			UploadDate: entry.Get("uploadDate").String(),
		}
		for _, uri := range entry.Get("uris").Array() {
			rec.URIs = append(rec.URIs, uri.String())
		}
		records = append(records, rec)
	}

	return records, nil
}
