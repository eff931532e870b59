package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/scamshield/scamshield/internal/model"
)

const (
	fallbackSaveHistory = "Failed to save to history"
	fallbackGetHistory  = "Failed to fetch history"
)

// SaveHistory stores an assessment summary on the remote service and
// returns its assigned ID. History lives entirely server-side; nothing is
// persisted locally.
func (c *Client) SaveHistory(ctx context.Context, summary any) (model.SavedHistory, error) {
	var out model.SavedHistory
	body := map[string]any{"summary": summary}
	if err := c.postJSON(ctx, "/api/v1/history", body, &out, fallbackSaveHistory); err != nil {
		return model.SavedHistory{}, err
	}
	return out, nil
}

// GetHistory fetches a page of saved assessments.
func (c *Client) GetHistory(ctx context.Context, limit, offset int) ([]model.HistoryItem, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var out []model.HistoryItem
	if err := c.getJSON(ctx, "/api/v1/history", query, &out, fallbackGetHistory); err != nil {
		return nil, err
	}
	return out, nil
}
