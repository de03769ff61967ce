package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/saadjs/fitguide-cli/internal/model"
)

// SearchFood runs the AI nutrition estimate for a free-text query.
func (c *Client) SearchFood(ctx context.Context, query string) (model.FoodEstimate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.FoodEstimate{}, fmt.Errorf("search query is required")
	}
	var out model.FoodEstimate
	if err := c.do(ctx, http.MethodPost, "search-food/", map[string]string{"query": query}, &out); err != nil {
		return model.FoodEstimate{}, err
	}
	return out, nil
}

// DietSuggestions returns server-ranked candidates for the rest of the day.
// Ordering and content are entirely server-determined.
func (c *Client) DietSuggestions(ctx context.Context) ([]model.DietSuggestion, error) {
	var out []model.DietSuggestion
	if err := c.do(ctx, http.MethodGet, "diet-suggestions/", nil, &out); err != nil {
		return nil, noProfile(err)
	}
	return out, nil
}

func (c *Client) DashboardSummary(ctx context.Context) (model.DashboardSummary, error) {
	var out model.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "dashboard-summary/", nil, &out); err != nil {
		return model.DashboardSummary{}, noProfile(err)
	}
	return out, nil
}

func (c *Client) WeeklyStats(ctx context.Context) (model.WeeklyStats, error) {
	var out model.WeeklyStats
	if err := c.do(ctx, http.MethodGet, "stats/weekly/", nil, &out); err != nil {
		return model.WeeklyStats{}, err
	}
	return out, nil
}

func (c *Client) MonthlyStats(ctx context.Context) (model.MonthlyStats, error) {
	var out model.MonthlyStats
	if err := c.do(ctx, http.MethodGet, "stats/monthly/", nil, &out); err != nil {
		return model.MonthlyStats{}, noProfile(err)
	}
	return out, nil
}

// MonthlyReportPDF returns the rendered report bytes; the caller writes
// them to disk unmodified.
func (c *Client) MonthlyReportPDF(ctx context.Context) ([]byte, error) {
	body, err := c.doBinary(ctx, "monthly-report-pdf/")
	if err != nil {
		return nil, noProfile(err)
	}
	return body, nil
}
