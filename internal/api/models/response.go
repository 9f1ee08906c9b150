package models

import (
	"commodity-profits/internal/analysis"
	"commodity-profits/internal/data"
)

// DatasetResponse describes what was loaded at startup.
type DatasetResponse struct {
	Months      []string            `json:"months"`
	Commodities []string            `json:"commodities"`
	ParseMode   string              `json:"parse_mode"`
	Sources     []data.SourceStatus `json:"sources"`
	Report      *data.LoadReport    `json:"report"`
}

type MonthLeaderResponse struct {
	Month     string `json:"month"`
	Commodity string `json:"commodity"`
	Total     int    `json:"total"`
}

type DayTotalResponse struct {
	Month string `json:"month"`
	Day   int    `json:"day"`
	Total int    `json:"total"`
}

type BestDayResponse struct {
	Month string `json:"month"`
	Day   int    `json:"day"`
}

type SwingResponse struct {
	Month string `json:"month"`
	Swing int    `json:"swing"`
}

type BestWeekResponse struct {
	Month string `json:"month"`
	Week  string `json:"week"`
}

type RangeResponse struct {
	Commodity string `json:"commodity"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Total     int    `json:"total"`
}

type BestMonthResponse struct {
	Commodity string `json:"commodity"`
	Month     string `json:"month"`
}

type LossStreakResponse struct {
	Commodity string `json:"commodity"`
	Days      int    `json:"days"`
}

type ThresholdResponse struct {
	Commodity string `json:"commodity"`
	Threshold int    `json:"threshold"`
	Days      int    `json:"days"`
}

type CompareResponse struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Result string `json:"result"`
}

type RankResponse struct {
	Rankings []analysis.RankedCommodity `json:"rankings"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
