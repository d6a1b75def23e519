package models

// Summary - aggregate counters of one producer run.
type Summary struct {
	RunID      string       `json:"run_id"`
	TimeUTC    string       `json:"time_utc"`
	SitesOK    int          `json:"sites_ok"`
	SitesError int          `json:"sites_error"`
	Totals     ChangeCounts `json:"totals"`
}

// SiteError - a site that could not be fetched by the producer.
type SiteError struct {
	SiteID  string `json:"site_id"`
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	TimeUTC string `json:"time_utc"`
	Error   string `json:"error"`
}

// Snapshot - the three documents of one producer run.
type Snapshot struct {
	Summary Summary
	Sites   []Site
	Errors  []SiteError
}
