package admin

// StatsResponse holds the admin dashboard counters
type StatsResponse struct {
	Posts          int    `json:"posts"`
	Projects       int    `json:"projects"`
	UnreadMessages int    `json:"unreadMessages"`
	SiteName       string `json:"siteName"`
	Initials       string `json:"initials"`
}
