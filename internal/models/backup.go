package models

// BackupSource is the application identity stamped into every exported
// snapshot. The importer rejects files carrying any other source tag.
const BackupSource = "DrSparkleApp"

// BackupData bundles every non-guest user and their per-user collections,
// each keyed by user id.
type BackupData struct {
	Users         map[string]User             `json:"users"`
	Histories     map[string][]HistoryEntry   `json:"histories"`
	Settings      map[string]Settings         `json:"settings"`
	Plans         map[string]*WeeklySmilePlan `json:"plans"`
	ChatHistories map[string][]Message        `json:"chatHistories"`
}

// AppBackup is the versioned full-snapshot wire format.
type AppBackup struct {
	Source     string     `json:"source"`
	Version    string     `json:"version"`
	ExportDate string     `json:"exportDate"`
	Data       BackupData `json:"data"`
}
