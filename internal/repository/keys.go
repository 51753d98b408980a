package repository

// Namespace prefixes every storage key owned by this application. The
// backup importer erases exactly this namespace before a restore.
const Namespace = "drsparkle"

// UsersKey is the storage key for the whole users table.
func UsersKey() string {
	return Namespace + ":users"
}

// HistoryKey is the storage key for one user's check-in history.
func HistoryKey(userID string) string {
	return Namespace + ":history:" + userID
}

// SettingsKey is the storage key for one user's settings.
func SettingsKey(userID string) string {
	return Namespace + ":settings:" + userID
}

// PlanKey is the storage key for one user's weekly smile plan.
func PlanKey(userID string) string {
	return Namespace + ":plan:" + userID
}

// ChatKey is the storage key for one user's chat transcript.
func ChatKey(userID string) string {
	return Namespace + ":chat:" + userID
}
