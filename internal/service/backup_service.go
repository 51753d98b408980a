package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"drsparkle/internal/config"
	"drsparkle/internal/models"
	"drsparkle/internal/repository"
	"drsparkle/internal/storage"
)

// BackupService serializes and restores the full multi-user snapshot.
type BackupService struct {
	store    storage.Store
	users    *repository.UserRepository
	history  *repository.HistoryRepository
	settings *repository.SettingsRepository
	plans    *repository.PlanRepository
	chats    *repository.ChatRepository
}

// NewBackupService creates a new backup service
func NewBackupService(
	store storage.Store,
	users *repository.UserRepository,
	history *repository.HistoryRepository,
	settings *repository.SettingsRepository,
	plans *repository.PlanRepository,
	chats *repository.ChatRepository,
) *BackupService {
	return &BackupService{
		store:    store,
		users:    users,
		history:  history,
		settings: settings,
		plans:    plans,
		chats:    chats,
	}
}

// Export assembles the snapshot of every known user except the guest
// pseudo-user, with per-user collections defaulting to empty when absent.
func (s *BackupService) Export() (*models.AppBackup, error) {
	users, err := s.users.All()
	if err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}
	delete(users, models.GuestID)

	backup := &models.AppBackup{
		Source:     models.BackupSource,
		Version:    config.Version,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Data: models.BackupData{
			Users:         users,
			Histories:     make(map[string][]models.HistoryEntry),
			Settings:      make(map[string]models.Settings),
			Plans:         make(map[string]*models.WeeklySmilePlan),
			ChatHistories: make(map[string][]models.Message),
		},
	}

	for id := range users {
		history, err := s.history.Get(id)
		if err != nil {
			return nil, fmt.Errorf("failed to export history for %s: %w", id, err)
		}
		backup.Data.Histories[id] = history

		settings, err := s.settings.Get(id)
		if err != nil {
			return nil, fmt.Errorf("failed to export settings for %s: %w", id, err)
		}
		backup.Data.Settings[id] = settings

		plan, err := s.plans.Get(id)
		if err != nil {
			return nil, fmt.Errorf("failed to export plan for %s: %w", id, err)
		}
		backup.Data.Plans[id] = plan

		chat, err := s.chats.Get(id)
		if err != nil {
			return nil, fmt.Errorf("failed to export chat for %s: %w", id, err)
		}
		backup.Data.ChatHistories[id] = chat
	}

	return backup, nil
}

// ExportToWriter writes the snapshot as indented JSON (useful for file
// downloads and HTTP responses).
func (s *BackupService) ExportToWriter(w io.Writer) error {
	backup, err := s.Export()
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}

// ExportFile writes the snapshot to a file.
func (s *BackupService) ExportFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	return nil
}

// Import restores a snapshot. The whole payload is validated before the
// destructive step: a rejected backup leaves storage untouched. On
// success every key in the application namespace is erased, then the
// users table and the non-empty per-user collections are written.
func (s *BackupService) Import(backup *models.AppBackup) error {
	if err := validateBackup(backup); err != nil {
		return err
	}

	log.Printf("Importing snapshot: version=%s, exported=%s, users=%d",
		backup.Version, backup.ExportDate, len(backup.Data.Users))

	keys, err := s.store.Keys(repository.Namespace + ":")
	if err != nil {
		return fmt.Errorf("failed to enumerate namespace: %w", err)
	}
	for _, key := range keys {
		if err := s.store.Delete(key); err != nil {
			return fmt.Errorf("failed to erase key %s: %w", key, err)
		}
	}

	if err := s.users.SaveAll(backup.Data.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}

	for id, history := range backup.Data.Histories {
		if len(history) == 0 {
			continue
		}
		if err := s.history.Save(id, history); err != nil {
			return fmt.Errorf("failed to import history for %s: %w", id, err)
		}
	}
	for id, settings := range backup.Data.Settings {
		if err := s.settings.Save(id, settings); err != nil {
			return fmt.Errorf("failed to import settings for %s: %w", id, err)
		}
	}
	for id, plan := range backup.Data.Plans {
		if plan == nil {
			continue
		}
		if err := s.plans.Save(id, plan); err != nil {
			return fmt.Errorf("failed to import plan for %s: %w", id, err)
		}
	}
	for id, chat := range backup.Data.ChatHistories {
		if len(chat) == 0 {
			continue
		}
		if err := s.chats.Save(id, chat); err != nil {
			return fmt.Errorf("failed to import chat for %s: %w", id, err)
		}
	}

	log.Println("Snapshot import completed successfully")
	return nil
}

// ImportFromReader decodes and restores a snapshot from a reader (for
// file uploads). Malformed JSON is rejected before any storage mutation.
func (s *BackupService) ImportFromReader(r io.Reader) error {
	var backup models.AppBackup
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return s.Import(&backup)
}

// ImportFile restores a snapshot from a .json file on disk.
func (s *BackupService) ImportFile(path string) error {
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		return fmt.Errorf("%w: backup file must have a .json extension", ErrInvalidFormat)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// validateBackup checks the snapshot's identity and structure. Every check
// runs before the importer's destructive erase step.
func validateBackup(backup *models.AppBackup) error {
	if backup == nil {
		return ErrInvalidFormat
	}
	if backup.Source != models.BackupSource {
		return fmt.Errorf("%w: source %q is not from this application", ErrInvalidFormat, backup.Source)
	}
	if backup.Data.Users == nil {
		return fmt.Errorf("%w: missing users table", ErrInvalidFormat)
	}
	for id, user := range backup.Data.Users {
		if user.ID != id {
			return fmt.Errorf("%w: user entry %q carries mismatched id %q", ErrInvalidFormat, id, user.ID)
		}
	}

	// Per-user collections must reference users the snapshot carries;
	// anything else indicates a corrupt or hand-edited file.
	for id := range backup.Data.Histories {
		if _, ok := backup.Data.Users[id]; !ok {
			return fmt.Errorf("%w: history for unknown user %q", ErrInvalidFormat, id)
		}
	}
	for id := range backup.Data.Settings {
		if _, ok := backup.Data.Users[id]; !ok {
			return fmt.Errorf("%w: settings for unknown user %q", ErrInvalidFormat, id)
		}
	}
	for id := range backup.Data.Plans {
		if _, ok := backup.Data.Users[id]; !ok {
			return fmt.Errorf("%w: plan for unknown user %q", ErrInvalidFormat, id)
		}
	}
	for id := range backup.Data.ChatHistories {
		if _, ok := backup.Data.Users[id]; !ok {
			return fmt.Errorf("%w: chat for unknown user %q", ErrInvalidFormat, id)
		}
	}
	return nil
}
