// Package checklist persists the project checklist used as working memory
// between skill runs.
package checklist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"aechlegal/internal/domain"
)

const fileMode = 0o644

// Store reads and rewrites the whole checklist document on every mutation.
// Concurrent writers are last-writer-wins.
type Store struct {
	path   string
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		path:   strings.TrimSpace(path),
		logger: logger.Named("checklist"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns an empty checklist when the file does not exist yet.
func (s *Store) Load() (domain.Checklist, error) {
	if s.path == "" {
		return domain.Checklist{}, errors.New("checklist path is required")
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Checklist{Items: []domain.ChecklistItem{}}, nil
		}
		return domain.Checklist{}, fmt.Errorf("read checklist: %w", err)
	}
	var list domain.Checklist
	if err := json.Unmarshal(data, &list); err != nil {
		return domain.Checklist{}, fmt.Errorf("parse checklist %s: %w", s.path, err)
	}
	if list.Items == nil {
		list.Items = []domain.ChecklistItem{}
	}
	return list, nil
}

func (s *Store) Add(text string) (domain.ChecklistItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChecklistItem{}, errors.New("checklist item text is required")
	}
	list, err := s.Load()
	if err != nil {
		return domain.ChecklistItem{}, err
	}
	item := domain.ChecklistItem{
		ID:      s.newID(),
		Text:    text,
		Status:  domain.ChecklistPending,
		AddedAt: s.timestamp(),
	}
	list.Items = append(list.Items, item)
	if err := s.save(list); err != nil {
		return domain.ChecklistItem{}, err
	}
	s.logger.Debug("checklist item added", zap.String("id", item.ID))
	return item, nil
}

// Complete marks the first item whose text contains query, case-insensitively.
func (s *Store) Complete(query string) (domain.ChecklistItem, bool, error) {
	list, err := s.Load()
	if err != nil {
		return domain.ChecklistItem{}, false, err
	}
	needle := strings.ToLower(query)
	for i := range list.Items {
		if !strings.Contains(strings.ToLower(list.Items[i].Text), needle) {
			continue
		}
		list.Items[i].Status = domain.ChecklistComplete
		list.Items[i].CompletedAt = s.timestamp()
		if err := s.save(list); err != nil {
			return domain.ChecklistItem{}, false, err
		}
		return list.Items[i], true, nil
	}
	return domain.ChecklistItem{}, false, nil
}

// Remove drops every item whose text contains query and reports how many went.
func (s *Store) Remove(query string) (int, error) {
	list, err := s.Load()
	if err != nil {
		return 0, err
	}
	needle := strings.ToLower(query)
	kept := make([]domain.ChecklistItem, 0, len(list.Items))
	for _, item := range list.Items {
		if strings.Contains(strings.ToLower(item.Text), needle) {
			continue
		}
		kept = append(kept, item)
	}
	removed := len(list.Items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	list.Items = kept
	if err := s.save(list); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Store) save(list domain.Checklist) error {
	stamp := s.timestamp()
	list.UpdatedAt = &stamp

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode checklist: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create checklist dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".checklist-*.json")
	if err != nil {
		return fmt.Errorf("write checklist: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write checklist: %w", err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write checklist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write checklist: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace checklist: %w", err)
	}
	return nil
}

func (s *Store) timestamp() string {
	return s.now().Format(time.RFC3339)
}
