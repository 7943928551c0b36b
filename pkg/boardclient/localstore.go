package boardclient

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// maxRecentBoards caps the visited-boards history.
const maxRecentBoards = 6

type RecentBoard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LastVisited time.Time `json:"lastVisited"`
}

type localData struct {
	UserName     string        `json:"userName"`
	RecentBoards []RecentBoard `json:"recentRamilletes"`
}

// LocalStore persists the contributor's name and recently visited boards in
// a single JSON file, so the fields survive restarts the way browser storage
// would.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (s *LocalStore) UserName() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return "", err
	}
	return data.UserName, nil
}

func (s *LocalStore) SetUserName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}
	data.UserName = name
	return s.save(data)
}

func (s *LocalStore) RecentBoards() ([]RecentBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return data.RecentBoards, nil
}

// TouchBoard records a visit: the board moves to the front of the history,
// and the oldest entry drops off past the cap.
func (s *LocalStore) TouchBoard(id, name string, visitedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}

	boards := []RecentBoard{{ID: id, Name: name, LastVisited: visitedAt}}
	for _, b := range data.RecentBoards {
		if b.ID == id {
			continue
		}
		boards = append(boards, b)
	}
	if len(boards) > maxRecentBoards {
		boards = boards[:maxRecentBoards]
	}
	data.RecentBoards = boards
	return s.save(data)
}

func (s *LocalStore) load() (*localData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &localData{}, nil
		}
		return nil, err
	}
	var data localData
	if err := json.Unmarshal(raw, &data); err != nil {
		// A corrupt file starts the store over rather than wedging it.
		return &localData{}, nil
	}
	return &data, nil
}

func (s *LocalStore) save(data *localData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
