package panel

import "sync"

// SelectedFile is the path most recently selected in either panel.
// It is shared by both panels and read by view/edit/open dispatch.
// Writes are last-write-wins; there is no queueing.
type SelectedFile struct {
	mu   sync.RWMutex
	path string
}

func NewSelectedFile() *SelectedFile {
	return &SelectedFile{}
}

func (s *SelectedFile) Set(path string) {
	s.mu.Lock()
	s.path = path
	s.mu.Unlock()
}

// Path returns the selected path, false when nothing was selected yet.
func (s *SelectedFile) Path() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path, s.path != ""
}
