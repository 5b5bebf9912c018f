package model

// Selection holds the file chosen by the user. The zero value means no file
// has been selected yet.
type Selection struct {
	path string
	set  bool
}

// Set records path as the selected file
func (s *Selection) Set(path string) {
	s.path = path
	s.set = true
}

// Path returns the selected file and whether one was ever selected
func (s *Selection) Path() (string, bool) {
	return s.path, s.set
}

// IsSet reports whether a file has been selected
func (s *Selection) IsSet() bool {
	return s.set
}
