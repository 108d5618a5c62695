package model

import "strings"

// Path represents a file system path.
type Path string

// DefaultRoot is the directory scanned when no paths are given.
const DefaultRoot Path = "src"

// Default scan settings matching the original audit behavior.
const (
	DefaultCall    = "console.log"
	DefaultKeyword = "if"
	DefaultMarker  = "DEBUG_CONFIG"
)

// DefaultExtensions lists the source file suffixes scanned by default.
var DefaultExtensions = []string{".ts", ".tsx"}

// ScanProfile holds the knobs of an audit run: where to scan, which call
// substring to count, and which keyword/marker pair identifies a guard line.
type ScanProfile struct {
	Paths      []Path   `yaml:"paths"`
	Call       string   `yaml:"call"`
	Keyword    string   `yaml:"keyword"`
	Marker     string   `yaml:"marker"`
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude,omitempty"`
}

// NewScanProfile returns a profile populated with the reference defaults:
// scan ./src for console.log calls guarded by if+DEBUG_CONFIG lines in
// .ts and .tsx files.
func NewScanProfile() ScanProfile {
	return ScanProfile{
		Paths:      []Path{DefaultRoot},
		Call:       DefaultCall,
		Keyword:    DefaultKeyword,
		Marker:     DefaultMarker,
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// MatchesExtension reports whether the file name carries one of the
// profile's recognized source suffixes.
func (p ScanProfile) MatchesExtension(name string) bool {
	for _, ext := range p.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}
