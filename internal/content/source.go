package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed library/*.md library/*.csv library/*.yaml
var libraryFS embed.FS

// Content file names. Every file except translations is required.
const (
	FileObjectives     = "objectives.md"
	FileRoles          = "roles.md"
	FileSkills         = "skills_canon.md"
	FileBadges         = "badges.md"
	FileTemplates      = "templates.md"
	FileCertifications = "certifications.csv"
	FileKeywords       = "keywords.yaml"
	FileTranslations   = "translations.csv"
)

// RequiredFiles lists the files a load cannot do without.
var RequiredFiles = []string{
	FileObjectives, FileRoles, FileSkills, FileBadges, FileTemplates, FileCertifications, FileKeywords,
}

// IsContentFile reports whether base is one of the library file names.
func IsContentFile(base string) bool {
	if base == FileTranslations {
		return true
	}
	for _, f := range RequiredFiles {
		if f == base {
			return true
		}
	}
	return false
}

// Source supplies raw content files by name.
type Source interface {
	ReadFile(name string) ([]byte, error)
	String() string
}

// DirSource reads content files from a directory on disk.
type DirSource struct {
	Dir string
}

// ReadFile reads name from the directory.
func (s DirSource) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, name))
}

func (s DirSource) String() string {
	return s.Dir
}

// FSSource reads content files from an fs.FS.
type FSSource struct {
	FS   fs.FS
	Name string
}

// ReadFile reads name from the file system.
func (s FSSource) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(s.FS, name)
}

func (s FSSource) String() string {
	return s.Name
}

// EmbeddedSource returns the library bundled into the binary.
func EmbeddedSource() Source {
	sub, err := fs.Sub(libraryFS, "library")
	if err != nil {
		panic(fmt.Sprintf("embedded library: %v", err))
	}
	return FSSource{FS: sub, Name: "embedded"}
}

// OverlaySource reads selected files from explicit paths and everything else from Base.
type OverlaySource struct {
	Base  Source
	Files map[string]string // content file name -> path on disk
}

// ReadFile prefers the overlay path for name.
func (s OverlaySource) ReadFile(name string) ([]byte, error) {
	if path, ok := s.Files[name]; ok && path != "" {
		return os.ReadFile(path)
	}
	return s.Base.ReadFile(name)
}

func (s OverlaySource) String() string {
	if len(s.Files) == 0 {
		return s.Base.String()
	}
	return fmt.Sprintf("%s (+%d overrides)", s.Base, len(s.Files))
}
