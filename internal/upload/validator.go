// Package upload performs the client-side file checks that run before any
// network call: a size ceiling and a type allow-list per modality. Checks
// run on the declared MIME type and file extension only, with no content
// sniffing; the remote service remains the authority on content validation.
package upload

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Modality selects which constraint set applies to an upload.
type Modality string

// Upload modalities.
const (
	ModalityAudio      Modality = "audio"
	ModalityDocument   Modality = "document"
	ModalityDeepfake   Modality = "deepfake"
	ModalityScreenshot Modality = "screenshot"
)

const mib = 1 << 20

// FileInfo is the minimal view of a file the validator needs: its name,
// declared MIME type, and size. Content is never read.
type FileInfo struct {
	Name string
	MIME string
	Size int64
}

// Constraint is the per-modality upload policy.
type Constraint struct {
	MIMETypes  map[string]bool
	Extensions map[string]bool
	MaxBytes   int64
}

var constraints = map[Modality]Constraint{
	ModalityAudio: {
		MaxBytes: 50 * mib,
		MIMETypes: map[string]bool{
			"audio/mpeg": true,
			"audio/wav":  true,
			"audio/mp4":  true,
			"audio/ogg":  true,
			"audio/webm": true,
			"audio/mp3":  true,
		},
		Extensions: map[string]bool{
			".mp3":  true,
			".wav":  true,
			".m4a":  true,
			".ogg":  true,
			".webm": true,
		},
	},
	ModalityDocument: {
		MaxBytes: 10 * mib,
		MIMETypes: map[string]bool{
			"application/pdf":    true,
			"image/jpeg":         true,
			"image/png":          true,
			"image/gif":          true,
			"application/msword": true,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		},
		Extensions: map[string]bool{
			".pdf":  true,
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".gif":  true,
			".doc":  true,
			".docx": true,
		},
	},
	ModalityDeepfake: {
		MaxBytes: 10 * mib,
		MIMETypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/gif":  true,
			"image/webp": true,
		},
		Extensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".gif":  true,
			".webp": true,
		},
	},
	ModalityScreenshot: {
		MaxBytes: 5 * mib,
		MIMETypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/gif":  true,
			"image/webp": true,
		},
		Extensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".gif":  true,
			".webp": true,
		},
	},
}

// ConstraintFor returns the upload policy for a modality.
func ConstraintFor(m Modality) (Constraint, bool) {
	c, ok := constraints[m]
	return c, ok
}

// SizeError rejects a file that exceeds the modality's size ceiling.
type SizeError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("file size must be less than %dMB (%s is %.1fMB)",
		e.Limit/mib, e.Name, float64(e.Size)/mib)
}

// TypeError rejects a file whose declared MIME type and extension are both
// outside the modality's allow-list.
type TypeError struct {
	Name    string
	MIME    string
	Allowed []string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: allowed formats are %s",
		e.MIME, strings.Join(e.Allowed, ", "))
}

// Validate checks a file against the modality's constraint. Checks run in
// order and the first failure wins: size, then type. The file itself is
// untouched; a rejection guarantees no network call was made on its behalf.
// Validate is pure — calling it twice yields the same outcome.
func Validate(file FileInfo, modality Modality) error {
	c, ok := constraints[modality]
	if !ok {
		return fmt.Errorf("unknown upload modality: %s", modality)
	}

	if file.Size > c.MaxBytes {
		return &SizeError{Name: file.Name, Size: file.Size, Limit: c.MaxBytes}
	}

	ext := strings.ToLower(filepath.Ext(file.Name))
	if !c.MIMETypes[file.MIME] && !c.Extensions[ext] {
		return &TypeError{Name: file.Name, MIME: file.MIME, Allowed: allowedList(c)}
	}

	return nil
}

// allowedList renders the extension allow-list for user-facing messages.
func allowedList(c Constraint) []string {
	out := make([]string, 0, len(c.Extensions))
	for ext := range c.Extensions {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(out)
	return out
}

// Stat builds a FileInfo from a path, deriving the declared MIME type from
// the extension the way a browser file picker would.
func Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return FileInfo{}, fmt.Errorf("%s is a directory, not a file", path)
	}

	return FileInfo{
		Name: filepath.Base(path),
		Size: info.Size(),
		MIME: mime.TypeByExtension(filepath.Ext(path)),
	}, nil
}
