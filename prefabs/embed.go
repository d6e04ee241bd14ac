package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed dialogue/*.tengo
var DialogueFS embed.FS

// LoadDialogue returns a dialogue script, preferring the on-disk copy so
// edits show up on reload.
func LoadDialogue(name string) ([]byte, error) {
	clean := cleanDialoguePath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return DialogueFS.ReadFile(clean)
}

// DialogueNames lists the embedded dialogue scripts by name, without the
// directory or extension.
func DialogueNames() ([]string, error) {
	entries, err := fs.ReadDir(DialogueFS, "dialogue")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".tengo") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".tengo"))
	}
	return names, nil
}

//go:embed *.yaml
var PrefabsFS embed.FS

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// Exists reports whether a prefab is available on disk or embedded.
func Exists(name string) bool {
	clean := cleanPrefabPath(name)
	if _, err := os.Stat(diskPrefabPath(clean)); err == nil {
		return true
	}
	_, err := fs.Stat(PrefabsFS, clean)
	return err == nil
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func cleanDialoguePath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "dialogue/"); ok {
		s = after
	}

	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}

	return fmt.Sprintf("dialogue/%s", s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
