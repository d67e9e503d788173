package resources

import (
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/npillmayer/figlet/core"
	"github.com/npillmayer/figlet/core/font/fontregistry"
	"github.com/npillmayer/schuko"
)

// Source is a source of font data, addressed by font name.
// Names are matched after normalization, see fontregistry.NormalizeFontname.
type Source = fontregistry.Source

// FontFileExtension is the file extension of FIGfont files.
const FontFileExtension = ".flf"

// fsSource finds font files in a folder of a file system.
type fsSource struct {
	fsys fs.FS
	root string
}

// Packaged returns the source of fonts packaged with this module.
func Packaged() Source {
	return fsSource{fsys: packaged, root: "packaged/fonts"}
}

// Directory returns a source for font files in folder dir.
func Directory(dir string) Source {
	return fsSource{fsys: os.DirFS(dir), root: "."}
}

func (src fsSource) fontFiles() ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(src.fsys, src.root)
	if err != nil {
		return nil, err
	}
	files := entries[:0]
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), FontFileExtension) {
			files = append(files, e)
		}
	}
	return files, nil
}

func (src fsSource) Open(name string) (io.ReadCloser, error) {
	name = fontregistry.NormalizeFontname(name)
	files, err := src.fontFiles()
	if err != nil {
		tracer().Debugf("cannot read font folder: %v", err)
		return nil, NotFound(name, fontResourceType)
	}
	for _, f := range files {
		if fontregistry.NormalizeFontname(f.Name()) == name {
			tracer().Debugf("found font %s as file %s", name, f.Name())
			return src.fsys.Open(path.Join(src.root, f.Name()))
		}
	}
	return nil, NotFound(name, fontResourceType)
}

func (src fsSource) Names() []string {
	files, err := src.fontFiles()
	if err != nil {
		return nil
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = fontregistry.NormalizeFontname(f.Name())
	}
	sort.Strings(names)
	return names
}

// chain searches a list of sources in order.
type chain []Source

// Chain returns a source which searches sources in order. The first source
// which has a font of a given name wins.
func Chain(sources ...Source) Source {
	return chain(sources)
}

func (c chain) Open(name string) (io.ReadCloser, error) {
	for _, src := range c {
		r, err := src.Open(name)
		if err == nil {
			return r, nil
		}
		if !core.HasCode(err, core.EMISSING) {
			return nil, err
		}
	}
	return nil, NotFound(name, fontResourceType)
}

func (c chain) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, src := range c {
		for _, name := range src.Names() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Sources returns the chain of font sources for an application
// configuration: the folder configured as "fontdir", if any, the user's font
// folder, if it exists, and the packaged fonts.
func Sources(conf schuko.Configuration) Source {
	var sources chain
	if conf != nil {
		if dir := conf.GetString("fontdir"); dir != "" {
			tracer().Debugf("font directory is %s", dir)
			sources = append(sources, Directory(dir))
		}
		if dir, err := UserFontDir(conf, false); err == nil {
			sources = append(sources, Directory(dir))
		}
	}
	return append(sources, Packaged())
}

// ListFonts returns the names of all fonts available to an application.
func ListFonts(conf schuko.Configuration) []string {
	return Sources(conf).Names()
}
