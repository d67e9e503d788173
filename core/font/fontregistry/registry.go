package fontregistry

import (
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/figlet/core"
	"github.com/npillmayer/figlet/core/font/figfont"
	"github.com/npillmayer/schuko/tracing"
)

// FallbackFontName is the name of the font a registry falls back to.
const FallbackFontName = "standard"

// Source is where a registry loads fonts from.
type Source interface {
	Open(name string) (io.ReadCloser, error) // open font data for a normalized name
	Names() []string                         // names of all fonts available
}

// Registry is a type for holding information about loaded fonts.
type Registry struct {
	sync.Mutex
	fonts map[string]*figfont.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*figfont.Font),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(name string, f *figfont.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fr.storeFont(NormalizeFontname(name), f)
}

func (fr *Registry) storeFont(normalizedName string, f *figfont.Font) {
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s", normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns a font previously stored under name.
//
// If no such font is registered, Font returns the fallback font, if it has
// been loaded, together with an error.
func (fr *Registry) Font(name string) (*figfont.Font, error) {
	normalizedName := NormalizeFontname(name)
	tracer().Debugf("registry searches for font %s", normalizedName)
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[normalizedName]; ok {
		tracer().Infof("registry found font %s", normalizedName)
		return f, nil
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := core.Error(core.EMISSING, "font %s not found in registry", normalizedName)
	return fr.fonts[FallbackFontName], err
}

// LoadFont returns the font stored under name. If the registry does not
// contain it yet, it is loaded from src, parsed and stored.
//
// If the font cannot be loaded, LoadFont will load the fallback font from
// src and return it, together with an error. The error message suggests a
// font with a similar name, if src has one.
func (fr *Registry) LoadFont(name string, src Source) (*figfont.Font, error) {
	normalizedName := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[normalizedName]; ok {
		tracer().Debugf("registry found font %s", normalizedName)
		return f, nil
	}
	f, err := parseFrom(src, normalizedName)
	if err == nil {
		tracer().Infof("font registry caches font %s", normalizedName)
		fr.storeFont(normalizedName, f)
		return f, nil
	}
	if core.HasCode(err, core.EMISSING) {
		if match, conf := ClosestMatch(src.Names(), normalizedName); conf > NoConfidence {
			err = core.WrapError(err, core.EMISSING, "font %s not found, did you mean %s?",
				normalizedName, match)
		}
	}
	if normalizedName == FallbackFontName {
		return nil, err
	}
	fallback, ok := fr.fonts[FallbackFontName]
	if !ok {
		var ferr error
		if fallback, ferr = parseFrom(src, FallbackFontName); ferr != nil {
			tracer().Errorf("cannot load fallback font: %v", ferr)
			return nil, err
		}
		tracer().Infof("font registry caches fallback font %s", FallbackFontName)
		fr.storeFont(FallbackFontName, fallback)
	}
	return fallback, err
}

func parseFrom(src Source, normalizedName string) (*figfont.Font, error) {
	r, err := src.Open(normalizedName)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	f, err := figfont.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.Code(err), "cannot parse font %s: %s",
			normalizedName, core.UserMessage(err))
	}
	return f, nil
}

// Names returns the names of all fonts in the registry, sorted.
func (fr *Registry) Names() []string {
	fr.Lock()
	defer fr.Unlock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LogFontList is a helper function to dump the list of known fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for _, k := range fr.Names() {
		fr.Lock()
		f := fr.fonts[k]
		fr.Unlock()
		tracer().Infof("font [%s] = %v", k, f)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname normalizes a font name or font file name:
// surrounding white space and a directory prefix or extension are removed,
// blanks are replaced by underscores and the result is lower case.
//
//    NormalizeFontname("fonts/Small Script.flf")  =>  "small_script"
//
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = path.Base(strings.ReplaceAll(fname, "\\", "/"))
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}
