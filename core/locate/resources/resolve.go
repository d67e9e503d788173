package resources

import (
	"context"
	"embed"
	"fmt"

	"github.com/npillmayer/figlet/core"
	"github.com/npillmayer/figlet/core/font/figfont"
	"github.com/npillmayer/figlet/core/font/fontregistry"
	"github.com/npillmayer/schuko"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
	folderResourceType
)

// Names of the packaged fonts.
const (
	Banner   = "banner"
	Big      = "big"
	Block    = "block"
	Bubble   = "bubble"
	Digital  = "digital"
	Ivrit    = "ivrit"
	Lean     = "lean"
	Mini     = "mini"
	Mnemonic = "mnemonic"
	Script   = "script"
	Shadow   = "shadow"
	Slant    = "slant"
	Small    = "small"
	SmScript = "smscript"
	SmShadow = "smshadow"
	SmSlant  = "smslant"
	Standard = "standard"
	Term     = "term"
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	case folderResourceType:
		s = fmt.Sprintf("folder not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	err := core.WrapError(e, core.EMISSING, s)
	return err
}

//go:embed packaged/*
var packaged embed.FS

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *figfont.Font
	err  error
}

// FontPromise is the result of resolving a font.
// Font and FontContext block until the font has been loaded.
//
// If the font cannot be found, the promise delivers the fallback font
// together with an error.
type FontPromise interface {
	Font() (*figfont.Font, error)
	FontContext(ctx context.Context) (*figfont.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*figfont.Font, error)
}

func (loader fontLoader) Font() (*figfont.Font, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) FontContext(ctx context.Context) (*figfont.Font, error) {
	return loader.await(ctx)
}

// ResolveFont resolves a FIGfont by name. The font is searched for in the
// global font registry first, then in the sources for conf (see Sources).
// A font loaded from a source is stored in the global registry.
func ResolveFont(conf schuko.Configuration, name string) FontPromise {
	return resolveFont(fontregistry.GlobalRegistry(), Sources(conf), name)
}

func resolveFont(registry *fontregistry.Registry, src Source, name string) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		result.font, result.err = registry.LoadFont(name, src)
		if result.err != nil {
			tracer().Infof("resolving font %s: %v", name, result.err)
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*figfont.Font, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}
