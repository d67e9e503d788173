package resources

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/npillmayer/figlet/core"
	"github.com/npillmayer/figlet/core/font/figfont"
	"github.com/npillmayer/figlet/core/font/fontregistry"
	"github.com/npillmayer/schuko"
)

// UserFontDir returns the folder for fonts installed by the user. The
// folder is located in the user's config directory (`os.UserConfigDir()`),
// plus an application specific key, taken as `app-key` from the
// configuration, plus "fonts".
//
// If create is set, non-existing folders will be created (with permissions
// 755). Otherwise a missing folder results in an error.
func UserFontDir(conf schuko.Configuration, create bool) (string, error) {
	appkey := conf.GetString("app-key")
	tracer().Debugf("config[app-key] = %s", appkey)
	if appkey == "" {
		return "", core.Error(core.EMISSING, "application key is not set")
	}
	uconfdir, err := os.UserConfigDir()
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "user config directory not set")
	}
	fontdir := filepath.Join(uconfdir, appkey, "fonts")
	if _, err = os.Stat(fontdir); os.IsNotExist(err) {
		if !create {
			return "", NotFound(fontdir, folderResourceType)
		}
		tracer().Infof("creating user font folder %s", fontdir)
		if err = os.MkdirAll(fontdir, 0755); err != nil {
			return "", core.WrapError(err, core.EINVALID,
				"user font folder cannot be created: %s", fontdir)
		}
	}
	return fontdir, nil
}

// InstallFont copies a FIGfont into the user's font folder, see UserFontDir.
// location is either the path of a font file or an http(s) URL to download
// the font from. The font is parsed before it is installed; a font which
// does not parse will not be installed.
//
// InstallFont returns the name under which the font is available.
func InstallFont(conf schuko.Configuration, location string) (string, error) {
	data, filename, err := fetchFont(location)
	if err != nil {
		return "", err
	}
	if _, err = figfont.Parse(bytes.NewReader(data)); err != nil {
		return "", core.WrapError(err, core.EINVALID, "not a valid FIGfont: %s: %s",
			location, core.UserMessage(err))
	}
	name := fontregistry.NormalizeFontname(filename)
	if name == "" || name == "." || name == "/" {
		return "", core.Error(core.EINVALID, "cannot derive font name from %s", location)
	}
	fontdir, err := UserFontDir(conf, true)
	if err != nil {
		return "", err
	}
	fontpath := filepath.Join(fontdir, name+FontFileExtension)
	if err = os.WriteFile(fontpath, data, 0644); err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot install font to %s", fontpath)
	}
	tracer().Infof("installed font %s as %s", name, fontpath)
	return name, nil
}

func fetchFont(location string) ([]byte, string, error) {
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		data, err := downloadFile(location)
		return data, path.Base(u.Path), err
	}
	data, err := os.ReadFile(location)
	if os.IsNotExist(err) {
		return nil, "", NotFound(location, fontResourceType)
	} else if err != nil {
		return nil, "", core.WrapError(err, core.EINVALID, "cannot read font file %s", location)
	}
	return data, filepath.Base(location), nil
}

// downloadFile will download the content of a URL.
func downloadFile(location string) ([]byte, error) {
	tracer().Debugf("downloading %s", location)
	resp, err := http.Get(location)
	if err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "could not download %s", location)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		tracer().Errorf("download request not OK: %v", resp.Status)
		err = core.Error(resp.StatusCode, "response: %v", resp.Status)
		if resp.StatusCode == http.StatusNotFound {
			return nil, core.WrapError(err, core.EMISSING, "font not found: %s", location)
		}
		return nil, core.WrapError(err, core.ECONNECTION, "could not download %s", location)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "could not download %s", location)
	}
	return data, nil
}
