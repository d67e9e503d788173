package banner

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/figlet/core"
	"github.com/npillmayer/figlet/core/font/figfont"
	"github.com/npillmayer/figlet/core/locate/resources"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type RendererTestEnviron struct {
	suite.Suite
	standard *figfont.Font
	ivrit    *figfont.Font
}

// listen for 'go test' command --> run test methods
func TestRendererFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figlet.render")
	defer teardown()
	suite.Run(t, new(RendererTestEnviron))
}

// run once, before test suite methods
func (env *RendererTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("figlet.fonts").SetTraceLevel(tracing.LevelError)
	env.standard = loadFont(env.T(), resources.Standard)
	env.ivrit = loadFont(env.T(), resources.Ivrit)
	tracing.Select("figlet.render").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *RendererTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *RendererTestEnviron) TestHello() {
	out, err := NewRenderer(env.standard).Render("Hello")
	env.Require().NoError(err)
	env.equalBanner(lines(
		`  _   _      _ _       `,
		` | | | | ___| | | ___  `,
		` | |_| |/ _ \ | |/ _ \ `,
		` |  _  |  __/ | | (_) |`,
		` |_| |_|\___|_|_|\___/ `,
		`                       `,
	), out)
}

func (env *RendererTestEnviron) TestDefaults() {
	r := NewRenderer(env.ivrit)
	env.Equal(env.ivrit, r.Font())
	env.Equal(figfont.RightToLeft, r.PrintDirection())
	env.Equal(env.ivrit.FullLayout(), r.SmushMode())
	r.SetPrintDirection(figfont.LeftToRight).SetSmushMode(figfont.FullWidth)
	env.Equal(figfont.LeftToRight, r.PrintDirection())
	env.Equal(figfont.FullWidth, r.SmushMode())
}

func (env *RendererTestEnviron) TestSingleGlyph() {
	r := NewRenderer(env.standard)
	chars := make([]rune, 0, 102)
	for ch := rune('!'); ch < 127; ch++ {
		chars = append(chars, ch)
	}
	chars = append(chars, figfont.Deutsch[:]...)
	for _, ch := range chars {
		out, err := r.Render(string(ch))
		env.Require().NoError(err)
		g, _ := env.standard.Glyph(ch)
		want := strings.TrimSuffix(strings.ReplaceAll(g.String(), "$", " "), "\n")
		env.equalBanner(want, out)
	}
}

func (env *RendererTestEnviron) TestLineBreak() {
	r := NewRenderer(env.standard)
	a, err := r.Render("A")
	env.Require().NoError(err)
	env.equalBanner(lines(
		`     _    `,
		`    / \   `,
		`   / _ \  `,
		`  / ___ \ `,
		` /_/   \_\`,
		`          `,
	), a)
	for _, text := range []string{"A\nA", "A\rA", "A\vA"} {
		out, err := r.Render(text)
		env.Require().NoError(err)
		env.equalBanner(a+"\n"+a, out)
	}
	out, err := r.Render("A\r\nA")
	env.Require().NoError(err)
	env.equalBanner(a+"\n"+strings.Repeat("\n", 5)+"\n"+a, out)
}

func (env *RendererTestEnviron) TestEmptyText() {
	out, err := NewRenderer(env.standard).Render("")
	env.Require().NoError(err)
	env.Equal(strings.Repeat("\n", 5), out)
}

func (env *RendererTestEnviron) TestControlCharacters() {
	r := NewRenderer(env.standard)
	hello, _ := r.Render("Hello")
	out, err := r.Render("\x00H\x01el\x7fl\x1bo")
	env.Require().NoError(err)
	env.equalBanner(hello, out)
	blank, _ := r.Render("Hi yo")
	out, err = r.Render("Hi\tyo")
	env.Require().NoError(err)
	env.equalBanner(blank, out)
}

func (env *RendererTestEnviron) TestRightToLeft() {
	out, err := NewRenderer(env.standard).SetPrintDirection(figfont.RightToLeft).Render("Go")
	env.Require().NoError(err)
	env.equalBanner(lines(
		`         ____ `,
		`   ___  / ___|`,
		`  / _ \| |  _ `,
		` | (_) | |_| |`,
		`  \___/ \____|`,
		`              `,
	), out)
	out, err = NewRenderer(env.ivrit).Render("\u05d0\u05d1")
	env.Require().NoError(err)
	env.equalBanner(lines(
		`   ______ __   __`,
		`  |____  |\ \ / /`,
		`       | ||  V / `,
		`  _____| || |\ \ `,
		` /________/_| \_\`,
		`                 `,
	), out)
}

func (env *RendererTestEnviron) TestLayoutModes() {
	r := NewRenderer(env.standard).SetSmushMode(figfont.FullWidth)
	out, err := r.Render("Hi")
	env.Require().NoError(err)
	env.equalBanner(lines(
		`  _   _   _ `,
		` | | | | (_)`,
		` | |_| | | |`,
		` |  _  | | |`,
		` |_| |_| |_|`,
		`            `,
	), out)
	r.SetSmushMode(figfont.HorizontalFittingByDefault)
	out, err = r.Render("Hi")
	env.Require().NoError(err)
	env.equalBanner(lines(
		`  _   _  _ `,
		` | | | |(_)`,
		` | |_| || |`,
		` |  _  || |`,
		` |_| |_||_|`,
		`           `,
	), out)
}

func (env *RendererTestEnviron) TestMissingGlyph() {
	r := NewRenderer(env.standard)
	out, err := r.Render("\u4e2d")
	env.Require().Error(err)
	env.True(errors.Is(err, ErrNoGlyph))
	env.Equal(core.EMISSING, core.Code(err))
	env.Equal("", out)
	//
	question, _ := r.Render("?")
	out, err = r.SetFallback('?').Render("\u4e2d")
	env.Require().NoError(err)
	env.equalBanner(question, out)
	_, err = r.SetFallback('\u4e2d').Render("\u4e2d")
	env.True(errors.Is(err, ErrNoGlyph), "fallback without glyph")
}

func (env *RendererTestEnviron) TestNormalization() {
	r := NewRenderer(env.standard)
	composed, err := r.Render("\u00c4")
	env.Require().NoError(err)
	_, err = r.Render("A\u0308")
	env.True(errors.Is(err, ErrNoGlyph), "no glyph for combining diaeresis")
	out, err := r.NormalizeInput(true).Render("A\u0308")
	env.Require().NoError(err)
	env.equalBanner(composed, out)
	env.equalBanner(lines(
		`  _   _ `,
		` (_)_(_)`,
		`   /_\  `,
		`  / _ \ `,
		` /_/ \_\`,
		`        `,
	), out)
}

func (env *RendererTestEnviron) TestTrimTrailingBlanks() {
	r := NewRenderer(env.standard)
	plain, _ := r.Render("Go")
	out, err := r.TrimTrailingBlanks(true).Render("Go")
	env.Require().NoError(err)
	want := strings.Split(plain, "\n")
	for i := range want {
		want[i] = strings.TrimRight(want[i], " ")
	}
	env.equalBanner(strings.Join(want, "\n"), out)
	env.Equal("", want[5])
}

func (env *RendererTestEnviron) TestHardblankFont() {
	term := loadFont(env.T(), resources.Term)
	out, err := NewRenderer(term).Render("Hi there!")
	env.Require().NoError(err)
	env.Equal("Hi there!", out)
}

func (env *RendererTestEnviron) TestConcurrentRendering() {
	r := NewRenderer(env.standard)
	hello, _ := r.Render("Hello")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := r.Render("Hello")
			env.NoError(err)
			env.Equal(hello, out)
		}()
	}
	wg.Wait()
}

func TestOverlapBeyondPreviousGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figlet.render")
	defer teardown()
	//
	f, err := figfont.NewBuilder().Height(1).
		FullLayout(figfont.HorizontalSmushingByDefault).
		Glyph('.', ". ").
		Glyph('w', "    w").
		Build()
	if err != nil {
		t.Fatal(err)
	}
	out, err := NewRenderer(f).Render(".w")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(".   w", out); diff != "" {
		t.Errorf("banner mismatch (-want +got):\n%s", diff)
	}
	out, err = NewRenderer(f).SetPrintDirection(figfont.RightToLeft).Render(".w")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("    w ", out); diff != "" {
		t.Errorf("banner mismatch (-want +got):\n%s", diff)
	}
}

// --- Helpers ---------------------------------------------------------------

func (env *RendererTestEnviron) equalBanner(want, got string) {
	if diff := cmp.Diff(want, got); diff != "" {
		env.T().Errorf("banner mismatch (-want +got):\n%s", diff)
	}
}

func lines(rows ...string) string {
	return strings.Join(rows, "\n")
}

func loadFont(t *testing.T, name string) *figfont.Font {
	r, err := resources.Packaged().Open(name)
	if err != nil {
		t.Fatalf("cannot open packaged font %s: %v", name, err)
	}
	defer r.Close()
	f, err := figfont.Parse(r)
	if err != nil {
		t.Fatalf("cannot parse packaged font %s: %v", name, err)
	}
	return f
}
