/*
Command figlet renders text as FIGlet banners.

Usage:

	figlet [flags] [text ...]

With text arguments, figlet renders the text once and exits. Without, it
starts an interactive session which renders every line entered. Lines
starting with ':' are commands, type ':help' for a list.

The flags are:

	-font name        font to use (default "standard")
	-fontdir dir      folder to search for fonts first
	-layout n         full layout value, overriding the font's default
	-rtl, -ltr        force print direction
	-info             print font information
	-list             list available fonts and exit
	-install loc      install a font from a file or URL and exit
	-trace level      trace level [Debug|Info|Error]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/figlet/core"
	"github.com/npillmayer/figlet/core/font/figfont"
	"github.com/npillmayer/figlet/core/locate/resources"
	"github.com/npillmayer/figlet/engine/banner"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'figlet.cli'
func tracer() tracing.Trace {
	return tracing.Select("figlet.cli")
}

var traceKeys = []string{"figlet.cli", "figlet.fonts", "figlet.resources", "figlet.render"}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", resources.Standard, "Font to use")
	fontdir := flag.String("fontdir", "", "Folder to search for fonts")
	layout := flag.Int("layout", -1, "Full layout value, -1 for the font's default")
	rtl := flag.Bool("rtl", false, "Print right-to-left")
	ltr := flag.Bool("ltr", false, "Print left-to-right")
	info := flag.Bool("info", false, "Print font information")
	list := flag.Bool("list", false, "List available fonts")
	install := flag.String("install", "", "Install a font from a file or URL")
	flag.Parse()

	// set up logging and configuration
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"app-key":         "figlet",
		"fontdir":         *fontdir,
	}
	for _, key := range traceKeys {
		conf["trace."+key] = *tlevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)
	//
	switch {
	case *install != "":
		name, err := resources.InstallFont(conf, *install)
		if err != nil {
			core.UserError(err)
			os.Exit(2)
		}
		pterm.Success.Printfln("installed font %s", name)
		return
	case *list:
		listFonts(conf)
		return
	case *rtl && *ltr:
		pterm.Error.Println("flags -rtl and -ltr are mutually exclusive")
		os.Exit(2)
	}
	intp := &Intp{conf: conf, layout: figfont.Layout(*layout)}
	if *rtl {
		intp.dir = figfont.RightToLeft
	} else if *ltr {
		intp.dir = figfont.LeftToRight
	}
	intp.useLayout = *layout >= 0
	intp.useDir = *rtl || *ltr
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	if *info {
		intp.printInfo()
	}
	if flag.NArg() > 0 { // render once
		if err := intp.render(strings.Join(flag.Args(), " ")); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("figlet > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to FIGlet")
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	conf      testconfig.Conf
	repl      *readline.Instance
	font      *figfont.Font
	fontname  string
	renderer  *banner.Renderer
	layout    figfont.Layout
	useLayout bool
	dir       figfont.PrintDirection
	useDir    bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			if err := intp.render(line); err != nil {
				pterm.Error.Println(core.UserMessage(err))
			}
			continue
		}
		quit, err := intp.execute(line[1:])
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute runs an interpreter command, given without the leading ':'.
func (intp *Intp) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		help()
		return false, nil
	}
	tracer().Debugf("command = %v", fields)
	arg := getOptArg(fields, 1)
	switch strings.ToLower(fields[0]) {
	case "quit", "q":
		return true, nil
	case "font":
		if arg == "" {
			return false, core.Error(core.EMISSING, "usage: :font <name>")
		}
		return false, intp.loadFont(arg)
	case "layout":
		if arg == "" {
			intp.useLayout = false
		} else {
			n, err := figfont.ParseNumber(arg)
			if err != nil {
				return false, err
			}
			intp.layout, intp.useLayout = figfont.Layout(n), true
		}
		intp.configure()
		pterm.Info.Printfln("layout is %s", intp.renderer.SmushMode())
	case "rtl":
		intp.dir, intp.useDir = figfont.RightToLeft, true
		intp.configure()
	case "ltr":
		intp.dir, intp.useDir = figfont.LeftToRight, true
		intp.configure()
	case "info":
		intp.printInfo()
	case "list":
		listFonts(intp.conf)
	default:
		help()
	}
	return false, nil
}

func (intp *Intp) loadFont(fontname string) error {
	f, err := resources.ResolveFont(intp.conf, fontname).Font()
	if f == nil {
		return err
	}
	if err != nil {
		pterm.Warning.Println(core.UserMessage(err))
		fontname = resources.Standard
	}
	intp.font, intp.fontname = f, fontname
	intp.renderer = banner.NewRenderer(f).NormalizeInput(true)
	intp.configure()
	tracer().Infof("using font %s", fontname)
	return nil
}

// configure applies layout and direction overrides to the renderer.
func (intp *Intp) configure() {
	layout, dir := intp.font.FullLayout(), intp.font.PrintDirection()
	if intp.useLayout {
		layout = intp.layout
	}
	if intp.useDir {
		dir = intp.dir
	}
	intp.renderer.SetSmushMode(layout).SetPrintDirection(dir)
}

func (intp *Intp) render(text string) error {
	out, err := intp.renderer.Render(text)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func (intp *Intp) printInfo() {
	f := intp.font
	data := pterm.TableData{
		{"Font", intp.fontname},
		{"Height", strconv.Itoa(f.Height())},
		{"Baseline", strconv.Itoa(f.Baseline())},
		{"Max length", strconv.Itoa(f.MaxLength())},
		{"Hardblank", fmt.Sprintf("%q", f.Hardblank())},
		{"Old layout", strconv.Itoa(f.OldLayout())},
		{"Full layout", fmt.Sprintf("%d %s", int(f.FullLayout()), f.FullLayout())},
		{"Direction", f.PrintDirection().String()},
		{"Glyphs", strconv.Itoa(f.GlyphCount())},
		{"Code tags", strconv.Itoa(f.CodeTagCount())},
	}
	if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func listFonts(conf testconfig.Conf) {
	names := resources.ListFonts(conf)
	pterm.Info.Printfln("%d fonts available", len(names))
	for _, name := range names {
		pterm.Println(name)
	}
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	:font <name>    switch to font <name>
	:layout [n]     set full layout value n, or reset to the font's default
	:rtl, :ltr      set print direction
	:info           print information about the current font
	:list           list available fonts
	:quit           leave
	Any other line is rendered as a banner.
	`)
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
