package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"ttc/pkg/compiler"
	"ttc/pkg/config"
	"ttc/pkg/utils"
)

const (
	screenWidth  = 640
	screenHeight = 480
	lineHeight   = 14
	marginX      = 8
	headerRows   = 2
)

var face = text.NewGoXFace(basicfont.Face7x13)

type Game struct {
	path string
	opts compiler.Options

	res   *compiler.Result
	err   error
	mode  viewMode
	lines []line
	view  viewport
}

// load compiles the script again and rebuilds the current view.
func (g *Game) load() {
	_, src, err := utils.ReadSource(g.path)
	if err == nil {
		g.res, err = compiler.Compile(src, g.opts)
	}
	g.err = err
	if err != nil {
		log.Printf("%s: %v", g.path, err)
	}
	g.rebuild()
}

func (g *Game) rebuild() {
	if g.err != nil {
		g.lines = errorLines(g.err)
	} else {
		g.lines = buildLines(g.res, g.mode)
	}
	g.view.resize(screenHeight/lineHeight-headerRows, len(g.lines))
}

// repeating reports a key that was just pressed or is being held down.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 15 && d%3 == 0)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.mode = (g.mode + 1) % numViews
		g.view.home()
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.load()
	}

	switch {
	case repeating(ebiten.KeyDown):
		g.view.scroll(1)
	case repeating(ebiten.KeyUp):
		g.view.scroll(-1)
	case repeating(ebiten.KeyPageDown):
		g.view.page(1)
	case repeating(ebiten.KeyPageUp):
		g.view.page(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.view.home()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.view.end()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.view.scroll(-int(dy * 3))
	}
	return nil
}

func (g *Game) drawLine(screen *ebiten.Image, row int, l line) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(marginX, float64(row*lineHeight))
	op.ColorScale.ScaleWithColor(l.clr)
	text.Draw(screen, l.text, face, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	from, to := g.view.visible()
	header := fmt.Sprintf("%s - %s  [%d-%d of %d]  Tab: view  R: reload", g.path, g.mode, from+1, to, len(g.lines))
	if g.err != nil {
		header = fmt.Sprintf("%s - compilation failed  R: reload", g.path)
	}
	g.drawLine(screen, 0, line{text: header, clr: colorHeader})

	for i := from; i < to; i++ {
		g.drawLine(screen, headerRows+i-from, g.lines[i])
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ttc-desktop: ")

	filename := utils.DefaultSource
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}
	fullPath, _, err := utils.GetPathInfo(filename)
	if err != nil {
		log.Fatalf("Failed to resolve %s: %v", filename, err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game := &Game{path: fullPath, opts: cfg.CompilerOptions()}
	game.load()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ttc - " + fullPath)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
