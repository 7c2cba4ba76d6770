package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"termview/commands"
	"termview/config"
	"termview/controller"
	Files "termview/files"
	"termview/layout"
	"termview/model"
	"termview/region"
)

type Application struct {
	file     string
	model    *model.Model
	ctrl     *controller.Controller
	config   *config.Config
	editor   config.EditorConfig
	commands *commands.Commands
	screen   tcell.Screen

	layout     *layout.Flex
	textArea   region.Region
	gutterArea region.Region
	statusArea region.Region

	// outcome of the last cursor command
	result controller.MoveResult
	quit   bool

	log *log.Logger
}

// configChanged is posted to the screen when the config file is rewritten.
type configChanged struct {
	editor config.EditorConfig
}

func NewLogger(path string) *log.Logger {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}

	return log.New(file, "", log.LstdFlags|log.Lshortfile)
}

var logFile = flag.String("log", "termview.log", "file to write the log to")

func main() {
	flag.Parse()
	logger := NewLogger(*logFile)

	cfg := config.NewConfig(logger, config.Dir())
	if err := cfg.Init(); err != nil {
		log.Fatalf("%+v", err)
	}

	text := ""
	file := flag.Arg(0)
	if file == "" {
		logger.Print("Started program without any files.")
	} else {
		var err error
		text, err = Files.Read(file)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		logger.Printf("Read %d bytes from file %v", len(text), file)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("%+v", err)
	}
	s.SetStyle(DefaultStyle)
	s.Clear()

	app := NewApplication(s, cfg, text, logger)
	app.file = file

	// You have to catch panics in a defer, clean up, and
	// re-raise them - otherwise your application can
	// die without leaving any diagnostic trace.
	defer app.Quit()

	if err := cfg.Watch(func(editor config.EditorConfig) {
		s.PostEvent(tcell.NewEventInterrupt(configChanged{editor}))
	}); err != nil {
		logger.Printf("Config will not be reloaded: %v", err)
	}
	defer cfg.Cleanup()

	app.Run()
}

func NewApplication(s tcell.Screen, cfg *config.Config, text string, logger *log.Logger) *Application {
	app := &Application{
		model:    model.New(text),
		config:   cfg,
		editor:   cfg.Editor(),
		commands: commands.NewCommands(logger),
		screen:   s,
		log:      logger,
	}
	app.model.SetShape(model.ParseShape(app.editor.CursorShape))
	app.registerCommands()

	app.relayout()
	app.ctrl = controller.NewWithContent(app.model, app.textArea.Width(), app.textArea.Height(),
		controller.WithLogger(logger))
	return app
}

func (app *Application) Run() {
	app.drawAll()
	for !app.quit {
		app.screen.Show()
		app.handleEvent(app.screen.PollEvent())
	}
}

func (app *Application) Quit() {
	maybePanic := recover()
	app.screen.Fini()
	app.log.Printf("Closed %q", app.file)

	if maybePanic != nil {
		panic(maybePanic)
	}
}

func (app *Application) registerCommands() {
	move := func(name string, op func() controller.MoveResult) {
		app.commands.Register(name, func() {
			app.result = op()
		})
	}
	// the controller is created after the commands, so bind lazily
	move("cursor.left", func() controller.MoveResult { return app.ctrl.CursorMoveLeft() })
	move("cursor.right", func() controller.MoveResult { return app.ctrl.CursorMoveRight() })
	move("cursor.up", func() controller.MoveResult { return app.ctrl.CursorMoveUp() })
	move("cursor.down", func() controller.MoveResult { return app.ctrl.CursorMoveDown() })
	move("cursor.cell.start", func() controller.MoveResult { return app.ctrl.CursorMoveCellStart() })
	move("cursor.cell.end", func() controller.MoveResult { return app.ctrl.CursorMoveCellEnd() })
	move("cursor.cell.next", func() controller.MoveResult { return app.ctrl.CursorMoveCellNext() })
	move("cursor.cell.prev", func() controller.MoveResult { return app.ctrl.CursorMoveCellPrev() })
	move("cursor.row.start", func() controller.MoveResult { return app.ctrl.CursorMoveRowStart() })
	move("cursor.row.end", func() controller.MoveResult { return app.ctrl.CursorMoveRowEnd() })

	app.commands.Register("cursor.toggle", func() {
		app.ctrl.CursorToggle()
		app.result = controller.MovedOnly
	})
	app.commands.Register("cursor.toggle.shape", func() {
		app.ctrl.CursorToggleBarBlock()
		app.result = controller.MovedOnly
	})
	app.commands.Register("redraw", func() {
		app.screen.Sync()
		app.result = controller.MovedAndScrolled
	})
	app.commands.Register("quit", func() {
		app.quit = true
	})
}

var keymap = map[tcell.Key]string{
	tcell.KeyLeft:    "cursor.left",
	tcell.KeyRight:   "cursor.right",
	tcell.KeyUp:      "cursor.up",
	tcell.KeyDown:    "cursor.down",
	tcell.KeyHome:    "cursor.row.start",
	tcell.KeyEnd:     "cursor.row.end",
	tcell.KeyCtrlA:   "cursor.row.start",
	tcell.KeyCtrlE:   "cursor.row.end",
	tcell.KeyTab:     "cursor.cell.next",
	tcell.KeyBacktab: "cursor.cell.prev",
	tcell.KeyCtrlB:   "cursor.cell.start",
	tcell.KeyCtrlF:   "cursor.cell.end",
	tcell.KeyCtrlT:   "cursor.toggle",
	tcell.KeyCtrlO:   "cursor.toggle.shape",
	tcell.KeyCtrlL:   "redraw",
	tcell.KeyEscape:  "quit",
	tcell.KeyCtrlC:   "quit",
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.resize()
		app.screen.Sync()
	case *tcell.EventKey:
		name, ok := keymap[ev.Key()]
		if !ok {
			return
		}
		app.result = controller.NoMove
		app.commands.Exec(name)
		app.log.Printf("%s: %v", name, app.result)
		app.repaint(app.result)
	case *tcell.EventInterrupt:
		if changed, ok := ev.Data().(configChanged); ok {
			app.applyConfig(changed.editor)
		}
	}
}

// repaint redraws as little as the move result allows.
func (app *Application) repaint(result controller.MoveResult) {
	switch {
	case result.Scrolled():
		app.drawAll()
	case result.Moved():
		app.drawGutter()
		app.drawStatus()
		app.placeCursor()
	}
}

func (app *Application) resize() {
	app.relayout()
	dirties := app.ctrl.Resize(app.textArea.Width(), app.textArea.Height())
	for _, dirty := range dirties {
		app.drawContent(dirty)
	}
	app.drawGutter()
	app.drawStatus()
	app.placeCursor()
}

func (app *Application) applyConfig(editor config.EditorConfig) {
	app.log.Printf("Applying config %+v", editor)
	app.editor = editor
	app.model.SetShape(model.ParseShape(editor.CursorShape))
	app.relayout()
	app.ctrl.Resize(app.textArea.Width(), app.textArea.Height())
	app.drawAll()
}

// relayout splits the screen into gutter, text and status areas.
func (app *Application) relayout() {
	app.textArea, app.gutterArea, app.statusArea = region.Region{}, region.Region{}, region.Region{}

	var row []layout.FlexItem
	if app.editor.LineNumbers {
		width := len(strconv.Itoa(len(app.model.Content()))) + 1
		row = append(row, layout.FlexItemBox(func(r region.Region) { app.gutterArea = r }, layout.Exact(layout.Abs(width)), nil))
	}
	row = append(row, layout.FlexItemBox(func(r region.Region) { app.textArea = r }, layout.Max(layout.Rel(1)), nil))

	column := []layout.FlexItem{
		layout.FlexItemBox(layout.EmptyBox, layout.Max(layout.Rel(1)), layout.Row(row...)),
	}
	if app.editor.StatusLine {
		column = append(column, layout.FlexItemBox(func(r region.Region) { app.statusArea = r }, layout.Exact(layout.Abs(1)), nil))
	}
	app.layout = layout.Column(column...)

	width, height := app.screen.Size()
	app.layout.StartLayouting(width, height)
	app.log.Printf("Layout: text %v, gutter %v, status %v", app.textArea, app.gutterArea, app.statusArea)
}

func (app *Application) statusText() string {
	col, row := app.ctrl.CursorPosition()
	shape := app.model.Shape()
	char := "EOL"
	if r, ok := app.ctrl.CursorChar(); ok {
		char = fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf(" %s  %d:%d  %s  %s  view %v  %v",
		app.fileName(), row+1, col+1, char, shape, app.ctrl.Viewport(), app.result)
}

func (app *Application) fileName() string {
	if app.file == "" {
		return "[scratch]"
	}
	return app.file
}
