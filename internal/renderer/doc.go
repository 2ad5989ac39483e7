// Package renderer draws the table viewer onto a tcell screen.
//
// The renderer is stateless between frames. Each call to Draw takes a View
// snapshot and paints:
//
//	┌──────────────────────────────────────────┐
//	│      A        B        C                 │  column letters
//	│    │ Name   │ Age    │ City              │  header row
//	│  1 │ Alice  │ 30     │ NYC               │
//	│  2 │ Bob    │ 25     │ LA                │  table window
//	│ ...                                      │
//	├──────────────────────────────────────────┤
//	│ Files (1/3): ► a.csv | b.csv | c.csv     │  file switcher
//	│ -- NORMAL -- │ Row 2/9 │ ...             │  status bar
//	└──────────────────────────────────────────┘
//
// Only the rows inside the viewport window and the columns inside the
// horizontal scroll range are read from the grid, so drawing cost does not
// depend on the size of the file.
//
// Usage:
//
//	term, _ := renderer.NewTerminal()
//	term.Init()
//	r := renderer.New(term.Screen(), theme)
//	r.Draw(view)
package renderer
