// Package vtcore provides a headless, xterm-compatible terminal emulator
// core: an escape-sequence parser, a sequence dispatcher, an SGR attribute
// engine, mouse tracking, a key encoder, and a screen-buffer model. It has
// no display of its own, making it suitable for:
//   - Testing terminal applications without a GUI
//   - Building terminal multiplexers and recorders
//   - Screen scraping and automation of CLI tools
//
// # Quick Start
//
//	term := vtcore.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.ActiveBuffer().LineContent(0)) // "Hello World!"
//
// # Architecture
//
//   - [Terminal]: owns the grid, cursor and mode flags, and implements
//     [ParserSink] to receive tokens from [Parser]
//   - [Parser]: the IDLE/ESCAPING/AWAIT-ST escape-sequence recognizer
//   - [Buffer]: a 2D grid of [Line]s with scrollback support
//   - [Cell]: a single character with colors and decoration flags
//
// # Writing Input
//
// Terminal implements [io.Writer], so PTY output can be piped straight in:
//
//	term := vtcore.New(
//	    vtcore.WithSize(24, 80),
//	    vtcore.WithScrollback(myScrollback),
//	    vtcore.WithTransmit(ptyWriter),
//	)
//	cmd.Stdout = term
//
// # Dual Buffers
//
// Terminal maintains independent main and alternate buffers. Full-screen
// applications (vim, less, htop) switch into the alternate buffer via
// `CSI ?1049h` and back via `CSI ?1049l`; the main buffer's content survives
// the round trip untouched, since it is simply not written to while the
// alternate buffer is active.
//
// # Colors
//
// Cell foreground/background are [image/color.Color] values: [DefaultColor]
// for the terminal's default, [IndexedColor] for the 256-color palette, or a
// literal [image/color.RGBA] for 24-bit truecolor. [ResolveColor] turns any
// of these into a concrete RGBA against a terminal's [Palette], which OSC 4
// mutates per-terminal.
//
// # Mouse and Keys
//
// [MouseTracker] implements the xterm tracking-state/protocol matrix;
// [KeyEncoder] converts cursor, function and editing keys into the byte
// sequences the peer expects given the terminal's current modes.
package vtcore
