package printer

// Enter opens an indented section: it increments the section depth and
// prints title as a bold header line at the new depth. Plain text printed
// until the returned exit func is called is indented one level deeper.
//
// The exit func is idempotent, so it is safe to both defer it and call it
// early. If the title cannot be printed, the section is closed again before
// Enter returns the error.
//
//	exit, err := p.Enter("Step 1")
//	if err != nil {
//		return err
//	}
//	defer exit()
func (p *Printer) Enter(title string) (exit func(), err error) {
	p.indentLevel++
	depth := p.indentLevel
	p.logger.Debug("printer: entered section", "title", title, "depth", depth)

	exited := false
	exit = func() {
		if exited {
			return
		}
		exited = true
		p.indentLevel--
		p.logger.Debug("printer: exited section", "title", title, "depth", depth)
	}

	f := Format{Color: ResolveHeaderColor(p.headerColor, genericKind), Bold: true}
	if err := p.block(false, func() error { return p.print(title, f, false) }); err != nil {
		exit()
		return func() {}, err
	}
	return exit, nil
}

// Section runs fn inside a section titled title, closing the section when fn
// returns or panics.
func (p *Printer) Section(title string, fn func() error) error {
	exit, err := p.Enter(title)
	if err != nil {
		return err
	}
	defer exit()
	return fn()
}
