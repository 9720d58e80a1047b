package engine

// Cursor walks a program one generation at a time, for callers that
// interleave stepping with other work such as drawing.
type Cursor struct {
	program Program
	stage   int
	gen     int
	done    int
}

// NewCursor validates p and positions a cursor before its first generation.
func NewCursor(p Program) (*Cursor, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := &Cursor{program: p}
	c.skipEmpty()
	return c, nil
}

func (c *Cursor) skipEmpty() {
	for c.stage < len(c.program.Stages) && c.gen >= c.program.Stages[c.stage].Generations {
		c.stage++
		c.gen = 0
	}
}

// Next returns the stage that owns the next generation and advances past it.
// ok is false once the program is exhausted.
func (c *Cursor) Next() (st Stage, ok bool) {
	if c.Done() {
		return Stage{}, false
	}
	st = c.program.Stages[c.stage]
	c.gen++
	c.done++
	c.skipEmpty()
	return st, true
}

// Done reports whether every generation has been handed out.
func (c *Cursor) Done() bool { return c.stage >= len(c.program.Stages) }

// Generation is the number of generations handed out so far.
func (c *Cursor) Generation() int { return c.done }

// Stage names the stage the next generation belongs to, or "" when done.
func (c *Cursor) Stage() string {
	if c.Done() {
		return ""
	}
	return c.program.Stages[c.stage].Name
}
