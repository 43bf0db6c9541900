package gradient

// Context collects the stops seen in one element batch. It is created per
// batch call and must not outlive it.
type Context struct {
	stops map[Stop]string
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{stops: make(map[Stop]string, 3)}
}

// Set records color for stop. Later calls win.
func (c *Context) Set(stop Stop, color string) {
	c.stops[stop] = color
}

// Get returns the color recorded for stop.
func (c *Context) Get(stop Stop) (string, bool) {
	v, ok := c.stops[stop]
	return v, ok
}

// Len returns how many distinct stops were recorded.
func (c *Context) Len() int {
	return len(c.stops)
}

// Clear forgets every recorded stop.
func (c *Context) Clear() {
	clear(c.stops)
}

// Gradient assembles the recorded stops with a direction.
func (c *Context) Gradient(direction string) Gradient {
	return Gradient{
		Direction: direction,
		From:      c.stops[From],
		Via:       c.stops[Via],
		To:        c.stops[To],
	}
}
