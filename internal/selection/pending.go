package selection

// Pending is an edit buffer over a global model. Edits go to a clone of the
// global model and only reach it when applied, so they can be discarded.
type Pending[S any, D any] struct {
	global  Model[S, D]
	working Model[S, D]
	done    bool
}

// NewPending clones global into a new edit buffer.
func NewPending[S any, D any](global Model[S, D]) *Pending[S, D] {
	return &Pending[S, D]{global: global, working: global.Clone()}
}

// Working returns the model that edits should be applied to.
func (p *Pending[S, D]) Working() Model[S, D] {
	return p.working
}

// Apply copies the working selection into the global model and closes the
// buffer. It reports false if the buffer was already applied or cancelled.
func (p *Pending[S, D]) Apply(source any) bool {
	if p.done {
		return false
	}
	p.global.UpdateSelection(p.working.Selection(), source)
	p.finish()
	return true
}

// Cancel discards the working selection. It reports false if the buffer was
// already applied or cancelled.
func (p *Pending[S, D]) Cancel() bool {
	if p.done {
		return false
	}
	p.finish()
	return true
}

// Done reports whether the buffer has been applied or cancelled.
func (p *Pending[S, D]) Done() bool {
	return p.done
}

func (p *Pending[S, D]) finish() {
	p.done = true
	p.working.Close()
}
