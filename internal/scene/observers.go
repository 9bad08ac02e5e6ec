package scene

// Observers is a list of change callbacks invoked synchronously, in subscription order.
// The zero value is ready to use.
type Observers struct {
	next      int
	callbacks []observer
}

type observer struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it again.
func (o *Observers) Subscribe(fn func()) (unsubscribe func()) {
	o.next++
	id := o.next
	o.callbacks = append(o.callbacks, observer{id: id, fn: fn})
	return func() {
		for i, cb := range o.callbacks {
			if cb.id == id {
				o.callbacks = append(o.callbacks[:i:i], o.callbacks[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every registered callback.
func (o *Observers) Notify() {
	for _, cb := range o.callbacks {
		cb.fn()
	}
}
